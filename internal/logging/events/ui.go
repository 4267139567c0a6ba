package events

import "github.com/atomicstack/popup-select/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type TransferTracer struct{}

var (
	UI       = UITracer{}
	Filter   = FilterTracer{}
	Transfer = TransferTracer{}
)

func (UITracer) Key(focus, key string) {
	logging.Trace("ui.key", map[string]interface{}{"focus": focus, "key": key})
}

func (UITracer) Focus(from, to string) {
	logging.Trace("ui.focus", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Done(values int) {
	logging.Trace("ui.done", map[string]interface{}{"values": values})
}

func (UITracer) Cancel(reason string) {
	logging.Trace("ui.cancel", map[string]interface{}{"reason": reason})
}

func (FilterTracer) Query(widgetID, side, query string, matches int) {
	logging.Trace("filter.query", map[string]interface{}{
		"widget":  widgetID,
		"side":    side,
		"query":   query,
		"matches": matches,
	})
}

func (FilterTracer) Invalid(widgetID, side, query string, err error) {
	payload := map[string]interface{}{"widget": widgetID, "side": side, "query": query}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("filter.invalid", payload)
}

func (FilterTracer) Cleared(widgetID, side string) {
	logging.Trace("filter.clear", map[string]interface{}{"widget": widgetID, "side": side})
}

func (TransferTracer) Apply(widgetID, target string, labels []string) {
	logging.Trace("transfer.apply", map[string]interface{}{
		"widget": widgetID,
		"target": target,
		"labels": labels,
	})
}

func (TransferTracer) Highlight(widgetID, side string, labels []string) {
	logging.Trace("transfer.highlight", map[string]interface{}{
		"widget": widgetID,
		"side":   side,
		"labels": labels,
	})
}
