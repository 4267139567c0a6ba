package events

import (
	"fmt"

	"github.com/atomicstack/popup-select/internal/logging"
)

type SelectTracer struct{}

type IdentityTracer struct{}

type OptionsTracer struct{}

type ParamTracer struct{}

var (
	Select   = SelectTracer{}
	Identity = IdentityTracer{}
	Options  = OptionsTracer{}
	Param    = ParamTracer{}
)

// Correct records a self-triggered write that repaired an invalid value.
func (SelectTracer) Correct(widgetID, kind string, from, to interface{}) {
	logging.Trace("select.correct", map[string]interface{}{
		"widget": widgetID,
		"kind":   kind,
		"from":   fmt.Sprint(from),
		"to":     fmt.Sprint(to),
	})
}

func (SelectTracer) IgnoredInbound(widgetID, attr string, value interface{}) {
	logging.Trace("select.inbound.ignored", map[string]interface{}{
		"widget": widgetID,
		"attr":   attr,
		"value":  fmt.Sprint(value),
	})
}

func (IdentityTracer) Fallback(typeName, repr string) {
	logging.Trace("identity.fallback", map[string]interface{}{"type": typeName, "repr": repr})
}

func (OptionsTracer) Reload(source string, count int) {
	logging.Trace("options.reload", map[string]interface{}{"source": source, "count": count})
}

func (OptionsTracer) ReloadError(source string, err error) {
	if err == nil {
		return
	}
	logging.Trace("options.reload.error", map[string]interface{}{"source": source, "error": err.Error()})
}

func (ParamTracer) DepthExceeded(names []string, depth int) {
	logging.Trace("param.depth", map[string]interface{}{"names": names, "depth": depth})
}
