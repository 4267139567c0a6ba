package widget

import (
	"reflect"

	"github.com/atomicstack/popup-select/internal/logging/events"
	"github.com/atomicstack/popup-select/internal/options"
	"github.com/atomicstack/popup-select/internal/param"
)

// selectBase owns the option table shared by every option-backed widget.
type selectBase struct {
	base
	table *options.Table
}

// setupOptions builds the table and keeps it current. The rebuild watcher is
// registered before any synchronisation watcher so every later handler sees
// the new table.
func (s *selectBase) setupOptions() {
	opts, err := options.Parse(s.params.Get(AttrOptions))
	if err != nil {
		opts = options.Options{}
	}
	s.params.Init(AttrOptions, opts)
	s.table = options.NewTable(opts)
	s.params.Watch(func(evts ...param.Event) {
		opts, _ := s.params.Get(AttrOptions).(options.Options)
		s.table.SetOptions(opts)
	}, AttrOptions)
}

// Options returns the current option set.
func (s *selectBase) Options() options.Options {
	o, _ := s.params.Get(AttrOptions).(options.Options)
	return o
}

// SetOptions replaces the option set.
func (s *selectBase) SetOptions(opts options.Options) {
	s.params.Set(AttrOptions, opts)
}

// Labels returns the display labels of the current options.
func (s *selectBase) Labels() []string { return s.table.Labels() }

// Values returns the values of the current options.
func (s *selectBase) Values() []any { return s.table.Values() }

// ItemsByLabel returns the label to value mapping.
func (s *selectBase) ItemsByLabel() map[string]any { return s.table.ItemsByLabel() }

// Table exposes the option table.
func (s *selectBase) Table() *options.Table { return s.table }

func (s *selectBase) ignore(attr string, value any) {
	events.Select.IgnoredInbound(s.id, attr, value)
}

// Select keeps one application value in sync with one selected label.
type Select struct {
	selectBase
}

// NewSelect builds a single-value select. When no value is given and the
// options are non-empty, the first option becomes the value unless nil is
// itself one of the options.
func NewSelect(opts ...Option) *Select {
	s := &Select{}
	s.tr = selectTranslator{&s.selectBase}
	s.setup(map[string]any{
		AttrName:     "",
		AttrOptions:  options.Options{},
		AttrValue:    nil,
		AttrDisabled: false,
		AttrWidth:    0,
		AttrHeight:   0,
	}, opts)
	s.setupOptions()
	applyDefaultValue(&s.selectBase)
	s.bind(append([]string{AttrName, AttrOptions, AttrValue, AttrDisabled, AttrWidth, AttrHeight}, LayoutAttrs...)...)
	return s
}

func applyDefaultValue(s *selectBase) {
	if s.params.Get(AttrValue) != nil || s.table.Contains(nil) {
		return
	}
	if first, ok := s.table.First(); ok {
		s.params.Init(AttrValue, first)
	}
}

// Value returns the selected application value.
func (s *Select) Value() any { return s.params.Get(AttrValue) }

// SetValue selects v.
func (s *Select) SetValue(v any) { s.params.Set(AttrValue, v) }

// selectTranslator maps a scalar value to and from a label.
type selectTranslator struct {
	s *selectBase
}

func (t selectTranslator) outbound(msg map[string]any) (map[string]any, []param.Change) {
	tbl := t.s.table
	value := t.s.params.Get(AttrValue)
	var fix *param.Change
	correct := func() {
		if fix != nil {
			return
		}
		first, _ := tbl.First()
		events.Select.Correct(t.s.id, "select", value, first)
		fix = &param.Change{Name: AttrValue, Value: first}
	}
	out := passOthers(msg, AttrOptions, AttrValue)
	if _, ok := msg[AttrOptions]; ok {
		out[AttrOptions] = tbl.Labels()
		if tbl.Len() > 0 && !tbl.Contains(value) {
			correct()
		} else if label, ok := tbl.LabelOf(value); ok {
			out[AttrValue] = label
		}
	}
	if v, ok := msg[AttrValue]; ok {
		if label, found := tbl.LabelOf(v); found {
			out[AttrValue] = label
		} else if tbl.Len() > 0 {
			correct()
		} else {
			out[AttrValue] = ""
		}
	}
	if fix != nil {
		return out, []param.Change{*fix}
	}
	return out, nil
}

func (t selectTranslator) inbound(msg map[string]any) map[string]any {
	delete(msg, AttrOptions)
	raw, ok := msg[AttrValue]
	if !ok {
		return msg
	}
	tbl := t.s.table
	if tbl.Len() == 0 {
		t.s.ignore(AttrValue, raw)
		delete(msg, AttrValue)
		return msg
	}
	label, _ := raw.(string)
	if raw == nil || (label == "" && !tbl.HasLabel("")) {
		msg[AttrValue], _ = tbl.First()
		return msg
	}
	v, found := tbl.Lookup(label)
	if !found {
		t.s.ignore(AttrValue, raw)
		delete(msg, AttrValue)
		return msg
	}
	msg[AttrValue] = v
	return msg
}

// MultiSelect keeps an ordered list of application values in sync with a
// list of selected labels.
type MultiSelect struct {
	selectBase
}

// NewMultiSelect builds a list-valued select.
func NewMultiSelect(opts ...Option) *MultiSelect {
	m := &MultiSelect{}
	m.tr = multiTranslator{&m.selectBase}
	m.setup(map[string]any{
		AttrName:     "",
		AttrOptions:  options.Options{},
		AttrValue:    []any{},
		AttrDisabled: false,
		AttrSize:     4,
		AttrWidth:    0,
		AttrHeight:   0,
	}, opts)
	m.params.Init(AttrValue, toSlice(m.params.Get(AttrValue)))
	m.setupOptions()
	m.bind(append([]string{AttrName, AttrOptions, AttrValue, AttrDisabled, AttrSize, AttrWidth, AttrHeight}, LayoutAttrs...)...)
	return m
}

// Value returns the selected application values in view order.
func (m *MultiSelect) Value() []any { return toSlice(m.params.Get(AttrValue)) }

// SetValue replaces the selection.
func (m *MultiSelect) SetValue(values []any) { m.params.Set(AttrValue, toSlice(values)) }

// SelectedLabels returns the labels currently pushed to the view.
func (m *MultiSelect) SelectedLabels() []string { return m.view.Strings(AttrValue) }

type multiTranslator struct {
	s *selectBase
}

func (t multiTranslator) outbound(msg map[string]any) (map[string]any, []param.Change) {
	tbl := t.s.table
	out := passOthers(msg, AttrOptions, AttrValue)
	var fixes []param.Change
	if v, ok := msg[AttrValue]; ok {
		out[AttrValue] = labelsFor(tbl, toSlice(v))
	}
	if _, ok := msg[AttrOptions]; ok {
		out[AttrOptions] = tbl.Labels()
		current := toSlice(t.s.params.Get(AttrValue))
		kept := keepPresent(tbl, current)
		if len(kept) != len(current) {
			events.Select.Correct(t.s.id, "multi", current, kept)
			fixes = append(fixes, param.Change{Name: AttrValue, Value: kept})
		}
		out[AttrValue] = labelsFor(tbl, kept)
	}
	return out, fixes
}

func (t multiTranslator) inbound(msg map[string]any) map[string]any {
	delete(msg, AttrOptions)
	raw, ok := msg[AttrValue]
	if !ok {
		return msg
	}
	labels := toStrings(raw)
	values := make([]any, 0, len(labels))
	for _, l := range labels {
		if v, found := t.s.table.Lookup(l); found {
			values = append(values, v)
		}
	}
	msg[AttrValue] = values
	return msg
}

func labelsFor(tbl *options.Table, values []any) []string {
	labels := make([]string, 0, len(values))
	for _, v := range values {
		if l, ok := tbl.LabelOf(v); ok {
			labels = append(labels, l)
		}
	}
	return labels
}

func keepPresent(tbl *options.Table, values []any) []any {
	kept := make([]any, 0, len(values))
	for _, v := range values {
		if tbl.Contains(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

// passOthers copies msg without the named keys.
func passOthers(msg map[string]any, skip ...string) map[string]any {
	out := make(map[string]any, len(msg))
	for k, v := range msg {
		out[k] = v
	}
	for _, k := range skip {
		delete(out, k)
	}
	return out
}

// toSlice normalises any slice or array into []any. Anything else becomes an
// empty list.
func toSlice(v any) []any {
	switch t := v.(type) {
	case nil:
		return []any{}
	case []any:
		return append([]any{}, t...)
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func toStrings(v any) []string {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...)
	case string:
		return []string{t}
	}
	items := toSlice(v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func isList(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}
