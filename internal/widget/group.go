package widget

import (
	"github.com/atomicstack/popup-select/internal/logging/events"
	"github.com/atomicstack/popup-select/internal/options"
	"github.com/atomicstack/popup-select/internal/param"
	"github.com/atomicstack/popup-select/internal/view"
)

// View attributes of index based groups.
const (
	ViewLabels = "labels"
	ViewActive = "active"
)

// groupRename forwards options and value as labels and active indices. The
// title is not shown by group controls.
var groupRename = map[string]string{
	AttrName:    "",
	AttrOptions: ViewLabels,
	AttrValue:   ViewActive,
}

// Group is the common surface of radio and check groups.
type Group interface {
	ID() string
	View() *view.Model
	Options() options.Options
	SetOptions(options.Options)
	Labels() []string
	Values() []any
	// Selection returns the active values; radio groups return at most one.
	Selection() []any
	// ActiveIndices returns the indices the view currently shows as active.
	ActiveIndices() []int
	// Toggle flips the option at index as a user of the view would.
	Toggle(index int)
	Style() Style
	Behavior() Behavior
}

type radioGroup struct {
	selectBase
	style Style
}

func newRadioGroup(style Style, extra map[string]any, opts []Option) *radioGroup {
	g := &radioGroup{style: style}
	g.tr = radioTranslator{&g.selectBase}
	g.rename = groupRename
	defaults := map[string]any{
		AttrName:     "",
		AttrOptions:  options.Options{},
		AttrValue:    nil,
		AttrDisabled: false,
		AttrWidth:    0,
		AttrHeight:   0,
	}
	for k, v := range extra {
		defaults[k] = v
	}
	g.setup(defaults, opts)
	g.setupOptions()
	applyDefaultValue(&g.selectBase)
	synced := []string{AttrName, AttrOptions, AttrValue, AttrDisabled, AttrWidth, AttrHeight}
	for k := range extra {
		synced = append(synced, k)
	}
	g.bind(append(synced, LayoutAttrs...)...)
	return g
}

// Value returns the active value, or nil when nothing is active.
func (g *radioGroup) Value() any { return g.params.Get(AttrValue) }

// SetValue activates v.
func (g *radioGroup) SetValue(v any) { g.params.Set(AttrValue, v) }

func (g *radioGroup) Selection() []any {
	v := g.Value()
	if v == nil && !g.table.Contains(nil) {
		return nil
	}
	return []any{v}
}

func (g *radioGroup) ActiveIndices() []int {
	if i, ok := g.view.Get(ViewActive).(int); ok {
		return []int{i}
	}
	return nil
}

func (g *radioGroup) Toggle(index int) {
	if active := g.ActiveIndices(); len(active) == 1 && active[0] == index {
		g.view.Emit(ViewActive, nil)
		return
	}
	g.view.Emit(ViewActive, index)
}

func (g *radioGroup) Style() Style { return g.style }

func (g *radioGroup) Behavior() Behavior { return BehaviorRadio }

// radioTranslator maps a scalar value to a single active index. Unlike
// Select, a value missing from the options leaves nothing active.
type radioTranslator struct {
	s *selectBase
}

func (t radioTranslator) outbound(msg map[string]any) (map[string]any, []param.Change) {
	tbl := t.s.table
	out := passOthers(msg, AttrOptions, AttrValue)
	var fixes []param.Change
	if v, ok := msg[AttrValue]; ok {
		out[AttrValue] = activeIndex(tbl, v)
	}
	if _, ok := msg[AttrOptions]; ok {
		out[AttrOptions] = tbl.Labels()
		value := t.s.params.Get(AttrValue)
		if value != nil && !tbl.Contains(value) {
			events.Select.Correct(t.s.id, "radio", value, nil)
			fixes = append(fixes, param.Change{Name: AttrValue, Value: nil})
			out[AttrValue] = nil
		} else {
			out[AttrValue] = activeIndex(tbl, value)
		}
	}
	return out, fixes
}

func (t radioTranslator) inbound(msg map[string]any) map[string]any {
	delete(msg, AttrOptions)
	raw, ok := msg[AttrValue]
	if !ok {
		return msg
	}
	if raw == nil {
		msg[AttrValue] = nil
		return msg
	}
	idx, ok := toIndex(raw)
	values := t.s.table.Values()
	if !ok || idx < 0 || idx >= len(values) {
		t.s.ignore(ViewActive, raw)
		delete(msg, AttrValue)
		return msg
	}
	msg[AttrValue] = values[idx]
	return msg
}

func activeIndex(tbl *options.Table, v any) any {
	if i := tbl.IndexOf(v); i >= 0 {
		return i
	}
	return nil
}

type checkGroup struct {
	selectBase
	style Style
}

func newCheckGroup(style Style, extra map[string]any, opts []Option) *checkGroup {
	g := &checkGroup{style: style}
	g.tr = checkTranslator{&g.selectBase}
	g.rename = groupRename
	defaults := map[string]any{
		AttrName:     "",
		AttrOptions:  options.Options{},
		AttrValue:    []any{},
		AttrDisabled: false,
		AttrWidth:    0,
		AttrHeight:   0,
	}
	for k, v := range extra {
		defaults[k] = v
	}
	g.setup(defaults, opts)
	g.params.Init(AttrValue, toSlice(g.params.Get(AttrValue)))
	g.setupOptions()
	synced := []string{AttrName, AttrOptions, AttrValue, AttrDisabled, AttrWidth, AttrHeight}
	for k := range extra {
		synced = append(synced, k)
	}
	g.bind(append(synced, LayoutAttrs...)...)
	return g
}

// Value returns the active values.
func (g *checkGroup) Value() []any { return toSlice(g.params.Get(AttrValue)) }

// SetValue replaces the active values.
func (g *checkGroup) SetValue(values []any) { g.params.Set(AttrValue, toSlice(values)) }

func (g *checkGroup) Selection() []any { return g.Value() }

func (g *checkGroup) ActiveIndices() []int {
	active, _ := g.view.Get(ViewActive).([]int)
	return append([]int(nil), active...)
}

func (g *checkGroup) Toggle(index int) {
	active := g.ActiveIndices()
	next := make([]int, 0, len(active)+1)
	found := false
	for _, i := range active {
		if i == index {
			found = true
			continue
		}
		next = append(next, i)
	}
	if !found {
		next = append(next, index)
	}
	g.view.Emit(ViewActive, next)
}

func (g *checkGroup) Style() Style { return g.style }

func (g *checkGroup) Behavior() Behavior { return BehaviorCheck }

// checkTranslator maps a value list to a list of active indices.
type checkTranslator struct {
	s *selectBase
}

func (t checkTranslator) outbound(msg map[string]any) (map[string]any, []param.Change) {
	tbl := t.s.table
	out := passOthers(msg, AttrOptions, AttrValue)
	var fixes []param.Change
	if v, ok := msg[AttrValue]; ok {
		out[AttrValue] = activeIndices(tbl, toSlice(v))
	}
	if _, ok := msg[AttrOptions]; ok {
		out[AttrOptions] = tbl.Labels()
		current := toSlice(t.s.params.Get(AttrValue))
		kept := keepPresent(tbl, current)
		if len(kept) != len(current) {
			events.Select.Correct(t.s.id, "check", current, kept)
			fixes = append(fixes, param.Change{Name: AttrValue, Value: kept})
		}
		out[AttrValue] = activeIndices(tbl, kept)
	}
	return out, fixes
}

func (t checkTranslator) inbound(msg map[string]any) map[string]any {
	delete(msg, AttrOptions)
	raw, ok := msg[AttrValue]
	if !ok {
		return msg
	}
	values := t.s.table.Values()
	selected := make([]any, 0)
	for _, item := range toSlice(raw) {
		idx, ok := toIndex(item)
		if !ok || idx < 0 || idx >= len(values) {
			t.s.ignore(ViewActive, item)
			continue
		}
		selected = append(selected, values[idx])
	}
	msg[AttrValue] = selected
	return msg
}

func activeIndices(tbl *options.Table, values []any) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if i := tbl.IndexOf(v); i >= 0 {
			out = append(out, i)
		}
	}
	return out
}

func toIndex(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case *int:
		if t == nil {
			return 0, false
		}
		return *t, true
	case int64:
		return int(t), true
	case float64:
		if t != float64(int(t)) {
			return 0, false
		}
		return int(t), true
	}
	return 0, false
}

// RadioButtonGroup is a row of buttons with at most one active.
type RadioButtonGroup struct{ *radioGroup }

// RadioBoxGroup is a list of radio boxes with at most one active.
type RadioBoxGroup struct{ *radioGroup }

// CheckButtonGroup is a row of toggle buttons with any number active.
type CheckButtonGroup struct{ *checkGroup }

// CheckBoxGroup is a list of check boxes with any number active.
type CheckBoxGroup struct{ *checkGroup }

func NewRadioButtonGroup(opts ...Option) *RadioButtonGroup {
	return &RadioButtonGroup{newRadioGroup(StyleButton, nil, opts)}
}

func NewRadioBoxGroup(opts ...Option) *RadioBoxGroup {
	return &RadioBoxGroup{newRadioGroup(StyleBox, map[string]any{AttrInline: false}, opts)}
}

func NewCheckButtonGroup(opts ...Option) *CheckButtonGroup {
	return &CheckButtonGroup{newCheckGroup(StyleButton, nil, opts)}
}

func NewCheckBoxGroup(opts ...Option) *CheckBoxGroup {
	return &CheckBoxGroup{newCheckGroup(StyleBox, map[string]any{AttrInline: false}, opts)}
}

// Inline reports whether box items are laid out horizontally.
func (g *RadioBoxGroup) Inline() bool { b, _ := g.params.Get(AttrInline).(bool); return b }

// Inline reports whether box items are laid out horizontally.
func (g *CheckBoxGroup) Inline() bool { b, _ := g.params.Get(AttrInline).(bool); return b }
