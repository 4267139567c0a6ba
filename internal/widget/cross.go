package widget

import (
	"regexp"

	"github.com/atomicstack/popup-select/internal/logging/events"
	"github.com/atomicstack/popup-select/internal/options"
	"github.com/atomicstack/popup-select/internal/param"
	"github.com/google/uuid"
)

// Side names one of the two lists of a CrossSelector.
type Side int

const (
	Available Side = iota
	Selected
)

func (s Side) Other() Side {
	if s == Selected {
		return Available
	}
	return Selected
}

func (s Side) String() string {
	if s == Selected {
		return "selected"
	}
	return "available"
}

// chromeAllowance is the space reserved for the filter row (height) and the
// transfer button column (width).
const chromeAllowance = 50

// CrossSelector selects values by moving labels between an available list and
// a selected list. Each list has a regex filter that pre-highlights matching
// rows so they can be moved in one click; filters never hide rows.
type CrossSelector struct {
	id        string
	params    *param.Params
	table     *options.Table
	lists     [2]*MultiSelect
	search    [2]*TextInput
	buttons   [2]*Button
	composite *Container

	highlighted [2][]string
	query       [2]string
}

// NewCrossSelector builds the composite. Width, height and size default to
// 600, 200 and 10.
func NewCrossSelector(opts ...Option) *CrossSelector {
	defaults := map[string]any{
		AttrName:     "",
		AttrOptions:  options.Options{},
		AttrValue:    []any{},
		AttrDisabled: false,
		AttrWidth:    600,
		AttrHeight:   200,
		AttrSize:     10,
	}
	for _, attr := range LayoutAttrs {
		defaults[attr] = nil
	}
	for k, v := range collect(opts) {
		defaults[k] = v
	}
	c := &CrossSelector{id: uuid.NewString(), params: param.New(defaults)}

	opts0, err := options.Parse(c.params.Get(AttrOptions))
	if err != nil {
		opts0 = options.Options{}
	}
	c.params.Init(AttrOptions, opts0)
	c.table = options.NewTable(opts0)
	c.params.Init(AttrValue, c.normalize(toSlice(c.params.Get(AttrValue))))

	selected, unselected := c.partition(c.Value())
	width := c.listWidth()
	layout := c.layoutOptions(AttrSizingMode, AttrWidthPolicy, AttrHeightPolicy, AttrBackground, AttrMargin, AttrCSSClasses)
	listOpts := func(labels []string) []Option {
		return append([]Option{
			WithOptions(options.Strings(labels...)),
			WithSize(c.intAttr(AttrSize)),
			WithHeight(c.intAttr(AttrHeight) - chromeAllowance),
			WithWidth(width),
		}, layout...)
	}
	c.lists[Available] = NewMultiSelect(listOpts(unselected)...)
	c.lists[Selected] = NewMultiSelect(listOpts(selected)...)

	c.buttons[Selected] = NewButton(WithName(">>"), WithWidth(chromeAllowance), WithDisabled(c.disabled()))
	c.buttons[Available] = NewButton(WithName("<<"), WithWidth(chromeAllowance), WithDisabled(c.disabled()))

	c.search[Available] = NewTextInput(WithPlaceholder("Filter available options"), WithWidth(width))
	c.search[Selected] = NewTextInput(WithPlaceholder("Filter selected options"), WithWidth(width))

	for _, side := range []Side{Available, Selected} {
		side := side
		c.lists[side].Params().Watch(func(evts ...param.Event) {
			c.updateSelection(side, evts[len(evts)-1].New)
		}, AttrValue)
		c.buttons[side].OnClick(func() { c.applySelection(side) })
		c.search[side].Params().Watch(func(evts ...param.Event) {
			q, _ := evts[len(evts)-1].New.(string)
			c.filterOptions(side, q)
		}, AttrValue)
	}

	buttons := NewContainer(Column, []any{c.buttons[Selected], c.buttons[Available]}, WithWidth(chromeAllowance))
	c.composite = NewContainer(Row, []any{
		NewContainer(Column, []any{c.search[Available], c.lists[Available]}),
		NewContainer(Column, []any{Spacer{}, buttons, Spacer{}}),
		NewContainer(Column, []any{c.search[Selected], c.lists[Selected]}),
	}, layout...)

	c.params.Watch(func(evts ...param.Event) {
		opts, _ := c.params.Get(AttrOptions).(options.Options)
		c.table.SetOptions(opts)
	}, AttrOptions)
	c.params.Watch(c.onStructure, AttrOptions, AttrValue)
	c.params.Watch(c.onLayout, append([]string{AttrWidth, AttrHeight}, LayoutAttrs...)...)
	c.params.Watch(func(...param.Event) {
		for _, l := range c.lists {
			l.Set(AttrSize, c.intAttr(AttrSize))
		}
	}, AttrSize)
	c.params.Watch(func(...param.Event) {
		for _, b := range c.buttons {
			b.Set(AttrDisabled, c.disabled())
		}
	}, AttrDisabled)
	return c
}

// ID returns the widget's unique id.
func (c *CrossSelector) ID() string { return c.id }

// Params exposes the attribute store.
func (c *CrossSelector) Params() *param.Params { return c.params }

// Get returns an attribute value.
func (c *CrossSelector) Get(name string) any { return c.params.Get(name) }

// Set writes an attribute value.
func (c *CrossSelector) Set(name string, value any) { c.params.Set(name, value) }

// Options returns the full option set.
func (c *CrossSelector) Options() options.Options {
	o, _ := c.params.Get(AttrOptions).(options.Options)
	return o
}

// SetOptions replaces the option set. Both lists are reset: everything
// becomes available and the value becomes empty.
func (c *CrossSelector) SetOptions(opts options.Options) { c.params.Set(AttrOptions, opts) }

// Value returns the selected values in selected-list order.
func (c *CrossSelector) Value() []any { return toSlice(c.params.Get(AttrValue)) }

// SetValue replaces the selection and repartitions both lists.
func (c *CrossSelector) SetValue(values []any) { c.params.Set(AttrValue, toSlice(values)) }

// Update writes options and value in one batch, so the value is checked
// against the new options.
func (c *CrossSelector) Update(opts options.Options, values []any) {
	c.params.Update(
		param.Change{Name: AttrOptions, Value: opts},
		param.Change{Name: AttrValue, Value: toSlice(values)},
	)
}

// Labels returns every option label.
func (c *CrossSelector) Labels() []string { return c.table.Labels() }

// Table exposes the full option table.
func (c *CrossSelector) Table() *options.Table { return c.table }

// List returns the sub-list for side.
func (c *CrossSelector) List(side Side) *MultiSelect { return c.lists[side] }

// Search returns the filter input for side.
func (c *CrossSelector) Search(side Side) *TextInput { return c.search[side] }

// Button returns the action that moves labels into side.
func (c *CrossSelector) Button(side Side) *Button { return c.buttons[side] }

// Composite returns the outer row container.
func (c *CrossSelector) Composite() *Container { return c.composite }

// Highlighted returns the rows currently highlighted on side.
func (c *CrossSelector) Highlighted(side Side) []string {
	return append([]string(nil), c.highlighted[side]...)
}

// Query returns the filter text of side.
func (c *CrossSelector) Query(side Side) string { return c.query[side] }

// Highlight marks rows on side as a user clicking them would.
func (c *CrossSelector) Highlight(side Side, labels ...string) {
	c.lists[side].View().Emit(AttrValue, append([]string{}, labels...))
}

// Filter types query into the filter of side.
func (c *CrossSelector) Filter(side Side, query string) {
	c.search[side].Type(query)
}

// Transfer presses the button moving highlighted rows into target.
func (c *CrossSelector) Transfer(target Side) {
	c.buttons[target].Click()
}

func (c *CrossSelector) onStructure(evts ...param.Event) {
	var optionsChanged, valueChanged bool
	for _, e := range evts {
		switch e.Name {
		case AttrOptions:
			optionsChanged = true
		case AttrValue:
			valueChanged = true
		}
	}
	if optionsChanged {
		c.resetLists()
		if !valueChanged {
			c.params.Set(AttrValue, []any{})
			return
		}
	}
	c.updateValue()
}

// resetLists makes every label available and clears all highlights and
// filter queries.
func (c *CrossSelector) resetLists() {
	c.highlighted[Available] = nil
	c.highlighted[Selected] = nil
	c.lists[Selected].SetOptions(options.Strings())
	c.lists[Selected].SetValue([]any{})
	c.lists[Available].SetOptions(options.Strings(uniqueLabels(c.table.Labels())...))
	c.lists[Available].SetValue([]any{})
	for _, side := range []Side{Available, Selected} {
		c.query[side] = ""
		c.search[side].SetValue("")
	}
}

// updateValue repartitions the lists from the current value.
func (c *CrossSelector) updateValue() {
	current := c.Value()
	kept := c.normalize(current)
	if len(kept) != len(current) {
		events.Select.Correct(c.id, "cross", current, kept)
		c.params.Set(AttrValue, kept)
		return
	}
	selected, unselected := c.partition(kept)
	c.highlighted[Selected] = nil
	c.lists[Selected].SetOptions(options.Strings(selected...))
	c.lists[Selected].SetValue([]any{})
	c.highlighted[Available] = nil
	c.lists[Available].SetOptions(options.Strings(unselected...))
	c.lists[Available].SetValue([]any{})
}

// normalize drops values missing from the options and repeats of a label
// already taken, so the value lines up with the selected list.
func (c *CrossSelector) normalize(values []any) []any {
	seen := make(map[string]struct{}, len(values))
	kept := make([]any, 0, len(values))
	for _, v := range keepPresent(c.table, values) {
		label, _ := c.table.LabelOf(v)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		kept = append(kept, v)
	}
	return kept
}

// partition splits the labels into those whose value is in values, in value
// order, and the rest in option order.
func (c *CrossSelector) partition(values []any) (selected, unselected []string) {
	chosen := make(map[string]struct{}, len(values))
	selected = make([]string, 0, len(values))
	for _, v := range values {
		label, ok := c.table.LabelOf(v)
		if !ok {
			continue
		}
		if _, dup := chosen[label]; dup {
			continue
		}
		chosen[label] = struct{}{}
		selected = append(selected, label)
	}
	unselected = make([]string, 0, c.table.Len())
	for _, l := range uniqueLabels(c.table.Labels()) {
		if _, ok := chosen[l]; !ok {
			unselected = append(unselected, l)
		}
	}
	return selected, unselected
}

func (c *CrossSelector) updateSelection(side Side, v any) {
	labels := toStrings(v)
	kept := make([]string, 0, len(labels))
	for _, l := range labels {
		if l != "" {
			kept = append(kept, l)
		}
	}
	c.highlighted[side] = kept
	events.Transfer.Highlight(c.id, side.String(), kept)
}

// applySelection moves the rows highlighted on the other side into target.
func (c *CrossSelector) applySelection(target Side) {
	source := target.Other()
	moving := make([]string, 0, len(c.highlighted[source]))
	movingSet := make(map[string]struct{}, len(c.highlighted[source]))
	for _, l := range c.highlighted[source] {
		if !c.table.HasLabel(l) {
			continue
		}
		moving = append(moving, l)
		movingSet[l] = struct{}{}
	}
	events.Transfer.Apply(c.id, target.String(), moving)

	merged := uniqueLabels(append(c.lists[target].Labels(), moving...))
	leftovers := make([]string, 0)
	for _, l := range c.lists[source].Labels() {
		if _, ok := movingSet[l]; !ok {
			leftovers = append(leftovers, l)
		}
	}
	c.lists[target].SetOptions(options.Strings(merged...))
	c.lists[source].SetOptions(options.Strings(leftovers...))

	value := make([]any, 0)
	for _, l := range c.lists[Selected].Labels() {
		if l == "" {
			continue
		}
		if v, ok := c.table.Lookup(l); ok {
			value = append(value, v)
		}
	}
	c.params.Set(AttrValue, value)
	c.applyFilters()
}

func (c *CrossSelector) applyFilters() {
	c.applyQuery(Available)
	c.applyQuery(Selected)
}

func (c *CrossSelector) filterOptions(side Side, query string) {
	c.query[side] = query
	c.applyQuery(side)
}

// applyQuery recomputes the membership of side and pre-highlights the rows
// matching its query. The rendered rows are always the full membership.
func (c *CrossSelector) applyQuery(side Side) {
	candidates := c.membership(side)
	list := c.lists[side]
	query := c.query[side]
	if query == "" {
		list.SetOptions(options.Strings(candidates...))
		list.SetValue([]any{})
		c.highlighted[side] = nil
		events.Filter.Cleared(c.id, side.String())
		return
	}
	matches := make([]any, 0, len(candidates))
	re, err := regexp.Compile(query)
	if err != nil {
		events.Filter.Invalid(c.id, side.String(), query, err)
	}
	for _, l := range candidates {
		if re == nil || re.MatchString(l) {
			matches = append(matches, l)
		}
	}
	events.Filter.Query(c.id, side.String(), query, len(matches))
	list.SetOptions(options.Strings(candidates...))
	list.SetValue(matches)
}

// membership returns every label not on the other side. Labels already on
// side keep their order; the rest follow in option order.
func (c *CrossSelector) membership(side Side) []string {
	other := make(map[string]struct{})
	for _, l := range c.lists[side.Other()].Labels() {
		other[l] = struct{}{}
	}
	all := uniqueLabels(c.table.Labels())
	present := make(map[string]struct{}, len(all))
	for _, l := range all {
		present[l] = struct{}{}
	}
	out := make([]string, 0, len(all))
	seen := make(map[string]struct{}, len(all))
	for _, l := range c.lists[side].Labels() {
		if _, gone := present[l]; !gone {
			continue
		}
		if _, ok := other[l]; ok {
			continue
		}
		out = append(out, l)
		seen[l] = struct{}{}
	}
	for _, l := range all {
		if _, ok := other[l]; ok {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (c *CrossSelector) onLayout(evts ...param.Event) {
	for _, e := range evts {
		switch e.Name {
		case AttrHeight:
			h := c.intAttr(AttrHeight) - chromeAllowance
			for _, l := range c.lists {
				l.Set(AttrHeight, h)
			}
		case AttrWidth:
			w := c.listWidth()
			for side := range c.lists {
				c.lists[side].Set(AttrWidth, w)
				c.search[side].Set(AttrWidth, w)
			}
		default:
			c.composite.Set(e.Name, e.New)
			for _, l := range c.lists {
				l.Set(e.Name, e.New)
			}
		}
	}
}

func (c *CrossSelector) listWidth() int {
	return (c.intAttr(AttrWidth) - chromeAllowance) / 2
}

func (c *CrossSelector) layoutOptions(names ...string) []Option {
	out := make([]Option, 0, len(names))
	for _, n := range names {
		out = append(out, WithAttr(n, c.params.Get(n)))
	}
	return out
}

func (c *CrossSelector) intAttr(name string) int {
	n, _ := c.params.Get(name).(int)
	return n
}

func (c *CrossSelector) disabled() bool {
	d, _ := c.params.Get(AttrDisabled).(bool)
	return d
}

func uniqueLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
