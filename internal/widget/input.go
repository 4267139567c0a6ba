package widget

import (
	"sort"

	"github.com/atomicstack/popup-select/internal/param"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// TextInput is a single line text field.
type TextInput struct {
	base
}

func NewTextInput(opts ...Option) *TextInput {
	t := &TextInput{}
	t.rename = map[string]string{AttrName: "title"}
	t.setup(map[string]any{
		AttrName:        "",
		AttrValue:       "",
		AttrPlaceholder: "",
		AttrDisabled:    false,
		AttrWidth:       0,
	}, opts)
	t.bind(append([]string{AttrName, AttrValue, AttrPlaceholder, AttrDisabled, AttrWidth}, LayoutAttrs...)...)
	return t
}

// Value returns the current text.
func (t *TextInput) Value() string {
	s, _ := t.params.Get(AttrValue).(string)
	return s
}

// SetValue replaces the text from the application side.
func (t *TextInput) SetValue(s string) { t.params.Set(AttrValue, s) }

// Type replaces the text as a user typing into the view would.
func (t *TextInput) Type(s string) { t.view.Emit(AttrValue, s) }

// Placeholder returns the hint shown while the field is empty.
func (t *TextInput) Placeholder() string {
	s, _ := t.params.Get(AttrPlaceholder).(string)
	return s
}

// Button is a clickable action. Clicks are counted; watchers of clicks react
// to each press.
type Button struct {
	base
}

func NewButton(opts ...Option) *Button {
	b := &Button{}
	b.rename = map[string]string{AttrName: "label"}
	b.setup(map[string]any{
		AttrName:     "",
		AttrClicks:   0,
		AttrDisabled: false,
		AttrWidth:    0,
	}, opts)
	b.bind(append([]string{AttrName, AttrClicks, AttrDisabled, AttrWidth}, LayoutAttrs...)...)
	return b
}

// Click presses the button through the view. Disabled buttons ignore clicks.
func (b *Button) Click() {
	if b.Disabled() {
		return
	}
	b.view.Emit(AttrClicks, b.Clicks()+1)
}

// Clicks returns the number of presses so far.
func (b *Button) Clicks() int { return b.intAttr(AttrClicks) }

// OnClick registers fn to run after every press.
func (b *Button) OnClick(fn func()) {
	b.params.Watch(func(...param.Event) { fn() }, AttrClicks)
}

// AutocompleteInput is a text field that suggests completions from a list of
// options. The view knows the options as completions.
type AutocompleteInput struct {
	base
}

func NewAutocompleteInput(opts ...Option) *AutocompleteInput {
	a := &AutocompleteInput{}
	a.rename = map[string]string{AttrName: "title", AttrOptions: "completions"}
	a.setup(map[string]any{
		AttrName:        "",
		AttrOptions:     []string{},
		AttrPlaceholder: "",
		AttrValue:       nil,
		AttrDisabled:    false,
		AttrWidth:       0,
	}, opts)
	a.params.Init(AttrOptions, toStrings(a.params.Get(AttrOptions)))
	a.bind(append([]string{AttrName, AttrOptions, AttrPlaceholder, AttrValue, AttrDisabled, AttrWidth}, LayoutAttrs...)...)
	return a
}

// Options returns the completion list.
func (a *AutocompleteInput) Options() []string { return toStrings(a.params.Get(AttrOptions)) }

// SetOptions replaces the completion list.
func (a *AutocompleteInput) SetOptions(completions []string) {
	a.params.Set(AttrOptions, append([]string{}, completions...))
}

// Value returns the entered value.
func (a *AutocompleteInput) Value() any { return a.params.Get(AttrValue) }

// SetValue replaces the entered value.
func (a *AutocompleteInput) SetValue(v any) { a.params.Set(AttrValue, v) }

// Suggestions ranks the completions matching query, closest first. Ties keep
// option order. An empty query returns every completion.
func (a *AutocompleteInput) Suggestions(query string) []string {
	completions := a.Options()
	if query == "" {
		return completions
	}
	ranks := fuzzy.RankFindNormalizedFold(query, completions)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.Target
	}
	return out
}
