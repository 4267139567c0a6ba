package options

import "github.com/atomicstack/popup-select/internal/identity"

// Table is the label/value lookup derived from one option set. Every derived
// artifact is rebuilt in a single pass whenever SetOptions is called.
type Table struct {
	opts   Options
	labels []string
	values []any
	items  map[string]any
	keys   map[identity.Key]string
	index  map[identity.Key]int
}

// NewTable builds a table for opts.
func NewTable(opts Options) *Table {
	t := &Table{}
	t.SetOptions(opts)
	return t
}

// SetOptions replaces the option set and rebuilds the lookups.
func (t *Table) SetOptions(opts Options) {
	pairs := opts.Pairs()
	t.opts = opts
	t.labels = make([]string, len(pairs))
	t.values = make([]any, len(pairs))
	t.items = make(map[string]any, len(pairs))
	t.keys = make(map[identity.Key]string, len(pairs))
	t.index = make(map[identity.Key]int, len(pairs))
	for i, p := range pairs {
		t.labels[i] = p.Label
		t.values[i] = p.Value
		t.items[p.Label] = p.Value
		key := identity.Of(p.Value)
		t.keys[key] = p.Label
		if _, seen := t.index[key]; !seen {
			t.index[key] = i
		}
	}
}

// Options returns the option set the table was built from.
func (t *Table) Options() Options { return t.opts }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.labels) }

// Labels returns the display labels in order.
func (t *Table) Labels() []string { return append([]string(nil), t.labels...) }

// Values returns the option values in label order.
func (t *Table) Values() []any { return append([]any(nil), t.values...) }

// ItemsByLabel returns a copy of the label to value mapping.
func (t *Table) ItemsByLabel() map[string]any {
	out := make(map[string]any, len(t.items))
	for k, v := range t.items {
		out[k] = v
	}
	return out
}

// Lookup returns the value shown under label.
func (t *Table) Lookup(label string) (any, bool) {
	v, ok := t.items[label]
	return v, ok
}

// LabelOf returns the label of the option identified by value.
func (t *Table) LabelOf(value any) (string, bool) {
	l, ok := t.keys[identity.Of(value)]
	return l, ok
}

// IndexOf returns the position of value in Values, or -1.
func (t *Table) IndexOf(value any) int {
	if i, ok := t.index[identity.Of(value)]; ok {
		return i
	}
	return -1
}

// Contains reports whether value is one of the options.
func (t *Table) Contains(value any) bool {
	_, ok := t.keys[identity.Of(value)]
	return ok
}

// First returns the first option value.
func (t *Table) First() (any, bool) {
	if len(t.values) == 0 {
		return nil, false
	}
	return t.values[0], true
}

// HasLabel reports whether label is currently shown.
func (t *Table) HasLabel(label string) bool {
	_, ok := t.items[label]
	return ok
}
