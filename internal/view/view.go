// Package view is the in-process stand-in for a rendered control. The widget
// layer pushes view-facing properties into a Model; whatever renders the
// control (a terminal UI, a test) reads them back and reports user edits with
// Emit.
package view

import (
	"sort"

	"github.com/atomicstack/popup-select/internal/param"
)

// Model holds the properties of one rendered control.
type Model struct {
	props     map[string]any
	listeners []func(param.Event)
	pushes    int
}

// New returns an empty view model.
func New() *Model {
	return &Model{props: make(map[string]any)}
}

// Push stores properties sent by the widget. Listeners are not notified:
// pushes are the framework talking to the view, not the user.
func (m *Model) Push(props map[string]any) {
	if len(props) == 0 {
		return
	}
	for k, v := range props {
		m.props[k] = v
	}
	m.pushes++
}

// Emit records a change made in the view and notifies listeners.
func (m *Model) Emit(name string, value any) {
	old := m.props[name]
	m.props[name] = value
	evt := param.Event{Name: name, Old: old, New: value}
	for _, fn := range m.listeners {
		fn(evt)
	}
}

// OnChange registers fn for view-side changes.
func (m *Model) OnChange(fn func(param.Event)) {
	if fn == nil {
		return
	}
	m.listeners = append(m.listeners, fn)
}

// Get returns a property value.
func (m *Model) Get(name string) any {
	return m.props[name]
}

// Has reports whether a property has been pushed or emitted.
func (m *Model) Has(name string) bool {
	_, ok := m.props[name]
	return ok
}

// Strings returns a property holding a string list.
func (m *Model) Strings(name string) []string {
	v, _ := m.props[name].([]string)
	return append([]string(nil), v...)
}

// String returns a property holding a string.
func (m *Model) String(name string) string {
	v, _ := m.props[name].(string)
	return v
}

// Keys lists property names in sorted order.
func (m *Model) Keys() []string {
	keys := make([]string, 0, len(m.props))
	for k := range m.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Pushes counts the number of non-empty pushes received.
func (m *Model) Pushes() int { return m.pushes }
