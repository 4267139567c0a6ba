// Package param implements the attribute store widgets are built on: named
// values plus watchers that are notified synchronously when values change.
//
// Dispatch rules:
//   - Watchers run in registration order and only see events for the names
//     they registered for.
//   - Update writes every value of a batch before any watcher runs, so a
//     watcher interested in several names sees one consistent state.
//   - Writes issued from inside a watcher dispatch immediately (nested). A
//     write that does not change the identity of a value is dropped, which
//     keeps self-correcting watchers from looping.
package param

import (
	"github.com/atomicstack/popup-select/internal/identity"
	"github.com/atomicstack/popup-select/internal/logging/events"
)

// MaxDepth bounds nested dispatch triggered by watchers writing values.
const MaxDepth = 32

// Event describes one attribute change.
type Event struct {
	Name string
	Old  any
	New  any
}

// Handler receives the events of one dispatch batch.
type Handler func(events ...Event)

// Change is a pending write used with Update.
type Change struct {
	Name  string
	Value any
}

type watcher struct {
	names   map[string]struct{}
	handler Handler
}

// Params is a named attribute store with change notification.
type Params struct {
	values   map[string]any
	watchers []watcher
	depth    int
}

// New returns a store seeded with defaults. Seeding does not notify.
func New(defaults map[string]any) *Params {
	p := &Params{values: make(map[string]any, len(defaults))}
	for k, v := range defaults {
		p.values[k] = v
	}
	return p
}

// Get returns the current value of name.
func (p *Params) Get(name string) any {
	return p.values[name]
}

// Has reports whether name has been set.
func (p *Params) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Names returns every attribute name currently held.
func (p *Params) Names() []string {
	names := make([]string, 0, len(p.values))
	for k := range p.values {
		names = append(names, k)
	}
	return names
}

// Init writes a value without notifying watchers. Constructors use it before
// the first synchronisation.
func (p *Params) Init(name string, value any) {
	p.values[name] = value
}

// Watch registers handler for the given names.
func (p *Params) Watch(handler Handler, names ...string) {
	if handler == nil || len(names) == 0 {
		return
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	p.watchers = append(p.watchers, watcher{names: set, handler: handler})
}

// Set writes a single value.
func (p *Params) Set(name string, value any) {
	p.Update(Change{Name: name, Value: value})
}

// Update writes a batch of values and dispatches the resulting events.
func (p *Params) Update(changes ...Change) {
	evts := make([]Event, 0, len(changes))
	for _, c := range changes {
		old, had := p.values[c.Name]
		p.values[c.Name] = c.Value
		if had && identity.Equal(old, c.Value) {
			continue
		}
		evts = append(evts, Event{Name: c.Name, Old: old, New: c.Value})
	}
	p.dispatch(evts)
}

func (p *Params) dispatch(evts []Event) {
	if len(evts) == 0 {
		return
	}
	if p.depth >= MaxDepth {
		names := make([]string, len(evts))
		for i, e := range evts {
			names[i] = e.Name
		}
		events.Param.DepthExceeded(names, p.depth)
		return
	}
	p.depth++
	defer func() { p.depth-- }()
	// Watchers registered during dispatch are not called for this batch.
	watchers := p.watchers
	for _, w := range watchers {
		matched := make([]Event, 0, len(evts))
		for _, e := range evts {
			if _, ok := w.names[e.Name]; ok {
				matched = append(matched, e)
			}
		}
		if len(matched) > 0 {
			w.handler(matched...)
		}
	}
}
