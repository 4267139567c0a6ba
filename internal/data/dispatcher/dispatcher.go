// Package dispatcher applies option reloads to the widget on screen.
package dispatcher

import (
	"github.com/atomicstack/popup-select/internal/backend"
	"github.com/atomicstack/popup-select/internal/identity"
	"github.com/atomicstack/popup-select/internal/logging/events"
	"github.com/atomicstack/popup-select/internal/options"
)

// Target is a widget whose options can be replaced.
type Target interface {
	Options() options.Options
	SetOptions(options.Options)
}

type Result struct {
	OptionsUpdated bool
	Count          int
	Err            error
}

type Dispatcher struct {
	target Target
}

func New(target Target) *Dispatcher {
	return &Dispatcher{target: target}
}

// Handle applies evt to the target. Reloads that produce the same options
// leave the widget untouched so its value survives.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		events.Options.ReloadError(evt.Source, evt.Err)
		res.Err = evt.Err
		return res
	}
	if d.target == nil {
		return res
	}
	if identity.Equal(d.target.Options(), evt.Options) {
		return res
	}
	d.target.SetOptions(evt.Options)
	res.OptionsUpdated = true
	res.Count = evt.Options.Len()
	events.Options.Reload(evt.Source, res.Count)
	return res
}
