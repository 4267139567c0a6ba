package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/popup-select/internal/options"
)

// minFetchGap is the shortest poll interval a watcher accepts.
const minFetchGap = 250 * time.Millisecond

// Event conveys a freshly loaded option set or the error of one poll.
type Event struct {
	Source  string
	Options options.Options
	Err     error
}

// FetchFunc loads the current option set.
type FetchFunc func(ctx context.Context) (options.Options, error)

// Watcher polls an option source at a fixed interval and publishes events.
type Watcher struct {
	source   string
	interval time.Duration
	fetch    FetchFunc

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that calls fetch every interval. The first
// fetch happens immediately. Intervals below minFetchGap are raised to it.
func NewWatcher(source string, interval time.Duration, fetch FetchFunc) *Watcher {
	switch {
	case interval <= 0:
		interval = time.Second
	case interval < minFetchGap:
		interval = minFetchGap
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:   source,
		interval: interval,
		fetch:    fetch,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// NewFileWatcher polls the option file at path.
func NewFileWatcher(path string, interval time.Duration) *Watcher {
	return NewWatcher(path, interval, FileFetch(path))
}

// FileFetch reads options from a YAML file.
func FileFetch(path string) FetchFunc {
	return func(ctx context.Context) (options.Options, error) {
		if err := ctx.Err(); err != nil {
			return options.Options{}, err
		}
		return options.LoadFile(path)
	}
}

// Events returns a channel of watcher events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Source names what the watcher polls.
func (w *Watcher) Source() string { return w.source }

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startPoller() {
	w.wg.Add(1)
	go w.poll(w.fetch)
}

func (w *Watcher) poll(fetch FetchFunc) {
	defer w.wg.Done()

	emit := func() bool {
		opts, err := fetch(w.ctx)
		evt := Event{Source: w.source, Options: opts, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
