package backend

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atomicstack/popup-select/internal/options"
	"github.com/atomicstack/popup-select/internal/testutil"
)

func TestWatcherEmitsFirstFetchImmediately(t *testing.T) {
	var calls atomic.Int32
	w := NewWatcher("fake", time.Hour, func(ctx context.Context) (options.Options, error) {
		calls.Add(1)
		return options.Strings("a", "b"), nil
	})
	defer w.Stop()

	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected error %v", evt.Err)
		}
		if evt.Source != "fake" {
			t.Fatalf("expected source fake, got %q", evt.Source)
		}
		if evt.Options.Len() != 2 {
			t.Fatalf("expected 2 options, got %d", evt.Options.Len())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for first event")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one fetch, got %d", calls.Load())
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	w := NewWatcher("fake", 10*time.Millisecond, func(ctx context.Context) (options.Options, error) {
		return options.Options{}, errors.New("boom")
	})
	evt := <-w.Events()
	if evt.Err == nil {
		t.Fatal("expected fetch error to be forwarded")
	}
	w.Stop()
	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed after Stop")
	}
}

func TestFileFetchLoadsYAML(t *testing.T) {
	path := testutil.WriteFile(t, "opts.yaml", "- red\n- green\n")
	opts, err := FileFetch(path)(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got := options.NewTable(opts).Labels(); !reflect.DeepEqual(got, []string{"red", "green"}) {
		t.Fatalf("unexpected labels %v", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FileFetch(path)(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancelled fetch, got %v", err)
	}
}

func TestWatcherClampsInterval(t *testing.T) {
	noop := func(ctx context.Context) (options.Options, error) { return options.Strings(), nil }
	cases := []struct {
		in, want time.Duration
	}{
		{0, time.Second},
		{-time.Second, time.Second},
		{time.Millisecond, minFetchGap},
		{2 * time.Second, 2 * time.Second},
	}
	for _, tc := range cases {
		w := NewWatcher("fake", tc.in, noop)
		w.Stop()
		w.Wait()
		if w.interval != tc.want {
			t.Fatalf("interval %v: expected %v, got %v", tc.in, tc.want, w.interval)
		}
	}
}

func TestFileWatcherPicksUpEdits(t *testing.T) {
	path := testutil.WriteFile(t, "opts.yaml", "- a\n")
	w := NewFileWatcher(path, 20*time.Millisecond)
	defer w.Stop()
	next := func() Event {
		t.Helper()
		select {
		case evt := <-w.Events():
			return evt
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for an event")
		}
		return Event{}
	}
	if evt := next(); evt.Err != nil || evt.Source != path {
		t.Fatalf("unexpected first event %+v", evt)
	}
	testutil.Rewrite(t, path, "- a\n- b\n")
	for {
		evt := next()
		if evt.Err != nil {
			t.Fatalf("unexpected error %v", evt.Err)
		}
		if evt.Options.Len() == 2 {
			return
		}
	}
}
