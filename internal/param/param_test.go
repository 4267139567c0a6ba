package param

import (
	"reflect"
	"testing"
)

func TestWatchersRunInRegistrationOrder(t *testing.T) {
	p := New(map[string]any{"a": 0})
	var order []string
	p.Watch(func(evts ...Event) { order = append(order, "first") }, "a")
	p.Watch(func(evts ...Event) { order = append(order, "second") }, "a")
	p.Set("a", 1)
	if !reflect.DeepEqual(order, []string{"first", "second"}) {
		t.Fatalf("unexpected order %v", order)
	}
}

func TestWatchersOnlySeeTheirNames(t *testing.T) {
	p := New(nil)
	var seen []string
	p.Watch(func(evts ...Event) {
		for _, e := range evts {
			seen = append(seen, e.Name)
		}
	}, "value")
	p.Update(Change{"options", 1}, Change{"value", 2})
	if !reflect.DeepEqual(seen, []string{"value"}) {
		t.Fatalf("expected only value events, got %v", seen)
	}
}

func TestBatchWritesBeforeDispatch(t *testing.T) {
	p := New(map[string]any{"options": "old", "value": "old"})
	var observed any
	p.Watch(func(evts ...Event) { observed = p.Get("value") }, "options")
	p.Update(Change{"options", "new"}, Change{"value", "new"})
	if observed != "new" {
		t.Fatalf("expected batch values visible during dispatch, got %v", observed)
	}
}

func TestUnchangedWriteIsDropped(t *testing.T) {
	p := New(map[string]any{"v": []any{"a"}})
	calls := 0
	p.Watch(func(evts ...Event) { calls++ }, "v")
	p.Set("v", []any{"a"})
	if calls != 0 {
		t.Fatalf("expected no dispatch for identical value, got %d", calls)
	}
	p.Set("v", []any{"b"})
	if calls != 1 {
		t.Fatalf("expected one dispatch, got %d", calls)
	}
}

func TestNestedCorrectiveWriteSettles(t *testing.T) {
	p := New(map[string]any{"v": 0})
	var seen []any
	p.Watch(func(evts ...Event) {
		v := evts[0].New.(int)
		seen = append(seen, v)
		if v < 0 {
			p.Set("v", 0)
		}
	}, "v")
	p.Set("v", -5)
	if p.Get("v") != 0 {
		t.Fatalf("expected corrected value 0, got %v", p.Get("v"))
	}
	if !reflect.DeepEqual(seen, []any{-5, 0}) {
		t.Fatalf("expected nested dispatch of correction, got %v", seen)
	}
}

func TestDepthGuardStopsRunaway(t *testing.T) {
	p := New(map[string]any{"n": 0})
	calls := 0
	p.Watch(func(evts ...Event) {
		calls++
		p.Set("n", evts[0].New.(int)+1)
	}, "n")
	p.Set("n", 1)
	if calls != MaxDepth {
		t.Fatalf("expected dispatch to stop at %d, got %d", MaxDepth, calls)
	}
}

func TestInitDoesNotNotify(t *testing.T) {
	p := New(nil)
	calls := 0
	p.Watch(func(evts ...Event) { calls++ }, "x")
	p.Init("x", 1)
	if calls != 0 || p.Get("x") != 1 || !p.Has("x") {
		t.Fatalf("unexpected init behaviour: calls=%d value=%v", calls, p.Get("x"))
	}
	p.Set("x", 2)
	if calls != 1 {
		t.Fatalf("expected a later write to dispatch, got %d", calls)
	}
}
