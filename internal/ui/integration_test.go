package ui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/popup-select/internal/backend"
	"github.com/atomicstack/popup-select/internal/options"
	"github.com/atomicstack/popup-select/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

func TestBackendReloadResetsCrossSelector(t *testing.T) {
	m := newCrossModel(t, "a", "b")
	h := NewHarness(m)
	h.Press(tea.KeyEnter)
	h.Type("b")
	if len(m.cross.Value()) != 1 {
		t.Fatalf("expected one selected value before reload")
	}

	h.Send(backendEventMsg{event: backend.Event{Source: "opts.yaml", Options: options.Strings("x", "y", "z")}})
	if got := m.panes[widget.Available].Rows; !reflect.DeepEqual(got, []string{"x", "y", "z"}) {
		t.Fatalf("expected reloaded rows, got %v", got)
	}
	if len(m.cross.Value()) != 0 {
		t.Fatalf("expected value reset by reload, got %v", m.cross.Value())
	}
	if m.panes[widget.Available].Query != "" {
		t.Fatalf("expected queries dropped on reload")
	}
	if !strings.Contains(h.View(), "reloaded 3 options from opts.yaml") {
		t.Fatalf("expected reload notice, got:\n%s", h.View())
	}
}

func TestBackendReloadKeepsGroupValue(t *testing.T) {
	m := newGroupModel(t, widget.StyleButton, widget.BehaviorCheck, "a", "b")
	h := NewHarness(m)
	h.Press(tea.KeyDown)
	h.Type(" ")
	h.Send(backendEventMsg{event: backend.Event{Options: options.Strings("b", "c")}})
	if got := m.Result().Values; !reflect.DeepEqual(got, []any{"b"}) {
		t.Fatalf("expected b to survive the reload, got %v", got)
	}
	if got := m.panes[0].Rows; !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("expected rows [b c], got %v", got)
	}
}

func TestBackendErrorShownInStatus(t *testing.T) {
	m := newCrossModel(t, "a")
	h := NewHarness(m)
	h.Send(backendEventMsg{event: backend.Event{Err: errors.New("boom")}})
	if !strings.Contains(h.View(), "Reload failed: boom") {
		t.Fatalf("expected reload error, got:\n%s", h.View())
	}
	h.Send(backendEventMsg{event: backend.Event{Options: options.Strings("a")}})
	if strings.Contains(h.View(), "Reload failed") {
		t.Fatalf("expected error cleared after a good reload")
	}
	h.Send(backendDoneMsg{})
	if m.backend != nil {
		t.Fatalf("expected backend cleared when done")
	}
}
