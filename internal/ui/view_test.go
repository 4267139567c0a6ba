package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/popup-select/internal/options"
	"github.com/atomicstack/popup-select/internal/widget"
)

func TestViewShowsBothLists(t *testing.T) {
	cross := widget.NewCrossSelector(
		widget.WithOptions(options.Strings("apple", "banana", "cherry")),
		widget.WithValue([]string{"banana"}),
	)
	m := NewCrossModel(cross, Settings{Title: "fruit", ShowFooter: true})
	view := m.View()
	for _, want := range []string{"fruit", "Available (2)", "Selected (1)", "apple", "banana", "cherry", "Filter selected options", ">>", "<<", "ctrl+s accept"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewMarksHighlightedRows(t *testing.T) {
	m := newCrossModel(t, "one", "two")
	m.cross.Highlight(widget.Available, "two")
	if view := m.View(); !strings.Contains(view, "✓ two") {
		t.Fatalf("expected highlighted row marker, got:\n%s", view)
	}
}

func TestViewTruncatesLongLabels(t *testing.T) {
	cross := widget.NewCrossSelector(widget.WithOptions(options.Strings("a-very-long-option-label")))
	m := NewCrossModel(cross, Settings{Width: 30})
	view := m.View()
	if strings.Contains(view, "a-very-long-option-label") {
		t.Fatalf("expected label truncated, got:\n%s", view)
	}
	if !strings.Contains(view, "…") {
		t.Fatalf("expected ellipsis, got:\n%s", view)
	}
}

func TestViewGroupMarkers(t *testing.T) {
	m := newGroupModel(t, widget.StyleBox, widget.BehaviorRadio, "x", "y")
	view := m.View()
	if !strings.Contains(view, "(•) x") || !strings.Contains(view, "( ) y") {
		t.Fatalf("expected radio markers, got:\n%s", view)
	}
	m = newGroupModel(t, widget.StyleBox, widget.BehaviorCheck, "x")
	if view := m.View(); !strings.Contains(view, "[ ] x") {
		t.Fatalf("expected check marker, got:\n%s", view)
	}
}

func TestViewShowsEmptyLists(t *testing.T) {
	m := newCrossModel(t)
	if view := m.View(); !strings.Contains(view, "(empty)") {
		t.Fatalf("expected empty marker, got:\n%s", view)
	}
}
