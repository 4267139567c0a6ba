package ui

import (
	"reflect"
	"testing"

	"github.com/atomicstack/popup-select/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

func TestTypingFiltersAndPreHighlights(t *testing.T) {
	m := newCrossModel(t, "banana", "apple", "avocado")
	h := NewHarness(m)
	h.Type("^a")
	p := m.panes[widget.Available]
	if p.Query != "^a" || p.QueryCursorPos() != 2 {
		t.Fatalf("unexpected query state %q/%d", p.Query, p.QueryCursorPos())
	}
	if got := m.cross.Highlighted(widget.Available); !reflect.DeepEqual(got, []string{"apple", "avocado"}) {
		t.Fatalf("expected apple and avocado highlighted, got %v", got)
	}
	if got := p.Rows; len(got) != 3 {
		t.Fatalf("expected all rows still shown, got %v", got)
	}
	if p.Cursor != 1 {
		t.Fatalf("expected cursor on first match, got %d", p.Cursor)
	}
	h.Press(tea.KeyEnter)
	if got := m.cross.Value(); !reflect.DeepEqual(got, []any{"apple", "avocado"}) {
		t.Fatalf("expected matches transferred, got %v", got)
	}
}

func TestBackspaceAndClearQuery(t *testing.T) {
	m := newCrossModel(t, "abc", "xyz")
	h := NewHarness(m)
	h.Type("xy")
	h.Press(tea.KeyBackspace)
	if got := m.cross.Query(widget.Available); got != "x" {
		t.Fatalf("expected widget query x, got %q", got)
	}
	if got := m.cross.Highlighted(widget.Available); !reflect.DeepEqual(got, []string{"xyz"}) {
		t.Fatalf("expected xyz highlighted, got %v", got)
	}
	h.Press(tea.KeyCtrlU)
	if m.panes[widget.Available].Query != "" {
		t.Fatalf("expected query cleared")
	}
	if len(m.cross.Highlighted(widget.Available)) != 0 {
		t.Fatalf("expected highlights cleared with the query")
	}
}

func TestQueryCaretMovement(t *testing.T) {
	m := newCrossModel(t, "a")
	h := NewHarness(m)
	h.Type("abc")
	h.Press(tea.KeyLeft, tea.KeyLeft)
	p := m.panes[widget.Available]
	if p.QueryCursorPos() != 1 {
		t.Fatalf("expected caret at 1, got %d", p.QueryCursorPos())
	}
	h.Type("z")
	if p.Query != "azbc" {
		t.Fatalf("expected insert at caret, got %q", p.Query)
	}
	h.Press(tea.KeyCtrlE)
	if p.QueryCursorPos() != 4 {
		t.Fatalf("expected caret at end, got %d", p.QueryCursorPos())
	}
}

func TestQueriesArePerPane(t *testing.T) {
	m := newCrossModel(t, "a", "b")
	h := NewHarness(m)
	h.Type("a")
	h.Press(tea.KeyTab)
	h.Type("q")
	if m.panes[widget.Available].Query != "a" || m.panes[widget.Selected].Query != "q" {
		t.Fatalf("expected separate queries, got %q / %q", m.panes[widget.Available].Query, m.panes[widget.Selected].Query)
	}
}

func TestGroupTypingJumpsToMatch(t *testing.T) {
	m := newGroupModel(t, widget.StyleBox, widget.BehaviorCheck, "red", "green", "blue")
	h := NewHarness(m)
	h.Type("bl")
	if m.panes[0].Cursor != 2 {
		t.Fatalf("expected cursor on blue, got %d", m.panes[0].Cursor)
	}
	if len(m.Result().Values) != 0 {
		t.Fatalf("expected typing not to change the value")
	}
}
