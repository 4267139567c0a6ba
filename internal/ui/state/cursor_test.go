package state

import "testing"

func newTestPane(rows ...string) *Pane {
	return NewPane("test", "Test", rows)
}

func TestMoveCursorHome(t *testing.T) {
	p := newTestPane("a", "b", "c")
	p.Cursor = 2
	if !p.MoveCursorHome() {
		t.Fatalf("expected move when rows exist")
	}
	if p.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", p.Cursor)
	}

	empty := newTestPane()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty pane")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	p := newTestPane("a", "b", "c")
	if !p.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if p.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", p.Cursor)
	}
	if newTestPane().MoveCursorEnd() {
		t.Fatalf("expected no movement for empty pane")
	}
}

func TestMoveCursorWraps(t *testing.T) {
	p := newTestPane("a", "b", "c")
	if !p.MoveCursorUp() || p.Cursor != 2 {
		t.Fatalf("expected wrap to last row, got %d", p.Cursor)
	}
	if !p.MoveCursorDown() || p.Cursor != 0 {
		t.Fatalf("expected wrap to first row, got %d", p.Cursor)
	}
	single := newTestPane("only")
	if single.MoveCursorDown() {
		t.Fatalf("expected no movement with a single row")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	p := newTestPane("a", "b", "c", "d", "e")
	if !p.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on first page down")
	}
	if p.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", p.Cursor)
	}
	if !p.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on second page down")
	}
	if p.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", p.Cursor)
	}
	if p.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !p.MoveCursorPageUp(10) {
		t.Fatalf("expected movement back to start")
	}
	if p.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", p.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	p := newTestPane("a", "b", "c", "d", "e")
	p.Cursor = 4
	p.EnsureCursorVisible(2)
	if p.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", p.ViewportOffset)
	}

	p.Cursor = -1
	p.EnsureCursorVisible(2)
	if p.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", p.Cursor)
	}

	p.ViewportOffset = 4
	p.EnsureCursorVisible(0)
	if p.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", p.ViewportOffset)
	}

	p.ViewportOffset = 4
	p.Cursor = 1
	p.EnsureCursorVisible(3)
	if p.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", p.ViewportOffset)
	}
}

func TestVisibleWindow(t *testing.T) {
	p := newTestPane("a", "b", "c", "d", "e")
	p.Cursor = 3
	rows, start := p.Visible(2)
	if start != 2 || len(rows) != 2 || rows[1] != "d" {
		t.Fatalf("unexpected window %v from %d", rows, start)
	}
	rows, start = p.Visible(10)
	if start != 0 || len(rows) != 5 {
		t.Fatalf("expected every row, got %v from %d", rows, start)
	}
}

func TestSetRowsKeepsCursorOnLabel(t *testing.T) {
	p := newTestPane("a", "b", "c")
	p.Cursor = 1
	p.SetRows([]string{"x", "b"})
	if p.Cursor != 1 {
		t.Fatalf("expected cursor to follow b, got %d", p.Cursor)
	}
	p.SetRows([]string{"c", "d", "e"})
	if p.Cursor != 1 {
		t.Fatalf("expected cursor to stay in range, got %d", p.Cursor)
	}
	p.Cursor = 2
	p.SetRows([]string{"z"})
	if p.Cursor != 0 {
		t.Fatalf("expected cursor clamped, got %d", p.Cursor)
	}
	p.SetRows(nil)
	if _, ok := p.Current(); ok {
		t.Fatalf("expected no current row for empty pane")
	}
}
