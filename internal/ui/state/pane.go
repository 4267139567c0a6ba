package state

// Pane tracks the terminal-side state of one list: the rows on screen, the
// cursor, the viewport and the query being typed into it. Rows are owned by
// the widget the pane renders; the pane only follows them.
type Pane struct {
	ID             string
	Title          string
	Rows           []string
	Cursor         int
	ViewportOffset int
	Query          string
	QueryCursor    int
}

// NewPane constructs a Pane showing rows.
func NewPane(id, title string, rows []string) *Pane {
	p := &Pane{ID: id, Title: title}
	p.SetRows(rows)
	return p
}

// IndexOf returns the row index of label, or -1.
func (p *Pane) IndexOf(label string) int {
	for i, row := range p.Rows {
		if row == label {
			return i
		}
	}
	return -1
}

// Current returns the row under the cursor.
func (p *Pane) Current() (string, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Rows) {
		return "", false
	}
	return p.Rows[p.Cursor], true
}

// SetRows replaces the rows. The cursor stays on the same label when it is
// still present, otherwise it is clamped to the new rows.
func (p *Pane) SetRows(rows []string) {
	current, hadCurrent := p.Current()
	p.Rows = append([]string(nil), rows...)
	if len(p.Rows) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if hadCurrent {
		if idx := p.IndexOf(current); idx >= 0 {
			p.Cursor = idx
		}
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Rows) {
		p.Cursor = len(p.Rows) - 1
	}
	if p.ViewportOffset > len(p.Rows)-1 {
		p.ViewportOffset = 0
	}
}
