package state

// MoveCursorUp moves the cursor one row up, wrapping to the last row.
func (p *Pane) MoveCursorUp() bool {
	if len(p.Rows) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor--
	if p.Cursor < 0 {
		p.Cursor = len(p.Rows) - 1
	}
	return old != p.Cursor
}

// MoveCursorDown moves the cursor one row down, wrapping to the first row.
func (p *Pane) MoveCursorDown() bool {
	if len(p.Rows) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor++
	if p.Cursor >= len(p.Rows) {
		p.Cursor = 0
	}
	return old != p.Cursor
}

// MoveCursorHome moves the cursor to the first row.
func (p *Pane) MoveCursorHome() bool {
	if len(p.Rows) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = 0
	return old != p.Cursor
}

// MoveCursorEnd moves the cursor to the last row.
func (p *Pane) MoveCursorEnd() bool {
	n := len(p.Rows)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = n - 1
	return old != p.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (p *Pane) MoveCursorPageUp(maxVisible int) bool {
	return p.moveCursorBy(-p.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (p *Pane) MoveCursorPageDown(maxVisible int) bool {
	return p.moveCursorBy(p.pageSize(maxVisible))
}

func (p *Pane) moveCursorBy(delta int) bool {
	if len(p.Rows) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	p.Cursor += delta
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Rows) {
		p.Cursor = len(p.Rows) - 1
	}
	return p.Cursor != old
}

func (p *Pane) pageSize(maxVisible int) int {
	total := len(p.Rows)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (p *Pane) EnsureCursorVisible(maxVisible int) {
	if len(p.Rows) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Rows) {
		p.Cursor = len(p.Rows) - 1
	}
	if maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := len(p.Rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.ViewportOffset > maxOffset {
		p.ViewportOffset = maxOffset
	}
	if p.ViewportOffset < 0 {
		p.ViewportOffset = 0
	}
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	if upper := p.ViewportOffset + maxVisible - 1; p.Cursor > upper {
		p.ViewportOffset = p.Cursor - maxVisible + 1
	}
}

// Visible returns the window of rows shown for maxVisible lines and the index
// of its first row.
func (p *Pane) Visible(maxVisible int) ([]string, int) {
	p.EnsureCursorVisible(maxVisible)
	if maxVisible <= 0 || len(p.Rows) <= maxVisible {
		return p.Rows, 0
	}
	start := p.ViewportOffset
	return p.Rows[start : start+maxVisible], start
}
