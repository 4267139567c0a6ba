package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetQuery updates the query text and the caret position.
func (p *Pane) SetQuery(query string, cursor int) {
	p.Query = query
	runes := []rune(p.Query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	p.QueryCursor = cursor
}

// QueryCursorPos returns the rune offset of the query caret.
func (p *Pane) QueryCursorPos() int {
	runes := []rune(p.Query)
	if p.QueryCursor < 0 {
		return 0
	}
	if p.QueryCursor > len(runes) {
		return len(runes)
	}
	return p.QueryCursor
}

// InsertQueryText inserts text at the caret.
func (p *Pane) InsertQueryText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(p.Query)
	pos := p.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	p.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteQueryRuneBackward deletes the rune before the caret.
func (p *Pane) DeleteQueryRuneBackward() bool {
	runes := []rune(p.Query)
	pos := p.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	p.SetQuery(string(updated), pos-1)
	return true
}

// DeleteQueryWordBackward deletes the word preceding the caret.
func (p *Pane) DeleteQueryWordBackward() bool {
	runes := []rune(p.Query)
	pos := p.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	p.SetQuery(string(updated), i)
	return true
}

// MoveQueryCursorStart moves the caret to the start.
func (p *Pane) MoveQueryCursorStart() bool {
	if p.QueryCursorPos() == 0 {
		return false
	}
	p.QueryCursor = 0
	return true
}

// MoveQueryCursorEnd moves the caret to the end.
func (p *Pane) MoveQueryCursorEnd() bool {
	end := len([]rune(p.Query))
	if p.QueryCursorPos() == end {
		return false
	}
	p.QueryCursor = end
	return true
}

// MoveQueryCursorWordBackward moves the caret one word backward.
func (p *Pane) MoveQueryCursorWordBackward() bool {
	runes := []rune(p.Query)
	pos := p.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	p.QueryCursor = i
	return true
}

// MoveQueryCursorWordForward moves the caret one word forward.
func (p *Pane) MoveQueryCursorWordForward() bool {
	runes := []rune(p.Query)
	pos := p.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	p.QueryCursor = i
	return true
}

// MoveQueryCursorRuneBackward moves the caret one rune backward.
func (p *Pane) MoveQueryCursorRuneBackward() bool {
	if p.QueryCursorPos() == 0 {
		return false
	}
	p.QueryCursor = p.QueryCursorPos() - 1
	return true
}

// MoveQueryCursorRuneForward moves the caret one rune forward.
func (p *Pane) MoveQueryCursorRuneForward() bool {
	pos := p.QueryCursorPos()
	if pos >= len([]rune(p.Query)) {
		return false
	}
	p.QueryCursor = pos + 1
	return true
}

// JumpToQuery moves the cursor to the row best matching the query.
func (p *Pane) JumpToQuery() bool {
	idx := BestMatchIndex(p.Rows, p.Query)
	if idx < 0 || idx == p.Cursor {
		return false
	}
	p.Cursor = idx
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// BestMatchIndex returns the best row for the query: an exact match, then a
// prefix, then a substring, then the closest fuzzy match. An empty query or
// no match at all selects the first row.
func BestMatchIndex(rows []string, query string) int {
	if len(rows) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, row := range rows {
		if strings.EqualFold(row, trimmed) {
			return i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row), lower) {
			return i
		}
	}
	for i, row := range rows {
		if strings.Contains(strings.ToLower(row), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, rows)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
