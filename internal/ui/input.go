package ui

import (
	"unicode"

	"github.com/atomicstack/popup-select/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(p *pane, before int) {
	if p == nil {
		return
	}
	if before != p.QueryCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput edits the query of the focused pane. Space is left to the
// toggle handler.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.focusedPane()
	if current == nil {
		return false, nil
	}
	edit := func(change func() bool, requery bool) (bool, tea.Cmd) {
		before := current.QueryCursorPos()
		if !change() {
			return false, nil
		}
		m.noteFilterCursorChange(current, before)
		if requery {
			m.applyQuery()
		}
		return true, nil
	}
	switch msg.String() {
	case "ctrl+u":
		if current.Query == "" {
			return false, nil
		}
		m.clearQuery()
		return true, nil
	case "ctrl+w":
		return edit(current.DeleteQueryWordBackward, true)
	case "ctrl+a":
		return edit(current.MoveQueryCursorStart, false)
	case "ctrl+e":
		return edit(current.MoveQueryCursorEnd, false)
	case "alt+b":
		return edit(current.MoveQueryCursorWordBackward, false)
	case "alt+f":
		return edit(current.MoveQueryCursorWordForward, false)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return edit(current.DeleteQueryRuneBackward, true)
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false, nil
			}
		}
		text := string(msg.Runes)
		return edit(func() bool { return current.InsertQueryText(text) }, true)
	case tea.KeyLeft:
		return edit(current.MoveQueryCursorRuneBackward, false)
	case tea.KeyRight:
		return edit(current.MoveQueryCursorRuneForward, false)
	}
	return false, nil
}

// applyQuery pushes the focused pane's query to the widget. A dual list
// filter highlights the matching rows; a group jumps to the best match.
func (m *Model) applyQuery() {
	current := m.focusedPane()
	m.clearMessages()
	if m.mode == ModeGroup {
		current.JumpToQuery()
		current.EnsureCursorVisible(m.maxVisibleRows())
		return
	}
	m.cross.Filter(m.focus, current.Query)
	m.syncPanes()
	if highlighted := m.cross.Highlighted(m.focus); len(highlighted) > 0 && current.Query != "" {
		if idx := current.IndexOf(highlighted[0]); idx >= 0 {
			current.Cursor = idx
			current.EnsureCursorVisible(m.maxVisibleRows())
		}
	}
}

func (m *Model) clearQuery() {
	current := m.focusedPane()
	before := current.QueryCursorPos()
	current.SetQuery("", 0)
	m.noteFilterCursorChange(current, before)
	m.applyQuery()
}

// resetQueries drops every query, used after the options were replaced.
func (m *Model) resetQueries() {
	for i, p := range m.panes {
		if p == nil {
			continue
		}
		p.SetQuery("", 0)
		if m.mode == ModeCross {
			m.cross.Filter(widget.Side(i), "")
		}
	}
}

func (m *Model) filterPrompt(p *pane, focused bool, placeholder string) string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if !focused {
		if p.Query == "" {
			return prompt + render(styles.FilterPlaceholder, placeholder)
		}
		return prompt + render(styles.Filter, p.Query)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	if p.Query == "" {
		runes := []rune(placeholder)
		var caretRune, rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		return prompt + m.renderFilterCursor(caretRune) + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(p.Query)
	pos := p.QueryCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}

	return base.Reverse(true).Render(char)
}
