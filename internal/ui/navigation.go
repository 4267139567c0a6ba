package ui

import (
	"fmt"

	"github.com/atomicstack/popup-select/internal/logging/events"
	"github.com/atomicstack/popup-select/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.UI.Key(m.focusName(), keyMsg.String())
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	if isSpaceKey(keyMsg) {
		m.toggleCurrent()
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return m.cancel("interrupt")
	case "esc":
		return m.handleEscapeKey()
	case "up", "ctrl+p":
		m.moveCursor(func(p *pane) bool { return p.MoveCursorUp() })
	case "down", "ctrl+n":
		m.moveCursor(func(p *pane) bool { return p.MoveCursorDown() })
	case "pgup":
		m.moveCursor(func(p *pane) bool { return p.MoveCursorPageUp(m.maxVisibleRows()) })
	case "pgdown":
		m.moveCursor(func(p *pane) bool { return p.MoveCursorPageDown(m.maxVisibleRows()) })
	case "home":
		m.moveCursor(func(p *pane) bool { return p.MoveCursorHome() })
	case "end":
		m.moveCursor(func(p *pane) bool { return p.MoveCursorEnd() })
	case "tab", "shift+tab":
		m.switchFocus()
	case "enter":
		return m.handleEnterKey()
	case "ctrl+s":
		return m.accept()
	}
	return nil
}

func isSpaceKey(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeySpace {
		return true
	}
	return msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 && msg.Runes[0] == ' '
}

func (m *Model) focusName() string {
	if m.mode == ModeGroup {
		return "group"
	}
	return m.focus.String()
}

func (m *Model) moveCursor(move func(*pane) bool) {
	p := m.focusedPane()
	if p == nil || !move(p) {
		return
	}
	p.EnsureCursorVisible(m.maxVisibleRows())
}

func (m *Model) switchFocus() {
	if m.mode != ModeCross {
		return
	}
	from := m.focus
	m.focus = m.focus.Other()
	m.filterCursorDirty = true
	events.UI.Focus(from.String(), m.focus.String())
}

// toggleCurrent flips the row under the cursor: its highlight in a dual
// list, its active state in a group.
func (m *Model) toggleCurrent() {
	p := m.focusedPane()
	label, ok := p.Current()
	if !ok {
		return
	}
	switch m.mode {
	case ModeCross:
		current := m.cross.Highlighted(m.focus)
		next := make([]string, 0, len(current)+1)
		found := false
		for _, l := range current {
			if l == label {
				found = true
				continue
			}
			next = append(next, l)
		}
		if !found {
			next = append(next, label)
		}
		m.cross.Highlight(m.focus, next...)
	case ModeGroup:
		m.group.Toggle(p.Cursor)
	}
	m.clearMessages()
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.mode == ModeGroup {
		return m.accept()
	}
	m.transferFocused()
	return nil
}

// transferFocused moves the highlighted rows of the focused list to the other
// list. Without highlights the row under the cursor moves.
func (m *Model) transferFocused() {
	p := m.focusedPane()
	if len(m.cross.Highlighted(m.focus)) == 0 {
		label, ok := p.Current()
		if !ok {
			return
		}
		m.cross.Highlight(m.focus, label)
	}
	moved := len(m.cross.Highlighted(m.focus))
	target := m.focus.Other()
	m.cross.Transfer(target)
	m.syncPanes()
	if m.cross.Get(widget.AttrDisabled) == true {
		m.setInfo("selection is disabled")
		return
	}
	m.setInfo(fmt.Sprintf("moved %d to %s", moved, target))
}

func (m *Model) handleEscapeKey() tea.Cmd {
	p := m.focusedPane()
	if p != nil && p.Query != "" {
		m.clearQuery()
		return nil
	}
	return m.cancel("escape")
}

func (m *Model) accept() tea.Cmd {
	m.accepted = true
	m.finished = true
	events.UI.Done(len(m.Result().Values))
	return tea.Quit
}

func (m *Model) cancel(reason string) tea.Cmd {
	m.accepted = false
	m.finished = true
	events.UI.Cancel(reason)
	return tea.Quit
}
