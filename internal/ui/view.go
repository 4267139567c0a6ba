package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/popup-select/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth = 80
	gutterWidth  = 4
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.viewWidth()
	lines := []styledLine{{text: m.title, style: styles.Header}}
	body := ""
	switch m.mode {
	case ModeCross:
		body = m.viewCross(width)
	case ModeGroup:
		body = renderLines(applyWidth(m.groupLines(width), width))
	}
	tail := make([]styledLine, 0, 6)
	if m.infoMsg != "" {
		tail = append(tail, styledLine{}, styledLine{text: m.infoMsg, style: styles.Info})
	}
	if m.showFooter {
		tail = append(tail, styledLine{}, styledLine{text: m.footerText(), style: styles.Footer})
	}
	var status styledLine
	if msg := m.statusText(); msg != "" {
		status = styledLine{text: msg, style: styles.Error}
	}
	tail = append(tail, status)

	return renderLines(applyWidth(lines, width)) + "\n" + body + "\n" + renderLines(applyWidth(tail, width))
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) statusText() string {
	if m.errMsg != "" {
		return "Error: " + m.errMsg
	}
	if m.backendLastErr != "" {
		return "Reload failed: " + m.backendLastErr
	}
	return ""
}

func (m *Model) footerText() string {
	if m.mode == ModeGroup {
		return "↑/↓ move  space toggle  enter accept  type to jump  esc cancel"
	}
	return "↑/↓ move  space mark  enter move  tab switch  ctrl+s accept  esc cancel"
}

// viewCross renders the two lists side by side with the transfer gutter
// between them.
func (m *Model) viewCross(width int) string {
	colWidth := (width - gutterWidth) / 2
	if colWidth < 8 {
		colWidth = 8
	}
	left := m.paneColumn(widget.Available, colWidth)
	right := m.paneColumn(widget.Selected, colWidth)
	gutter := make([]string, len(left))
	for i := range gutter {
		gutter[i] = strings.Repeat(" ", gutterWidth)
	}
	if len(gutter) > 2 {
		gutter[2] = renderLines([]styledLine{{text: " >> ", style: styles.Gutter}})
	}
	if len(gutter) > 3 {
		gutter[3] = renderLines([]styledLine{{text: " << ", style: styles.Gutter}})
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(left, "\n"),
		strings.Join(gutter, "\n"),
		strings.Join(right, "\n"),
	)
}

func (m *Model) paneColumn(side widget.Side, width int) []string {
	p := m.panes[side]
	focused := m.focus == side
	titleStyle := styles.Header
	if !focused {
		titleStyle = styles.PaneTitle
	}
	title := fmt.Sprintf("%s (%d)", p.Title, len(p.Rows))
	rows := []string{
		renderLines([]styledLine{{text: fitWidth(title, width), style: titleStyle}}),
		fitRendered(m.filterPrompt(p, focused, m.cross.Search(side).Placeholder()), width),
	}
	highlighted := make(map[string]struct{})
	for _, l := range m.cross.Highlighted(side) {
		highlighted[l] = struct{}{}
	}
	visible, start := p.Visible(m.maxVisibleRows())
	if len(visible) == 0 {
		rows = append(rows, renderLines([]styledLine{{text: fitWidth("(empty)", width), style: styles.Info}}))
	}
	for i, label := range visible {
		mark := "  "
		_, marked := highlighted[label]
		if marked {
			mark = "✓ "
		}
		line := m.rowLine(mark+label, focused && start+i == p.Cursor, marked, width)
		rows = append(rows, renderLines([]styledLine{line}))
	}
	for len(rows) < m.maxVisibleRows()+2 {
		rows = append(rows, strings.Repeat(" ", width))
	}
	return rows
}

func (m *Model) groupLines(width int) []styledLine {
	p := m.panes[0]
	lines := []styledLine{{text: m.filterPrompt(p, true, "(type to jump)")}}
	active := make(map[int]struct{})
	for _, i := range m.group.ActiveIndices() {
		active[i] = struct{}{}
	}
	visible, start := p.Visible(m.maxVisibleRows())
	if len(visible) == 0 {
		return append(lines, styledLine{text: "(no options)", style: styles.Info})
	}
	for i, label := range visible {
		idx := start + i
		_, on := active[idx]
		lines = append(lines, m.rowLine(groupMarker(m.group, on)+label, idx == p.Cursor, on, width))
	}
	return lines
}

func groupMarker(g widget.Group, on bool) string {
	switch {
	case g.Style() == widget.StyleButton && on:
		return "■ "
	case g.Style() == widget.StyleButton:
		return "□ "
	case g.Behavior() == widget.BehaviorRadio && on:
		return "(•) "
	case g.Behavior() == widget.BehaviorRadio:
		return "( ) "
	case on:
		return "[x] "
	default:
		return "[ ] "
	}
}

// rowLine builds one list row. The cursor row is drawn with the selected
// style across the full width.
func (m *Model) rowLine(label string, isCursor, marked bool, width int) styledLine {
	indicatorStyle := styles.ItemIndicator
	lineStyle := styles.Item
	if marked {
		lineStyle = styles.Marked
	}
	if isCursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	return styledLine{
		text:          fitWidth("▌ "+label, width),
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncPanes()
	return nil
}

// maxVisibleRows is the number of list rows that fit. In a dual list the
// sub-list size caps it.
func (m *Model) maxVisibleRows() int {
	limit := -1
	if m.mode == ModeCross && m.cross != nil {
		if size, ok := m.cross.List(widget.Available).Get(widget.AttrSize).(int); ok && size > 0 {
			limit = size
		}
	}
	if m.height <= 0 {
		return limit
	}
	used := 3 // title, pane header or prompt, status
	if m.mode == ModeCross {
		used++
	}
	if m.infoMsg != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		remain = 1
	}
	if limit > 0 && limit < remain {
		return limit
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
}

func (m *Model) clearMessages() {
	m.infoMsg = ""
	m.errMsg = ""
}

// fitWidth pads or truncates plain text to exactly width columns.
func fitWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) > width {
		text = truncate.StringWithTail(text, uint(width-1), "…")
	}
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

// fitRendered is fitWidth for text that already carries ANSI styling.
func fitRendered(text string, width int) string {
	if lipgloss.Width(text) > width {
		text = truncate.StringWithTail(text, uint(width-1), "…")
	}
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.style == nil && line.prefixStyle == nil {
			text = fitRendered(text, width)
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
