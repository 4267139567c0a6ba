package ui

import (
	"reflect"

	"github.com/atomicstack/popup-select/internal/backend"
	"github.com/atomicstack/popup-select/internal/data/dispatcher"
	"github.com/atomicstack/popup-select/internal/theme"
	uistate "github.com/atomicstack/popup-select/internal/ui/state"
	"github.com/atomicstack/popup-select/internal/widget"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type pane = uistate.Pane

type Mode int

const (
	ModeCross Mode = iota
	ModeGroup
)

const defaultTitle = "select"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Settings configures a Model.
type Settings struct {
	Title      string
	Width      int
	Height     int
	ShowFooter bool
	Watcher    *backend.Watcher
}

// Result is the outcome of a session.
type Result struct {
	Accepted bool
	Labels   []string
	Values   []any
}

// Model implements the Bubble Tea model for the selection popup.
type Model struct {
	mode  Mode
	cross *widget.CrossSelector
	group widget.Group
	panes [2]*pane
	focus widget.Side

	title       string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	errMsg         string
	infoMsg        string
	backend        *backend.Watcher
	backendLastErr string
	dispatcher     *dispatcher.Dispatcher

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	accepted bool
	finished bool
}

// NewCrossModel renders a dual list selector.
func NewCrossModel(cross *widget.CrossSelector, settings Settings) *Model {
	m := newModel(ModeCross, settings)
	m.cross = cross
	m.panes[widget.Available] = uistate.NewPane("available", "Available", nil)
	m.panes[widget.Selected] = uistate.NewPane("selected", "Selected", nil)
	m.dispatcher = dispatcher.New(cross)
	m.syncPanes()
	return m
}

// NewGroupModel renders a radio or check group.
func NewGroupModel(group widget.Group, settings Settings) *Model {
	m := newModel(ModeGroup, settings)
	m.group = group
	m.panes[0] = uistate.NewPane("group", string(group.Behavior()), nil)
	m.dispatcher = dispatcher.New(group)
	m.syncPanes()
	return m
}

func newModel(mode Mode, settings Settings) *Model {
	m := &Model{
		mode:       mode,
		title:      settings.Title,
		showFooter: settings.ShowFooter,
		backend:    settings.Watcher,
		focus:      widget.Available,
	}
	if m.title == "" {
		m.title = defaultTitle
	}
	if settings.Width > 0 {
		m.width = settings.Width
		m.fixedWidth = true
	}
	if settings.Height > 0 {
		m.height = settings.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Mode reports which widget the model renders.
func (m *Model) Mode() Mode { return m.mode }

// Finished reports whether the session has ended.
func (m *Model) Finished() bool { return m.finished }

// Result returns the selection. Accepted is false when the user cancelled.
func (m *Model) Result() Result {
	res := Result{Accepted: m.accepted}
	switch m.mode {
	case ModeCross:
		res.Labels = m.cross.List(widget.Selected).Labels()
		res.Values = m.cross.Value()
	case ModeGroup:
		labels := m.group.Labels()
		for _, i := range m.group.ActiveIndices() {
			if i >= 0 && i < len(labels) {
				res.Labels = append(res.Labels, labels[i])
			}
		}
		res.Values = m.group.Selection()
	}
	return res
}

// syncPanes re-reads the rows each pane shows from the widget.
func (m *Model) syncPanes() {
	switch m.mode {
	case ModeCross:
		for _, side := range []widget.Side{widget.Available, widget.Selected} {
			m.panes[side].SetRows(m.cross.List(side).Labels())
		}
	case ModeGroup:
		m.panes[0].SetRows(m.group.Labels())
	}
	for _, p := range m.panes {
		if p != nil {
			p.EnsureCursorVisible(m.maxVisibleRows())
		}
	}
}

func (m *Model) focusedPane() *pane {
	if m.mode == ModeGroup {
		return m.panes[0]
	}
	return m.panes[m.focus]
}
