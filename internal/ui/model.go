package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/anchored-popup/internal/logging/events"
	"github.com/atomicstack/anchored-popup/internal/popup"
	"github.com/atomicstack/anchored-popup/internal/theme"
	"github.com/atomicstack/anchored-popup/internal/tracking"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// bodyTop is the first row of the anchor grid, below the title and filter.
const bodyTop = 3

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the demo host.
type Options struct {
	// Width and Height pin the canvas size; zero follows the terminal.
	Width, Height int
	ShowFooter    bool
	// Popup is the base configuration shared by every anchor's popup.
	Popup   popup.Config
	Trigger popup.TriggerMode
	Delay   time.Duration
	Poll    time.Duration
}

// Model is the Bubble Tea model hosting a grid of anchored popups.
type Model struct {
	opts Options
	keys KeyMap
	help help.Model

	filter    textinput.Model
	filtering bool

	anchors []*anchor
	visible []int
	focus   int

	tracker *tracking.Tracker

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the anchor grid and one trigger per anchor.
func NewModel(opts Options) *Model {
	if opts.Trigger == "" {
		opts.Trigger = popup.TriggerClick
	}
	ti := textinput.New()
	ti.Prompt = "» "
	ti.Placeholder = "type to filter anchors"
	ti.CharLimit = 64
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	m := &Model{
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		filter:  ti,
		anchors: newAnchors(opts),
		tracker: tracking.New(opts.Poll),
	}
	m.visible = filterAnchors(m.anchors, "")
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.layout()
	m.resizePopups()
	for _, a := range m.anchors {
		m.tracker.Track(a.key, a)
	}
	m.registerHandlers()
	return m
}

// WithClock replaces the time source and scheduler of every timer the model
// owns. Intended for tests.
func (m *Model) WithClock(now func() time.Time, tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd) *Model {
	for _, a := range m.anchors {
		a.trigger.Popup().WithClock(now, tick)
		a.trigger.WithTick(tick)
	}
	m.tracker.WithClock(now, tick)
	return m
}

// Init starts the anchor tracker.
func (m *Model) Init() tea.Cmd {
	return m.tracker.Start()
}

// Update responds to Bubble Tea messages. Messages without a dedicated
// handler belong to popups and triggers and are broadcast to all of them.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	cmds := make([]tea.Cmd, 0, 2)
	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.broadcast(msg))
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tracking.PollMsg{}):  m.handlePollMsg,
		reflect.TypeOf(tracking.MovedMsg{}): m.handleMovedMsg,
		reflect.TypeOf(popup.ClosedMsg{}):   m.handleClosedMsg,
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

func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.anchors))
	for _, a := range m.anchors {
		if cmd := a.trigger.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleClosedMsg(msg tea.Msg) tea.Cmd {
	return m.broadcast(msg)
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	if m.filtering {
		return m.handleFilterKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Left):
		return m.moveFocus(-1)
	case key.Matches(keyMsg, m.keys.Right):
		return m.moveFocus(1)
	case key.Matches(keyMsg, m.keys.Up):
		return m.moveFocus(-gridColumns)
	case key.Matches(keyMsg, m.keys.Down):
		return m.moveFocus(gridColumns)
	case key.Matches(keyMsg, m.keys.Toggle):
		if a := m.focused(); a != nil {
			return a.trigger.Toggle()
		}
	case key.Matches(keyMsg, m.keys.Filter):
		m.filtering = true
		return m.filter.Focus()
	case key.Matches(keyMsg, m.keys.Escape):
		if m.filter.Value() != "" {
			m.filter.Reset()
			return m.applyFilter()
		}
		return m.closeAll()
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		return nil
	case tea.KeyCtrlC:
		return m.quit()
	}
	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, m.applyFilter())
}

// handleMouseMsg stops at the first popup panel that captures the event, so
// a click inside a panel is never seen as an outside click.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseMsg)
	for _, a := range m.anchors {
		if a.trigger.Mounted() && a.trigger.Popup().CapturesClick(mouse) {
			return nil
		}
	}
	cmds := make([]tea.Cmd, 0, 2)
	for i, a := range m.anchors {
		if a.hidden {
			continue
		}
		consumed, cmd := a.trigger.HandleMouse(mouse)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if consumed && mouse.Action == tea.MouseActionPress {
			if focus := m.visibleIndex(i); focus >= 0 {
				cmds = append(cmds, m.setFocus(focus))
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.width
	m.filter.Width = m.width / 2
	m.layout()
	m.resizePopups()
	return nil
}

func (m *Model) handlePollMsg(msg tea.Msg) tea.Cmd {
	return m.tracker.Update(msg)
}

func (m *Model) handleMovedMsg(msg tea.Msg) tea.Cmd {
	moved := msg.(tracking.MovedMsg)
	for _, move := range moved.Moves {
		a := m.anchorByKey(move.Key)
		if a == nil || !a.trigger.Mounted() {
			continue
		}
		a.trigger.Popup().Reposition()
	}
	return nil
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	if len(m.visible) == 0 {
		return nil
	}
	next := m.focus + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.visible) {
		next = len(m.visible) - 1
	}
	return m.setFocus(next)
}

// setFocus moves focus to the n-th visible anchor, blurring the previous one.
func (m *Model) setFocus(n int) tea.Cmd {
	if n == m.focus || n < 0 || n >= len(m.visible) {
		return nil
	}
	prev := m.focused()
	m.focus = n
	cur := m.focused()
	events.Anchor.Focus(cur.key)
	var blur tea.Cmd
	if prev != nil {
		blur = prev.trigger.Blur()
	}
	return tea.Batch(blur, cur.trigger.Focus())
}

func (m *Model) quit() tea.Cmd {
	m.tracker.Stop()
	events.App.Stop("quit")
	return tea.Quit
}

func (m *Model) applyFilter() tea.Cmd {
	query := m.filter.Value()
	prev := m.focused()
	m.visible = filterAnchors(m.anchors, query)
	shown := make(map[int]bool, len(m.visible))
	for _, idx := range m.visible {
		shown[idx] = true
	}
	cmds := make([]tea.Cmd, 0, len(m.anchors))
	for i, a := range m.anchors {
		a.hidden = !shown[i]
		if a.hidden {
			cmds = append(cmds, a.trigger.Close())
		}
	}
	m.focus = 0
	if prev != nil {
		for n, idx := range m.visible {
			if m.anchors[idx] == prev {
				m.focus = n
			}
		}
	}
	events.Anchor.Filter(query, len(m.visible))
	m.layout()
	return tea.Batch(cmds...)
}

func (m *Model) closeAll() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.anchors))
	for _, a := range m.anchors {
		cmds = append(cmds, a.trigger.Close())
	}
	return tea.Batch(cmds...)
}

// layout places the visible anchors. Open popups catch up with their moved
// anchors on the next tracker poll.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	bottom := m.height
	if m.opts.ShowFooter {
		bottom--
	}
	layoutAnchors(m.anchors, m.visible, m.width, bodyTop, bottom)
}

func (m *Model) resizePopups() {
	for _, a := range m.anchors {
		a.trigger.Popup().SetViewport(m.width, m.height)
	}
}

func (m *Model) focused() *anchor {
	if m.focus < 0 || m.focus >= len(m.visible) {
		return nil
	}
	return m.anchors[m.visible[m.focus]]
}

func (m *Model) visibleIndex(anchorIdx int) int {
	for n, idx := range m.visible {
		if idx == anchorIdx {
			return n
		}
	}
	return -1
}

func (m *Model) anchorByKey(k string) *anchor {
	for _, a := range m.anchors {
		if a.key == k {
			return a
		}
	}
	return nil
}
