package popup

import (
	"sync/atomic"
	"time"

	"github.com/atomicstack/anchored-popup/internal/deferred"
	"github.com/atomicstack/anchored-popup/internal/logging/events"
	"github.com/atomicstack/anchored-popup/internal/positioning"
	"github.com/atomicstack/anchored-popup/internal/transition"
	tea "github.com/charmbracelet/bubbletea"
)

// ArrowSelector names the arrow element the positioning service keeps
// aligned with the anchor.
const ArrowSelector = ".dynamic.arrow"

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// ClosedMsg is emitted once a close has settled. It carries no payload
// beyond the popup it belongs to.
type ClosedMsg struct {
	ID int
}

// refreshMsg re-runs positioning a turn after Open.
type refreshMsg struct {
	id  int
	gen int
}

// Popup is the open/close lifecycle of one floating panel.
type Popup struct {
	id  int
	cfg Config

	transition  *transition.Controller
	closing     *deferred.Timer
	positioning *positioning.Service

	isOpen           bool
	templateInjected bool
	fragment         Fragment
	refreshGen       int
	closeSeq         int
	viewport         positioning.Rect
}

// New creates a closed popup.
func New(cfg Config) *Popup {
	return &Popup{
		id:         nextID(),
		cfg:        cfg.normalized(),
		transition: transition.NewController(false),
		closing:    deferred.New(),
	}
}

// WithClock replaces the time source and scheduler of the popup's timer and
// transition controller. Intended for tests.
func (p *Popup) WithClock(now func() time.Time, tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd) *Popup {
	p.transition.WithClock(now).WithTick(tick)
	p.closing.WithTick(tick)
	return p
}

// ID returns the popup's unique id.
func (p *Popup) ID() int { return p.id }

// Config returns the normalized configuration.
func (p *Popup) Config() Config { return p.cfg }

// IsOpen reports the lifecycle state.
func (p *Popup) IsOpen() bool { return p.isOpen }

// Transition exposes the transition controller.
func (p *Popup) Transition() *transition.Controller { return p.transition }

// Open shows the popup. It is a no-op when already open.
func (p *Popup) Open() tea.Cmd {
	if p.isOpen {
		return nil
	}
	if p.closing.CancelPending() {
		events.Popup.CancelClose(p.id)
	}
	p.closeSeq = 0
	p.injectTemplate()

	p.transition.StopAll()
	anim := p.transition.Animate(transition.New(p.cfg.Transition, p.cfg.TransitionDuration, transition.In))

	p.refreshGen++
	refresh := refreshCmd(p.id, p.refreshGen)

	p.isOpen = true
	events.Popup.Open(p.id, string(p.cfg.Placement))
	return tea.Batch(anim, refresh)
}

// Close hides the popup. It is a no-op when already closed.
func (p *Popup) Close() tea.Cmd {
	if !p.isOpen {
		return nil
	}
	p.transition.StopAll()
	anim := p.transition.Animate(transition.New(p.cfg.Transition, p.cfg.TransitionDuration, transition.Out))
	p.refreshGen++

	p.closing.CancelPending()
	var closed tea.Cmd
	if p.cfg.CloseSignal == CloseOnTransitionEnd {
		p.closeSeq = p.transition.Seq()
	} else {
		_, closed = p.closing.Arm(p.cfg.TransitionDuration, p.emitClosed(events.CloseReasonTimer))
	}

	p.isOpen = false
	events.Popup.Close(p.id, p.cfg.TransitionDuration.Milliseconds())
	return tea.Batch(anim, closed)
}

// Toggle closes an open popup and opens a closed one.
func (p *Popup) Toggle() tea.Cmd {
	if p.isOpen {
		return p.Close()
	}
	return p.Open()
}

// SetAnchor binds the popup to a new anchor, replacing the positioning
// service. A nil anchor unbinds it.
func (p *Popup) SetAnchor(anchor positioning.Anchor) {
	if anchor == nil {
		p.positioning = nil
		return
	}
	p.positioning = positioning.New(anchor, p, p.cfg.Placement, ArrowSelector)
	b := anchor.Bounds()
	events.Popup.Anchor(p.id, b.X, b.Y, b.Width, b.Height)
}

// Placement returns the current placement, if an anchor is bound.
func (p *Popup) Placement() (positioning.Placement, bool) {
	if p.positioning == nil {
		return "", false
	}
	return p.positioning.Placement(), true
}

// Direction returns the primary axis of the current placement: top, left,
// right or bottom. It reports false until an anchor is bound.
func (p *Popup) Direction() (string, bool) {
	placement, ok := p.Placement()
	if !ok {
		return "", false
	}
	return placement.Direction(), true
}

// Reposition recomputes placement against the anchor's current geometry.
func (p *Popup) Reposition() {
	if p.positioning == nil {
		return
	}
	p.positioning.Update()
	events.Popup.Refresh(p.id, string(p.positioning.Preferred()), string(p.positioning.Placement()))
}

// SetViewport records the screen size the panel must fit in.
func (p *Popup) SetViewport(width, height int) {
	p.viewport = positioning.Rect{Width: width, Height: height}
	if p.positioning != nil {
		p.positioning.Invalidate()
	}
}

// Viewport implements positioning.Subject.
func (p *Popup) Viewport() positioning.Rect {
	return p.viewport
}

// Update routes the popup's own timer, animation and refresh messages.
func (p *Popup) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case refreshMsg:
		if msg.id == p.id && msg.gen == p.refreshGen {
			p.Reposition()
		}
	case deferred.FiredMsg:
		_, cmd := p.closing.Update(msg)
		return cmd
	case transition.FrameMsg:
		return p.transition.Update(msg)
	case transition.CompletedMsg:
		if !p.transition.Owns(msg) {
			return nil
		}
		if p.closeSeq != 0 && msg.Seq == p.closeSeq && msg.Transition.Direction == transition.Out {
			p.closeSeq = 0
			return p.emitClosed(events.CloseReasonTransition)()
		}
	case tea.WindowSizeMsg:
		p.SetViewport(msg.Width, msg.Height)
	}
	return nil
}

func (p *Popup) injectTemplate() {
	if p.cfg.Template == nil || p.templateInjected {
		return
	}
	p.fragment = p.cfg.Template.Instantiate(p)
	p.templateInjected = true
	events.Popup.Inject(p.id)
}

func (p *Popup) emitClosed(reason events.CloseReason) func() tea.Cmd {
	id := p.id
	return func() tea.Cmd {
		events.Popup.Closed(id, reason)
		return func() tea.Msg { return ClosedMsg{ID: id} }
	}
}

func refreshCmd(id, gen int) tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{id: id, gen: gen}
	}
}
