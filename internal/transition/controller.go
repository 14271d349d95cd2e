package transition

import (
	"sync/atomic"
	"time"

	"github.com/atomicstack/anchored-popup/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFrameInterval paces animation frames.
const DefaultFrameInterval = time.Second / 30

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickFunc schedules fn after d. tea.Tick is the default.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// FrameMsg advances the live animation of one controller.
type FrameMsg struct {
	controller int
	seq        int
}

// CompletedMsg reports that an animation ran to its end.
type CompletedMsg struct {
	Controller int
	Seq        int
	Transition Transition
}

type animation struct {
	seq        int
	transition Transition
	started    time.Time
}

// Controller owns the animation state of one panel.
type Controller struct {
	id       int
	seq      int
	current  *animation
	visible  bool
	interval time.Duration
	now      func() time.Time
	tick     TickFunc
}

// NewController returns an idle controller resting shown or hidden.
func NewController(visible bool) *Controller {
	return &Controller{
		id:       nextID(),
		visible:  visible,
		interval: DefaultFrameInterval,
		now:      time.Now,
		tick:     tea.Tick,
	}
}

// WithClock replaces the time source. Intended for tests.
func (c *Controller) WithClock(now func() time.Time) *Controller {
	if now != nil {
		c.now = now
	}
	return c
}

// WithTick replaces the frame scheduler. Intended for tests.
func (c *Controller) WithTick(fn TickFunc) *Controller {
	if fn != nil {
		c.tick = fn
	}
	return c
}

// Seq returns the sequence number of the most recent animation.
func (c *Controller) Seq() int { return c.seq }

// Animate halts the current animation and starts t.
func (c *Controller) Animate(t Transition) tea.Cmd {
	c.StopAll()
	c.seq++
	c.current = &animation{seq: c.seq, transition: t, started: c.now()}
	events.Transition.Start(c.id, c.seq, string(t.Kind), t.Direction.String(), t.Duration.Milliseconds())
	if t.Duration <= 0 || t.Kind == KindNone {
		return c.finish()
	}
	return c.nextFrame()
}

// StopAll halts the current animation, snapping it to its endpoint.
func (c *Controller) StopAll() {
	if c.current == nil {
		return
	}
	c.visible = c.current.transition.Direction == In
	events.Transition.Stop(c.id, c.current.seq, c.visible)
	c.current = nil
}

// Update advances the live animation on its frame messages.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.controller != c.id {
		return nil
	}
	if c.current == nil || frame.seq != c.current.seq {
		return nil
	}
	if c.now().Sub(c.current.started) >= c.current.transition.Duration {
		return c.finish()
	}
	return c.nextFrame()
}

// Owns reports whether msg belongs to this controller.
func (c *Controller) Owns(msg tea.Msg) bool {
	switch m := msg.(type) {
	case FrameMsg:
		return m.controller == c.id
	case CompletedMsg:
		return m.Controller == c.id
	}
	return false
}

func (c *Controller) nextFrame() tea.Cmd {
	id, seq := c.id, c.current.seq
	return c.tick(c.interval, func(time.Time) tea.Msg {
		return FrameMsg{controller: id, seq: seq}
	})
}

func (c *Controller) finish() tea.Cmd {
	a := c.current
	c.current = nil
	c.visible = a.transition.Direction == In
	events.Transition.Complete(c.id, a.seq)
	done := CompletedMsg{Controller: c.id, Seq: a.seq, Transition: a.transition}
	return func() tea.Msg { return done }
}

// Animating reports whether an animation is live.
func (c *Controller) Animating() bool {
	return c.current != nil
}

// Visible reports whether the panel has anything to draw.
func (c *Controller) Visible() bool {
	return c.current != nil || c.visible
}

// Current returns the live animation request.
func (c *Controller) Current() (Transition, bool) {
	if c.current == nil {
		return Transition{}, false
	}
	return c.current.transition, true
}

// Progress returns how shown the panel is, from 0 to 1.
func (c *Controller) Progress() float64 {
	if c.current == nil {
		if c.visible {
			return 1
		}
		return 0
	}
	t := c.current.transition
	elapsed := c.now().Sub(c.current.started)
	p := 1.0
	if t.Duration > 0 {
		p = clamp(float64(elapsed) / float64(t.Duration))
	}
	p = smoothstep(p)
	if t.Direction == Out {
		return 1 - p
	}
	return p
}

// Frame snapshots the visual state for rendering.
func (c *Controller) Frame() Frame {
	f := Frame{Kind: KindNone, Progress: c.Progress()}
	if c.current != nil {
		f.Kind = c.current.transition.Kind
		f.Direction = c.current.transition.Direction
	} else if !c.visible {
		f.Direction = Out
	}
	return f
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
