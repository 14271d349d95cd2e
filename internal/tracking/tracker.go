// Package tracking polls anchor geometry and reports anchors that moved, so
// open popups can be repositioned.
package tracking

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/atomicstack/anchored-popup/internal/logging/events"
	"github.com/atomicstack/anchored-popup/internal/positioning"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the poll period used when none is configured.
const DefaultInterval = 250 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickFunc schedules fn after d. tea.Tick is the default.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Move records an anchor whose bounds changed since the previous poll.
type Move struct {
	Key    string
	From   positioning.Rect
	Bounds positioning.Rect
}

// PollMsg drives the poll loop of one tracker.
type PollMsg struct {
	tracker int
	gen     int
}

// MovedMsg is returned by the poll loop when at least one anchor moved.
type MovedMsg struct {
	Moves []Move
}

// Tracker keeps the last seen bounds of a set of anchors.
type Tracker struct {
	id       int
	interval time.Duration
	throttle *throttle
	now      func() time.Time
	tick     TickFunc

	anchors map[string]positioning.Anchor
	last    map[string]positioning.Rect
	gen     int
	running bool
}

// New returns a stopped tracker polling every interval.
func New(interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Tracker{
		id:       nextID(),
		interval: interval,
		throttle: newThrottle(interval / 2),
		now:      time.Now,
		tick:     tea.Tick,
		anchors:  make(map[string]positioning.Anchor),
		last:     make(map[string]positioning.Rect),
	}
}

// WithClock replaces the time source and scheduler. Intended for tests.
func (t *Tracker) WithClock(now func() time.Time, tick TickFunc) *Tracker {
	if now != nil {
		t.now = now
	}
	if tick != nil {
		t.tick = tick
	}
	return t
}

// Track starts watching anchor under key, recording its current bounds.
func (t *Tracker) Track(key string, anchor positioning.Anchor) {
	if anchor == nil {
		t.Untrack(key)
		return
	}
	t.anchors[key] = anchor
	t.last[key] = anchor.Bounds()
}

// Untrack stops watching key.
func (t *Tracker) Untrack(key string) {
	delete(t.anchors, key)
	delete(t.last, key)
}

// Keys returns the tracked keys in sorted order.
func (t *Tracker) Keys() []string {
	keys := make([]string, 0, len(t.anchors))
	for key := range t.anchors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Poll compares every anchor with its last seen bounds. Calls closer
// together than the throttle interval return nothing.
func (t *Tracker) Poll() []Move {
	if !t.throttle.allow(t.now()) {
		return nil
	}
	var moves []Move
	for _, key := range t.Keys() {
		bounds := t.anchors[key].Bounds()
		prev := t.last[key]
		if bounds == prev {
			continue
		}
		t.last[key] = bounds
		moves = append(moves, Move{Key: key, From: prev, Bounds: bounds})
		events.Anchor.Moved(key, bounds.X, bounds.Y, bounds.Width, bounds.Height)
	}
	return moves
}

// Start begins the poll loop. Starting a running tracker restarts it.
func (t *Tracker) Start() tea.Cmd {
	t.gen++
	t.running = true
	t.throttle.reset()
	return t.schedule()
}

// Stop halts the poll loop; in-flight poll messages are ignored.
func (t *Tracker) Stop() {
	t.gen++
	t.running = false
}

// Update handles the tracker's poll messages. It returns the next poll and,
// when anchors moved, a MovedMsg for the host.
func (t *Tracker) Update(msg tea.Msg) tea.Cmd {
	poll, ok := msg.(PollMsg)
	if !ok || poll.tracker != t.id || poll.gen != t.gen || !t.running {
		return nil
	}
	next := t.schedule()
	moves := t.Poll()
	if len(moves) == 0 {
		return next
	}
	return tea.Batch(next, func() tea.Msg { return MovedMsg{Moves: moves} })
}

func (t *Tracker) schedule() tea.Cmd {
	id, gen := t.id, t.gen
	return t.tick(t.interval, func(time.Time) tea.Msg {
		return PollMsg{tracker: id, gen: gen}
	})
}
