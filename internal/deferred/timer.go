// Package deferred provides a single-slot cancellable delayed callback for
// Bubble Tea models.
//
// A Timer never queues. Arming it cancels whatever was outstanding, and a
// fire message only runs the callback when it carries the live handle, so a
// superseded tick that is already in flight is consumed and dropped.
package deferred

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Handle identifies one arming of a Timer. The zero Handle means none.
type Handle int

// TickFunc schedules fn after d. tea.Tick is the default.
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// FiredMsg is delivered when an armed delay elapses.
type FiredMsg struct {
	timer  int
	handle Handle
}

// Timer is a single-slot delayed callback.
type Timer struct {
	id       int
	seq      Handle
	pending  Handle
	callback func() tea.Cmd
	tick     TickFunc
}

// New returns an idle timer.
func New() *Timer {
	return &Timer{id: nextID(), tick: tea.Tick}
}

// WithTick replaces the scheduling function. Intended for tests.
func (t *Timer) WithTick(fn TickFunc) *Timer {
	if fn != nil {
		t.tick = fn
	}
	return t
}

// Arm schedules callback after delay, cancelling any outstanding handle.
func (t *Timer) Arm(delay time.Duration, callback func() tea.Cmd) (Handle, tea.Cmd) {
	t.CancelPending()
	if delay < 0 {
		delay = 0
	}
	t.seq++
	h := t.seq
	t.pending = h
	t.callback = callback
	id := t.id
	return h, t.tick(delay, func(time.Time) tea.Msg {
		return FiredMsg{timer: id, handle: h}
	})
}

// Cancel clears the slot if h is the outstanding handle.
func (t *Timer) Cancel(h Handle) bool {
	if h == 0 || h != t.pending {
		return false
	}
	t.pending = 0
	t.callback = nil
	return true
}

// CancelPending cancels whatever is outstanding.
func (t *Timer) CancelPending() bool {
	return t.Cancel(t.pending)
}

// Pending reports the outstanding handle, if any.
func (t *Timer) Pending() (Handle, bool) {
	return t.pending, t.pending != 0
}

// Update consumes fire messages addressed to this timer. The callback runs
// in the same turn and its command is returned.
func (t *Timer) Update(msg tea.Msg) (bool, tea.Cmd) {
	fired, ok := msg.(FiredMsg)
	if !ok || fired.timer != t.id {
		return false, nil
	}
	if fired.handle == 0 || fired.handle != t.pending {
		return true, nil
	}
	cb := t.callback
	t.pending = 0
	t.callback = nil
	if cb == nil {
		return true, nil
	}
	return true, cb()
}
