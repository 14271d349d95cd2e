package ui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests. Its
// clock only moves on Advance, so timer and animation messages are
// delivered deterministically.
type Harness struct {
	model  *Model
	now    time.Time
	seq    int
	timers []harnessTimer
	queue  []tea.Msg
	sent   []tea.Msg
}

type harnessTimer struct {
	due time.Time
	seq int
	fn  func(time.Time) tea.Msg
}

// NewHarness creates a harness for the provided model and runs its Init.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model, now: time.Unix(1_700_000_000, 0)}
	if model != nil {
		model.WithClock(h.clock, h.tick)
		h.processCmd(model.Init())
		h.drain()
	}
	return h
}

func (h *Harness) clock() time.Time { return h.now }

func (h *Harness) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		h.seq++
		h.timers = append(h.timers, harnessTimer{due: h.now.Add(d), seq: h.seq, fn: fn})
		return nil
	}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.queue = append(h.queue, msg)
	h.drain()
}

// Advance moves the clock forward, delivering every timer that falls due.
func (h *Harness) Advance(d time.Duration) {
	target := h.now.Add(d)
	for {
		sort.SliceStable(h.timers, func(i, j int) bool {
			if h.timers[i].due.Equal(h.timers[j].due) {
				return h.timers[i].seq < h.timers[j].seq
			}
			return h.timers[i].due.Before(h.timers[j].due)
		})
		if len(h.timers) == 0 || h.timers[0].due.After(target) {
			break
		}
		next := h.timers[0]
		h.timers = h.timers[1:]
		if next.due.After(h.now) {
			h.now = next.due
		}
		h.Send(next.fn(h.now))
	}
	h.now = target
}

func (h *Harness) drain() {
	for len(h.queue) > 0 {
		msg := h.queue[0]
		h.queue = h.queue[1:]
		h.sent = append(h.sent, msg)
		mdl, cmd := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		h.processCmd(cmd)
	}
}

// processCmd runs cmd and queues its messages. tea.Quit and other runtime
// messages are recorded but never executed.
func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.processCmd(c)
		}
	case tea.QuitMsg:
		h.sent = append(h.sent, msg)
	default:
		h.queue = append(h.queue, msg)
	}
}

// Sent returns every message delivered so far, in order.
func (h *Harness) Sent() []tea.Msg {
	return h.sent
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
