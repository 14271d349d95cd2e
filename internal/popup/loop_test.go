package popup

import (
	"sort"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loop is a deterministic stand-in for the Bubble Tea runtime: commands run
// synchronously, ticks are registered on a fake clock, and messages are
// delivered one turn at a time.
type loop struct {
	t       *testing.T
	now     time.Time
	start   time.Time
	seq     int
	timers  []timerEntry
	queue   []tea.Msg
	update  func(tea.Msg) tea.Cmd
	closed  []time.Duration
	history []tea.Msg
}

type timerEntry struct {
	due time.Time
	seq int
	fn  func(time.Time) tea.Msg
}

func newLoop(t *testing.T) *loop {
	t.Helper()
	start := time.Unix(1_700_000_000, 0)
	return &loop{t: t, now: start, start: start}
}

func (l *loop) clock() time.Time { return l.now }

func (l *loop) tick(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		l.seq++
		l.timers = append(l.timers, timerEntry{due: l.now.Add(d), seq: l.seq, fn: fn})
		return nil
	}
}

func (l *loop) popup(cfg Config) *Popup {
	p := New(cfg).WithClock(l.clock, l.tick)
	l.update = p.Update
	return p
}

// run executes cmd and queues what it produces.
func (l *loop) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			l.run(c)
		}
	default:
		l.queue = append(l.queue, msg)
	}
}

// drain delivers queued messages until none are left.
func (l *loop) drain() {
	for len(l.queue) > 0 {
		msg := l.queue[0]
		l.queue = l.queue[1:]
		l.history = append(l.history, msg)
		if _, ok := msg.(ClosedMsg); ok {
			l.closed = append(l.closed, l.now.Sub(l.start))
		}
		if l.update != nil {
			l.run(l.update(msg))
		}
	}
}

// exec runs cmd as the result of a synchronous call, then drains.
func (l *loop) exec(cmd tea.Cmd) {
	l.run(cmd)
	l.drain()
}

// advance moves the clock forward, firing due timers in order.
func (l *loop) advance(d time.Duration) {
	target := l.now.Add(d)
	for {
		sort.SliceStable(l.timers, func(i, j int) bool {
			if l.timers[i].due.Equal(l.timers[j].due) {
				return l.timers[i].seq < l.timers[j].seq
			}
			return l.timers[i].due.Before(l.timers[j].due)
		})
		if len(l.timers) == 0 || l.timers[0].due.After(target) {
			break
		}
		next := l.timers[0]
		l.timers = l.timers[1:]
		if next.due.After(l.now) {
			l.now = next.due
		}
		l.queue = append(l.queue, next.fn(l.now))
		l.drain()
	}
	l.now = target
}

func (l *loop) elapsed() time.Duration {
	return l.now.Sub(l.start)
}
