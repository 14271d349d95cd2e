package tracking

import (
	"sync"
	"time"
)

// throttle enforces a minimum interval between successive polls.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// allow reports whether a poll may run at now, reserving the slot if so.
func (t *throttle) allow(now time.Time) bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}

func (t *throttle) reset() {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.next = time.Time{}
	t.mu.Unlock()
}
