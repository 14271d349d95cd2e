package popup

import (
	"time"

	"github.com/atomicstack/anchored-popup/internal/positioning"
	"github.com/atomicstack/anchored-popup/internal/transition"
)

// CloseSignal selects when ClosedMsg fires after Close.
type CloseSignal int

const (
	// CloseAfterDuration fires after exactly TransitionDuration, independent
	// of when the exit animation actually finishes.
	CloseAfterDuration CloseSignal = iota
	// CloseOnTransitionEnd fires when the exit animation completes.
	CloseOnTransitionEnd
)

func (s CloseSignal) String() string {
	switch s {
	case CloseAfterDuration:
		return "duration"
	case CloseOnTransitionEnd:
		return "transition-end"
	}
	return "unknown"
}

const (
	defaultTransition = transition.KindScale
	defaultDuration   = 200 * time.Millisecond
	defaultMaxWidth   = 40
)

// Config is the per-instance popup configuration.
type Config struct {
	Header string
	Text   string
	// Template replaces Header and Text when set.
	Template           Template
	Placement          positioning.Placement
	Inverted           bool
	Basic              bool
	Transition         transition.Kind
	TransitionDuration time.Duration
	CloseSignal        CloseSignal
	// MaxWidth caps the content width in cells.
	MaxWidth int
}

// DefaultConfig returns the stock popup configuration.
func DefaultConfig() Config {
	return Config{
		Placement:          positioning.TopLeft,
		Transition:         defaultTransition,
		TransitionDuration: defaultDuration,
		CloseSignal:        CloseAfterDuration,
		MaxWidth:           defaultMaxWidth,
	}
}

func (c Config) normalized() Config {
	if c.TransitionDuration < 0 {
		c.TransitionDuration = 0
	}
	if _, err := positioning.ParsePlacement(string(c.Placement)); err != nil {
		c.Placement = positioning.TopLeft
	}
	if c.Transition == "" {
		c.Transition = defaultTransition
	} else if _, err := transition.ParseKind(string(c.Transition)); err != nil {
		c.Transition = defaultTransition
	}
	if c.MaxWidth <= 0 {
		c.MaxWidth = defaultMaxWidth
	}
	return c
}
