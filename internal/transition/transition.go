// Package transition drives enter and exit animations for a single panel.
//
// A Controller keeps one live animation at most. Animate always halts the
// current animation first, and stopping snaps it to its endpoint (In means
// shown, Out means hidden) so the panel is never left mid-frame. Frame and
// completion messages carry a sequence number; messages from superseded
// animations are dropped.
package transition

import (
	"fmt"
	"strings"
	"time"
)

// Kind names an animation style.
type Kind string

const (
	KindNone      Kind = "none"
	KindFade      Kind = "fade"
	KindFadeUp    Kind = "fade up"
	KindFadeDown  Kind = "fade down"
	KindScale     Kind = "scale"
	KindSlideDown Kind = "slide down"
	KindSlideUp   Kind = "slide up"
	KindDrop      Kind = "drop"
)

var kinds = []Kind{KindNone, KindFade, KindFadeUp, KindFadeDown, KindScale, KindSlideDown, KindSlideUp, KindDrop}

// Kinds lists every supported animation kind.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind accepts kind names case-insensitively; hyphens may replace spaces.
func ParseKind(s string) (Kind, error) {
	norm := strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(s, "-", " "))), " ")
	if norm == "" {
		return KindNone, nil
	}
	for _, k := range kinds {
		if string(k) == norm {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown transition %q", s)
}

// Fades reports whether the kind animates colour rather than geometry alone.
func (k Kind) Fades() bool {
	switch k {
	case KindFade, KindFadeUp, KindFadeDown:
		return true
	}
	return false
}

// Direction is the sense of an animation.
type Direction int

const (
	In Direction = iota
	Out
)

func (d Direction) String() string {
	if d == Out {
		return "out"
	}
	return "in"
}

// Transition is a single animation request.
type Transition struct {
	Kind      Kind
	Duration  time.Duration
	Direction Direction
}

// New builds a transition request. Negative durations become zero.
func New(kind Kind, duration time.Duration, direction Direction) Transition {
	if duration < 0 {
		duration = 0
	}
	return Transition{Kind: kind, Duration: duration, Direction: direction}
}

// Frame is a snapshot of the controller's visual state.
type Frame struct {
	Kind      Kind
	Direction Direction
	// Progress runs from 0 (hidden) to 1 (fully shown).
	Progress float64
}
