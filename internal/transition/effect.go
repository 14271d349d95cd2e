package transition

import "math"

// Apply crops rendered panel lines for a frame. It returns the rows still
// on screen and their row offset within the panel. Fade kinds keep every
// row; their effect is colour, applied by the caller.
func Apply(lines []string, f Frame) ([]string, int) {
	if len(lines) == 0 {
		return nil, 0
	}
	if f.Progress <= 0 {
		return nil, 0
	}
	if f.Progress >= 1 || f.Kind == KindNone || f.Kind.Fades() {
		return lines, 0
	}
	h := len(lines)
	n := int(math.Ceil(f.Progress * float64(h)))
	if n > h {
		n = h
	}
	switch f.Kind {
	case KindScale:
		start := (h - n) / 2
		return lines[start : start+n], start
	case KindSlideUp:
		return lines[h-n:], h - n
	default:
		return lines[:n], 0
	}
}
