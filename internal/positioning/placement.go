package positioning

import (
	"fmt"
	"strings"
)

// Placement is a compound direction of the panel relative to its anchor.
// The first word is the primary axis, the optional second word the
// alignment along it.
type Placement string

const (
	TopLeft     Placement = "top left"
	Top         Placement = "top"
	TopRight    Placement = "top right"
	BottomLeft  Placement = "bottom left"
	Bottom      Placement = "bottom"
	BottomRight Placement = "bottom right"
	LeftTop     Placement = "left top"
	Left        Placement = "left"
	LeftBottom  Placement = "left bottom"
	RightTop    Placement = "right top"
	Right       Placement = "right"
	RightBottom Placement = "right bottom"
)

var placements = []Placement{
	TopLeft, Top, TopRight,
	BottomLeft, Bottom, BottomRight,
	LeftTop, Left, LeftBottom,
	RightTop, Right, RightBottom,
}

// Placements lists every supported placement.
func Placements() []Placement {
	out := make([]Placement, len(placements))
	copy(out, placements)
	return out
}

// ParsePlacement accepts placements case-insensitively; hyphens may replace
// spaces.
func ParsePlacement(s string) (Placement, error) {
	norm := strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(s, "-", " "))), " ")
	for _, p := range placements {
		if string(p) == norm {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown placement %q", s)
}

// Direction returns the primary axis word: top, bottom, left or right.
func (p Placement) Direction() string {
	fields := strings.Fields(string(p))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (p Placement) align() string {
	fields := strings.Fields(string(p))
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// Vertical reports whether the panel sits above or below the anchor.
func (p Placement) Vertical() bool {
	d := p.Direction()
	return d == "top" || d == "bottom"
}

// Flip mirrors the primary axis, keeping the alignment.
func (p Placement) Flip() Placement {
	opposite := map[string]string{"top": "bottom", "bottom": "top", "left": "right", "right": "left"}
	d, ok := opposite[p.Direction()]
	if !ok {
		return p
	}
	if a := p.align(); a != "" {
		return Placement(d + " " + a)
	}
	return Placement(d)
}
