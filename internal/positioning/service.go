// Package positioning places a panel next to an anchor inside a viewport.
//
// A Service is bound to one anchor, one subject (the panel container), a
// placement preference and the selector of the arrow element it keeps
// aligned. Placement is recomputed lazily after Invalidate, or eagerly with
// Update.
package positioning

// Margin is the gap, in cells, between anchor and panel. The arrow is drawn
// inside it.
const Margin = 1

// Anchor is the element the panel is positioned against.
type Anchor interface {
	Bounds() Rect
}

// Subject is the panel container being positioned.
type Subject interface {
	Size() (width, height int)
	Viewport() Rect
}

// AnchorFunc adapts a function to Anchor.
type AnchorFunc func() Rect

func (f AnchorFunc) Bounds() Rect { return f() }

// StaticAnchor is an Anchor with fixed bounds.
type StaticAnchor Rect

func (a StaticAnchor) Bounds() Rect { return Rect(a) }

// Arrow locates the arrow element between anchor and panel.
type Arrow struct {
	Selector  string
	Direction string
	Point
}

// Service computes and caches the panel placement.
type Service struct {
	anchor    Anchor
	subject   Subject
	preferred Placement
	selector  string

	placement Placement
	position  Point
	arrow     Arrow
	stale     bool
}

// New binds a service to anchor and subject.
func New(anchor Anchor, subject Subject, preferred Placement, arrowSelector string) *Service {
	if _, err := ParsePlacement(string(preferred)); err != nil {
		preferred = TopLeft
	}
	return &Service{
		anchor:    anchor,
		subject:   subject,
		preferred: preferred,
		selector:  arrowSelector,
		placement: preferred,
		stale:     true,
	}
}

// Preferred returns the configured placement preference.
func (s *Service) Preferred() Placement { return s.preferred }

// Anchor returns the bound anchor.
func (s *Service) Anchor() Anchor { return s.anchor }

// Placement returns the current best placement.
func (s *Service) Placement() Placement {
	s.ensure()
	return s.placement
}

// Position returns the top-left cell of the panel.
func (s *Service) Position() Point {
	s.ensure()
	return s.position
}

// Arrow returns the aligned arrow location.
func (s *Service) Arrow() Arrow {
	s.ensure()
	return s.arrow
}

// Invalidate marks the cached placement stale.
func (s *Service) Invalidate() {
	s.stale = true
}

// Update recomputes placement against the current anchor geometry.
func (s *Service) Update() {
	s.compute()
	s.stale = false
}

func (s *Service) ensure() {
	if s.stale {
		s.Update()
	}
}

func (s *Service) compute() {
	if s.anchor == nil || s.subject == nil {
		s.placement = s.preferred
		return
	}
	anchor := s.anchor.Bounds()
	w, h := s.subject.Size()
	view := s.subject.Viewport()

	placement := s.preferred
	if !fits(anchor, w, h, view, placement) {
		if flipped := placement.Flip(); fits(anchor, w, h, view, flipped) {
			placement = flipped
		}
	}
	pos := place(anchor, w, h, placement)
	if !view.Empty() {
		if placement.Vertical() {
			pos.X = clampInt(pos.X, view.X, view.Right()-w)
		} else {
			pos.Y = clampInt(pos.Y, view.Y, view.Bottom()-h)
		}
	}
	s.placement = placement
	s.position = pos
	s.arrow = arrowFor(anchor, Rect{X: pos.X, Y: pos.Y, Width: w, Height: h}, placement)
	s.arrow.Selector = s.selector
}

func fits(anchor Rect, w, h int, view Rect, p Placement) bool {
	if view.Empty() {
		return true
	}
	pos := place(anchor, w, h, p)
	switch p.Direction() {
	case "top":
		return pos.Y >= view.Y
	case "bottom":
		return pos.Y+h <= view.Bottom()
	case "left":
		return pos.X >= view.X
	case "right":
		return pos.X+w <= view.Right()
	}
	return false
}

func place(anchor Rect, w, h int, p Placement) Point {
	var pos Point
	switch p.Direction() {
	case "top":
		pos.Y = anchor.Y - Margin - h
	case "bottom":
		pos.Y = anchor.Bottom() + Margin
	case "left":
		pos.X = anchor.X - Margin - w
	case "right":
		pos.X = anchor.Right() + Margin
	}
	if p.Vertical() {
		switch p.align() {
		case "left":
			pos.X = anchor.X
		case "right":
			pos.X = anchor.Right() - w
		default:
			pos.X = anchor.X + (anchor.Width-w)/2
		}
	} else {
		switch p.align() {
		case "top":
			pos.Y = anchor.Y
		case "bottom":
			pos.Y = anchor.Bottom() - h
		default:
			pos.Y = anchor.Y + (anchor.Height-h)/2
		}
	}
	return pos
}

func arrowFor(anchor, panel Rect, p Placement) Arrow {
	a := Arrow{Direction: p.Direction()}
	centreX := anchor.X + anchor.Width/2
	centreY := anchor.Y + anchor.Height/2
	switch a.Direction {
	case "top":
		a.Point = Point{X: clampInt(centreX, panel.X, panel.Right()-1), Y: anchor.Y - 1}
	case "bottom":
		a.Point = Point{X: clampInt(centreX, panel.X, panel.Right()-1), Y: anchor.Bottom()}
	case "left":
		a.Point = Point{X: anchor.X - 1, Y: clampInt(centreY, panel.Y, panel.Bottom()-1)}
	case "right":
		a.Point = Point{X: anchor.Right(), Y: clampInt(centreY, panel.Y, panel.Bottom()-1)}
	}
	return a
}
