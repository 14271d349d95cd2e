package positioning

import "testing"

type fakeSubject struct {
	w, h int
	view Rect
}

func (s fakeSubject) Size() (int, int) { return s.w, s.h }
func (s fakeSubject) Viewport() Rect { return s.view }

func TestPlacementDirection(t *testing.T) {
	cases := map[Placement]string{
		TopLeft:     "top",
		Top:         "top",
		BottomRight: "bottom",
		LeftTop:     "left",
		Right:       "right",
		"":          "",
	}
	for p, want := range cases {
		if got := p.Direction(); got != want {
			t.Fatalf("%q: expected %q, got %q", p, want, got)
		}
	}
}

func TestPlacementFlip(t *testing.T) {
	if got := TopLeft.Flip(); got != BottomLeft {
		t.Fatalf("expected bottom left, got %q", got)
	}
	if got := Right.Flip(); got != Left {
		t.Fatalf("expected left, got %q", got)
	}
}

func TestParsePlacement(t *testing.T) {
	got, err := ParsePlacement("Top-Left")
	if err != nil || got != TopLeft {
		t.Fatalf("expected top left, got %q (%v)", got, err)
	}
	if _, err := ParsePlacement("middle"); err == nil {
		t.Fatalf("expected error for unknown placement")
	}
}

func TestServicePlacesPreferredWhenItFits(t *testing.T) {
	anchor := StaticAnchor{X: 20, Y: 10, Width: 6, Height: 1}
	subject := fakeSubject{w: 10, h: 3, view: Rect{Width: 80, Height: 24}}
	svc := New(anchor, subject, TopLeft, "arrow")
	if got := svc.Placement(); got != TopLeft {
		t.Fatalf("expected top left, got %q", got)
	}
	if pos := svc.Position(); pos != (Point{X: 20, Y: 6}) {
		t.Fatalf("unexpected position %#v", pos)
	}
	arrow := svc.Arrow()
	if arrow.Selector != "arrow" || arrow.Direction != "top" {
		t.Fatalf("unexpected arrow %#v", arrow)
	}
	if arrow.Point != (Point{X: 23, Y: 9}) {
		t.Fatalf("expected arrow above anchor centre, got %#v", arrow.Point)
	}
}

func TestServiceFlipsWhenPreferredOverflows(t *testing.T) {
	anchor := StaticAnchor{X: 5, Y: 1, Width: 4, Height: 1}
	subject := fakeSubject{w: 10, h: 3, view: Rect{Width: 80, Height: 24}}
	svc := New(anchor, subject, Top, "")
	if got := svc.Placement(); got != Bottom {
		t.Fatalf("expected bottom after flip, got %q", got)
	}
	if pos := svc.Position(); pos.Y != 3 {
		t.Fatalf("expected panel below anchor margin, got %#v", pos)
	}
	if got := svc.Preferred(); got != Top {
		t.Fatalf("expected preference kept after flip, got %q", got)
	}
}

func TestServiceKeepsPreferenceWhenNothingFits(t *testing.T) {
	anchor := StaticAnchor{X: 0, Y: 2, Width: 4, Height: 1}
	subject := fakeSubject{w: 10, h: 10, view: Rect{Width: 20, Height: 6}}
	svc := New(anchor, subject, Top, "")
	if got := svc.Placement(); got != Top {
		t.Fatalf("expected preference kept, got %q", got)
	}
}

func TestServiceClampsSecondaryAxis(t *testing.T) {
	anchor := StaticAnchor{X: 76, Y: 10, Width: 4, Height: 1}
	subject := fakeSubject{w: 12, h: 2, view: Rect{Width: 80, Height: 24}}
	svc := New(anchor, subject, BottomLeft, "")
	if pos := svc.Position(); pos.X != 68 {
		t.Fatalf("expected x clamped to 68, got %d", pos.X)
	}
}

func TestServiceUpdateTracksMovingAnchor(t *testing.T) {
	bounds := Rect{X: 10, Y: 10, Width: 2, Height: 1}
	anchor := AnchorFunc(func() Rect { return bounds })
	subject := fakeSubject{w: 4, h: 2, view: Rect{Width: 80, Height: 24}}
	svc := New(anchor, subject, BottomLeft, "")
	first := svc.Position()

	bounds.X = 30
	if svc.Position() != first {
		t.Fatalf("expected cached position before Update")
	}
	svc.Update()
	svc.Update()
	if pos := svc.Position(); pos.X != 30 {
		t.Fatalf("expected x 30 after update, got %d", pos.X)
	}
	bounds.Y = 22
	svc.Invalidate()
	if got := svc.Placement(); got != TopLeft {
		t.Fatalf("expected flip to top left near bottom edge, got %q", got)
	}
}

func TestServiceInvalidPreferenceFallsBack(t *testing.T) {
	svc := New(nil, nil, "sideways", "")
	if got := svc.Placement(); got != TopLeft {
		t.Fatalf("expected top left fallback, got %q", got)
	}
}

func TestHorizontalPlacementArrow(t *testing.T) {
	anchor := StaticAnchor{X: 40, Y: 10, Width: 6, Height: 3}
	subject := fakeSubject{w: 10, h: 5, view: Rect{Width: 80, Height: 24}}
	svc := New(anchor, subject, RightTop, "arrow")
	pos := svc.Position()
	if pos != (Point{X: 47, Y: 10}) {
		t.Fatalf("unexpected position %#v", pos)
	}
	if arrow := svc.Arrow(); arrow.Point != (Point{X: 46, Y: 11}) || arrow.Direction != "right" {
		t.Fatalf("unexpected arrow %#v", arrow)
	}
}
