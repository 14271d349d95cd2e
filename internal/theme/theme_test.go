package theme

import "testing"

func TestBlendEndpoints(t *testing.T) {
	if got := Blend("#000000", "#ffffff", 0); got != "#000000" {
		t.Fatalf("expected black at 0, got %s", got)
	}
	if got := Blend("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Fatalf("expected white at 1, got %s", got)
	}
	mid := Blend("#000000", "#ffffff", 0.5)
	if mid == "#000000" || mid == "#ffffff" {
		t.Fatalf("expected an intermediate colour, got %s", mid)
	}
}

func TestBlendInvalidFallsBack(t *testing.T) {
	if got := Blend("nope", "#123456", 0.5); got != "#123456" {
		t.Fatalf("expected fallback to target, got %s", got)
	}
}

func TestFadedPalette(t *testing.T) {
	if got := Popup.Faded(1); got != Popup {
		t.Fatalf("expected unchanged palette at full progress")
	}
	hidden := Popup.Faded(0)
	host := HostBackground
	want := Palette{Foreground: host, Background: host, Border: host, Header: host}
	if hidden != want {
		t.Fatalf("expected every colour to collapse to the host background, got %#v", hidden)
	}
	half := Popup.Faded(0.5)
	if half.Background == host || half.Background == Popup.Background {
		t.Fatalf("expected background mid-blend at half progress, got %s", half.Background)
	}
}

func TestFadedFollowsHostBackground(t *testing.T) {
	prev := HostBackground
	t.Cleanup(func() { HostBackground = prev })
	HostBackground = "#ffffff"
	if got := Inverted.Faded(0).Background; got != "#ffffff" {
		t.Fatalf("expected light host background, got %s", got)
	}
}

func TestForInverted(t *testing.T) {
	if For(true) != Inverted || For(false) != Popup {
		t.Fatalf("unexpected palette selection")
	}
}
