package app

import (
	"testing"
	"time"

	"github.com/atomicstack/anchored-popup/internal/popup"
	"github.com/atomicstack/anchored-popup/internal/positioning"
	"github.com/atomicstack/anchored-popup/internal/transition"
)

func TestOptionsMapsConfig(t *testing.T) {
	cfg := Config{
		Placement:  "right-bottom",
		Transition: "fade up",
		Duration:   300 * time.Millisecond,
		Basic:      true,
		Trigger:    "outside-click",
		Delay:      20 * time.Millisecond,
		CloseOnEnd: true,
		Poll:       time.Second,
		ShowFooter: true,
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Popup.Placement != positioning.RightBottom {
		t.Fatalf("unexpected placement %q", opts.Popup.Placement)
	}
	if opts.Popup.Transition != transition.KindFadeUp || opts.Popup.TransitionDuration != 300*time.Millisecond {
		t.Fatalf("unexpected transition %#v", opts.Popup)
	}
	if opts.Popup.CloseSignal != popup.CloseOnTransitionEnd || !opts.Popup.Basic {
		t.Fatalf("unexpected popup config %#v", opts.Popup)
	}
	if opts.Trigger != popup.TriggerOutsideClick || opts.Delay != 20*time.Millisecond || opts.Poll != time.Second {
		t.Fatalf("unexpected trigger options %#v", opts)
	}
}

func TestOptionsRejectsUnknownTrigger(t *testing.T) {
	cfg := Config{Placement: "top", Transition: "fade", Trigger: "wiggle"}
	if _, err := cfg.Options(); err == nil {
		t.Fatalf("expected error for unknown trigger")
	}
}
