package main

import (
	"testing"
	"time"

	"github.com/atomicstack/anchored-popup/internal/app"
	"github.com/atomicstack/anchored-popup/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		App: app.Config{
			Placement:  "right-bottom",
			Transition: "fade-up",
			Duration:   300 * time.Millisecond,
			Trigger:    "outside-click",
			Delay:      40 * time.Millisecond,
			CloseOnEnd: true,
			Poll:       250 * time.Millisecond,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"placement": "right-bottom",
			"trigger":   "outside-click",
			"height":    "24",
			"footer":    "true",
		},
		Args: []string{"--placement", "right-bottom"},
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	payload := startupTracePayload(testConfig(), app.Terminal{})

	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flags["placement"] != "right-bottom" || flags["height"] != "24" || flags["footer"] != "true" {
		t.Fatalf("unexpected flags %#v", flags)
	}
	if flags["trace"] != true || flags["logFile"] != "trace.log" {
		t.Fatalf("expected logging flags, got %#v", flags)
	}
	if _, ok := payload["terminal"].(app.Terminal); !ok {
		t.Fatalf("expected terminal details in payload")
	}
}

func TestStartupTracePayloadResolvesPopupSettings(t *testing.T) {
	payload := startupTracePayload(testConfig(), app.Terminal{})

	settings, ok := payload["popup"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected popup settings in payload")
	}
	want := map[string]interface{}{
		"placement":   "right bottom",
		"transition":  "fade up",
		"durationMs":  int64(300),
		"closeSignal": "transition-end",
		"trigger":     "outsideClick",
		"delayMs":     int64(40),
		"pollMs":      int64(250),
		"inverted":    false,
		"basic":       false,
	}
	for k, v := range want {
		if settings[k] != v {
			t.Fatalf("%s: expected %v, got %v", k, v, settings[k])
		}
	}
}

func TestStartupTracePayloadReportsInvalidPopup(t *testing.T) {
	cfg := testConfig()
	cfg.App.Trigger = "wiggle"
	settings := startupTracePayload(cfg, app.Terminal{})["popup"].(map[string]interface{})
	if _, ok := settings["error"].(string); !ok {
		t.Fatalf("expected error entry, got %#v", settings)
	}
}

func TestStartupTracePayloadViewportFallsBackToTerminal(t *testing.T) {
	terminal := app.Terminal{Source: "stdout", Width: 132, Height: 50}
	viewport := startupTracePayload(testConfig(), terminal)["viewport"].(map[string]int)
	if viewport["width"] != 132 || viewport["height"] != 24 {
		t.Fatalf("expected 132x24, got %v", viewport)
	}
}
