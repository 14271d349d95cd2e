package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/anchored-popup/internal/app"
	"github.com/atomicstack/anchored-popup/internal/config"
	"github.com/atomicstack/anchored-popup/internal/logging"
	"github.com/atomicstack/anchored-popup/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg, app.DetectTerminal()))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records how the popups were configured and the
// screen they will open on.
func startupTracePayload(cfg config.Config, terminal app.Terminal) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	width, height := terminal.Viewport(cfg.App)
	return map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"popup":    popupSettings(cfg.App),
		"terminal": terminal,
		"viewport": map[string]int{"width": width, "height": height},
	}
}

// popupSettings resolves the popup options exactly as Run will apply them.
func popupSettings(cfg app.Config) map[string]interface{} {
	opts, err := cfg.Options()
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}
	p := opts.Popup
	return map[string]interface{}{
		"placement":   string(p.Placement),
		"transition":  string(p.Transition),
		"durationMs":  p.TransitionDuration.Milliseconds(),
		"closeSignal": p.CloseSignal.String(),
		"trigger":     string(opts.Trigger),
		"delayMs":     opts.Delay.Milliseconds(),
		"pollMs":      opts.Poll.Milliseconds(),
		"inverted":    p.Inverted,
		"basic":       p.Basic,
	}
}
