package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/anchored-popup/internal/app"
	"github.com/atomicstack/anchored-popup/internal/popup"
	"github.com/atomicstack/anchored-popup/internal/positioning"
	"github.com/atomicstack/anchored-popup/internal/transition"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPlacement  = "POPUP_PLACEMENT"
	envTransition = "POPUP_TRANSITION"
	envDuration   = "POPUP_DURATION"
	envInverted   = "POPUP_INVERTED"
	envBasic      = "POPUP_BASIC"
	envTrigger    = "POPUP_TRIGGER"
	envDelay      = "POPUP_DELAY"
	envCloseOnEnd = "POPUP_CLOSE_ON_END"
	envPoll       = "POPUP_POLL"
	envWidth      = "POPUP_WIDTH"
	envHeight     = "POPUP_HEIGHT"
	envShowFooter = "POPUP_FOOTER"
	envTrace      = "POPUP_TRACE"
	envLogFile    = "POPUP_LOG_FILE"
)

const (
	defaultDuration = 200 * time.Millisecond
	defaultPoll     = 250 * time.Millisecond
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("anchored-popup", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	placement := fs.String("placement", envOrDefault(env, envPlacement, string(positioning.TopLeft)), "preferred placement of the configurable popup")
	kind := fs.String("transition", envOrDefault(env, envTransition, string(transition.KindScale)), "transition played on open and close ("+kindNames()+")")
	duration := fs.Duration("duration", envOrDuration(env, envDuration, defaultDuration), "transition duration")
	inverted := fs.Bool("inverted", envOrBool(env, envInverted, false), "use the light popup palette")
	basic := fs.Bool("basic", envOrBool(env, envBasic, false), "draw popups without an arrow")
	trigger := fs.String("trigger", envOrDefault(env, envTrigger, string(popup.TriggerClick)), "anchor interaction that opens popups (hover, click, outsideClick, focus, manual)")
	delay := fs.Duration("delay", envOrDuration(env, envDelay, 0), "delay before a triggered popup opens")
	closeOnEnd := fs.Bool("close-on-end", envOrBool(env, envCloseOnEnd, false), "emit the closed event when the exit animation ends instead of after the duration")
	poll := fs.Duration("poll", envOrDuration(env, envPoll, defaultPoll), "anchor position polling interval")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Placement:  *placement,
			Transition: *kind,
			Duration:   *duration,
			Inverted:   *inverted,
			Basic:      *basic,
			Trigger:    *trigger,
			Delay:      *delay,
			CloseOnEnd: *closeOnEnd,
			Poll:       *poll,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"placement":  *placement,
			"transition": *kind,
			"duration":   duration.String(),
			"inverted":   strconv.FormatBool(*inverted),
			"basic":      strconv.FormatBool(*basic),
			"trigger":    *trigger,
			"delay":      delay.String(),
			"closeOnEnd": strconv.FormatBool(*closeOnEnd),
			"poll":       poll.String(),
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"footer":     strconv.FormatBool(*footer),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func kindNames() string {
	kinds := transition.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// envOrDuration accepts Go duration strings or a bare millisecond count.
func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return fallback
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects option values the popup cannot honour.
func Validate(cfg Config) error {
	if _, err := positioning.ParsePlacement(cfg.App.Placement); err != nil {
		return fmt.Errorf("placement: %w", err)
	}
	if _, err := transition.ParseKind(cfg.App.Transition); err != nil {
		return fmt.Errorf("transition: %w", err)
	}
	if _, err := popup.ParseTrigger(cfg.App.Trigger); err != nil {
		return fmt.Errorf("trigger: %w", err)
	}
	if cfg.App.Duration < 0 {
		return fmt.Errorf("duration must be >= 0 (got %s)", cfg.App.Duration)
	}
	if cfg.App.Delay < 0 {
		return fmt.Errorf("delay must be >= 0 (got %s)", cfg.App.Delay)
	}
	if cfg.App.Poll <= 0 {
		return fmt.Errorf("poll must be > 0 (got %s)", cfg.App.Poll)
	}
	return nil
}
