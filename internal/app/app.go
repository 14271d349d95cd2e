package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/anchored-popup/internal/popup"
	"github.com/atomicstack/anchored-popup/internal/positioning"
	"github.com/atomicstack/anchored-popup/internal/theme"
	"github.com/atomicstack/anchored-popup/internal/transition"
	"github.com/atomicstack/anchored-popup/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config describes user-provided application options.
type Config struct {
	Placement  string
	Transition string
	Duration   time.Duration
	Inverted   bool
	Basic      bool
	Trigger    string
	Delay      time.Duration
	CloseOnEnd bool
	Poll       time.Duration
	Width      int
	Height     int
	ShowFooter bool
}

// Options converts the configuration into demo host options.
func (c Config) Options() (ui.Options, error) {
	placement, err := positioning.ParsePlacement(c.Placement)
	if err != nil {
		return ui.Options{}, fmt.Errorf("placement: %w", err)
	}
	kind, err := transition.ParseKind(c.Transition)
	if err != nil {
		return ui.Options{}, fmt.Errorf("transition: %w", err)
	}
	mode, err := popup.ParseTrigger(c.Trigger)
	if err != nil {
		return ui.Options{}, fmt.Errorf("trigger: %w", err)
	}
	base := popup.DefaultConfig()
	base.Placement = placement
	base.Transition = kind
	base.TransitionDuration = c.Duration
	base.Inverted = c.Inverted
	base.Basic = c.Basic
	if c.CloseOnEnd {
		base.CloseSignal = popup.CloseOnTransitionEnd
	}
	return ui.Options{
		Width:      c.Width,
		Height:     c.Height,
		ShowFooter: c.ShowFooter,
		Popup:      base,
		Trigger:    mode,
		Delay:      c.Delay,
		Poll:       c.Poll,
	}, nil
}

// hostBackground approximates the terminal background fades start from.
func hostBackground(dark bool) string {
	if dark {
		return "#000000"
	}
	return "#ffffff"
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	theme.HostBackground = hostBackground(lipgloss.HasDarkBackground())
	model := ui.NewModel(opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
