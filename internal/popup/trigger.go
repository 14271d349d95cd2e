package popup

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/anchored-popup/internal/deferred"
	"github.com/atomicstack/anchored-popup/internal/logging/events"
	"github.com/atomicstack/anchored-popup/internal/positioning"
	tea "github.com/charmbracelet/bubbletea"
)

// TriggerMode selects which anchor interactions open and close the popup.
type TriggerMode string

const (
	TriggerHover        TriggerMode = "hover"
	TriggerClick        TriggerMode = "click"
	TriggerOutsideClick TriggerMode = "outsideClick"
	TriggerFocus        TriggerMode = "focus"
	TriggerManual       TriggerMode = "manual"
)

var triggerModes = []TriggerMode{TriggerHover, TriggerClick, TriggerOutsideClick, TriggerFocus, TriggerManual}

// ParseTrigger accepts trigger names case-insensitively.
func ParseTrigger(s string) (TriggerMode, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for _, mode := range triggerModes {
		if strings.ToLower(string(mode)) == norm {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown trigger %q", s)
}

// Trigger attaches a popup to an anchor and drives it from anchor events.
type Trigger struct {
	popup   *Popup
	anchor  positioning.Anchor
	mode    TriggerMode
	delay   time.Duration
	opening *deferred.Timer
	mounted bool
	hovered bool
}

// NewTrigger binds p to anchor. delay postpones every open request.
func NewTrigger(p *Popup, anchor positioning.Anchor, mode TriggerMode, delay time.Duration) *Trigger {
	if delay < 0 {
		delay = 0
	}
	return &Trigger{
		popup:   p,
		anchor:  anchor,
		mode:    mode,
		delay:   delay,
		opening: deferred.New(),
	}
}

// WithTick replaces the open-delay scheduler. Intended for tests.
func (t *Trigger) WithTick(tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd) *Trigger {
	t.opening.WithTick(tick)
	return t
}

// Popup returns the driven popup.
func (t *Trigger) Popup() *Popup { return t.popup }

// Mode returns the trigger mode.
func (t *Trigger) Mode() TriggerMode { return t.mode }

// Anchor returns the bound anchor.
func (t *Trigger) Anchor() positioning.Anchor { return t.anchor }

// Mounted reports whether the popup is attached and should be drawn. It
// stays true through the exit animation until ClosedMsg arrives.
func (t *Trigger) Mounted() bool { return t.mounted }

// Open requests the popup after the configured delay.
func (t *Trigger) Open() tea.Cmd {
	_, cmd := t.opening.Arm(t.delay, t.mount)
	return cmd
}

// Close cancels a pending open and closes a mounted popup.
func (t *Trigger) Close() tea.Cmd {
	t.opening.CancelPending()
	if !t.mounted {
		return nil
	}
	return t.popup.Close()
}

// Toggle closes an open popup and requests a closed one.
func (t *Trigger) Toggle() tea.Cmd {
	if t.popup.IsOpen() {
		return t.Close()
	}
	return t.Open()
}

func (t *Trigger) mount() tea.Cmd {
	if !t.mounted {
		t.popup.SetAnchor(t.anchor)
		t.mounted = true
		events.Trigger.Mount(t.popup.ID(), string(t.mode))
	}
	return t.popup.Open()
}

// PointerEnter handles the pointer entering the anchor.
func (t *Trigger) PointerEnter() tea.Cmd {
	t.hovered = true
	if t.mode == TriggerHover {
		return t.Open()
	}
	return nil
}

// PointerLeave handles the pointer leaving the anchor.
func (t *Trigger) PointerLeave() tea.Cmd {
	t.hovered = false
	if t.mode == TriggerHover {
		return t.Close()
	}
	return nil
}

// Click handles a click on the anchor.
func (t *Trigger) Click() tea.Cmd {
	switch t.mode {
	case TriggerClick, TriggerOutsideClick:
		return t.Toggle()
	case TriggerFocus:
		if !t.popup.IsOpen() {
			return t.Open()
		}
	}
	return nil
}

// DocumentClick handles a click anywhere that was not captured by the panel.
func (t *Trigger) DocumentClick(x, y int) tea.Cmd {
	if t.mode != TriggerOutsideClick || t.anchor == nil {
		return nil
	}
	if t.anchor.Bounds().Contains(x, y) {
		return nil
	}
	events.Trigger.OutsideClick(t.popup.ID(), x, y)
	return t.Close()
}

// Focus handles the anchor gaining focus.
func (t *Trigger) Focus() tea.Cmd {
	if t.mode == TriggerFocus {
		return t.Open()
	}
	return nil
}

// Blur handles the anchor losing focus.
func (t *Trigger) Blur() tea.Cmd {
	if t.mode == TriggerFocus {
		return t.Close()
	}
	return nil
}

// HandleMouse turns raw mouse events into anchor events. It reports whether
// the event was consumed by the anchor or the panel.
func (t *Trigger) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if t.mounted && t.popup.CapturesClick(msg) {
		return true, nil
	}
	inside := t.anchor != nil && t.anchor.Bounds().Contains(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		if inside && !t.hovered {
			return false, t.PointerEnter()
		}
		if !inside && t.hovered {
			return false, t.PointerLeave()
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false, nil
		}
		if inside {
			return true, t.Click()
		}
		return false, t.DocumentClick(msg.X, msg.Y)
	}
	return false, nil
}

// Update routes the open-delay timer, unmounts on ClosedMsg and forwards
// everything else to the popup.
func (t *Trigger) Update(msg tea.Msg) tea.Cmd {
	if handled, cmd := t.opening.Update(msg); handled {
		return cmd
	}
	if closed, ok := msg.(ClosedMsg); ok {
		if closed.ID == t.popup.ID() && t.mounted && !t.popup.IsOpen() {
			t.mounted = false
			events.Trigger.Unmount(t.popup.ID())
		}
		return nil
	}
	return t.popup.Update(msg)
}
