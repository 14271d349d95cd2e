package popup

import (
	"strings"

	"github.com/atomicstack/anchored-popup/internal/positioning"
	"github.com/atomicstack/anchored-popup/internal/theme"
	"github.com/atomicstack/anchored-popup/internal/transition"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

var arrowGlyphs = map[string]string{
	"top":    "▼",
	"bottom": "▲",
	"left":   "▶",
	"right":  "◀",
}

// Layer is one frame of the popup ready to be composited over the host view.
type Layer struct {
	X, Y      int
	Lines     []string
	Direction string
	// Arrow is nil for basic popups and while geometry is animating.
	Arrow *ArrowMark
}

// ArrowMark is the arrow glyph drawn in the margin between anchor and panel.
type ArrowMark struct {
	X, Y  int
	Glyph string
}

// Size implements positioning.Subject with the fully shown panel size.
func (p *Popup) Size() (int, int) {
	lines := p.panelLines(theme.For(p.cfg.Inverted))
	width := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}
	return width, len(lines)
}

// Bounds returns the rectangle of the fully shown panel, if anchored.
func (p *Popup) Bounds() (positioning.Rect, bool) {
	if p.positioning == nil {
		return positioning.Rect{}, false
	}
	pos := p.positioning.Position()
	w, h := p.Size()
	return positioning.Rect{X: pos.X, Y: pos.Y, Width: w, Height: h}, true
}

// Contains reports whether the cell (x, y) is covered by the settled open
// panel. A panel that is still animating, in or out, covers nothing.
func (p *Popup) Contains(x, y int) bool {
	if !p.isOpen || p.transition.Animating() || !p.transition.Visible() {
		return false
	}
	bounds, ok := p.Bounds()
	return ok && bounds.Contains(x, y)
}

// CapturesClick reports whether a click lands on the panel. Captured clicks
// must not reach the host's global handlers, where they would read as an
// outside click.
func (p *Popup) CapturesClick(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionRelease {
		return false
	}
	return p.Contains(msg.X, msg.Y)
}

// Render produces the current frame, or false when nothing is visible.
func (p *Popup) Render() (Layer, bool) {
	if p.positioning == nil || !p.transition.Visible() {
		return Layer{}, false
	}
	frame := p.transition.Frame()
	palette := theme.For(p.cfg.Inverted)
	if frame.Kind.Fades() {
		palette = palette.Faded(frame.Progress)
	}
	lines, offset := transition.Apply(p.panelLines(palette), frame)
	if len(lines) == 0 {
		return Layer{}, false
	}
	pos := p.positioning.Position()
	layer := Layer{
		X:         pos.X,
		Y:         pos.Y + offset,
		Lines:     lines,
		Direction: p.positioning.Placement().Direction(),
	}
	if !p.cfg.Basic && (frame.Progress >= 1 || frame.Kind.Fades()) {
		arrow := p.positioning.Arrow()
		glyph := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Border)).Render(arrowGlyphs[arrow.Direction])
		layer.Arrow = &ArrowMark{X: arrow.X, Y: arrow.Y, Glyph: glyph}
	}
	return layer, true
}

// View renders the fully shown panel without positioning.
func (p *Popup) View() string {
	return strings.Join(p.panelLines(theme.For(p.cfg.Inverted)), "\n")
}

func (p *Popup) panelLines(palette theme.Palette) []string {
	fg := lipgloss.Color(palette.Foreground)
	bg := lipgloss.Color(palette.Background)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(palette.Border)).
		BorderBackground(bg).
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return strings.Split(box.Render(p.content(palette)), "\n")
}

func (p *Popup) content(palette theme.Palette) string {
	limit := p.cfg.MaxWidth
	if p.cfg.Template != nil {
		if p.fragment == nil {
			return ""
		}
		return p.fragment.View()
	}
	parts := make([]string, 0, 2)
	if header := strings.TrimSpace(p.cfg.Header); header != "" {
		header = truncate.StringWithTail(header, uint(limit), "…")
		parts = append(parts, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(palette.Header)).Render(header))
	}
	parts = append(parts, wordwrap.String(p.cfg.Text, limit))
	return strings.Join(parts, "\n")
}
