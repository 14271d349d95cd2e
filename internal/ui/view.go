package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const title = "anchored popup"

// View implements tea.Model. Popup layers are composited over the anchor
// grid, the focused anchor's popup last.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	c := newCanvas(m.width, m.height)
	c.put(0, 0, m.titleLine())
	c.put(0, 1, m.filterLine())
	focused := m.focused()
	for _, idx := range m.visible {
		a := m.anchors[idx]
		c.put(a.rect.X, a.rect.Y, m.renderAnchor(a, a == focused))
	}
	if m.opts.ShowFooter {
		c.put(0, m.height-1, render(styles.Footer, m.help.View(m.keys)))
	}
	for _, a := range m.anchors {
		if a != focused {
			m.drawPopup(c, a)
		}
	}
	if focused != nil {
		m.drawPopup(c, focused)
	}
	return c.String()
}

func (m *Model) drawPopup(c *canvas, a *anchor) {
	if !a.trigger.Mounted() {
		return
	}
	layer, ok := a.trigger.Popup().Render()
	if !ok {
		return
	}
	c.putLines(layer.X, layer.Y, layer.Lines)
	if layer.Arrow != nil {
		c.put(layer.Arrow.X, layer.Arrow.Y, layer.Arrow.Glyph)
	}
}

func (m *Model) titleLine() string {
	cfg := m.opts.Popup
	info := fmt.Sprintf("  trigger %s · %s %s", m.opts.Trigger, cfg.Transition, cfg.TransitionDuration)
	return render(styles.Title, title) + render(styles.Info, info)
}

func (m *Model) filterLine() string {
	if m.filtering {
		return m.filter.View()
	}
	if query := m.filter.Value(); query != "" {
		return render(styles.FilterPrompt, m.filter.Prompt) + render(styles.Filter, query)
	}
	return render(styles.Footer, "press / to filter")
}

func (m *Model) renderAnchor(a *anchor, focused bool) string {
	style := styles.Anchor
	switch {
	case a.trigger.Popup().IsOpen():
		style = styles.AnchorOpen
	case focused:
		style = styles.AnchorFocused
	}
	if style == nil {
		return " " + a.label + " "
	}
	return style.Render(a.label)
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
