package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Anchor        *lipgloss.Style
	AnchorFocused *lipgloss.Style
	AnchorOpen    *lipgloss.Style
	Title         *lipgloss.Style
	Info          *lipgloss.Style
	Footer        *lipgloss.Style
	Filter        *lipgloss.Style
	FilterPrompt  *lipgloss.Style
}

// Palette holds the hex colours of one popup variant. Hex is required so
// fades can be blended.
type Palette struct {
	Foreground string
	Background string
	Border     string
	Header     string
}

var (
	// Popup is the default panel palette.
	Popup = Palette{
		Foreground: "#d0d0d0",
		Background: "#1c1c1c",
		Border:     "#5f87af",
		Header:     "#ffffff",
	}
	// Inverted swaps the panel to a light surface.
	Inverted = Palette{
		Foreground: "#262626",
		Background: "#e4e4e4",
		Border:     "#444444",
		Header:     "#000000",
	}
)

var defaultStyles = Styles{
	Anchor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")).Padding(0, 1),
	),
	AnchorFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	AnchorOpen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("34")).Bold(true).Padding(0, 1),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// For returns the palette for a popup variant.
func For(inverted bool) Palette {
	if inverted {
		return Inverted
	}
	return Popup
}

// HostBackground is the terminal background faded panels emerge from.
var HostBackground = "#000000"

// Faded blends every colour of p, background included, from HostBackground
// towards its own value. progress 0 is invisible, 1 is the palette unchanged.
func (p Palette) Faded(progress float64) Palette {
	if progress >= 1 {
		return p
	}
	return Palette{
		Foreground: Blend(HostBackground, p.Foreground, progress),
		Background: Blend(HostBackground, p.Background, progress),
		Border:     Blend(HostBackground, p.Border, progress),
		Header:     Blend(HostBackground, p.Header, progress),
	}
}

// Blend mixes two hex colours in Lab space. Unparseable input returns to.
func Blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	if t <= 0 {
		return a.Hex()
	}
	if t >= 1 {
		return b.Hex()
	}
	return a.BlendLab(b, t).Clamped().Hex()
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
