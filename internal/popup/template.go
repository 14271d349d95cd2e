package popup

import (
	"strings"

	"github.com/atomicstack/anchored-popup/internal/logging"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
)

// Fragment is an injected piece of popup content.
type Fragment interface {
	View() string
}

// Template renders a fragment bound to the popup that hosts it. The popup
// calls Instantiate at most once.
type Template interface {
	Instantiate(implicit *Popup) Fragment
}

// TemplateFunc renders content on every view, with the popup as context.
type TemplateFunc func(p *Popup) string

// Instantiate implements Template.
func (f TemplateFunc) Instantiate(implicit *Popup) Fragment {
	return boundFragment{render: f, popup: implicit}
}

type boundFragment struct {
	render TemplateFunc
	popup  *Popup
}

func (b boundFragment) View() string {
	return b.render(b.popup)
}

type staticFragment string

func (s staticFragment) View() string {
	return string(s)
}

type markdownTemplate struct {
	source string
	width  int
}

// MarkdownTemplate renders source as terminal markdown, word-wrapped to
// width, once at injection.
func MarkdownTemplate(source string, width int) Template {
	return markdownTemplate{source: source, width: width}
}

func (m markdownTemplate) Instantiate(*Popup) Fragment {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("dark")}
	if m.width > 0 {
		opts = append(opts, glamour.WithWordWrap(m.width))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		logging.Error(err)
		return staticFragment(m.source)
	}
	out, err := renderer.Render(m.source)
	if err != nil {
		logging.Error(err)
		return staticFragment(m.source)
	}
	return staticFragment(trimBlankLines(out))
}

func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && blank(lines[start]) {
		start++
	}
	for end > start && blank(lines[end-1]) {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

func blank(line string) bool {
	return strings.TrimSpace(ansi.Strip(line)) == ""
}
