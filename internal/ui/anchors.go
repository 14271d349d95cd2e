package ui

import (
	"strings"

	"github.com/atomicstack/anchored-popup/internal/popup"
	"github.com/atomicstack/anchored-popup/internal/positioning"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	gridColumns   = 4
	markdownKey   = "markdown"
	markdownLabel = "markdown"
)

const markdownSource = `# Anchored popup

Popups follow their **anchor**, flip when the preferred side has no room, and
close after the transition settles.

- click an anchor to toggle it
- press *esc* to close everything`

// anchor is one clickable label in the demo grid. Its bounds move whenever
// the grid is laid out again.
type anchor struct {
	key     string
	label   string
	rect    positioning.Rect
	hidden  bool
	trigger *popup.Trigger
}

// Bounds implements positioning.Anchor.
func (a *anchor) Bounds() positioning.Rect {
	return a.rect
}

func (a *anchor) width() int {
	return lipgloss.Width(a.label) + 2
}

// newAnchors builds one anchor per placement plus a markdown anchor using the
// configured placement.
func newAnchors(opts Options) []*anchor {
	anchors := make([]*anchor, 0, len(positioning.Placements())+1)
	for _, placement := range positioning.Placements() {
		cfg := opts.Popup
		cfg.Placement = placement
		cfg.Header = string(placement)
		cfg.Text = describe(placement)
		a := &anchor{key: strings.ReplaceAll(string(placement), " ", "-"), label: string(placement)}
		a.trigger = popup.NewTrigger(popup.New(cfg), a, opts.Trigger, opts.Delay)
		anchors = append(anchors, a)
	}
	cfg := opts.Popup
	cfg.Template = popup.MarkdownTemplate(markdownSource, cfg.MaxWidth)
	md := &anchor{key: markdownKey, label: markdownLabel}
	md.trigger = popup.NewTrigger(popup.New(cfg), md, opts.Trigger, opts.Delay)
	return append(anchors, md)
}

func describe(p positioning.Placement) string {
	return "Prefers the " + p.Direction() + " side of its anchor and flips when there is no room."
}

// filterAnchors returns the indexes of anchors matching query, fuzzy first
// with a substring fallback.
func filterAnchors(anchors []*anchor, query string) []int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		all := make([]int, len(anchors))
		for i := range anchors {
			all[i] = i
		}
		return all
	}
	labels := make([]string, len(anchors))
	for i, a := range anchors {
		labels[i] = a.label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		out := make([]int, 0, len(matches))
		for i := range anchors {
			if _, ok := matches[i]; ok {
				out = append(out, i)
			}
		}
		return out
	}
	lower := strings.ToLower(trimmed)
	var out []int
	for i, a := range anchors {
		if strings.Contains(strings.ToLower(a.key), lower) {
			out = append(out, i)
		}
	}
	return out
}

// layoutAnchors spreads the visible anchors over a grid filling the body
// rows between top and bottom (exclusive).
func layoutAnchors(anchors []*anchor, visible []int, width, top, bottom int) {
	if len(visible) == 0 || width <= 0 {
		return
	}
	rows := (len(visible) + gridColumns - 1) / gridColumns
	body := bottom - top
	if body < rows {
		body = rows
	}
	cellW := width / gridColumns
	for n, idx := range visible {
		a := anchors[idx]
		row, col := n/gridColumns, n%gridColumns
		y := top + row*body/rows + body/(2*rows)
		if rows > 1 && row == rows-1 {
			y = bottom - 1
		}
		if row == 0 && rows > 1 {
			y = top
		}
		w := a.width()
		x := col*cellW + (cellW-w)/2
		switch col {
		case 0:
			x = 0
		case gridColumns - 1:
			x = width - w
		}
		if x < 0 {
			x = 0
		}
		a.rect = positioning.Rect{X: x, Y: y, Width: w, Height: 1}
	}
}
