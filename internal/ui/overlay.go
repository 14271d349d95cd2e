package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// canvas is a fixed-size grid of styled rows that layers are pasted onto.
type canvas struct {
	width int
	rows  []string
}

func newCanvas(width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	rows := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range rows {
		rows[i] = blank
	}
	return &canvas{width: width, rows: rows}
}

// put overwrites the cells starting at (x, y) with s, clipping at the
// canvas edges. s must be a single line.
func (c *canvas) put(x, y int, s string) {
	if y < 0 || y >= len(c.rows) || x >= c.width {
		return
	}
	if x < 0 {
		s = ansi.TruncateLeft(s, -x, "")
		x = 0
	}
	w := ansi.StringWidth(s)
	if x+w > c.width {
		s = ansi.Truncate(s, c.width-x, "")
		w = ansi.StringWidth(s)
	}
	if w == 0 {
		return
	}
	row := c.rows[y]
	left := ansi.Truncate(row, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(row, x+w, "")
	c.rows[y] = left + s + right
}

// putLines pastes a block of lines with its top-left cell at (x, y).
func (c *canvas) putLines(x, y int, lines []string) {
	for i, line := range lines {
		c.put(x, y+i, line)
	}
}

func (c *canvas) String() string {
	return strings.Join(c.rows, "\n")
}
