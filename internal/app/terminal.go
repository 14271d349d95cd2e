package app

import (
	"os"

	"golang.org/x/term"
)

// Stream reports whether one standard descriptor is attached to a terminal.
type Stream struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Err      string `json:"error,omitempty"`
}

// Terminal describes the screen the popups will be laid out on. Width and
// Height come from the first stream that is a sized terminal.
type Terminal struct {
	Source  string   `json:"source,omitempty"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Streams []Stream `json:"streams"`
}

// Viewport returns the canvas size Run will use for cfg: pinned dimensions
// win, zero falls back to the detected terminal size.
func (t Terminal) Viewport(cfg Config) (int, int) {
	w, h := cfg.Width, cfg.Height
	if w == 0 {
		w = t.Width
	}
	if h == 0 {
		h = t.Height
	}
	return w, h
}

// DetectTerminal inspects stdin, stdout and stderr in that order.
func DetectTerminal() Terminal {
	return detectTerminal(os.Stdin, os.Stdout, os.Stderr)
}

func detectTerminal(files ...*os.File) Terminal {
	var info Terminal
	for _, f := range files {
		info.add(inspect(f))
	}
	return info
}

func inspect(f *os.File) Stream {
	st := Stream{Name: streamName(f)}
	if f == nil {
		return st
	}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return st
	}
	st.Terminal = true
	w, h, err := term.GetSize(fd)
	if err != nil {
		st.Err = err.Error()
		return st
	}
	st.Width, st.Height = w, h
	return st
}

func (t *Terminal) add(st Stream) {
	t.Streams = append(t.Streams, st)
	if t.Source == "" && st.Terminal && st.Err == "" {
		t.Source, t.Width, t.Height = st.Name, st.Width, st.Height
	}
}

func streamName(f *os.File) string {
	switch f {
	case os.Stdin:
		return "stdin"
	case os.Stdout:
		return "stdout"
	case os.Stderr:
		return "stderr"
	}
	if f == nil {
		return ""
	}
	return f.Name()
}
