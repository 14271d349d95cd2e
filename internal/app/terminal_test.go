package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectTerminalListsStandardStreams(t *testing.T) {
	info := DetectTerminal()
	want := []string{"stdin", "stdout", "stderr"}
	if len(info.Streams) != len(want) {
		t.Fatalf("expected %d streams, got %d", len(want), len(info.Streams))
	}
	for i, name := range want {
		if info.Streams[i].Name != name {
			t.Fatalf("expected stream %d to be %q, got %q", i, name, info.Streams[i].Name)
		}
	}
}

func TestDetectTerminalIgnoresRegularFiles(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	info := detectTerminal(f, nil)
	if info.Source != "" || info.Width != 0 || info.Height != 0 {
		t.Fatalf("expected no terminal size from a plain file, got %#v", info)
	}
	if len(info.Streams) != 2 || info.Streams[0].Terminal || info.Streams[0].Name != f.Name() {
		t.Fatalf("unexpected streams %#v", info.Streams)
	}
}

func TestTerminalViewportPrefersPinnedSize(t *testing.T) {
	info := Terminal{Source: "stdout", Width: 120, Height: 40}
	if w, h := info.Viewport(Config{Width: 80}); w != 80 || h != 40 {
		t.Fatalf("expected 80x40, got %dx%d", w, h)
	}
	if w, h := (Terminal{}).Viewport(Config{}); w != 0 || h != 0 {
		t.Fatalf("expected zero size without a terminal, got %dx%d", w, h)
	}
}

func TestHostBackgroundFollowsTerminal(t *testing.T) {
	if hostBackground(true) != "#000000" || hostBackground(false) != "#ffffff" {
		t.Fatalf("unexpected host backgrounds")
	}
}
