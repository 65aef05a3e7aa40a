package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/twenty48/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "2048", core.ColorBrightYellow)
	s.DrawText(5, 0, "Max")
	s.SetColored(0, 2, '┌', core.ColorGray)

	out := RenderScreen(s)

	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("rendered %d line breaks, want 2", n)
	}
	for _, want := range []string{"2048", "Max", "┌"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawTextColored(0, 0, "4096", core.Color(200))

	if out := RenderScreen(s); !strings.Contains(out, "4096") {
		t.Errorf("output = %q, want the text rendered with the default style", out)
	}
}
