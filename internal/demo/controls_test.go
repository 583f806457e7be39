package demo

import (
	"strings"
	"testing"

	"tuikit/internal/config"
	"tuikit/internal/widget"
)

func TestControls_StartStopPause(t *testing.T) {
	c := newControls(config.Default())

	c.handle(widget.PressedMsg{Name: "start"})
	if !c.running {
		t.Fatal("start did not set running")
	}
	if c.status.Text() != "Running sweep..." {
		t.Errorf("status %q", c.status.Text())
	}
	if c.pauseBtn.View() == "" {
		t.Error("pause button stayed hidden while running")
	}

	c.handle(widget.PressedMsg{Name: "pause"})
	if !c.paused || c.status.Text() != "Sweep paused" {
		t.Errorf("paused=%v status=%q", c.paused, c.status.Text())
	}
	c.handle(widget.PressedMsg{Name: "pause"})
	if c.paused {
		t.Error("resume did not clear paused")
	}

	c.handle(widget.PressedMsg{Name: "start"})
	if c.running || c.paused {
		t.Error("stop did not reset state")
	}
	if c.status.Text() != "" {
		t.Errorf("status %q after stop", c.status.Text())
	}
	if c.pauseBtn.View() != "" {
		t.Error("pause button visible after stop")
	}
}

func TestControls_PauseNeedsRunning(t *testing.T) {
	c := newControls(config.Default())
	c.handle(widget.PressedMsg{Name: "pause"})
	if c.paused {
		t.Error("pause took effect while stopped")
	}
}

func TestControls_ResetButtonVisibility(t *testing.T) {
	c := newControls(config.Default())
	if c.resetBtn.View() != "" {
		t.Fatal("reset button visible by default")
	}
	c.handle(widget.ToggledMsg{Name: "enable_reset", Checked: true})
	if !strings.Contains(stripStyle(c.resetBtn.View()), "Reset") {
		t.Error("reset button not revealed")
	}
	c.handle(widget.ToggledMsg{Name: "enable_reset", Checked: false})
	if c.resetBtn.View() != "" {
		t.Error("reset button not hidden again")
	}
}

func TestControls_CheckTypeRestylesSamples(t *testing.T) {
	c := newControls(config.Default())
	c.handle(widget.SelectedMsg{Name: "checktype", Item: "ascii"})
	if !strings.Contains(c.checks[0].View(), "[X]") {
		t.Error("checked sample not in ascii glyphs")
	}
	if !strings.Contains(c.checks[1].View(), "[ ]") {
		t.Error("unchecked sample not in ascii glyphs")
	}
	if !strings.Contains(c.resetEnable.View(), "[ ]") {
		t.Error("reset enable checkbox not restyled")
	}
}

func TestControls_RadioRestyle(t *testing.T) {
	c := newControls(config.Default())
	c.handle(widget.SelectedMsg{Name: "radiotype", Item: "ascii"})
	if !strings.Contains(c.radios.Button("option_1").View(), "(o)") {
		t.Error("selected radio not in ascii glyphs")
	}
	c.handle(widget.SelectedMsg{Name: "radiotype", Item: "large"})
	c.handle(widget.SelectedMsg{Name: "radiocolors", Item: "red"})
	if !strings.Contains(c.radios.Button("option_1").View(), "🔴") {
		t.Error("selected radio not recolored")
	}
}

// stripStyle removes ANSI escape sequences.
func stripStyle(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		case r == '\x1b':
			inEsc = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
