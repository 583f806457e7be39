package textutil

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestVisualWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"hello", 5},
		{"héllo", 5},
		{"🔳 box", 6}, // emoji is two columns
		{"", 0},
	}
	for _, c := range cases {
		if got := VisualWidth(c.in); got != c.want {
			t.Errorf("VisualWidth(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 8); got != "hello w…" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("short", 8); got != "short" {
		t.Errorf("no-op truncate = %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("zero width = %q", got)
	}
	// A wide rune that does not fit is dropped, not split.
	if got := Truncate("a🔳b", 3); got != "a…" {
		t.Errorf("wide rune truncate = %q", got)
	}
}

func TestPadAndCenter(t *testing.T) {
	if got := PadRightVisual("ab", 5); got != "ab   " {
		t.Errorf("PadRightVisual = %q", got)
	}
	if got := PadLeftVisual("ab", 5); got != "   ab" {
		t.Errorf("PadLeftVisual = %q", got)
	}
	if got := CenterVisual("ab", 5); got != " ab  " {
		t.Errorf("CenterVisual = %q", got)
	}
}

func TestStyledHelpers(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("abc")
	if got := VisualWidthStyled(styled); got != 3 {
		t.Errorf("VisualWidthStyled = %d, want 3", got)
	}
	if got := VisualWidthStyled(PadRightStyled(styled, 6)); got != 6 {
		t.Errorf("PadRightStyled width = %d, want 6", got)
	}
	if got := VisualWidthStyled(TruncateStyled(styled, 2)); got != 2 {
		t.Errorf("TruncateStyled width = %d, want 2", got)
	}
}
