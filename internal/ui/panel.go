package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tuikit/internal/ui/textutil"
)

// TitledBox draws content inside a border with a title spliced into the top
// edge, the way rich panels render them. Width and height are outer cell
// dimensions; content lines are clipped or padded to fit. A zero height
// sizes the box to the content.
func TitledBox(content, title string, border lipgloss.Border, style lipgloss.Style, width, height int) string {
	if width < 2 {
		return ""
	}
	inner := width - 2
	lines := strings.Split(content, "\n")
	if height > 0 {
		innerH := height - 2
		if innerH < 0 {
			innerH = 0
		}
		for len(lines) < innerH {
			lines = append(lines, "")
		}
		if len(lines) > innerH {
			lines = lines[:innerH]
		}
	}

	var b strings.Builder

	// Top edge, title left-aligned after one border rune.
	// The title may carry its own ANSI styling.
	if tw := textutil.VisualWidthStyled(title); title != "" && tw+2 < inner {
		b.WriteString(style.Render(border.TopLeft + border.Top))
		b.WriteString(" " + title + " ")
		b.WriteString(style.Render(strings.Repeat(border.Top, inner-tw-3) + border.TopRight))
	} else {
		b.WriteString(style.Render(border.TopLeft + strings.Repeat(border.Top, inner) + border.TopRight))
	}
	b.WriteString("\n")

	side := style.Render(border.Left)
	for _, l := range lines {
		pad := inner - textutil.VisualWidthStyled(l)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(side + l + strings.Repeat(" ", pad) + side + "\n")
	}

	b.WriteString(style.Render(border.BottomLeft + strings.Repeat(border.Bottom, inner) + border.BottomRight))
	return b.String()
}
