package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"tuikit/internal/ui/textutil"
)

// barLines draws the tab bar: the tab tops, the labels, and the rule that
// doubles as the panel's top edge. Tabs left of firstTab collapse into a
// five-cell "-" stub that reselects the nearest hidden tab when clicked.
func (t *Tabs) barLines(style lipgloss.Style) []string {
	if len(t.tabs) == 0 {
		return []string{style.Render("╭" + strings.Repeat("─", max(0, t.width-2)) + "╮")}
	}
	return []string{
		t.barTops(style),
		t.barLabels(style),
		t.barRule(style),
	}
}

func (t *Tabs) barTops(style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString("  ")
	used := 2
	rem := t.width - 2
	if t.firstTab > 0 {
		b.WriteString(style.Render("╭───╮"))
		used += 5
		rem -= 5
	}
	for i := t.firstTab; i < len(t.tabs); i++ {
		w := t.tabs[i].barWidth() - 2
		if w+2 >= rem {
			w = rem - 3
		}
		if w < 0 {
			break
		}
		b.WriteString(style.Render("╭" + strings.Repeat("─", w) + "╮"))
		used += w + 2
		rem -= w + 2
	}
	b.WriteString(strings.Repeat(" ", max(0, t.width-used)))
	return b.String()
}

func (t *Tabs) barLabels(style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString("  ")
	used := 2
	rem := t.width - 2
	if t.firstTab > 0 {
		b.WriteString(style.Render("│") + zone.Mark(t.prevZoneID(), " - ") + style.Render("│"))
		used += 5
		rem -= 5
	}
	for i := t.firstTab; i < len(t.tabs); i++ {
		tab := t.tabs[i]
		w := tab.barWidth() - 4
		if w+5 > rem {
			w = rem - 5
		}
		switch {
		case w > 1:
			labelW := w
			if tab.hasClose {
				labelW = w - 2
			}
			inner := " " + textutil.Truncate(tab.label, labelW) + " "
			if tab.hasClose {
				inner += zone.Mark(t.closeZoneID(tab.name), "❎")
			}
			b.WriteString(style.Render("│") + zone.Mark(t.tabZoneID(tab.name), inner) + style.Render("│"))
			used += w + 4
			rem -= w + 4
		case w > -2:
			b.WriteString(style.Render("│") + textutil.Truncate(tab.label, w+2) + style.Render("│"))
			used += w + 4
		case w > -3:
			b.WriteString(style.Render("││"))
			used += 2
		}
		if w <= 1 {
			break
		}
	}
	b.WriteString(strings.Repeat(" ", max(0, t.width-used)))
	return b.String()
}

func (t *Tabs) barRule(style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString("╭─")
	rem := t.width - 2
	if t.firstTab > 0 {
		b.WriteString("┴───┴")
		rem -= 5
	}
	for i := t.firstTab; i < len(t.tabs); i++ {
		tab := t.tabs[i]
		w := tab.barWidth() - 4
		clipped := false
		if w+5 > rem {
			w = rem - 5
			clipped = true
		}
		if tab.name == t.selected {
			if w > -2 {
				// The selected tab opens into the body.
				b.WriteString("╯" + strings.Repeat(" ", w+2) + "╰")
				rem -= w + 4
			}
		} else {
			if w > -3 {
				b.WriteString("┴" + strings.Repeat("─", max(0, w+2)) + "┴")
				rem -= w + 4
				if clipped {
					break
				}
			} else if w == -3 {
				b.WriteString("─")
				rem--
				break
			}
		}
	}
	if rem > 0 {
		b.WriteString(strings.Repeat("─", rem-1) + "╮")
	}
	return style.Render(b.String())
}
