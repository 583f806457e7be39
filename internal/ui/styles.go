package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the widget kit.
const (
	ColorAccent    = "86"  // Cyan/green - titles, focused borders
	ColorHighlight = "205" // Magenta - selected items
	ColorDanger    = "196" // Red - warnings, the Reset button
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
	ColorButton    = "18"  // Dark blue - button fill
	ColorHoverBG   = "250" // Light gray - hovered button fill
	ColorHoverFG   = "16"  // Near-black - hovered button text
	ColorListBG    = "255" // White - expanded droplist rows
	ColorListSel   = "27"  // Blue - hovered droplist row
	ColorBorder    = "27"  // Blue - unfocused panel borders
)

// Styles contains shared style definitions used across widgets and views.
var Styles = struct {
	// Text styles
	Title    lipgloss.Style // Bold accent - panel titles
	Label    lipgloss.Style // Bold - control panel labels
	Normal   lipgloss.Style // Normal text
	Muted    lipgloss.Style // Dimmed text, key hints
	Selected lipgloss.Style // Highlighted items
	Danger   lipgloss.Style // Errors

	// Widget styles
	Button      lipgloss.Style // Button at rest
	ButtonHover lipgloss.Style // Button under the mouse
	ListRow     lipgloss.Style // Expanded droplist row
	ListRowSel  lipgloss.Style // Hovered / selected droplist row
	ListHeader  lipgloss.Style // Collapsed droplist value row

	// Border rune colors, applied by TitledBox
	Box      lipgloss.Style // Unfocused
	BoxFocus lipgloss.Style // Focused
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Label: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Danger: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorButton)),
	ButtonHover: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHoverFG)).
		Background(lipgloss.Color(ColorHoverBG)),
	ListRow: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHoverFG)).
		Background(lipgloss.Color(ColorListBG)),
	ListRowSel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorListBG)).
		Background(lipgloss.Color(ColorListSel)),
	ListHeader: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)),
	BoxFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}

// ApplyTheme overrides the accent and border colors in the shared styles.
// Empty values keep the defaults. Call before constructing widgets, as they
// capture styles at creation.
func ApplyTheme(accent, border string) {
	if accent != "" {
		c := lipgloss.Color(accent)
		Styles.Title = Styles.Title.Foreground(c)
		Styles.BoxFocus = Styles.BoxFocus.Foreground(c)
	}
	if border != "" {
		Styles.Box = Styles.Box.Foreground(lipgloss.Color(border))
	}
}
