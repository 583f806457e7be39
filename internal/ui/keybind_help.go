package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the help box listing every bound sequence.
// Shown by the demo app's "?" overlay and after the leader key.
func RenderKeybindHelp(reg *KeybindRegistry) string {
	if reg == nil {
		return ""
	}
	hints := reg.Hints()
	if len(hints) == 0 {
		return ""
	}

	// Sort sequences for stable display
	seqs := make([]string, 0, len(hints))
	for s := range hints {
		seqs = append(seqs, s)
	}
	sort.Strings(seqs)

	bindings := make([]key.Binding, 0, len(seqs))
	for _, s := range seqs {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(s),
			key.WithHelp(s, hints[s]),
		))
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	content := helpModel.ShortHelpView(bindings)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)
	return boxStyle.Render(content)
}
