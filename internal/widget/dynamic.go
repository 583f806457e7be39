package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuikit/internal/ui"
)

// Dynamic displays content that its owner replaces at runtime, for status
// readouts and anything else whose text changes between frames.
type Dynamic struct {
	name    string
	content string
	style   lipgloss.Style
	padding int
}

func NewDynamic(name, content string) *Dynamic {
	return &Dynamic{
		name:    name,
		content: content,
		style:   ui.Styles.Normal,
	}
}

func (d *Dynamic) Name() string { return d.name }

func (d *Dynamic) Set(content string) { d.content = content }

func (d *Dynamic) Content() string { return d.content }

func (d *Dynamic) SetStyle(s lipgloss.Style) { d.style = s }

func (d *Dynamic) SetPadding(n int) { d.padding = n }

func (d *Dynamic) Init() tea.Cmd { return nil }

func (d *Dynamic) Update(tea.Msg) (ui.View, tea.Cmd) { return d, nil }

func (d *Dynamic) View() string {
	content := d.content
	if d.padding > 0 {
		pad := strings.Repeat(" ", d.padding)
		lines := strings.Split(content, "\n")
		for i := range lines {
			lines[i] = pad + lines[i]
		}
		content = strings.Join(lines, "\n")
	}
	return d.style.Render(content)
}
