package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"tuikit/internal/ui"
	"tuikit/internal/ui/textutil"
)

// Button is a clickable label that highlights under the mouse. It emits a
// PressedMsg when clicked, or when it has keyboard focus and receives enter
// or space.
type Button struct {
	name   string
	label  string
	width  int // 0 sizes to the label plus a cell each side
	indent int
	hidden bool

	style      lipgloss.Style
	hoverStyle lipgloss.Style

	hover bool
	focus bool
}

func NewButton(name, label string) *Button {
	return &Button{
		name:       name,
		label:      label,
		style:      ui.Styles.Button,
		hoverStyle: ui.Styles.ButtonHover,
	}
}

func (b *Button) Name() string { return b.name }

func (b *Button) SetLabel(label string) { b.label = label }

func (b *Button) SetWidth(w int) { b.width = w }

func (b *Button) SetIndent(n int) { b.indent = n }

func (b *Button) SetHidden(hidden bool) { b.hidden = hidden }

func (b *Button) SetStyle(s lipgloss.Style) { b.style = s }

func (b *Button) SetHoverStyle(s lipgloss.Style) { b.hoverStyle = s }

func (b *Button) Focus() { b.focus = true }

func (b *Button) Blur()         { b.focus = false }
func (b *Button) Focused() bool { return b.focus }

func (b *Button) zoneID() string { return "button/" + b.name }

func (b *Button) Init() tea.Cmd { return nil }

func (b *Button) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if b.hidden {
		return b, nil
	}
	switch msg := msg.(type) {
	case tea.MouseMsg:
		b.hover = zone.Get(b.zoneID()).InBounds(msg)
		if b.hover && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return b, emit(PressedMsg{Name: b.name})
		}
	case tea.KeyMsg:
		if b.focus && (msg.String() == "enter" || msg.String() == " ") {
			return b, emit(PressedMsg{Name: b.name})
		}
	}
	return b, nil
}

func (b *Button) View() string {
	if b.hidden {
		return ""
	}
	width := b.width
	if width <= 0 {
		width = textutil.VisualWidth(b.label) + 2
	}
	style := b.style
	if b.hover {
		style = b.hoverStyle
	}
	face := style.Render(textutil.CenterVisual(b.label, width))
	if b.indent > 0 {
		face = strings.Repeat(" ", b.indent) + face
	}
	return zone.Mark(b.zoneID(), face)
}
