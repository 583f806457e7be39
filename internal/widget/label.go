package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuikit/internal/ui"
	"tuikit/internal/ui/textutil"
)

// Align positions label text within its width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label is a static single line of styled text.
type Label struct {
	text  string
	align Align
	style lipgloss.Style
	width int
}

func NewLabel(text string) *Label {
	return &Label{
		text:  text,
		style: ui.Styles.Label,
	}
}

func (l *Label) SetText(text string) { l.text = text }

func (l *Label) Text() string { return l.text }

func (l *Label) SetAlign(a Align) { l.align = a }

func (l *Label) SetStyle(s lipgloss.Style) { l.style = s }

func (l *Label) SetSize(width, _ int) { l.width = width }

func (l *Label) Init() tea.Cmd { return nil }

func (l *Label) Update(tea.Msg) (ui.View, tea.Cmd) { return l, nil }

func (l *Label) View() string {
	text := l.text
	if l.width > 0 {
		text = textutil.Truncate(text, l.width)
		switch l.align {
		case AlignCenter:
			text = textutil.CenterVisual(text, l.width)
		case AlignRight:
			text = textutil.PadLeftVisual(text, l.width)
		}
	}
	return l.style.Render(text)
}
