package widget

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"tuikit/internal/ui"
)

// TitleInput is a single-line text field inside a three-row box with the
// title fixed in the top border. The border doubles while focused.
type TitleInput struct {
	name  string
	title string
	width int

	input textinput.Model
}

func NewTitleInput(name, title, placeholder string) *TitleInput {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	return &TitleInput{
		name:  name,
		title: title,
		input: in,
	}
}

func (t *TitleInput) Name() string { return t.name }

func (t *TitleInput) Value() string { return t.input.Value() }

func (t *TitleInput) SetValue(v string) { t.input.SetValue(v) }

// SetEchoMode switches between normal and concealed input, e.g.
// textinput.EchoPassword for masked fields.
func (t *TitleInput) SetEchoMode(m textinput.EchoMode) { t.input.EchoMode = m }

func (t *TitleInput) SetSize(width, _ int) {
	t.width = width
	t.input.Width = width - 4
}

func (t *TitleInput) Focus() { t.input.Focus() }

func (t *TitleInput) Blur() { t.input.Blur() }

func (t *TitleInput) Focused() bool { return t.input.Focused() }

func (t *TitleInput) zoneID() string { return "input/" + t.name }

func (t *TitleInput) Init() tea.Cmd { return textinput.Blink }

func (t *TitleInput) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			zone.Get(t.zoneID()).InBounds(msg) {
			return t, t.input.Focus()
		}
		return t, nil
	case tea.KeyMsg:
		if msg.String() == "enter" && t.input.Focused() {
			return t, emit(SubmitMsg{Name: t.name, Command: t.input.Value()})
		}
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t *TitleInput) View() string {
	border := lipgloss.NormalBorder()
	style := ui.Styles.Box
	if t.input.Focused() {
		border = lipgloss.DoubleBorder()
		style = ui.Styles.BoxFocus
	}
	box := ui.TitledBox(" "+t.input.View(), t.title, border, style, t.width, 3)
	return zone.Mark(t.zoneID(), box)
}
