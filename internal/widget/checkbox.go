package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"tuikit/internal/ui"
)

// CheckKind selects the glyph pair a checkbox renders with.
type CheckKind int

const (
	CheckLarge CheckKind = iota
	CheckMedium
	CheckSmall
	CheckCross
	CheckASCII
)

func (k CheckKind) glyphs() (off, on string) {
	switch k {
	case CheckMedium:
		return "□", "■"
	case CheckSmall:
		return "▫", "▪"
	case CheckCross:
		return "🔳", "❎"
	case CheckASCII:
		return "[ ]", "[X]"
	default:
		return "🔳", "✅"
	}
}

// CheckKindNamed maps a kind name ("large", "medium", "small", "cross",
// "ascii") to its CheckKind. The bool reports whether the name is known.
func CheckKindNamed(name string) (CheckKind, bool) {
	switch name {
	case "large":
		return CheckLarge, true
	case "medium":
		return CheckMedium, true
	case "small":
		return CheckSmall, true
	case "cross":
		return CheckCross, true
	case "ascii":
		return CheckASCII, true
	}
	return CheckLarge, false
}

// Glyph returns the marker rendered for the given state. Useful for showing
// a sample of the current glyph set outside a live checkbox.
func (k CheckKind) Glyph(checked bool) string {
	off, on := k.glyphs()
	if checked {
		return on
	}
	return off
}

// Checkbox is a labelled toggle. Clicking it, or pressing space or enter
// while focused, flips the state and emits a ToggledMsg.
type Checkbox struct {
	name      string
	label     string
	kind      CheckKind
	indent    int
	topMargin int
	checked   bool

	style      lipgloss.Style
	hoverStyle lipgloss.Style

	hover bool
	focus bool
}

func NewCheckbox(name, label string) *Checkbox {
	return &Checkbox{
		name:       name,
		label:      label,
		style:      ui.Styles.Normal,
		hoverStyle: ui.Styles.ButtonHover,
	}
}

func (c *Checkbox) Name() string { return c.name }

func (c *Checkbox) Checked() bool { return c.checked }

func (c *Checkbox) SetChecked(checked bool) { c.checked = checked }

func (c *Checkbox) SetKind(k CheckKind) { c.kind = k }

func (c *Checkbox) SetIndent(n int) { c.indent = n }

func (c *Checkbox) SetTopMargin(n int) { c.topMargin = n }

func (c *Checkbox) SetStyle(s lipgloss.Style) { c.style = s }

func (c *Checkbox) Focus() { c.focus = true }

func (c *Checkbox) Blur() { c.focus = false }

func (c *Checkbox) Focused() bool { return c.focus }

func (c *Checkbox) zoneID() string { return "checkbox/" + c.name }

func (c *Checkbox) toggle() tea.Cmd {
	c.checked = !c.checked
	return emit(ToggledMsg{Name: c.name, Checked: c.checked})
}

func (c *Checkbox) Init() tea.Cmd { return nil }

func (c *Checkbox) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		c.hover = zone.Get(c.zoneID()).InBounds(msg)
		if c.hover && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return c, c.toggle()
		}
	case tea.KeyMsg:
		if c.focus && (msg.String() == " " || msg.String() == "enter") {
			return c, c.toggle()
		}
	}
	return c, nil
}

func (c *Checkbox) View() string {
	off, on := c.kind.glyphs()
	box := off
	if c.checked {
		box = on
	}
	labelStyle := c.style
	if c.hover {
		labelStyle = c.hoverStyle
	}
	line := box + " " + labelStyle.Render(c.label)
	if c.indent > 0 {
		line = strings.Repeat(" ", c.indent) + line
	}
	if c.topMargin > 0 {
		line = strings.Repeat("\n", c.topMargin) + line
	}
	return zone.Mark(c.zoneID(), line)
}
