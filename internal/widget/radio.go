package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"tuikit/internal/ui"
)

// RadioKind selects the glyph pair a radio button renders with.
type RadioKind int

const (
	RadioLarge RadioKind = iota
	RadioSmall
	RadioASCII
	RadioPointer
)

// Colored circle glyphs for RadioLarge, keyed by color name.
var radioCircles = map[string]string{
	"blue":   "🔵",
	"red":    "🔴",
	"yellow": "🌕",
	"white":  "⚪",
}

func (k RadioKind) glyphs(color string) (off, on string) {
	switch k {
	case RadioSmall:
		return "၀", "◉"
	case RadioASCII:
		return "( )", "(o)"
	case RadioPointer:
		return "  ", "👉"
	default:
		circle, ok := radioCircles[color]
		if !ok {
			circle = radioCircles["blue"]
		}
		return "⚫", circle
	}
}

// RadioKindNamed maps a kind name ("large", "small", "ascii", "pointer") to
// its RadioKind. The bool reports whether the name is known.
func RadioKindNamed(name string) (RadioKind, bool) {
	switch name {
	case "large":
		return RadioLarge, true
	case "small":
		return RadioSmall, true
	case "ascii":
		return RadioASCII, true
	case "pointer":
		return RadioPointer, true
	}
	return RadioLarge, false
}

// Glyph returns the marker rendered for the given state. Useful for showing
// a sample of the current glyph set outside a live button.
func (k RadioKind) Glyph(selected bool, color string) string {
	off, on := k.glyphs(color)
	if selected {
		return on
	}
	return off
}

// Radio is one button of a mutually exclusive group. Clicking it selects it
// within its group and emits a SelectedMsg carrying the group name.
type Radio struct {
	name   string
	label  string
	kind   RadioKind
	color  string
	indent int

	selected bool
	group    *RadioGroup

	style      lipgloss.Style
	hoverStyle lipgloss.Style

	hover bool
	focus bool
}

func (r *Radio) Name() string { return r.name }

func (r *Radio) Selected() bool { return r.selected }

func (r *Radio) SetIndent(n int) { r.indent = n }

func (r *Radio) Focus() { r.focus = true }

func (r *Radio) Blur() { r.focus = false }

func (r *Radio) Focused() bool { return r.focus }

func (r *Radio) zoneID() string { return "radio/" + r.group.name + "/" + r.name }

// choose selects this button within its group. Re-selecting the button that
// is already selected emits nothing.
func (r *Radio) choose() tea.Cmd {
	if r.selected {
		return nil
	}
	r.group.Select(r.name)
	return emit(SelectedMsg{Name: r.group.name, Item: r.name})
}

func (r *Radio) Init() tea.Cmd { return nil }

func (r *Radio) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		r.hover = zone.Get(r.zoneID()).InBounds(msg)
		if r.hover && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return r, r.choose()
		}
	case tea.KeyMsg:
		if r.focus && msg.String() == " " {
			return r, r.choose()
		}
	}
	return r, nil
}

func (r *Radio) View() string {
	off, on := r.kind.glyphs(r.color)
	mark := off
	if r.selected {
		mark = on
	}
	labelStyle := r.style
	if r.hover {
		labelStyle = r.hoverStyle
	}
	line := mark + " " + labelStyle.Render(r.label)
	if r.indent > 0 {
		line = strings.Repeat(" ", r.indent) + line
	}
	return zone.Mark(r.zoneID(), line)
}

// RadioGroup owns a set of Radio buttons and keeps exactly one selected.
type RadioGroup struct {
	name    string
	buttons []*Radio
	byName  map[string]*Radio
}

// NewRadioGroup builds one Radio per label. Button names are the lowercased
// labels with spaces replaced by underscores.
func NewRadioGroup(name string, kind RadioKind, color string, labels ...string) *RadioGroup {
	g := &RadioGroup{
		name:   name,
		byName: make(map[string]*Radio, len(labels)),
	}
	for _, label := range labels {
		r := &Radio{
			name:       strings.ReplaceAll(strings.ToLower(label), " ", "_"),
			label:      label,
			kind:       kind,
			color:      color,
			group:      g,
			style:      ui.Styles.Normal,
			hoverStyle: ui.Styles.ButtonHover,
		}
		g.buttons = append(g.buttons, r)
		g.byName[r.name] = r
	}
	return g
}

// Buttons returns the group's radios in declaration order.
func (g *RadioGroup) Buttons() []*Radio { return g.buttons }

// Button returns the radio with the given name, or nil.
func (g *RadioGroup) Button(name string) *Radio { return g.byName[name] }

// SetKind switches the glyph set on every button in the group.
func (g *RadioGroup) SetKind(k RadioKind) {
	for _, b := range g.buttons {
		b.kind = k
	}
}

// SetColor switches the selected-marker color on every button in the group.
func (g *RadioGroup) SetColor(color string) {
	for _, b := range g.buttons {
		b.color = color
	}
}

// Select marks the named button and clears the rest.
func (g *RadioGroup) Select(name string) {
	for _, b := range g.buttons {
		b.selected = b.name == name
	}
}

// Selected returns the name of the selected button, or "".
func (g *RadioGroup) Selected() string {
	for _, b := range g.buttons {
		if b.selected {
			return b.name
		}
	}
	return ""
}
