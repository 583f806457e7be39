package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"tuikit/internal/ui"
	"tuikit/internal/ui/textutil"
)

// tabEntry is one piece of a tab's content, either a nested view or text.
type tabEntry struct {
	view   ui.View
	text   string
	wrap   bool
	expand bool // sized to the space left below the previous entries
}

// Tab holds one page of a Tabs widget.
type Tab struct {
	name     string
	label    string
	hasClose bool
	entries  []tabEntry

	scroll   int
	atBottom bool
}

func (t *Tab) Name() string { return t.name }

// barWidth is the cells the tab occupies in the bar, borders included.
func (t *Tab) barWidth() int {
	w := textutil.VisualWidth(t.label) + 4
	if t.hasClose {
		w += 2
	}
	return w
}

// Tabs is a bordered container with a row of selectable tabs along the top.
// The bar scrolls horizontally when the tabs outgrow the width, keeping the
// selected tab visible and showing a "-" stub for the clipped left side.
// Tab bodies scroll with the mouse wheel and stick to the bottom while new
// content arrives.
type Tabs struct {
	name   string
	width  int
	height int

	tabs     []*Tab
	selected string
	firstTab int

	focus    bool
	lastBody int // content line count at last render, for wheel clamping
}

func NewTabs(name string) *Tabs {
	return &Tabs{name: name}
}

func (t *Tabs) Name() string { return t.name }

func (t *Tabs) SetSize(width, height int) { t.width, t.height = width, height }

func (t *Tabs) Focus() { t.focus = true }

func (t *Tabs) Blur() { t.focus = false }

func (t *Tabs) Focused() bool { return t.focus }

// AddTab appends a tab. The first tab added becomes the selection. Closable
// tabs render a close box after the label.
func (t *Tabs) AddTab(name, label string, closable bool) *Tab {
	tab := &Tab{name: name, label: label, hasClose: closable, atBottom: true}
	t.tabs = append(t.tabs, tab)
	if t.selected == "" {
		t.selected = name
	}
	return tab
}

// AddText appends text content to the named tab. Wrapped text reflows to the
// tab width; unwrapped text is clipped.
func (t *Tabs) AddText(tabName, text string, wrap bool) {
	if tab := t.tab(tabName); tab != nil {
		tab.entries = append(tab.entries, tabEntry{text: text, wrap: wrap})
	}
}

// AddView nests a view in the named tab. With expandHeight the view is sized
// to the space below the entries above it on every render.
func (t *Tabs) AddView(tabName string, v ui.View, expandHeight bool) {
	if tab := t.tab(tabName); tab != nil {
		tab.entries = append(tab.entries, tabEntry{view: v, expand: expandHeight})
	}
}

// Select makes the named tab current, if it exists.
func (t *Tabs) Select(name string) {
	if t.tab(name) != nil {
		t.selected = name
	}
}

func (t *Tabs) Selected() string { return t.selected }

func (t *Tabs) HasTab(name string) bool { return t.tab(name) != nil }

// ActiveTab returns the selected tab, or nil when there are none.
func (t *Tabs) ActiveTab() *Tab { return t.tab(t.selected) }

func (t *Tabs) tab(name string) *Tab {
	for _, tab := range t.tabs {
		if tab.name == name {
			return tab
		}
	}
	return nil
}

func (t *Tabs) tabIndex(name string) int {
	for i, tab := range t.tabs {
		if tab.name == name {
			return i
		}
	}
	return -1
}

// Close removes the named tab. When it was selected, selection moves to the
// previous tab, or the next one when it was first.
func (t *Tabs) Close(name string) {
	i := t.tabIndex(name)
	if i < 0 {
		return
	}
	t.tabs = append(t.tabs[:i], t.tabs[i+1:]...)
	if t.selected != name {
		return
	}
	t.selected = ""
	if len(t.tabs) > 0 {
		if i > 0 {
			t.selected = t.tabs[i-1].name
		} else {
			t.selected = t.tabs[0].name
		}
	}
}

func (t *Tabs) zoneID() string { return "tabs/" + t.name }

func (t *Tabs) tabZoneID(name string) string { return t.zoneID() + "/tab/" + name }

func (t *Tabs) closeZoneID(name string) string { return t.zoneID() + "/close/" + name }

func (t *Tabs) prevZoneID() string { return t.zoneID() + "/prev" }

// innerWidth is the content width between the side borders and padding.
func (t *Tabs) innerWidth() int { return t.width - 4 }

// bodyHeight is the content rows between the bar and the bottom edge. The
// bar takes three lines, but only one when there are no tabs.
func (t *Tabs) bodyHeight() int {
	h := t.height - 4
	if len(t.tabs) == 0 {
		h = t.height - 2
	}
	if h < 0 {
		h = 0
	}
	return h
}

func (t *Tabs) Init() tea.Cmd { return nil }

func (t *Tabs) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	var cmds []tea.Cmd

	if mouse, ok := msg.(tea.MouseMsg); ok {
		if cmd, handled := t.handleMouse(mouse); handled {
			return t, cmd
		}
	}

	// The selected tab's nested views see everything else.
	if tab := t.ActiveTab(); tab != nil {
		for i := range tab.entries {
			if tab.entries[i].view == nil {
				continue
			}
			v, cmd := tab.entries[i].view.Update(msg)
			tab.entries[i].view = v
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return t, tea.Batch(cmds...)
}

func (t *Tabs) handleMouse(mouse tea.MouseMsg) (tea.Cmd, bool) {
	if mouse.Action != tea.MouseActionPress {
		return nil, false
	}
	switch mouse.Button {
	case tea.MouseButtonLeft:
		for _, tab := range t.tabs {
			if tab.hasClose && zone.Get(t.closeZoneID(tab.name)).InBounds(mouse) {
				name := tab.name
				t.Close(name)
				return emit(TabClosedMsg{Name: name}), true
			}
			if zone.Get(t.tabZoneID(tab.name)).InBounds(mouse) {
				t.selected = tab.name
				return emit(SelectedMsg{Name: t.name, Item: tab.name}), true
			}
		}
		if t.firstTab > 0 && zone.Get(t.prevZoneID()).InBounds(mouse) {
			t.selected = t.tabs[t.firstTab-1].name
			return nil, true
		}

	case tea.MouseButtonWheelUp:
		tab := t.ActiveTab()
		if tab == nil || !zone.Get(t.zoneID()).InBounds(mouse) {
			return nil, false
		}
		if t.lastBody-t.bodyHeight()-tab.scroll > 0 {
			tab.scroll += 3
			if limit := t.lastBody - t.bodyHeight(); tab.scroll >= limit {
				tab.scroll = limit
				tab.atBottom = true
			}
		}
		return nil, true

	case tea.MouseButtonWheelDown:
		tab := t.ActiveTab()
		if tab == nil || !zone.Get(t.zoneID()).InBounds(mouse) {
			return nil, false
		}
		if tab.scroll > 0 {
			tab.scroll -= 3
			if tab.scroll < 0 {
				tab.scroll = 0
			}
			tab.atBottom = false
		}
		return nil, true
	}
	return nil, false
}

// slideBar recomputes firstTab so the selected tab is fully visible, sliding
// tabs off the left edge one at a time. A 5-cell stub stands in for the
// hidden tabs.
func (t *Tabs) slideBar() {
	total := 0
	for _, tab := range t.tabs {
		total += tab.barWidth()
	}
	if total <= t.width-3 {
		t.firstTab = 0
		return
	}
	sel := t.tabIndex(t.selected)
	if sel < 0 {
		sel = 0
	}
	partial := 0
	for first := 0; ; first++ {
		for i := first; i <= sel; i++ {
			partial += t.tabs[i].barWidth()
		}
		if partial <= t.width-3 || first == sel {
			t.firstTab = first
			return
		}
		partial = 5 // the stub replacing the hidden tabs
	}
}

// contentLines renders the selected tab's entries into clipped lines.
func (t *Tabs) contentLines(tab *Tab) []string {
	w := t.innerWidth()
	h := t.bodyHeight()
	var lines []string
	for i := range tab.entries {
		e := &tab.entries[i]
		var block string
		switch {
		case e.view != nil:
			if e.expand {
				if s, ok := e.view.(ui.Sizable); ok {
					rest := h - len(lines)
					if rest < 1 {
						rest = 1
					}
					s.SetSize(w, rest)
				}
			}
			block = e.view.View()
		case e.wrap:
			block = wordwrap.String(e.text, w)
		default:
			block = e.text
		}
		for _, l := range strings.Split(block, "\n") {
			lines = append(lines, textutil.TruncateStyled(l, w))
		}
	}
	return lines
}

func (t *Tabs) View() string {
	style := ui.Styles.Box
	if t.focus {
		style = ui.Styles.BoxFocus
	}
	t.slideBar()

	var b strings.Builder
	for _, line := range t.barLines(style) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	h := t.bodyHeight()
	var lines []string
	if tab := t.ActiveTab(); tab != nil {
		lines = t.contentLines(tab)
		t.lastBody = len(lines)
		if tab.atBottom {
			tab.scroll = len(lines) - h
			if tab.scroll < 0 {
				tab.scroll = 0
			}
		}
		if tab.scroll < len(lines) {
			lines = lines[tab.scroll:]
		} else {
			lines = nil
		}
		if len(lines) > h {
			lines = lines[:h]
		}
	}

	side := style.Render("│")
	w := t.innerWidth()
	for i := 0; i < h; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		b.WriteString(side + " " + textutil.PadRightStyled(line, w) + " " + side)
		b.WriteString("\n")
	}
	b.WriteString(style.Render("╰" + strings.Repeat("─", t.width-2) + "╯"))

	return zone.Mark(t.zoneID(), b.String())
}
