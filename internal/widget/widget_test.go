package widget

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// collect runs a command tree and flattens the messages it produces.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestButton_PressedByKeyboard(t *testing.T) {
	b := NewButton("run", "Run")
	b.Focus()

	_, cmd := b.Update(keyMsg("enter"))
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 msg, got %d", len(msgs))
	}
	if p, ok := msgs[0].(PressedMsg); !ok || p.Name != "run" {
		t.Errorf("expected PressedMsg{run}, got %#v", msgs[0])
	}
}

func TestButton_NoPressWithoutFocus(t *testing.T) {
	b := NewButton("run", "Run")
	if _, cmd := b.Update(keyMsg("enter")); cmd != nil {
		t.Error("unfocused button should ignore keys")
	}
}

func TestButton_HiddenRendersNothing(t *testing.T) {
	b := NewButton("run", "Run")
	b.SetHidden(true)
	if b.View() != "" {
		t.Errorf("hidden button rendered %q", b.View())
	}
}

func TestCheckbox_Toggle(t *testing.T) {
	c := NewCheckbox("trace", "Trace")
	c.Focus()

	_, cmd := c.Update(keyMsg(" "))
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 msg, got %d", len(msgs))
	}
	toggled, ok := msgs[0].(ToggledMsg)
	if !ok || !toggled.Checked || toggled.Name != "trace" {
		t.Errorf("expected ToggledMsg{trace,true}, got %#v", msgs[0])
	}
	if !c.Checked() {
		t.Error("checkbox should be checked after toggle")
	}

	_, cmd = c.Update(keyMsg(" "))
	msgs = collect(cmd)
	if toggled := msgs[0].(ToggledMsg); toggled.Checked {
		t.Error("second toggle should report unchecked")
	}

	// Enter toggles too.
	_, cmd = c.Update(keyMsg("enter"))
	if msgs = collect(cmd); len(msgs) != 1 {
		t.Fatal("enter should toggle a focused checkbox")
	}
	if !c.Checked() {
		t.Error("checkbox should be checked after enter")
	}
}

func TestCheckbox_Glyphs(t *testing.T) {
	c := NewCheckbox("x", "X")
	c.SetKind(CheckASCII)
	if !strings.Contains(c.View(), "[ ]") {
		t.Errorf("unchecked ascii box missing: %q", c.View())
	}
	c.SetChecked(true)
	if !strings.Contains(c.View(), "[X]") {
		t.Errorf("checked ascii box missing: %q", c.View())
	}
}

func TestRadioGroup_Exclusive(t *testing.T) {
	g := NewRadioGroup("mode", RadioASCII, "", "Sine Wave", "Square", "Noise")

	if len(g.Buttons()) != 3 {
		t.Fatalf("expected 3 buttons, got %d", len(g.Buttons()))
	}
	if g.Button("sine_wave") == nil {
		t.Fatal("names should be lowercased with underscores")
	}

	g.Select("square")
	if g.Selected() != "square" {
		t.Errorf("selected = %q", g.Selected())
	}
	g.Select("noise")
	if g.Selected() != "noise" {
		t.Errorf("selected = %q", g.Selected())
	}
	if g.Button("square").Selected() {
		t.Error("previous selection should be cleared")
	}
}

func TestRadio_KeyboardSelect(t *testing.T) {
	g := NewRadioGroup("mode", RadioSmall, "", "A", "B")
	r := g.Button("b")
	r.Focus()

	_, cmd := r.Update(keyMsg(" "))
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 msg, got %d", len(msgs))
	}
	sel, ok := msgs[0].(SelectedMsg)
	if !ok || sel.Name != "mode" || sel.Item != "b" {
		t.Errorf("expected SelectedMsg{mode,b}, got %#v", msgs[0])
	}
	if g.Selected() != "b" {
		t.Errorf("group selected = %q", g.Selected())
	}
}

func TestRadio_ReselectIsSilent(t *testing.T) {
	g := NewRadioGroup("mode", RadioSmall, "", "A", "B")
	g.Select("a")
	r := g.Button("a")
	r.Focus()

	if _, cmd := r.Update(keyMsg(" ")); cmd != nil {
		t.Error("selecting the already-selected radio should emit nothing")
	}
	if g.Selected() != "a" {
		t.Errorf("selection changed to %q", g.Selected())
	}
}

func TestDroplist_CollapsedView(t *testing.T) {
	d := NewDroplist("wave", "Sine", "Square", "Triangle")
	d.Select("Square")
	d.SetSize(20, 1)

	v := d.View()
	if !strings.Contains(v, "Square") {
		t.Errorf("collapsed view missing selection: %q", v)
	}
	if !strings.Contains(v, "⬇️") {
		t.Errorf("collapsed view missing drop marker: %q", v)
	}
	if strings.Contains(v, "Triangle") {
		t.Error("collapsed view should not list items")
	}
}

func TestDroplist_EscapeCollapses(t *testing.T) {
	d := NewDroplist("wave", "Sine", "Square")
	d.Select("Sine")
	d.expanded = true

	_, cmd := d.Update(keyMsg("esc"))
	if d.Expanded() {
		t.Error("escape should collapse the list")
	}
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected RowHeightMsg only, got %d msgs", len(msgs))
	}
	if rh := msgs[0].(RowHeightMsg); rh.Height != 1 {
		t.Errorf("collapse height = %d, want 1", rh.Height)
	}
	if d.Selected() != "Sine" {
		t.Errorf("selection changed to %q", d.Selected())
	}

	// Escape while collapsed is not the droplist's key.
	if _, cmd := d.Update(keyMsg("esc")); cmd != nil {
		t.Error("collapsed droplist should ignore escape")
	}
}

func TestDroplist_ExpandedHeight(t *testing.T) {
	d := NewDroplist("wave", "a", "b", "c")
	if d.expandedHeight() != 4 {
		t.Errorf("expandedHeight = %d, want 4", d.expandedHeight())
	}
	d.SetMaxHeight(3)
	if d.expandedHeight() != 3 {
		t.Errorf("clamped expandedHeight = %d, want 3", d.expandedHeight())
	}
}

func TestDynamicTable_UpdateRow(t *testing.T) {
	dt := NewDynamicTable("metrics")
	dt.AddColumn("Name", 10)
	dt.AddColumn("Value", 8)
	dt.AddRow("cpu", "12%")
	dt.AddRow("mem", "48%")

	if err := dt.UpdateRow(1, "mem", "51%"); err != nil {
		t.Fatalf("UpdateRow: %v", err)
	}
	if err := dt.UpdateRow(5, "nope"); err == nil {
		t.Error("expected error for out-of-range row")
	}

	// A sparse update keeps the cells it does not name.
	if err := dt.UpdateRow(0, "cpu0"); err != nil {
		t.Fatalf("UpdateRow: %v", err)
	}
	if err := dt.UpdateCell(0, 1, "14%"); err != nil {
		t.Fatalf("UpdateCell: %v", err)
	}
	v := dt.View()
	if !strings.Contains(v, "cpu0") || !strings.Contains(v, "14%") {
		t.Errorf("table view missing updated cells:\n%s", v)
	}
}

func TestTabs_SelectionAndClose(t *testing.T) {
	tabs := NewTabs("main")
	tabs.AddTab("hist", "History", false)
	tabs.AddTab("plot", "Plot", true)
	tabs.AddTab("fft", "FFT", true)

	if tabs.Selected() != "hist" {
		t.Errorf("first tab should be selected, got %q", tabs.Selected())
	}

	tabs.Select("plot")
	tabs.Close("plot")
	if tabs.Selected() != "hist" {
		t.Errorf("closing selected tab should fall back to previous, got %q", tabs.Selected())
	}
	if tabs.HasTab("plot") {
		t.Error("closed tab still present")
	}

	tabs.Select("hist")
	tabs.Close("hist")
	if tabs.Selected() != "fft" {
		t.Errorf("closing first tab should select the next, got %q", tabs.Selected())
	}
}

func TestTabs_ViewGeometry(t *testing.T) {
	tabs := NewTabs("main")
	tabs.AddTab("a", "Alpha", false)
	tabs.AddTab("b", "Beta", false)
	tabs.AddText("a", "hello world", false)
	tabs.SetSize(40, 10)

	v := stripStyle(zone.Scan(tabs.View()))
	lines := strings.Split(v, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "Alpha") || !strings.Contains(lines[1], "Beta") {
		t.Errorf("tab labels missing from bar: %q", lines[1])
	}
	if !strings.Contains(v, "hello world") {
		t.Error("selected tab content missing")
	}
	if !strings.HasSuffix(lines[9], "╯") {
		t.Errorf("bottom edge malformed: %q", lines[9])
	}
}

func TestTabs_BarSlidesToSelected(t *testing.T) {
	tabs := NewTabs("main")
	for _, n := range []string{"one", "two", "three", "four", "five", "six"} {
		tabs.AddTab(n, strings.ToUpper(n), false)
	}
	tabs.SetSize(30, 8)

	tabs.Select("six")
	v := zone.Scan(tabs.View())
	if !strings.Contains(v, "SIX") {
		t.Error("selected tab should always be visible")
	}
	if !strings.Contains(v, " - ") {
		t.Error("clipped bar should show the previous-tabs stub")
	}
}

func TestConsole_SubmitAndHistory(t *testing.T) {
	c := NewConsole("repl", "Console", nil)
	c.SetSize(40, 7)
	c.Focus()

	for _, r := range "help" {
		c.Update(keyMsg(string(r)))
	}
	_, cmd := c.Update(keyMsg("enter"))
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected SubmitMsg only, got %d msgs", len(msgs))
	}
	if sub := msgs[0].(SubmitMsg); sub.Command != "help" {
		t.Errorf("submitted %q", sub.Command)
	}
	if len(c.History()) != 1 || c.History()[0] != "help" {
		t.Errorf("history = %v", c.History())
	}

	// Repeating the same command must not duplicate history.
	for _, r := range "help" {
		c.Update(keyMsg(string(r)))
	}
	c.Update(keyMsg("enter"))
	if len(c.History()) != 1 {
		t.Errorf("history deduplication failed: %v", c.History())
	}
}

func TestConsole_HistoryNavigation(t *testing.T) {
	c := NewConsole("repl", "Console", nil)
	c.SetSize(40, 7)
	c.Focus()

	for _, cmdLine := range []string{"first", "second"} {
		for _, r := range cmdLine {
			c.Update(keyMsg(string(r)))
		}
		c.Update(keyMsg("enter"))
	}

	c.Update(keyMsg("up"))
	if got := c.input.Value(); got != "second" {
		t.Errorf("up = %q", got)
	}
	c.Update(keyMsg("up"))
	if got := c.input.Value(); got != "first" {
		t.Errorf("up up = %q", got)
	}
	c.Update(keyMsg("up")) // already at the oldest entry
	if got := c.input.Value(); got != "first" {
		t.Errorf("history overrun: %q", got)
	}
	c.Update(keyMsg("down"))
	if got := c.input.Value(); got != "second" {
		t.Errorf("down = %q", got)
	}
	c.Update(keyMsg("down"))
	if got := c.input.Value(); got != "" {
		t.Errorf("down to live line = %q", got)
	}
}

func TestConsole_LineEditing(t *testing.T) {
	c := NewConsole("repl", "Console", nil)
	c.Focus()

	for _, r := range "acb" {
		c.Update(keyMsg(string(r)))
	}
	c.Update(keyMsg("left"))
	c.Update(keyMsg("backspace"))
	if got := c.input.Value(); got != "ab" {
		t.Errorf("after edit = %q", got)
	}
	c.Update(keyMsg("ctrl+a"))
	if c.input.Position() != 0 {
		t.Errorf("ctrl+a cursor = %d", c.input.Position())
	}
	c.Update(keyMsg("ctrl+e"))
	if c.input.Position() != 2 {
		t.Errorf("ctrl+e cursor = %d", c.input.Position())
	}
	c.Update(keyMsg("esc"))
	if c.input.Value() != "" {
		t.Error("esc should clear the command line")
	}
}

func TestConsole_ResetBuiltin(t *testing.T) {
	c := NewConsole("repl", "Console", nil)
	c.SetSize(40, 7)
	c.Focus()
	c.Println("old output")

	for _, r := range "reset" {
		c.Update(keyMsg(string(r)))
	}
	_, cmd := c.Update(keyMsg("enter"))
	if cmd != nil {
		t.Error("reset is a builtin and should not reach the processor")
	}
	if len(c.scrollback) != 0 {
		t.Errorf("scrollback not cleared: %v", c.scrollback)
	}
}

func TestConsole_ProcessorOutput(t *testing.T) {
	proc := ProcessorFunc(func(command string, width int) (string, error) {
		return "echo: " + command, nil
	})
	c := NewConsole("repl", "Console", proc)
	c.SetSize(40, 7)
	c.Focus()

	for _, r := range "hi" {
		c.Update(keyMsg(string(r)))
	}
	_, cmd := c.Update(keyMsg("enter"))
	for _, msg := range collect(cmd) {
		c.Update(msg)
	}
	v := c.View()
	if !strings.Contains(v, "echo: hi") {
		t.Errorf("processor output missing:\n%s", v)
	}
}

func TestConsole_OutputSnapsScrollToBottom(t *testing.T) {
	c := NewConsole("repl", "Console", nil)
	c.SetSize(20, 5)
	for i := 0; i < 12; i++ {
		c.Println("line")
	}
	c.scroll = 4

	c.Update(OutputMsg{Name: "repl", Output: "fresh"})
	if c.scroll != 0 {
		t.Errorf("scroll = %d, want 0 after new output", c.scroll)
	}
}

func TestConsole_OutputWrapsToWidth(t *testing.T) {
	c := NewConsole("repl", "Console", nil)
	c.SetSize(20, 7)
	c.Println("aaaa bbbb cccc dddd eeee")

	for _, line := range c.scrollback {
		if n := len([]rune(line)); n > 16 {
			t.Errorf("scrollback line exceeds width: %d %q", n, line)
		}
	}
	if len(c.scrollback) < 2 {
		t.Error("long output should wrap onto multiple lines")
	}
}

func TestTitleInput_FocusChangesBorder(t *testing.T) {
	in := NewTitleInput("freq", "Frequency", "hz")
	in.SetSize(24, 3)

	v := zone.Scan(in.View())
	if !strings.Contains(v, "┌") {
		t.Errorf("unfocused border should be single-line:\n%s", v)
	}
	in.Focus()
	v = zone.Scan(in.View())
	if !strings.Contains(v, "╔") {
		t.Errorf("focused border should be double-line:\n%s", v)
	}
	if !strings.Contains(v, "Frequency") {
		t.Error("title missing from border")
	}
}

func TestTitleInput_PasswordEcho(t *testing.T) {
	in := NewTitleInput("pass", "Password", "")
	in.SetSize(24, 3)
	in.SetEchoMode(textinput.EchoPassword)
	in.SetValue("hunter2")

	v := stripStyle(zone.Scan(in.View()))
	if strings.Contains(v, "hunter2") {
		t.Errorf("concealed value rendered:\n%s", v)
	}
	if in.Value() != "hunter2" {
		t.Errorf("Value() = %q, conceal must not change the value", in.Value())
	}
}

func TestLabel_Alignment(t *testing.T) {
	l := NewLabel("hi")
	l.SetSize(10, 1)
	l.SetAlign(AlignRight)
	if !strings.HasSuffix(stripStyle(l.View()), "hi") {
		t.Errorf("right-aligned label = %q", l.View())
	}
	l.SetAlign(AlignCenter)
	if got := stripStyle(l.View()); !strings.Contains(got, "  hi  ") {
		t.Errorf("centered label = %q", got)
	}
}

func stripStyle(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case inEsc:
			if r == 'm' {
				inEsc = false
			}
		case r == 0x1b:
			inEsc = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
