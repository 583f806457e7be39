// Package demo wires the widget kit into the sample application: a control
// panel dock, a tabbed body with live plots, and a command console.
package demo

import (
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"tuikit/internal/config"
	"tuikit/internal/ui"
	"tuikit/internal/ui/textutil"
	"tuikit/internal/widget"
)

const controlsWidth = 40

type tickMsg time.Time

type (
	toggleControlsMsg struct{}
	rotateFocusMsg    struct{}
	showHelpMsg       struct{}
)

func command(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

var headerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color(ui.ColorButton))

// App is the root Bubble Tea model.
type App struct {
	title    string
	consoleH int

	keys     *ui.KeybindRegistry
	handler  *ui.KeyHandler
	focus    ui.FocusManager
	overlays ui.OverlayStack

	controls  *controls
	console   *widget.Console
	tabs      *widget.Tabs
	history   *widget.Dynamic
	ctrlTable *widget.DynamicTable
	timePlot  *timePlot
	fft       *fftPlot
	metrics   *metricsView

	showControls  bool
	width, height int
}

var _ tea.Model = (*App)(nil)

// New assembles the demo around the given console processor.
func New(cfg config.Config, proc widget.Processor) *App {
	a := &App{
		title:        "Sample TUI",
		consoleH:     cfg.ConsoleHeight,
		keys:         ui.NewKeybindRegistry(),
		controls:     newControls(cfg),
		timePlot:     newTimePlot(),
		fft:          newFFTPlot(),
		metrics:      newMetricsView(),
		showControls: true,
	}
	a.handler = ui.NewKeyHandler(a.keys)

	a.console = widget.NewConsole("cli", "Command Window", proc)

	a.history = widget.NewDynamic("history", historyIntro())
	a.ctrlTable = widget.NewDynamicTable("controls")
	a.ctrlTable.AddColumn("Control", 12)
	a.ctrlTable.AddColumn("Value", 8)
	a.ctrlTable.AddColumn("Sample", 16)
	a.ctrlTable.AddRow("Radio Type", cfg.RadioKind,
		cfg.RadioButtonKind().Glyph(true, cfg.RadioColor)+" Example")
	a.ctrlTable.AddRow("Radio Color", cfg.RadioColor,
		widget.RadioLarge.Glyph(true, cfg.RadioColor)+" Example")
	a.ctrlTable.AddRow("Check Type", cfg.CheckKind,
		cfg.CheckboxKind().Glyph(true)+" Example")
	a.ctrlTable.SetSize(44, 7)

	a.tabs = widget.NewTabs("body")
	a.tabs.AddTab("history", "Command History", true)
	a.tabs.AddView("history", a.history, true)
	a.tabs.AddTab("controls", "Controls", false)
	a.tabs.AddText("controls",
		`Below is a "DynamicTable" that updates when the Droplist controls (left) update.`+"\n", true)
	a.tabs.AddView("controls", a.ctrlTable, false)
	a.tabs.AddTab("graph", "Time Plot", false)
	a.tabs.AddView("graph", a.timePlot, true)
	a.tabs.AddTab("fft", "FFT Plot", false)
	a.tabs.AddView("fft", a.fft, true)
	a.tabs.AddTab("metrics", "Metrics", false)
	a.tabs.AddView("metrics", a.metrics, true)

	a.focus = ui.FocusManager{
		Current:  "tabs",
		Order:    []string{"controls", "tabs", "console"},
		OnChange: a.onFocusChange,
	}
	a.tabs.Focus()

	a.keys.BindWithDesc("b", command(toggleControlsMsg{}), "toggle controls")
	a.keys.BindWithDesc("tab", command(rotateFocusMsg{}), "rotate focus")
	a.keys.BindWithDesc("?", command(showHelpMsg{}), "help")
	a.keys.BindWithDesc("q", tea.Quit, "quit")
	a.keys.BindWithDesc("ctrl+d", tea.Quit, "quit")

	return a
}

func historyIntro() string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render("Command History")
	body := ui.Styles.Normal.Render(
		"This is an example of a Dynamic Widget that displays text which can be changed dynamically.")
	return title + "\n\n" + body
}

func (a *App) onFocusChange(from, to string) {
	regions := map[string]ui.Focusable{
		"controls": a.controls.startStop,
		"tabs":     a.tabs,
		"console":  a.console,
	}
	if f, ok := regions[from]; ok {
		f.Blur()
	}
	if f, ok := regions[to]; ok {
		f.Focus()
	}
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(time.Second/tickHz, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.tick()
}

func (a *App) layout() {
	bodyH := a.height - 2 - a.consoleH
	if bodyH < 0 {
		bodyH = 0
	}
	tabsW := a.width
	if a.showControls {
		tabsW -= controlsWidth
	}
	a.controls.panel.SetSize(controlsWidth, bodyH)
	a.tabs.SetSize(tabsW, bodyH)
	a.console.SetSize(a.width, a.consoleH)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.layout()
		return a, nil

	case tickMsg:
		a.timePlot.advance()
		a.fft.advance()
		a.metrics.push()
		return a, a.tick()

	case toggleControlsMsg:
		a.showControls = !a.showControls
		a.layout()
		return a, nil

	case rotateFocusMsg:
		a.focus.Next()
		return a, nil

	case showHelpMsg:
		a.overlays.Push(ui.Overlay{View: helpView{keys: a.keys}, Dismiss: "esc"})
		return a, nil

	case widget.RowHeightMsg:
		_, cmd := a.controls.panel.Update(msg)
		return a, cmd

	case widget.SelectedMsg:
		a.controls.handle(msg)
		a.updateTable(msg)
		return a, nil

	case widget.ToggledMsg:
		a.controls.handle(msg)
		return a, nil

	case widget.PressedMsg:
		a.controls.handle(msg)
		return a, nil

	case widget.SubmitMsg:
		if msg.Name == "cli" {
			a.appendHistory(msg.Command)
		}
		return a, nil

	case widget.OutputMsg:
		if msg.Name == "cli" {
			if msg.Err != nil {
				a.appendHistory(ui.Styles.Danger.Render(msg.Err.Error()))
			} else if msg.Output != "" {
				a.appendHistory(msg.Output)
			}
		}
		_, cmd := a.console.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()

	if ov, ok := a.overlays.Peek(); ok {
		if ov.IsDismissKey(s) {
			a.overlays.Pop()
			return nil
		}
		cmd, _ := a.overlays.UpdateTop(msg)
		return cmd
	}

	// While a text widget owns the keyboard, only tab escapes to the app.
	typing := a.console.Focused() || a.controls.inputFocused()
	if typing {
		if s == "tab" {
			a.blurEdits()
			a.focus.Next()
			return nil
		}
	} else if consumed, cmd := a.handler.Handle(msg); consumed {
		return cmd
	}

	if a.controls.inputFocused() {
		return a.fanOut(msg, a.controls.panel)
	}
	switch a.focus.Current {
	case "controls":
		return a.fanOut(msg, a.controls.panel)
	case "tabs":
		return a.fanOut(msg, a.tabs)
	case "console":
		return a.fanOut(msg, a.console)
	}
	return nil
}

func (a *App) blurEdits() {
	for _, in := range a.controls.edits {
		in.Blur()
	}
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	return a.fanOut(msg, a.controls.panel, a.tabs, a.console)
}

// fanOut forwards a message to the given regions. The regions mutate in
// place, so the returned views are dropped.
func (a *App) fanOut(msg tea.Msg, regions ...ui.View) tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range regions {
		if _, cmd := r.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// updateTable mirrors droplist selections into the controls tab.
func (a *App) updateTable(msg widget.SelectedMsg) {
	switch msg.Name {
	case "radiotype":
		k, _ := widget.RadioKindNamed(msg.Item)
		_ = a.ctrlTable.UpdateCell(0, 1, msg.Item)
		_ = a.ctrlTable.UpdateCell(0, 2, k.Glyph(true, "blue")+" Modified")
	case "radiocolors":
		_ = a.ctrlTable.UpdateCell(1, 1, msg.Item)
		_ = a.ctrlTable.UpdateCell(1, 2, widget.RadioLarge.Glyph(true, msg.Item)+" Modified")
	case "checktype":
		k, _ := widget.CheckKindNamed(msg.Item)
		_ = a.ctrlTable.UpdateCell(2, 1, msg.Item)
		_ = a.ctrlTable.UpdateCell(2, 2, k.Glyph(true)+" Modified")
	}
}

// appendHistory adds a line to the history tab, recreating the tab if the
// user closed it.
func (a *App) appendHistory(line string) {
	if !a.tabs.HasTab("history") {
		a.history.Set(historyIntro())
		a.tabs.AddTab("history", "Command History", true)
		a.tabs.AddView("history", a.history, true)
		a.tabs.Select("history")
	}
	a.history.Set(a.history.Content() + "\n" + line)
}

func (a *App) headerView() string {
	clock := time.Now().Format("15:04:05")
	badge := textutil.PadRightVisual(" ❄🔥", 8)
	mid := textutil.CenterVisual(a.title, a.width-8-8)
	return headerStyle.Render(badge + mid + clock)
}

func (a *App) footerView() string {
	hints := a.keys.Hints()
	seqs := make([]string, 0, len(hints))
	for s := range hints {
		seqs = append(seqs, s)
	}
	sort.Strings(seqs)
	parts := make([]string, 0, len(seqs))
	for _, s := range seqs {
		parts = append(parts, ui.Styles.Selected.Render(s)+" "+ui.Styles.Muted.Render(hints[s]))
	}
	line := " " + strings.Join(parts, ui.Styles.Muted.Render(" | "))
	return textutil.PadRightStyled(line, a.width)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}

	bodyH := a.height - 2 - a.consoleH
	if bodyH < 0 {
		bodyH = 0
	}

	body := a.tabs.View()
	if ov, ok := a.overlays.Peek(); ok {
		tabsW := a.width
		if a.showControls {
			tabsW -= controlsWidth
		}
		body = lipgloss.Place(tabsW, bodyH, lipgloss.Center, lipgloss.Center, ov.View.View())
	}
	if a.showControls {
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.controls.panel.View(), body)
	}

	frame := strings.Join([]string{
		a.headerView(),
		body,
		a.console.View(),
		a.footerView(),
	}, "\n")
	return zone.Scan(frame)
}

// helpView lists the key bindings; shown by the "?" overlay.
type helpView struct {
	keys *ui.KeybindRegistry
}

func (h helpView) Init() tea.Cmd { return nil }

func (h helpView) Update(tea.Msg) (ui.View, tea.Cmd) { return h, nil }

func (h helpView) View() string { return ui.RenderKeybindHelp(h.keys) }
