package demo

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuikit/internal/config"
	"tuikit/internal/gridlayout"
	"tuikit/internal/ui"
	"tuikit/internal/widget"
)

var panelHeaderStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("65"))

// controls is the left dock: a grid of every widget kind, plus the sweep
// state machine driven by the Start/Stop and Pause buttons.
type controls struct {
	panel *gridlayout.ControlPanelView

	dropRadioType  *widget.Droplist
	dropRadioColor *widget.Droplist
	dropCheckType  *widget.Droplist

	radios       *widget.RadioGroup
	checks       []*widget.Checkbox
	pauseOnError *widget.Checkbox
	resetEnable  *widget.Checkbox
	edits        []*widget.TitleInput

	resetBtn  *widget.Button
	startStop *widget.Button
	pauseBtn  *widget.Button
	status    *widget.Label

	running bool
	paused  bool
}

func newControls(cfg config.Config) *controls {
	c := &controls{}
	checkKind := cfg.CheckboxKind()

	c.dropRadioType = widget.NewDroplist("radiotype", "large", "small", "ascii", "pointer")
	c.dropRadioType.Select(cfg.RadioKind)
	c.dropRadioType.SetMaxHeight(5)
	c.dropRadioColor = widget.NewDroplist("radiocolors", "blue", "red", "white", "yellow")
	c.dropRadioColor.Select(cfg.RadioColor)
	c.dropRadioColor.SetMaxHeight(9)
	c.dropCheckType = widget.NewDroplist("checktype", "large", "medium", "small", "cross", "ascii")
	c.dropCheckType.Select(cfg.CheckKind)
	c.dropCheckType.SetMaxHeight(6)

	c.radios = widget.NewRadioGroup("options", cfg.RadioButtonKind(), cfg.RadioColor,
		"Option 1", "Option 2", "Option 3")
	c.radios.Select("option_1")
	for _, r := range c.radios.Buttons() {
		r.SetIndent(2)
	}

	for i := 1; i <= 4; i++ {
		chk := widget.NewCheckbox(fmt.Sprintf("chk%d", i), fmt.Sprintf("Check %d", i))
		chk.SetKind(checkKind)
		chk.SetIndent(2)
		c.checks = append(c.checks, chk)
	}
	c.checks[0].SetChecked(true)

	c.pauseOnError = widget.NewCheckbox("pause_on_error", "Pause on error")
	c.pauseOnError.SetKind(checkKind)
	c.pauseOnError.SetIndent(1)
	c.pauseOnError.SetTopMargin(1)
	c.resetEnable = widget.NewCheckbox("enable_reset", "Enable reset")
	c.resetEnable.SetKind(checkKind)
	c.resetEnable.SetIndent(1)

	for i, value := range []string{"-20", "100", "20", "8"} {
		title := fmt.Sprintf("Edit %d", i+1)
		in := widget.NewTitleInput(fmt.Sprintf("edit%d", i+1), title, "")
		in.SetValue(value)
		c.edits = append(c.edits, in)
	}

	c.resetBtn = widget.NewButton("reset", "Reset")
	c.resetBtn.SetWidth(7)
	c.resetBtn.SetIndent(4)
	c.resetBtn.SetHidden(true)
	c.resetBtn.SetStyle(lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ui.ColorDanger)))
	c.startStop = widget.NewButton("start", "Start")
	c.startStop.SetWidth(7)
	c.startStop.SetIndent(4)
	c.pauseBtn = widget.NewButton("pause", "Pause")
	c.pauseBtn.SetIndent(4)
	c.pauseBtn.SetHidden(true)
	c.status = widget.NewLabel("")

	c.panel = gridlayout.NewControlPanelView(c.buildGrid())
	return c
}

// buildGrid lays the widgets out in two columns with a spacer after each
// logical group.
func (c *controls) buildGrid() *gridlayout.Grid {
	g := gridlayout.New()
	g.AddColumn(gridlayout.Track{Name: "col1", Max: 17})
	g.AddColumn(gridlayout.Track{Name: "col2", Max: 32})
	g.SetGutter(1, 0)

	g.AddRow(gridlayout.Track{Name: "title", Size: 1},
		gridlayout.WithSpan("col1|col2"), gridlayout.WithSpacer(1))
	g.AddRow(gridlayout.Track{Name: "rtype", Size: 1}, gridlayout.WithSpacer(1))
	g.AddRow(gridlayout.Track{Name: "rcolor", Size: 1}, gridlayout.WithSpacer(1))
	g.AddRow(gridlayout.Track{Name: "order", Size: 1}, gridlayout.WithSpacer(1))
	for i := 1; i <= 5; i++ {
		var opts []gridlayout.RowOption
		if i == 5 {
			opts = append(opts, gridlayout.WithSpacer(1))
		}
		g.AddRow(gridlayout.Track{Name: fmt.Sprintf("ctrl%d", i), Size: 1}, opts...)
	}
	g.AddRow(gridlayout.Track{Name: "edit1", Size: 3})
	g.AddRow(gridlayout.Track{Name: "edit2", Size: 3}, gridlayout.WithSpacer(1))
	g.AddRow(gridlayout.Track{Name: "reset", Size: 1}, gridlayout.WithSpacer(1))
	g.AddRow(gridlayout.Track{Name: "run1", Size: 1}, gridlayout.WithSpacer(2))
	g.AddRow(gridlayout.Track{Name: "status", Size: 1})

	title := widget.NewLabel("Control Panel")
	title.SetStyle(panelHeaderStyle)
	title.SetAlign(widget.AlignCenter)
	g.PlaceAt(title, "title")

	g.Place(widget.NewLabel("Radio Type"))
	g.Place(c.dropRadioType)
	g.Place(widget.NewLabel("Radio Color"))
	g.Place(c.dropRadioColor)
	g.Place(widget.NewLabel("Check Type"))
	g.Place(c.dropCheckType)

	g.Place(widget.NewLabel("Sample Radio"))
	g.Place(widget.NewLabel("Sample Checkbox"))
	buttons := c.radios.Buttons()
	for i := 0; i < 3; i++ {
		g.Place(buttons[i])
		g.Place(c.checks[i])
	}
	g.Place(widget.NewLabel(""))
	g.Place(c.checks[3])

	g.Place(c.edits[0])
	g.Place(c.edits[1])
	g.Place(c.edits[2])
	g.Place(c.pauseOnError)

	g.Place(c.resetEnable)
	g.Place(c.resetBtn)
	g.Place(c.startStop)
	g.Place(c.pauseBtn)
	g.Place(c.status)

	return g
}

// inputFocused reports whether a text input owns the keyboard, so app-level
// single-key bindings stay out of the way.
func (c *controls) inputFocused() bool {
	for _, in := range c.edits {
		if in.Focused() {
			return true
		}
	}
	return false
}

// handle reacts to widget messages emitted from the panel: droplist
// selections restyle the sample widgets, buttons drive the sweep state.
func (c *controls) handle(msg tea.Msg) {
	switch msg := msg.(type) {
	case widget.SelectedMsg:
		switch msg.Name {
		case "radiotype":
			if k, ok := widget.RadioKindNamed(msg.Item); ok {
				c.radios.SetKind(k)
			}
		case "radiocolors":
			c.radios.SetColor(msg.Item)
		case "checktype":
			k, ok := widget.CheckKindNamed(msg.Item)
			if !ok {
				return
			}
			for _, chk := range c.checks {
				chk.SetKind(k)
			}
			c.pauseOnError.SetKind(k)
			c.resetEnable.SetKind(k)
		}
	case widget.ToggledMsg:
		if msg.Name == "enable_reset" {
			c.resetBtn.SetHidden(!msg.Checked)
		}
	case widget.PressedMsg:
		switch msg.Name {
		case "start":
			c.toggleRunning()
		case "pause":
			c.togglePaused()
		}
	}
}

func (c *controls) toggleRunning() {
	if !c.running {
		c.running = true
		c.startStop.SetLabel("Stop")
		c.status.SetText("Running sweep...")
		c.pauseBtn.SetHidden(false)
		return
	}
	c.running = false
	c.paused = false
	c.startStop.SetLabel("Start")
	c.pauseBtn.SetLabel("Pause")
	c.pauseBtn.SetHidden(true)
	c.status.SetText("")
}

func (c *controls) togglePaused() {
	if !c.running {
		return
	}
	if c.paused {
		c.paused = false
		c.pauseBtn.SetLabel("Pause")
		c.status.SetText("Running sweep...")
		return
	}
	c.paused = true
	c.pauseBtn.SetLabel("Resume")
	c.status.SetText("Sweep paused")
}
