package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"tuikit/internal/ui"
)

// Processor evaluates a console command line and returns its output. The
// width is the console's usable text width, for processors that shape their
// own output. Process runs off the update loop, so it may block.
type Processor interface {
	Process(command string, width int) (string, error)
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(command string, width int) (string, error)

func (f ProcessorFunc) Process(command string, width int) (string, error) {
	return f(command, width)
}

// Console is a boxed command line with scrollback. Entered commands are
// echoed, deduplicated into history, and handed to the Processor; its output
// lands in the scrollback wrapped to the console width. The one builtin is
// "reset", which clears the scrollback.
type Console struct {
	name   string
	title  string
	prompt string
	width  int
	height int

	proc Processor

	input textinput.Model

	history []string
	histIdx int // 0 is the live line, 1 the most recent entry

	scrollback []string
	scroll     int // lines scrolled up from the bottom
}

func NewConsole(name, title string, proc Processor) *Console {
	in := textinput.New()
	in.Prompt = ">>> "
	c := &Console{
		name:   name,
		title:  title,
		prompt: ">>> ",
		height: 7,
		proc:   proc,
		input:  in,
	}
	return c
}

func (c *Console) Name() string { return c.name }

func (c *Console) SetPrompt(prompt string) {
	c.prompt = prompt
	c.input.Prompt = prompt
}

func (c *Console) SetSize(width, height int) {
	c.width, c.height = width, height
	if w := c.textWidth() - len(c.prompt) - 1; w > 0 {
		c.input.Width = w
	}
}

func (c *Console) Focus() { c.input.Focus() }

func (c *Console) Blur() { c.input.Blur() }

func (c *Console) Focused() bool { return c.input.Focused() }

// History returns the deduplicated command history, oldest first.
func (c *Console) History() []string { return c.history }

func (c *Console) zoneID() string { return "console/" + c.name }

// textWidth is the cells available to scrollback lines.
func (c *Console) textWidth() int {
	w := c.width - 4
	if w < 1 {
		w = 1
	}
	return w
}

// visibleRows is the scrollback rows above the command line.
func (c *Console) visibleRows() int {
	h := c.height - 3
	if h < 0 {
		h = 0
	}
	return h
}

// Println appends output to the scrollback, wrapped to the console width.
func (c *Console) Println(s string) {
	w := c.textWidth()
	for _, line := range strings.Split(s, "\n") {
		wrapped := wrap.String(wordwrap.String(line, w), w)
		c.scrollback = append(c.scrollback, strings.Split(wrapped, "\n")...)
	}
}

func (c *Console) Init() tea.Cmd { return textinput.Blink }

func (c *Console) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	switch msg := msg.(type) {
	case OutputMsg:
		if msg.Name != c.name {
			return c, nil
		}
		c.scroll = 0 // new output snaps the view back to the bottom
		if msg.Err != nil {
			c.Println(ui.Styles.Danger.Render(msg.Err.Error()))
			return c, nil
		}
		if msg.Output != "" {
			c.Println(msg.Output)
		}
		return c, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || !zone.Get(c.zoneID()).InBounds(msg) {
			return c, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if len(c.scrollback)-c.visibleRows()-c.scroll > 0 {
				c.scroll++
			}
		case tea.MouseButtonWheelDown:
			if c.scroll > 0 {
				c.scroll--
			}
		}
		return c, nil

	case tea.KeyMsg:
		if !c.input.Focused() {
			return c, nil
		}
		return c, c.handleKey(msg)
	}
	return c, nil
}

// handleKey keeps history recall and submission; everything else is the
// line editor's business.
func (c *Console) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		if c.histIdx < len(c.history) {
			c.histIdx++
			c.input.SetValue(c.history[len(c.history)-c.histIdx])
			c.input.CursorEnd()
		}
		return nil
	case "down":
		if c.histIdx > 0 {
			c.histIdx--
			if c.histIdx > 0 {
				c.input.SetValue(c.history[len(c.history)-c.histIdx])
			} else {
				c.input.SetValue("")
			}
			c.input.CursorEnd()
		}
		return nil
	case "esc":
		c.input.Reset()
		c.histIdx = 0
		c.scroll = 0
		return nil
	case "enter":
		return c.submit()
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *Console) submit() tea.Cmd {
	command := c.input.Value()
	if command != "" {
		if len(c.history) == 0 || c.history[len(c.history)-1] != command {
			c.history = append(c.history, command)
		}
	}
	c.Println(c.prompt + command)
	c.input.Reset()
	c.histIdx = 0
	c.scroll = 0

	if command == "" {
		return nil
	}
	if command == "reset" {
		c.scrollback = nil
		return nil
	}

	cmds := []tea.Cmd{emit(SubmitMsg{Name: c.name, Command: command})}
	if c.proc != nil {
		proc, name, width := c.proc, c.name, c.textWidth()
		cmds = append(cmds, func() tea.Msg {
			out, err := proc.Process(command, width)
			return OutputMsg{Name: name, Output: out, Err: err}
		})
	}
	return tea.Batch(cmds...)
}

func (c *Console) View() string {
	rows := c.visibleRows()
	start := len(c.scrollback) - rows - c.scroll
	if start < 0 {
		start = 0
	}
	end := start + rows
	if end > len(c.scrollback) {
		end = len(c.scrollback)
	}

	lines := make([]string, 0, rows+1)
	for len(lines) < rows-(end-start) {
		lines = append(lines, "")
	}
	for _, l := range c.scrollback[start:end] {
		lines = append(lines, " "+l)
	}
	lines = append(lines, " "+c.input.View())

	border := lipgloss.NormalBorder()
	style := ui.Styles.Box
	if c.input.Focused() {
		border = lipgloss.DoubleBorder()
		style = ui.Styles.BoxFocus
	}
	box := ui.TitledBox(strings.Join(lines, "\n"), c.title, border, style, c.width, c.height)
	return zone.Mark(c.zoneID(), box)
}
