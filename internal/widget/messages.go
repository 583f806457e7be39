package widget

import tea "github.com/charmbracelet/bubbletea"

// PressedMsg is emitted when a button is activated by click or keyboard.
type PressedMsg struct {
	Name string
}

// ToggledMsg reports a checkbox state change.
type ToggledMsg struct {
	Name    string
	Checked bool
}

// SelectedMsg reports a new selection in a radio group, droplist or tab bar.
type SelectedMsg struct {
	Name string
	Item string
}

// RowHeightMsg asks the hosting grid to resize a named row. A droplist emits
// it when it expands over neighbouring rows, and again with height 1 when it
// collapses. Grid hosts consume it; anything else should ignore it.
type RowHeightMsg struct {
	Row    string
	Height int
}

// SubmitMsg carries a command line entered into a console, after builtins
// have been handled.
type SubmitMsg struct {
	Name    string
	Command string
}

// OutputMsg carries processor output back to the console that submitted the
// command.
type OutputMsg struct {
	Name   string
	Output string
	Err    error
}

// TabClosedMsg reports that a tab's close box was clicked. The tab is already
// removed when this arrives.
type TabClosedMsg struct {
	Name string
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
