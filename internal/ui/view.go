package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Every widget in the kit and every major region of an application is a View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Sizable is implemented by views that lay themselves out to a fixed cell
// region, such as plots and grid hosts. Containers call SetSize before View.
type Sizable interface {
	SetSize(width, height int)
}

// Focusable is implemented by views that change behavior or appearance when
// they own keyboard focus (console, title inputs, tabs).
type Focusable interface {
	Focus()
	Blur()
	Focused() bool
}
