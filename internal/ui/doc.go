// Package ui provides the composition primitives the widget kit is built on.
//
// Core abstractions:
//   - View: a widget or major UI region with its own model, update, view (Elm-style)
//   - FocusManager: tracks and rotates keyboard focus across named regions
//   - Overlay: modal or popup views with a dismiss key
//   - KeybindRegistry / KeyHandler: sequence key bindings with help rendering
//   - Styles: the shared lipgloss style set widgets draw with
//
// Widgets in internal/widget, the grid resolver in internal/gridlayout and
// the plot canvas in internal/plot all compose through these types.
package ui
