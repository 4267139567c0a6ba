// Package ui contains the Bubble Tea program that renders a selection widget
// in a terminal popup and plays the part of its view.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, option reloads).
//   - Key handlers never change the selection directly. They act the way a
//     user acts on a rendered control: highlighting rows, typing into a filter,
//     pressing a transfer button or toggling a group entry. The widget turns
//     those view-side changes into application values.
//   - After every change the panes re-read their rows from the widget, so what
//     is drawn is always the widget's own view state.
//
// State ownership:
//   - Cursor, viewport and query editing for each list live in
//     internal/ui/state.Pane.
//   - Options, values and highlights belong to the widget
//     (internal/widget.CrossSelector or a widget.Group).
//
// Backend interactions:
//   - An optional backend.Watcher polls the option file; each event is handed
//     to the dispatcher, which replaces the widget's options when they change.
package ui
