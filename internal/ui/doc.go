// Package ui is the Bubble Tea front end for a calc.Session.
//
// Core abstractions:
//   - View: a screen region with its own model, update, view (Elm-style)
//   - Panel: a bounded region within a layout, used for mouse hit testing
//   - GridLayout: the keypad, one panel per button
//   - FocusManager: tab focus across keypad buttons
//   - OverlayStack: popups (keybinding help) with dismiss keys
//   - KeybindRegistry: single-key shortcuts mapped to commands
package ui
