// Package tui provides the terminal dashboard shown by watch mode.
package tui

import "github.com/charmbracelet/bubbles/viewport"

// NewModel creates a new TUI model with default settings.
func NewModel() Model {
	return Model{
		Shares:   make([]ShareNode, 0),
		ShareMap: make(map[string]int),
		Viewport: viewport.New(0, 0),
	}
}
