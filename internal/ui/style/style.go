// Package style defines the shared palette and icons used by terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Iris   = lipgloss.Color("#7C6FF0")
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Arrow   = "→"
)

// Styles for report rendering.
var (
	ShareKey = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Runtime  = lipgloss.NewStyle().Foreground(Slate)
	Export   = lipgloss.NewStyle().Foreground(Green)
	Muted    = lipgloss.NewStyle().Foreground(Slate).Italic(true)
)
