package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/sharetree/internal/ui/style"
)

var (
	colorWhite = lipgloss.Color("#FFFFFF")

	// Pane Styles.
	listStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(style.Slate).
			MarginRight(1).
			PaddingRight(1)

	detailStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	// Share Status Styles.
	sharePendingStyle = lipgloss.NewStyle().
				Foreground(style.Slate)

	shareChangedStyle = lipgloss.NewStyle().
				Foreground(style.Green).
				Bold(true)

	shareUnchangedStyle = lipgloss.NewStyle().
				Foreground(style.Iris)

	shareUnusedStyle = lipgloss.NewStyle().
				Foreground(style.Slate).
				Faint(true)

	// Header Styles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(colorWhite)

	footerStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)
)
