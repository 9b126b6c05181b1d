package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/sharetree/internal/ui/style"
)

func (m Model) View() string {
	if m.Viewport.Height == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.shareList(),
			m.detailPane(),
		),
		m.footer(),
	)
}

func (m Model) shareList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("SHARED") + "\n\n")

	if len(m.Shares) == 0 {
		s.WriteString(sharePendingStyle.Render("  waiting for first pass") + "\n")
	}

	for i, share := range m.Shares {
		var lineStyle lipgloss.Style
		var icon string

		switch share.Status {
		case StatusChanged:
			lineStyle = shareChangedStyle
			icon = style.Check
		case StatusUnused:
			lineStyle = shareUnusedStyle
			icon = "○"
		case StatusUnchanged:
			lineStyle = shareUnchangedStyle
			icon = style.Dot
		default:
			lineStyle = sharePendingStyle
			icon = "○"
		}

		line := fmt.Sprintf("%s %s", icon, share.Key)
		if i == m.Cursor {
			line = "> " + line
		} else {
			line = "  " + line
		}

		s.WriteString(lineStyle.Render(line) + "\n")
	}

	return listStyle.Render(s.String())
}

func (m Model) detailPane() string {
	header := titleStyle.Render("USAGE (Waiting...)")
	if active := m.Active(); active != "" {
		header = titleStyle.Render("USAGE: " + active)
	}

	return detailStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			m.Viewport.View(),
		),
	)
}

func (m Model) footer() string {
	if m.LastError != "" {
		return errorStyle.Render(style.Cross + " " + m.LastError)
	}
	if m.Passes == 0 {
		return footerStyle.Render("waiting for first pass · q to quit")
	}
	return footerStyle.Render(fmt.Sprintf(
		"session %d · pass %d at %s · runtimes: %s · q to quit",
		m.Session, m.Passes, m.LastPass, strings.Join(m.Runtimes, ", "),
	))
}
