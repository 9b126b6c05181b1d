package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/sharetree/internal/core/domain"
)

const (
	shareListWidthRatio   = 0.3
	detailPaneBorderWidth = 4
	footerHeight          = 2
)

// ShareStatus represents the usage state of a share key after the last pass.
type ShareStatus string

const (
	// StatusPending indicates no pass has reported the share key yet.
	StatusPending ShareStatus = "Pending"
	// StatusChanged indicates the last pass changed the share key's usage.
	StatusChanged ShareStatus = "Changed"
	// StatusUnchanged indicates the last pass kept the share key's usage.
	StatusUnchanged ShareStatus = "Unchanged"
	// StatusUnused indicates the share key has no used export.
	StatusUnused ShareStatus = "Unused"
)

// ShareNode represents a single share key in the UI list.
type ShareNode struct {
	Key    string
	Status ShareStatus
	Report domain.UsageReport
	// Markers is nil when the share key has no provide/fallback pair.
	Markers *domain.FallbackMarkers
}

// Model represents the main TUI state.
type Model struct {
	Shares    []ShareNode
	ShareMap  map[string]int
	Viewport  viewport.Model
	Cursor    int
	Passes    int
	Session   domain.SessionID
	Runtimes  []string
	LastPass  string
	LastError string
}

// Init initializes the model.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop,gocritic // hugeParam ignored, cyclop ignored
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m.refreshDetail()
			}
		case "down", "j":
			if m.Cursor < len(m.Shares)-1 {
				m.Cursor++
				m.refreshDetail()
			}
		default:
			m.Viewport, cmd = m.Viewport.Update(msg)
		}

	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * shareListWidthRatio)
		m.Viewport.Width = msg.Width - listWidth - detailPaneBorderWidth
		m.Viewport.Height = msg.Height - footerHeight

	case MsgPass:
		m.applyPass(msg)

	case MsgPassFailed:
		if msg.Err != nil {
			m.LastError = msg.Err.Error()
		}
	}

	return m, cmd
}

// Active returns the share key under the cursor.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Active() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Shares) {
		return ""
	}
	return m.Shares[m.Cursor].Key
}

func (m *Model) applyPass(msg MsgPass) {
	active := m.Active()

	markers := make(map[string]*domain.FallbackMarkers, len(msg.Markers))
	for i := range msg.Markers {
		markers[msg.Markers[i].ShareKey] = &msg.Markers[i]
	}

	m.Shares = make([]ShareNode, 0, len(msg.Reports))
	m.ShareMap = make(map[string]int, len(msg.Reports))
	for _, report := range msg.Reports {
		status := StatusUnchanged
		switch {
		case len(report.UsedExports) == 0:
			status = StatusUnused
		case slices.Contains(msg.Changed, report.ShareKey):
			status = StatusChanged
		}
		m.ShareMap[report.ShareKey] = len(m.Shares)
		m.Shares = append(m.Shares, ShareNode{
			Key:     report.ShareKey,
			Status:  status,
			Report:  report,
			Markers: markers[report.ShareKey],
		})
	}

	// Cursor stays on the same share key across passes.
	m.Cursor = 0
	if idx, ok := m.ShareMap[active]; ok {
		m.Cursor = idx
	}

	m.Passes++
	m.Session = msg.Session
	m.Runtimes = msg.Runtimes
	m.LastError = ""
	if !msg.At.IsZero() {
		m.LastPass = msg.At.Format("15:04:05")
	}
	m.refreshDetail()
}

func (m *Model) refreshDetail() {
	if len(m.Shares) == 0 {
		m.Viewport.SetContent("")
		return
	}
	node := m.Shares[m.Cursor]
	m.Viewport.SetContent(detail(node.Report, node.Markers))
	m.Viewport.GotoTop()
}

// detail renders the per-runtime usage of one share key and the exports its fallback
// had marked unused.
func detail(report domain.UsageReport, markers *domain.FallbackMarkers) string {
	var b strings.Builder
	if len(report.UsedExports) == 0 {
		b.WriteString("no used exports\n")
	} else {
		fmt.Fprintf(&b, "used: %s\n", strings.Join(report.UsedExports, ", "))
		for _, runtime := range slices.Sorted(maps.Keys(report.Runtimes)) {
			fmt.Fprintf(&b, "\n%s\n", runtime)
			for _, name := range report.Runtimes[runtime] {
				fmt.Fprintf(&b, "  %s\n", name)
			}
		}
	}

	if markers == nil {
		return b.String()
	}
	if !markers.Marked {
		b.WriteString("\nfallback may have side effects, exports left unmarked\n")
		return b.String()
	}
	for _, runtime := range slices.Sorted(maps.Keys(markers.Unused)) {
		fmt.Fprintf(&b, "\nunused in %s: %s\n", runtime, strings.Join(markers.Unused[runtime], ", "))
	}
	if len(markers.OtherUnused) > 0 {
		fmt.Fprintf(&b, "\nother exports unused in: %s\n", strings.Join(markers.OtherUnused, ", "))
	}
	return b.String()
}
