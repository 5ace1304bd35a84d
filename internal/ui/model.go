package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rsorensen/tracklog/internal/tracker"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// Model owns Bubble Tea state for the timeline view. The spans-by-label
// mapping is read-only; all state here is presentation.
type Model struct {
	spans map[string][]tracker.Timespan

	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewModel seeds the timeline view with reconstructed timespans.
func NewModel(spans map[string][]tracker.Timespan) Model {
	return Model{spans: spans}
}

// Init implements tea.Model. The content is already in memory, so there
// is nothing to kick off.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update wires resize and key handling into the viewport.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		chromeHeight := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
		m.viewport.SetContent(RenderTimeline(m.spans, msg.Width))
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders header, scrollable timeline, and footer.
func (m Model) View() string {
	if !m.ready {
		return "Loading timeline..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m Model) headerView() string {
	return titleStyle.Render("tracklog timeline")
}

func (m Model) footerView() string {
	return footerStyle.Render("↑/↓ scroll · q quit")
}
