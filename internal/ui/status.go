package ui

import (
	"fmt"
	"time"

	"analogtv/tuner"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const refreshInterval = 500 * time.Millisecond

var (
	liveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

// StatusModel is the bubbletea model shown while transmitting.
type StatusModel struct {
	plan    tuner.Plan
	frames  func() uint64
	started time.Time
	now     time.Time
	count   uint64
	rate    float64
}

// NewStatus creates the status view. frames reports how many frames have been
// generated so far.
func NewStatus(plan tuner.Plan, frames func() uint64) StatusModel {
	now := time.Now()
	return StatusModel{plan: plan, frames: frames, started: now, now: now}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m StatusModel) Init() tea.Cmd {
	return tick()
}

func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		now := time.Time(msg)
		count := m.frames()
		if elapsed := now.Sub(m.now).Seconds(); elapsed > 0 && count >= m.count {
			m.rate = float64(count-m.count) / elapsed
		}
		m.now, m.count = now, count
		return m, tick()
	}
	return m, nil
}

func (m StatusModel) View() string {
	uptime := m.now.Sub(m.started).Truncate(time.Second)
	status := fmt.Sprintf("%s  %s  frames %d  %.1f fps",
		liveStyle.Render("● ON AIR"), uptime, m.count, m.rate)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderPlan("Transmitting", m.plan),
		status,
		helpStyle.Render("q: stop"),
	) + "\n"
}
