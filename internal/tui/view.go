package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayly/internal/constants"
	"github.com/julianstephens/dayly/internal/display"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateDefineGoal:
		content = panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			display.TitleStyle.Render("New goal"),
			m.form.View(),
		))
	case constants.StateActivity:
		content = m.activity.View()
	default:
		content = m.viewDashboard()
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		content,
		m.viewFlash(),
		m.help.View(m),
	))
}

func (m Model) viewDashboard() string {
	snap := m.snapshot
	snap.Now = m.clock.Time.In(snap.Now.Location())
	width := m.barWidth()

	left := panelStyle.Render(display.Progress(snap, width))
	right := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(display.StreakSummary(snap.Streak, snap.Today)),
		panelStyle.Render(display.GoalSummary(snap.Goal, snap.Today, width)),
	)

	if m.width > 0 && m.width < 2*(width+10) {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) viewFlash() string {
	if m.flash == "" {
		return ""
	}
	if m.flashOK {
		return flashSuccessStyle.Render(m.flash)
	}
	return flashInfoStyle.Render(m.flash)
}

func (m Model) barWidth() int {
	if m.width <= 0 {
		return display.DefaultBarWidth
	}
	w := m.width/2 - 16
	if w < 10 {
		return 10
	}
	if w > display.DefaultBarWidth {
		return display.DefaultBarWidth
	}
	return w
}
