package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dayly/internal/constants"
)

// TickMsg carries the wall-clock time of a refresh.
type TickMsg time.Time

// Tick schedules the next refresh.
func Tick() tea.Cmd {
	return tea.Tick(constants.RefreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type Model struct {
	Time time.Time
}

func New(now time.Time) Model {
	return Model{Time: now}
}

func (m Model) Init() tea.Cmd {
	return Tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if t, ok := msg.(TickMsg); ok {
		m.Time = time.Time(t)
		return m, Tick()
	}
	return m, nil
}
