package activity

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dayly/internal/models"
)

type Item struct {
	Event models.Event
}

func (i Item) Title() string {
	switch i.Event.Kind {
	case models.EventStreakCheckIn:
		return "🔥 Streak check-in"
	case models.EventGoalProgress:
		return "✅ Goal progress"
	case models.EventGoalDefined:
		return "🎯 Goal set"
	case models.EventStreakReset:
		return "💔 Streak reset"
	case models.EventGoalReset:
		return "💔 Goal streak reset"
	}
	return string(i.Event.Kind)
}

func (i Item) Description() string {
	desc := i.Event.CreatedAt.Local().Format("Mon Jan 2 15:04")
	if i.Event.Detail != "" {
		desc = fmt.Sprintf("%s · %s", desc, i.Event.Detail)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Event.Detail }

type Model struct {
	list list.Model
}

func New(events []models.Event, width, height int) Model {
	l := list.New(toItems(events), list.NewDefaultDelegate(), width, height)
	l.Title = "Activity"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("entry", "entries")
	return Model{list: l}
}

func toItems(events []models.Event) []list.Item {
	items := make([]list.Item, len(events))
	for i, e := range events {
		items[i] = Item{Event: e}
	}
	return items
}

func (m *Model) SetEvents(events []models.Event) {
	m.list.SetItems(toItems(events))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
