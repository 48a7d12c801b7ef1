package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayly/internal/constants"
	"github.com/julianstephens/dayly/internal/display"
	"github.com/julianstephens/dayly/internal/engine"
	"github.com/julianstephens/dayly/internal/logger"
	"github.com/julianstephens/dayly/internal/tui/components/clock"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The clock keeps ticking whatever screen is active.
	if _, ok := msg.(clock.TickMsg); ok {
		var cmd tea.Cmd
		m.clock, cmd = m.clock.Update(msg)
		m.refresh()
		return m, cmd
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.help.Width = size.Width
		m.activity.SetSize(size.Width-4, size.Height-4)
	}

	switch m.state {
	case constants.StateDefineGoal:
		return m.updateGoalForm(msg, cmds)
	case constants.StateActivity:
		return m.updateActivity(msg, cmds)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.CheckIn):
			m.checkIn()
		case key.Matches(msg, m.keys.Progress):
			m.recordProgress()
		case key.Matches(msg, m.keys.NewGoal):
			m.form, m.goalForm = newGoalForm(m.cfg.GoalDefaultDays)
			m.state = constants.StateDefineGoal
			cmds = append(cmds, m.form.Init())
		case key.Matches(msg, m.keys.Activity):
			m.loadActivity()
			m.state = constants.StateActivity
		case key.Matches(msg, m.keys.Back):
			m.flash = ""
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateGoalForm(msg tea.Msg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateDashboard
		return m, tea.Batch(cmds...)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.defineGoal()
		m.state = constants.StateDashboard
	case huh.StateAborted:
		m.state = constants.StateDashboard
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateActivity(msg tea.Msg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.state = constants.StateDashboard
			return m, tea.Batch(cmds...)
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.activity, cmd = m.activity.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) checkIn() {
	res := m.tracker.CheckIn()
	m.warn(res.Warning)
	m.setFlash(display.StreakMessage(res.Result), !display.Informational(res.Result.Outcome))
	m.refresh()
}

func (m *Model) recordProgress() {
	res := m.tracker.RecordGoalProgress()
	m.warn(res.Warning)
	m.setFlash(display.GoalMessage(res.Result, res.Record.Title), !display.Informational(res.Result.Outcome))
	m.refresh()
}

func (m *Model) defineGoal() {
	def, err := m.tracker.DefineGoal(m.goalForm.Title, m.goalForm.days(m.cfg.GoalDefaultDays))
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidGoalTitle):
			m.setFlash("Please enter a goal!", false)
		default:
			m.setFlash(err.Error(), false)
		}
		return
	}
	m.warn(def.Warning)
	m.setFlash(display.GoalDefinedMessage(def.Record), true)
	m.refresh()
}

// warn logs a persistence problem; the flash message still reports the
// transition because the in-memory state has already moved on.
func (m *Model) warn(err error) {
	if err != nil {
		logger.Warn("State not fully saved", "error", err)
	}
}
