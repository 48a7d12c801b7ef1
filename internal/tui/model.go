package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayly/internal/config"
	"github.com/julianstephens/dayly/internal/constants"
	"github.com/julianstephens/dayly/internal/display"
	"github.com/julianstephens/dayly/internal/logger"
	"github.com/julianstephens/dayly/internal/tracker"
	"github.com/julianstephens/dayly/internal/tui/components/activity"
	"github.com/julianstephens/dayly/internal/tui/components/clock"
)

const activityLimit = 50

type Model struct {
	tracker  *tracker.Tracker
	cfg      config.Config
	state    constants.SessionState
	keys     KeyMap
	help     help.Model
	clock    clock.Model
	snapshot tracker.Snapshot
	activity activity.Model
	form     *huh.Form
	goalForm *GoalFormModel
	flash    string
	flashOK  bool
	quitting bool
	width    int
	height   int
}

func NewModel(t *tracker.Tracker, cfg config.Config) Model {
	snap := t.Snapshot()
	m := Model{
		tracker:  t,
		cfg:      cfg,
		state:    constants.StateDashboard,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		clock:    clock.New(snap.Now),
		snapshot: snap,
		activity: activity.New(nil, 0, 0),
	}
	if welcome := display.WelcomeMessage(snap.Streak); welcome != "" {
		m.setFlash(welcome, false)
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateActivity:
		return []key.Binding{m.keys.Back, m.keys.Quit}
	case constants.StateDefineGoal:
		return []key.Binding{m.keys.Back}
	}
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	if m.state != constants.StateDashboard {
		return [][]key.Binding{m.ShortHelp()}
	}
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return m.clock.Init()
}

// refresh re-reads the tracker. Snapshot reloads persisted state when the
// calendar day has changed, which is what runs the passive resets at midnight.
func (m *Model) refresh() {
	m.snapshot = m.tracker.Snapshot()
}

func (m *Model) loadActivity() {
	events, err := m.tracker.Events(activityLimit)
	if err != nil {
		logger.Warn("Failed to load activity log", "error", err)
		m.setFlash("Activity log unavailable", false)
		return
	}
	m.activity.SetEvents(events)
}

func (m *Model) setFlash(msg string, ok bool) {
	m.flash = msg
	m.flashOK = ok
}
