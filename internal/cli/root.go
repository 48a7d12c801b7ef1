package cli

import (
	"github.com/julianstephens/dayly/internal/backup"
	"github.com/julianstephens/dayly/internal/calendar"
	"github.com/julianstephens/dayly/internal/config"
	"github.com/julianstephens/dayly/internal/constants"
	"github.com/julianstephens/dayly/internal/logger"
	"github.com/julianstephens/dayly/internal/seasons"
	"github.com/julianstephens/dayly/internal/storage"
	"github.com/julianstephens/dayly/internal/storage/sqlite"
	"github.com/julianstephens/dayly/internal/tracker"
)

type Context struct {
	Store      storage.Provider
	Tracker    *tracker.Tracker
	Config     config.Config
	ConfigPath string
	Clock      calendar.Clock
}

// NewContext wires a tracker over store using the configured timezone and hemisphere.
func NewContext(store storage.Provider, cfg config.Config) (*Context, error) {
	clock, err := calendar.NewSystemClock(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	t := tracker.New(store, clock)
	if h, err := seasons.ParseHemisphere(cfg.Hemisphere); err == nil {
		t.SetHemisphere(h)
	}

	return &Context{
		Store:      store,
		Tracker:    t,
		Config:     cfg,
		ConfigPath: config.FilePath(),
		Clock:      clock,
	}, nil
}

// Hemisphere returns the configured hemisphere, defaulting to northern.
func (c *Context) Hemisphere() constants.Hemisphere {
	h, err := seasons.ParseHemisphere(c.Config.Hemisphere)
	if err != nil {
		return constants.HemisphereNorthern
	}
	return h
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors.
// Only SQLite databases are file-backed, so other stores are skipped.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		logger.Debug("Skipping automatic backup for non-SQLite store", "path", c.Store.GetConfigPath())
		return
	}

	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
