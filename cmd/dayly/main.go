package main

import (
	"errors"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/dayly/internal/cli"
	"github.com/julianstephens/dayly/internal/cli/backups"
	"github.com/julianstephens/dayly/internal/cli/dashboard"
	"github.com/julianstephens/dayly/internal/cli/goals"
	"github.com/julianstephens/dayly/internal/cli/streaks"
	"github.com/julianstephens/dayly/internal/cli/system"
	"github.com/julianstephens/dayly/internal/config"
	"github.com/julianstephens/dayly/internal/constants"
	apperrors "github.com/julianstephens/dayly/internal/errors"
	"github.com/julianstephens/dayly/internal/logger"
	"github.com/julianstephens/dayly/internal/storage"
)

var CLI struct {
	Version    kong.VersionFlag
	Config     string `help:"YAML config file path." type:"path" default:"${config_file}"`
	DB         string `help:"SQLite path, .json file, PostgreSQL connection string (no embedded password) or 'keyring'." name:"db"`
	Timezone   string `help:"IANA timezone used to decide what 'today' is (default: Local)."`
	Hemisphere string `help:"Hemisphere for seasons (northern or southern)."`
	Debug      bool   `help:"Enable debug logging to stderr."`

	Init      system.InitCmd      `cmd:"" help:"Initialize dayly storage."`
	Tui       system.TuiCmd       `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Status    dashboard.StatusCmd `cmd:"" help:"Show date, year and month progress, season, streak and goal."`
	Checkin   streaks.CheckInCmd  `cmd:"" help:"Check in for today."`
	Streak    streaks.StreakCmd   `cmd:"" help:"Show the streak and the last four weeks."`
	Goal      goals.GoalCmd       `cmd:"" help:"Manage your goal."`
	Season    dashboard.SeasonCmd `cmd:"" help:"Show the current season."`
	Log       dashboard.LogCmd    `cmd:"" help:"Show the activity log."`
	Doctor    system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	DebugCmd  system.DebugCmd     `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Keyring   system.KeyringCmd   `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	ConfigCmd system.ConfigCmd    `cmd:"" name:"config" help:"Show or change configuration."`
	Backup    struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

// Commands that never touch the state store.
var storelessCommands = []string{"keyring", "config"}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Year progress, daily streaks and goals in your terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_file": config.FilePath(),
		},
	)

	overrides := config.Overrides{
		DB:         CLI.DB,
		Timezone:   CLI.Timezone,
		Hemisphere: CLI.Hemisphere,
	}
	if CLI.Debug {
		overrides.Debug = &CLI.Debug
	}

	command := ctx.Command()

	cfg, err := loadConfig(command, CLI.Config, overrides)
	if err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: config.Dir()}); err != nil {
		apperrors.Warn(err)
	}
	defer logger.Close()

	withStore := !storeless(command)

	store, err := cli.OpenStore(cfg.DB)
	if err != nil {
		if withStore {
			apperrors.Fatal(err)
		}
		logger.Debug("Store unavailable", "error", err)
	}

	appCtx, err := cli.NewContext(store, cfg)
	if err != nil {
		if withStore {
			apperrors.Fatal(err)
		}
		appCtx = &cli.Context{Store: store, Config: cfg}
	}
	appCtx.ConfigPath = CLI.Config

	// init handles its own loading
	if withStore && !strings.HasPrefix(command, "init") {
		if err := loadStore(store); err != nil {
			apperrors.Fatal(err)
		}
	}
	if withStore {
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		if withStore {
			store.Close()
		}
		logger.Close()
		apperrors.Fatal(err)
	}
}

// loadConfig resolves the configuration. The config commands exist to repair
// a bad file, so for them an invalid result falls back to the file's raw
// values with a warning instead of failing.
func loadConfig(command, path string, overrides config.Overrides) (config.Config, error) {
	cfg, err := config.Load(path, overrides)
	if err == nil || !strings.HasPrefix(command, "config") {
		return cfg, err
	}

	raw, readErr := config.ReadFile(path)
	if readErr != nil {
		return config.Config{}, err
	}
	apperrors.Warn(err)
	return raw, nil
}

func storeless(command string) bool {
	for _, c := range storelessCommands {
		if strings.HasPrefix(command, c) {
			return true
		}
	}
	return false
}

// loadStore opens the store, creating it on first run.
func loadStore(store storage.Provider) error {
	err := store.Load()
	if errors.Is(err, storage.ErrNotInitialized) {
		logger.Info("Initializing storage on first run", "path", store.GetConfigPath())
		return store.Init()
	}
	return err
}
