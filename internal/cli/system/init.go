package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/dayly/internal/cli"
	"github.com/julianstephens/dayly/internal/constants"
	"github.com/julianstephens/dayly/internal/storage"
	"github.com/julianstephens/dayly/internal/storage/postgres"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing database before initialization."`
	Source string `help:"Source database path or connection string to copy streak, goal and activity data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized dayly storage at: %s\n", displayPath(ctx.Store.GetConfigPath()))

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", displayPath(c.Source))
		if err := c.copyData(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if postgres.IsConnString(dbPath) || dbPath == "postgresql" {
		return errors.New("--force is not supported for PostgreSQL; drop the dayly schema manually")
	}

	if c.Source != "" {
		absDB, errDB := filepath.Abs(dbPath)
		absSource, errSource := filepath.Abs(c.Source)
		if errDB == nil && errSource == nil && absDB == absSource {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		// Close first to prevent file locking issues
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		fmt.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func (c *InitCmd) copyData(ctx *cli.Context) error {
	source, err := cli.OpenStore(c.Source)
	if err != nil {
		return err
	}
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer source.Close()

	for _, key := range []string{constants.StreakStateKey, constants.GoalStateKey} {
		data, err := source.GetBlob(key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s from source: %w", key, err)
		}
		if err := ctx.Store.PutBlob(key, data); err != nil {
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
		fmt.Printf("  Copied %s\n", key)
	}

	events, err := source.GetEvents(0)
	if err != nil {
		return fmt.Errorf("failed to read activity log from source: %w", err)
	}
	// GetEvents is newest first; replay oldest first.
	for i := len(events) - 1; i >= 0; i-- {
		if err := ctx.Store.AddEvent(events[i]); err != nil {
			return fmt.Errorf("failed to add event %s: %w", events[i].ID, err)
		}
	}
	fmt.Printf("  Copied %d activity entries\n", len(events))
	return nil
}

func displayPath(p string) string {
	if postgres.IsConnString(p) {
		return "PostgreSQL database"
	}
	return p
}
