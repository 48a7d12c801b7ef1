package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/dayly/internal/cli"
	"github.com/julianstephens/dayly/internal/config"
	"github.com/julianstephens/dayly/internal/keyring"
	"github.com/julianstephens/dayly/internal/logger"
)

type DebugCmd struct {
	DBPath    DebugDBPathCmd    `cmd:"" help:"Show database and log paths."`
	DumpState DebugDumpStateCmd `cmd:"" help:"Dump streak and goal state as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(map[string]string{
		"db":     keyring.MaskPassword(ctx.Store.GetConfigPath()),
		"config": ctx.ConfigPath,
		"log":    logger.LogPath(config.Dir()),
	})
}

type DebugDumpStateCmd struct{}

func (cmd *DebugDumpStateCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx.Tracker.State())
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
