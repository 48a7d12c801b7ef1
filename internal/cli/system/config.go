package system

import (
	"fmt"

	"github.com/julianstephens/dayly/internal/cli"
	"github.com/julianstephens/dayly/internal/config"
	"github.com/julianstephens/dayly/internal/keyring"
)

type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" help:"Show the resolved configuration." default:"1"`
	Set  ConfigSetCmd  `cmd:"" help:"Set a value in the config file."`
}

type ConfigShowCmd struct{}

func (cmd *ConfigShowCmd) Run(ctx *cli.Context) error {
	cfg := ctx.Config
	cfg.DB = keyring.MaskPassword(cfg.DB)
	fmt.Printf("# %s (with environment and flags applied)\n", ctx.ConfigPath)
	return printJSON(cfg)
}

type ConfigSetCmd struct {
	Key   string `arg:"" help:"One of db, timezone, hemisphere, debug, goal_default_days."`
	Value string `arg:"" help:"New value."`
}

func (cmd *ConfigSetCmd) Run(ctx *cli.Context) error {
	cfg, err := config.ReadFile(ctx.ConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Set(cmd.Key, cmd.Value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(ctx.ConfigPath); err != nil {
		return err
	}

	fmt.Printf("✓ %s updated in %s\n", cmd.Key, ctx.ConfigPath)
	return nil
}
