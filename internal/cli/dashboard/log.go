package dashboard

import (
	"fmt"

	"github.com/julianstephens/dayly/internal/cli"
	"github.com/julianstephens/dayly/internal/display"
)

type LogCmd struct {
	Limit int `help:"Number of entries to show (0 for all)." default:"20" short:"n"`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	events, err := ctx.Tracker.Events(c.Limit)
	if err != nil {
		return fmt.Errorf("failed to read activity log: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No activity yet. Try 'dayly checkin'.")
		return nil
	}

	for _, e := range events {
		fmt.Println(display.EventLine(e))
	}
	return nil
}
