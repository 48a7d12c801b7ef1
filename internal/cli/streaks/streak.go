package streaks

import (
	"fmt"

	"github.com/julianstephens/dayly/internal/cli"
	"github.com/julianstephens/dayly/internal/display"
	apperrors "github.com/julianstephens/dayly/internal/errors"
)

type CheckInCmd struct{}

func (c *CheckInCmd) Run(ctx *cli.Context) error {
	res := ctx.Tracker.CheckIn()
	apperrors.Warn(res.Warning)

	msg := display.StreakMessage(res.Result)
	if display.Informational(res.Result.Outcome) {
		fmt.Println(display.InfoStyle.Render(msg))
		return nil
	}
	fmt.Println(display.SuccessStyle.Render(msg))
	fmt.Printf("Current streak: %d  (longest: %d)\n", res.Record.Count, res.Record.LongestStreak)
	return nil
}

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	snap := ctx.Tracker.Snapshot()
	fmt.Println(display.StreakSummary(snap.Streak, snap.Today))
	return nil
}
