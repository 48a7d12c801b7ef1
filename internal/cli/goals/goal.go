package goals

import (
	"errors"
	"fmt"

	"github.com/julianstephens/dayly/internal/cli"
	"github.com/julianstephens/dayly/internal/constants"
	"github.com/julianstephens/dayly/internal/display"
	"github.com/julianstephens/dayly/internal/engine"
	apperrors "github.com/julianstephens/dayly/internal/errors"
)

type GoalCmd struct {
	Set      GoalSetCmd      `cmd:"" help:"Define or replace the goal."`
	Progress GoalProgressCmd `cmd:"" help:"Record today's goal progress."`
	Show     GoalShowCmd     `cmd:"" help:"Show goal details." default:"1"`
}

type GoalSetCmd struct {
	Title string `arg:"" help:"What you are working toward."`
	Days  int    `help:"Goal length in days (7-730). Defaults to goal_default_days from the config." short:"d"`
}

func (c *GoalSetCmd) Run(ctx *cli.Context) error {
	days := c.Days
	if days == 0 {
		days = ctx.Config.GoalDefaultDays
	}
	if clamped := constants.ClampGoalDays(days); clamped != days {
		fmt.Println(display.InfoStyle.Render(fmt.Sprintf("Goal length adjusted from %d to %d days.", days, clamped)))
		days = clamped
	}

	previous := ctx.Tracker.State().Goal
	def, err := ctx.Tracker.DefineGoal(c.Title, days)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidGoalTitle) {
			return errors.New("goal title cannot be empty")
		}
		return err
	}
	apperrors.Warn(def.Warning)

	if previous.Defined() && !previous.Completed {
		fmt.Printf("Replaced previous goal %q (%d/%d days).\n", previous.Title, previous.ProgressDays, previous.TotalDays)
	}
	fmt.Println(display.SuccessStyle.Render(display.GoalDefinedMessage(def.Record)))
	fmt.Printf("Target date: %s\n", def.Record.TargetDate())
	return nil
}

type GoalProgressCmd struct{}

func (c *GoalProgressCmd) Run(ctx *cli.Context) error {
	res := ctx.Tracker.RecordGoalProgress()
	apperrors.Warn(res.Warning)

	msg := display.GoalMessage(res.Result, res.Record.Title)
	if display.Informational(res.Result.Outcome) {
		fmt.Println(display.InfoStyle.Render(msg))
		return nil
	}
	fmt.Println(display.SuccessStyle.Render(msg))
	fmt.Println(display.ProgressBar(res.Record.PercentComplete(), display.DefaultBarWidth))
	return nil
}

type GoalShowCmd struct{}

func (c *GoalShowCmd) Run(ctx *cli.Context) error {
	snap := ctx.Tracker.Snapshot()
	fmt.Println(display.GoalSummary(snap.Goal, snap.Today, display.DefaultBarWidth))
	return nil
}
