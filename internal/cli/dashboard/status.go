package dashboard

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/dayly/internal/calendar"
	"github.com/julianstephens/dayly/internal/cli"
	"github.com/julianstephens/dayly/internal/display"
	"github.com/julianstephens/dayly/internal/models"
	"github.com/julianstephens/dayly/internal/seasons"
)

type StatusCmd struct {
	JSON bool `help:"Print the snapshot as JSON." name:"json"`
}

type statusOutput struct {
	Now    string                 `json:"now"`
	Today  string                 `json:"today"`
	Year   calendar.YearProgress  `json:"year"`
	Month  calendar.MonthProgress `json:"month"`
	Season string                 `json:"season"`
	Streak models.StreakRecord    `json:"streak"`
	Goal   *models.GoalRecord     `json:"goal,omitempty"`
}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	snap := ctx.Tracker.Snapshot()

	if c.JSON {
		out := statusOutput{
			Now:    snap.Now.Format(time.RFC3339),
			Today:  snap.Today.String(),
			Year:   snap.Year,
			Month:  snap.Month,
			Season: snap.Season.Name,
			Streak: snap.Streak,
		}
		if snap.Goal.Defined() {
			out.Goal = &snap.Goal
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal status: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(display.Dashboard(snap, display.DefaultBarWidth))
	return nil
}

type SeasonCmd struct {
	Hemisphere string `help:"Hemisphere to use (northern or southern). Defaults to the configured one." short:"H"`
	All        bool   `help:"List every season of the hemisphere."`
}

func (c *SeasonCmd) Run(ctx *cli.Context) error {
	h := ctx.Hemisphere()
	if c.Hemisphere != "" {
		parsed, err := seasons.ParseHemisphere(c.Hemisphere)
		if err != nil {
			return err
		}
		h = parsed
	}

	now := ctx.Clock.Now()
	current := seasons.Current(now, h)
	fmt.Println(display.SeasonLine(current))

	if c.All {
		fmt.Println()
		for _, s := range seasons.Table(h) {
			marker := "  "
			if s.Name == current.Name {
				marker = "→ "
			}
			fmt.Printf("%s%-7s %s\n", marker, s.Name, s.Range())
		}
	}
	return nil
}
