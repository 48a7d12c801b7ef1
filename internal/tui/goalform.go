package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dayly/internal/constants"
)

const customDuration = "custom"

var durationPresets = []int{30, 60, 90, 180, 365}

type GoalFormModel struct {
	Title      string
	Duration   string
	CustomDays string
}

func newGoalForm(defaultDays int) (*huh.Form, *GoalFormModel) {
	fm := &GoalFormModel{Duration: strconv.Itoa(defaultDays)}

	options := make([]huh.Option[string], 0, len(durationPresets)+2)
	seen := false
	for _, d := range durationPresets {
		if d == defaultDays {
			seen = true
		}
		options = append(options, huh.NewOption(strconv.Itoa(d)+" days", strconv.Itoa(d)))
	}
	if !seen {
		options = append(options, huh.NewOption(strconv.Itoa(defaultDays)+" days", strconv.Itoa(defaultDays)))
	}
	options = append(options, huh.NewOption("Custom…", customDuration))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What's your goal?").
				Placeholder("e.g. Write 500 words").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("please enter a goal")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Duration").
				Options(options...).
				Value(&fm.Duration),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Custom length in days").
				Description("Between 7 and 730 days.").
				Value(&fm.CustomDays).
				Validate(func(s string) error {
					if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
						return errors.New("enter a whole number of days")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return fm.Duration != customDuration }),
	).WithShowHelp(true)

	return form, fm
}

// days resolves the selected duration. Custom values fall back to fallback
// when unparsable and are clamped to the allowed goal length.
func (fm *GoalFormModel) days(fallback int) int {
	if fm.Duration != customDuration {
		if d, err := strconv.Atoi(fm.Duration); err == nil {
			return d
		}
		return fallback
	}

	d, err := strconv.Atoi(strings.TrimSpace(fm.CustomDays))
	if err != nil || d == 0 {
		d = fallback
	}
	return constants.ClampGoalDays(d)
}
