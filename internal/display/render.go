package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dayly/internal/calendar"
	"github.com/julianstephens/dayly/internal/constants"
	"github.com/julianstephens/dayly/internal/models"
	"github.com/julianstephens/dayly/internal/seasons"
	"github.com/julianstephens/dayly/internal/tracker"
)

const DefaultBarWidth = 40

// ProgressBar renders percent (0-100) as a bar followed by the percentage.
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		width = DefaultBarWidth
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(width), progress.WithoutPercentage())
	return fmt.Sprintf("%s %6.2f%%", bar.ViewAs(clampPercent(percent)/100), percent)
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// StreakGrid renders the last constants.StreakGridWeeks weeks of check-ins,
// most recent week first, each row running oldest to newest day.
func StreakGrid(rec models.StreakRecord, today calendar.Day) string {
	var rows []string
	for week := 0; week < constants.StreakGridWeeks; week++ {
		var cells []string
		for day := 6; day >= 0; day-- {
			d := today.AddDays(-(week*7 + day))
			cells = append(cells, gridCell(rec, d, d == today))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

func gridCell(rec models.StreakRecord, day calendar.Day, isToday bool) string {
	level := rec.CheckIns[day]
	if level <= 0 {
		return levelStyles[0].Render("·")
	}
	if isToday {
		return SuccessStyle.Render("✦")
	}
	if level >= len(levelStyles) {
		level = len(levelStyles) - 1
	}
	return levelStyles[level].Render("■")
}

// StreakSummary is the streak section of the dashboard.
func StreakSummary(rec models.StreakRecord, today calendar.Day) string {
	status := InfoStyle.Render("Not checked in today")
	if welcome := WelcomeMessage(rec); welcome != "" {
		status = InfoStyle.Render(welcome)
	}
	if rec.CheckedIn(today) {
		status = SuccessStyle.Render("✓ Checked in today")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Streak"),
		fmt.Sprintf("%s %s   %s %s",
			LabelStyle.Render("Current:"), ValueStyle.Render(fmt.Sprintf("%d", rec.Count)),
			LabelStyle.Render("Longest:"), ValueStyle.Render(fmt.Sprintf("%d", rec.LongestStreak))),
		status,
		StreakGrid(rec, today),
	)
}

// GoalSummary is the goal section of the dashboard.
func GoalSummary(goal models.GoalRecord, today calendar.Day, barWidth int) string {
	if !goal.Defined() {
		return lipgloss.JoinVertical(lipgloss.Left,
			TitleStyle.Render("Goal"),
			InfoStyle.Render("No goal set. Press n (or run 'dayly goal set') to define one."),
		)
	}

	status := fmt.Sprintf("%d days remaining", goal.DaysRemaining())
	if goal.Completed {
		status = SuccessStyle.Render("🏆 Completed!")
	} else if goal.Recorded(today) {
		status += SuccessStyle.Render("  ✓ recorded today")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Goal: "+goal.Title),
		ProgressBar(goal.PercentComplete(), barWidth),
		fmt.Sprintf("%s %s   %s %s",
			LabelStyle.Render("Progress:"), ValueStyle.Render(fmt.Sprintf("%d/%d days", goal.ProgressDays, goal.TotalDays)),
			LabelStyle.Render("Streak:"), ValueStyle.Render(fmt.Sprintf("%d (best %d)", goal.GoalStreak, goal.LongestGoalStreak))),
		fmt.Sprintf("%s %s   %s %s",
			LabelStyle.Render("Started:"), goal.StartDate.String(),
			LabelStyle.Render("Target:"), goal.TargetDate().String()),
		status,
	)
}

// SeasonLine names the season and its date range.
func SeasonLine(s seasons.Season) string {
	name := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Bold(true).Render(s.Name)
	return fmt.Sprintf("%s %s %s", LabelStyle.Render("Season:"), name, LabelStyle.Render("("+s.Range()+")"))
}

// Progress renders the clock, year, month and season lines.
func Progress(snap tracker.Snapshot, barWidth int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(snap.Now.Format(constants.LongDateFormat)),
		LabelStyle.Render(snap.Now.Format(constants.TimeFormat)),
		"",
		fmt.Sprintf("%s day %d of %d, %d remaining", LabelStyle.Render(fmt.Sprintf("%d:", snap.Year.Year)),
			snap.Year.DayOfYear, snap.Year.TotalDays, snap.Year.DaysRemaining),
		ProgressBar(snap.Year.PercentComplete, barWidth),
		fmt.Sprintf("%s day %d of %d, %d remaining", LabelStyle.Render(snap.Month.MonthName+":"),
			snap.Month.DayOfMonth, snap.Month.TotalDays, snap.Month.DaysRemaining),
		ProgressBar(snap.Month.PercentComplete, barWidth),
		SeasonLine(snap.Season),
	)
}

// Dashboard renders a full snapshot.
func Dashboard(snap tracker.Snapshot, barWidth int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		Progress(snap, barWidth),
		"",
		StreakSummary(snap.Streak, snap.Today),
		"",
		GoalSummary(snap.Goal, snap.Today, barWidth),
	)
}

// EventLine formats one activity log entry.
func EventLine(e models.Event) string {
	line := fmt.Sprintf("%s  %-16s", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Kind)
	if e.Outcome != "" {
		line += fmt.Sprintf(" %-12s", e.Outcome)
	}
	if e.Detail != "" {
		line += " " + e.Detail
	}
	return line
}
