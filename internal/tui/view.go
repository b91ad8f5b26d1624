package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/progress"
	"github.com/akyairhashvil/marathon/internal/schedule"
	"github.com/akyairhashvil/marathon/internal/util"
)

func (m MainModel) View() string {
	if m.screen == ScreenOnboarding {
		return m.renderOnboarding()
	}

	var body string
	switch m.screen {
	case ScreenToday:
		body = m.renderToday()
	case ScreenCalendar:
		body = m.renderCalendar()
	case ScreenProgress:
		body = m.renderProgress()
	case ScreenSettings:
		body = m.renderSettings()
	}

	parts := []string{m.renderTabs(), "", body}
	if m.modal != modalNone {
		parts = append(parts, "", m.renderModal())
	}
	parts = append(parts, "", m.renderFooter())
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m MainModel) renderTabs() string {
	tabs := []string{m.theme.Header.Render("Marathon") + " "}
	for i, s := range mainScreens {
		label := fmt.Sprintf("%d %s", i+1, s)
		if s == m.screen {
			tabs = append(tabs, m.theme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m MainModel) renderFooter() string {
	var lines []string
	if m.err != nil {
		lines = append(lines, m.theme.Error.Render(m.err.Error()))
	} else if m.Message != "" {
		lines = append(lines, m.theme.Highlight.Render(m.Message))
	}
	help := m.registry.HelpFor(m.screen)
	if m.width > 0 {
		help = truncate(help, m.width-4)
	}
	lines = append(lines, m.theme.Dim.Render(help))
	return strings.Join(lines, "\n")
}

func (m MainModel) titleWidth() int {
	if m.width > 0 && m.width < config.CompactModeThreshold {
		return config.MinTitleWidth
	}
	return config.TargetTitleWidth
}

// workoutLine is the one-line form used in week lists.
func (m MainModel) workoutLine(w models.Workout) string {
	dist := ""
	if w.Distance != nil {
		dist = FormatDistance(*w.Distance, m.cfg.Units)
	}
	line := fmt.Sprintf("%s %s  %-*s %s", FormatStatus(w), dayLabel(w.Date),
		m.titleWidth(), truncate(w.Title, m.titleWidth()), dist)
	return m.theme.WorkoutStyle(w).Render(line)
}

func (m MainModel) renderWorkoutDetail(w models.Workout) string {
	var b strings.Builder
	b.WriteString(m.theme.WorkoutStyle(w).Bold(true).Render(w.Title))
	b.WriteString(m.theme.Dim.Render("  " + string(w.Type)))
	if w.Distance != nil {
		b.WriteString("  " + FormatDistance(*w.Distance, m.cfg.Units))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(config.DescriptionWidth).Render(w.Description))

	switch {
	case w.IsCompleted:
		b.WriteString("\n" + m.theme.Cross.Render("✓ Completed"))
	case w.IsSkipped:
		b.WriteString("\n" + m.theme.Skipped.Render("✗ Skipped"))
	}
	var logged []string
	if w.ActualDistance != nil {
		logged = append(logged, FormatDistance(*w.ActualDistance, m.cfg.Units))
	}
	if w.ActualDuration != nil {
		logged = append(logged, FormatDuration(*w.ActualDuration))
	}
	if w.PerceivedEffort != nil {
		logged = append(logged, fmt.Sprintf("effort %d/%d", *w.PerceivedEffort, config.MaxEffort))
	}
	if len(logged) > 0 {
		b.WriteString("\nLogged: " + strings.Join(logged, ", "))
	}
	if w.Notes != "" {
		b.WriteString("\n" + m.theme.Dim.Render("Notes: "+w.Notes))
	}
	return b.String()
}

func (m MainModel) renderToday() string {
	if m.plan == nil {
		return "No plan loaded."
	}
	today := m.store.Today()
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Today · " + today.Format("Mon Jan 02")))
	b.WriteString(fmt.Sprintf("   %d days until race\n\n", m.stats.DaysUntilRace))

	w, _, ok := progress.TodayWorkout(m.plan, today)
	todayStr := util.FormatDate(today)
	switch {
	case ok:
		b.WriteString(m.renderWorkoutDetail(*w))
	case todayStr < m.plan.StartDate:
		start, _ := util.ParseDate(m.plan.StartDate)
		b.WriteString(fmt.Sprintf("Training starts %s (in %d days).", dayLabel(m.plan.StartDate), util.DaysBetween(today, start)))
	default:
		b.WriteString("Race day has passed. Congratulations on the journey!")
	}

	week := progress.CurrentWeek(m.plan, today)
	if week != nil {
		b.WriteString(fmt.Sprintf("\n\n%s\n", m.theme.Header.Render(fmt.Sprintf("Week %d of %d", week.WeekNumber, len(m.plan.Weeks)))))
		for _, wk := range week.Workouts {
			prefix := "  "
			if wk.Date == todayStr {
				prefix = "> "
			}
			b.WriteString(prefix + m.workoutLine(wk) + "\n")
		}
	}
	return b.String()
}

func (m MainModel) renderCalendar() string {
	if m.plan == nil || len(m.plan.Weeks) == 0 {
		return "No plan loaded."
	}
	week := m.plan.Weeks[m.weekIdx]
	var b strings.Builder
	b.WriteString(m.theme.Header.Render(fmt.Sprintf("Week %d of %d", week.WeekNumber, len(m.plan.Weeks))))
	b.WriteString(m.theme.Dim.Render(fmt.Sprintf("  %s - %s  planned %s",
		dayLabel(week.StartDate), dayLabel(week.EndDate), FormatDistance(week.TotalPlannedMileage, m.cfg.Units))))
	b.WriteString("\n\n")

	todayStr := util.FormatDate(m.store.Today())
	for i, w := range week.Workouts {
		line := m.workoutLine(w)
		switch {
		case i == m.dayIdx:
			b.WriteString(m.theme.Focused.Render("> ") + line)
		case w.Date == todayStr:
			b.WriteString(m.theme.Highlight.Render("• ") + line)
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if m.dayIdx < len(week.Workouts) {
		b.WriteString("\n" + m.renderWorkoutDetail(week.Workouts[m.dayIdx]))
	}
	return b.String()
}

// weekMileage sums completed countable distance for one week.
func weekMileage(week models.TrainingWeek) float64 {
	var total float64
	for _, w := range week.Workouts {
		if w.IsCompleted && w.Type.Countable() {
			total += w.CompletedDistance()
		}
	}
	return total
}

func (m MainModel) renderProgress() string {
	if m.plan == nil {
		return "No plan loaded."
	}
	s := m.stats
	var b strings.Builder
	b.WriteString(m.theme.Header.Render(m.plan.PlanName + " · race " + dayLabel(m.plan.RaceDate)))
	b.WriteString("\n\n")

	ratio := 0.0
	if s.TotalWorkouts > 0 {
		ratio = float64(s.CompletedWorkouts) / float64(s.TotalWorkouts)
	}
	b.WriteString(m.progress.ViewAs(ratio))
	b.WriteString(fmt.Sprintf("\n%d of %d workouts completed, %d skipped\n", s.CompletedWorkouts, s.TotalWorkouts, s.SkippedWorkouts))
	b.WriteString(fmt.Sprintf("Completion rate: %d%%\n", s.CompletionRate))
	b.WriteString(fmt.Sprintf("Current streak:  %d\n", s.CurrentStreak))
	b.WriteString(fmt.Sprintf("Longest streak:  %d\n", s.LongestStreak))
	b.WriteString(fmt.Sprintf("Distance:        %s of %s\n",
		FormatDistance(s.TotalCompletedMiles, m.cfg.Units), FormatDistance(s.TotalPlannedMiles, m.cfg.Units)))
	b.WriteString(fmt.Sprintf("Week:            %d of %d, %d days to race\n\n", s.CurrentWeek, len(m.plan.Weeks), s.DaysUntilRace))

	b.WriteString(m.theme.Header.Render("Weekly mileage"))
	b.WriteString("\n")
	for _, week := range m.plan.Weeks {
		done := weekMileage(week)
		planned := week.TotalPlannedMileage
		filled := 0
		if planned > 0 {
			filled = util.Clamp(int(done/planned*20+0.5), 0, 20)
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
		label := fmt.Sprintf("W%-2d %s %s / %s", week.WeekNumber, bar,
			FormatDistance(done, m.cfg.Units), FormatDistance(planned, m.cfg.Units))
		if week.WeekNumber == s.CurrentWeek {
			b.WriteString(m.theme.Focused.Render(label))
		} else {
			b.WriteString(label)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m MainModel) renderSettings() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Units:   %s\n", m.cfg.Units))
	b.WriteString(fmt.Sprintf("Theme:   %s (%s)\n", m.cfg.Theme, m.theme.Name))
	if m.plan != nil {
		b.WriteString(fmt.Sprintf("Plan:    %s\n", m.plan.PlanName))
		if meta, ok := schedule.Lookup(m.plan.PlanTier); ok {
			b.WriteString(m.theme.Dim.Render(fmt.Sprintf("         %d runs/week, peak %d mi", meta.RunsPerWeek, meta.PeakMileage)))
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("Race:    %s\n", dayLabel(m.plan.RaceDate)))
		b.WriteString(fmt.Sprintf("Start:   %s\n", dayLabel(m.plan.StartDate)))
	}
	if m.opts.ReportsDir != "" {
		b.WriteString(fmt.Sprintf("Exports: %s\n", m.opts.ReportsDir))
	}
	b.WriteString("\n" + m.theme.Dim.Render(versionLabel()))
	return b.String()
}
