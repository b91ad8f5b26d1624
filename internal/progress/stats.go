// Package progress derives statistics from a plan's workout states. Nothing
// here mutates the plan.
package progress

import (
	"math"
	"sort"
	"time"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/util"
)

// Compute returns the stats of p as of today.
func Compute(p *models.TrainingPlan, today time.Time) models.PlanStats {
	var stats models.PlanStats
	if p == nil {
		return stats
	}
	todayStr := util.FormatDate(today)

	countable := countableByDate(p)
	past := 0
	for _, w := range countable {
		stats.TotalWorkouts++
		stats.TotalPlannedMiles += w.PlannedDistance()
		if w.IsCompleted {
			stats.CompletedWorkouts++
			stats.TotalCompletedMiles += w.CompletedDistance()
		}
		if w.IsSkipped {
			stats.SkippedWorkouts++
		}
		if w.Date < todayStr {
			past++
		}
	}

	stats.CurrentStreak = currentStreak(countable, todayStr)
	stats.LongestStreak = longestStreak(countable, todayStr)
	if past > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedWorkouts) / float64(past) * 100))
	}
	if race, err := util.ParseDate(p.RaceDate); err == nil {
		stats.DaysUntilRace = max(0, util.DaysBetween(today, race))
	}
	stats.CurrentWeek = CurrentWeekNumber(p, today)
	return stats
}

func countableByDate(p *models.TrainingPlan) []models.Workout {
	var out []models.Workout
	for _, w := range p.AllWorkouts() {
		if w.Type.Countable() {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// breaks reports whether w ends a streak: skipped, or past due and not done.
func breaks(w models.Workout, todayStr string) bool {
	return w.IsSkipped || (!w.IsCompleted && w.Date < todayStr)
}

// currentStreak walks backward from the most recent workout. Pending workouts
// dated today or later are passed over.
func currentStreak(sorted []models.Workout, todayStr string) int {
	streak := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		w := sorted[i]
		if w.IsCompleted {
			streak++
			continue
		}
		if breaks(w, todayStr) {
			break
		}
	}
	return streak
}

func longestStreak(sorted []models.Workout, todayStr string) int {
	longest, run := 0, 0
	for _, w := range sorted {
		switch {
		case w.IsCompleted:
			run++
			longest = max(longest, run)
		case breaks(w, todayStr):
			run = 0
		}
	}
	return longest
}

// CurrentWeekNumber is the week containing today, pinned to the first or
// last week outside the plan.
func CurrentWeekNumber(p *models.TrainingPlan, today time.Time) int {
	if week := CurrentWeek(p, today); week != nil {
		return week.WeekNumber
	}
	return 1
}

// CurrentWeek returns the week containing today, pinned like CurrentWeekNumber.
// It returns nil only for a plan without weeks.
func CurrentWeek(p *models.TrainingPlan, today time.Time) *models.TrainingWeek {
	if p == nil || len(p.Weeks) == 0 {
		return nil
	}
	todayStr := util.FormatDate(today)
	if todayStr < p.Weeks[0].StartDate {
		return &p.Weeks[0]
	}
	for i := range p.Weeks {
		if p.Weeks[i].Contains(todayStr) {
			return &p.Weeks[i]
		}
	}
	return &p.Weeks[len(p.Weeks)-1]
}

// TodayWorkout returns the workout scheduled for today and its week.
func TodayWorkout(p *models.TrainingPlan, today time.Time) (*models.Workout, *models.TrainingWeek, bool) {
	if p == nil {
		return nil, nil, false
	}
	return p.WorkoutOn(util.FormatDate(today))
}

// ToDisplayDistance converts miles into the user's preferred units.
func ToDisplayDistance(miles float64, units string) float64 {
	if units == config.UnitsKm {
		return miles * config.KilometersPerMile
	}
	return miles
}

// UnitLabel is the short label for units.
func UnitLabel(units string) string {
	if units == config.UnitsKm {
		return "km"
	}
	return models.UnitMiles
}
