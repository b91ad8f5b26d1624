// Package plan lays a tier's weekly template out on the calendar, working
// backward from the race date.
package plan

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/schedule"
	"github.com/akyairhashvil/marathon/internal/util"
	"github.com/akyairhashvil/marathon/internal/workout"
)

// ErrUnknownTier is returned when no template exists for the requested tier.
var ErrUnknownTier = errors.New("unknown plan tier")

// Generate builds an 18-week plan whose last day is raceDate. Only the
// calendar components of raceDate are used.
func Generate(raceDate time.Time, tier models.PlanTier) (*models.TrainingPlan, error) {
	table, ok := schedule.Get(tier)
	if !ok || len(table) != config.PlanWeeks {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}

	race := util.CivilDate(raceDate)
	weeks := make([]models.TrainingWeek, 0, config.PlanWeeks)

	for w := config.PlanWeeks - 1; w >= 0; w-- {
		var workouts []models.Workout
		for d := 0; d < config.DaysPerWeek; d++ {
			daysBeforeRace := (config.PlanWeeks-1-w)*config.DaysPerWeek + (config.DaysPerWeek - 1 - d)
			date := util.FormatDate(util.AddDays(race, -daysBeforeRace))
			if wo, ok := workout.Classify(table[w][d], date); ok {
				workouts = append(workouts, wo)
			}
		}
		sort.SliceStable(workouts, func(i, j int) bool {
			return workouts[i].Date < workouts[j].Date
		})
		weeks = append(weeks, buildWeek(w+1, workouts))
	}

	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekNumber < weeks[j].WeekNumber
	})

	p := &models.TrainingPlan{
		ID:        uuid.NewString(),
		PlanTier:  tier,
		PlanName:  schedule.Name(tier),
		RaceDate:  util.FormatDate(race),
		Weeks:     weeks,
		CreatedAt: time.Now().UnixMilli(),
	}
	if len(weeks) > 0 {
		p.StartDate = weeks[0].StartDate
	}
	return p, nil
}

func buildWeek(number int, workouts []models.Workout) models.TrainingWeek {
	week := models.TrainingWeek{WeekNumber: number, Workouts: workouts}
	if len(workouts) > 0 {
		week.StartDate = workouts[0].Date
		week.EndDate = workouts[len(workouts)-1].Date
	}
	for _, wo := range workouts {
		week.TotalPlannedMileage += wo.PlannedDistance()
	}
	return week
}

// WeeksUntil returns the whole weeks from today to raceDate, negative when
// the race is in the past.
func WeeksUntil(raceDate, today time.Time) int {
	days := util.DaysBetween(today, raceDate)
	if days < 0 {
		return -((-days + config.DaysPerWeek - 1) / config.DaysPerWeek)
	}
	return days / config.DaysPerWeek
}

// TooSoon reports whether fewer than a full plan's worth of weeks remain
// before raceDate. Generation still succeeds in that case.
func TooSoon(raceDate, today time.Time) bool {
	return WeeksUntil(raceDate, today) < config.PlanWeeks
}
