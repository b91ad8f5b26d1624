package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/plan"
	"github.com/akyairhashvil/marathon/internal/util"
)

// WorkoutBuilder provides fluent API for creating test workouts.
type WorkoutBuilder struct {
	workout models.Workout
}

func NewWorkout() *WorkoutBuilder {
	distance := 5.0
	return &WorkoutBuilder{
		workout: models.Workout{
			ID:          uuid.NewString(),
			Date:        util.FormatDate(time.Now()),
			Title:       "5 mi run",
			Description: "Easy run at conversational pace.",
			Type:        models.WorkoutRun,
			Distance:    &distance,
			Unit:        models.UnitMiles,
		},
	}
}

func (b *WorkoutBuilder) WithID(id string) *WorkoutBuilder {
	b.workout.ID = id
	return b
}

func (b *WorkoutBuilder) WithDate(date string) *WorkoutBuilder {
	b.workout.Date = date
	return b
}

func (b *WorkoutBuilder) WithType(t models.WorkoutType) *WorkoutBuilder {
	b.workout.Type = t
	if t == models.WorkoutRest || t == models.WorkoutCross {
		b.workout.Distance = nil
	}
	return b
}

func (b *WorkoutBuilder) WithDistance(miles float64) *WorkoutBuilder {
	b.workout.Distance = &miles
	b.workout.Title = fmt.Sprintf("%g mi run", miles)
	return b
}

func (b *WorkoutBuilder) Completed() *WorkoutBuilder {
	b.workout.IsCompleted = true
	b.workout.IsSkipped = false
	return b
}

func (b *WorkoutBuilder) Skipped(reason string) *WorkoutBuilder {
	b.workout.Skip(reason)
	return b
}

func (b *WorkoutBuilder) Build() models.Workout {
	return b.workout
}

// PlanBuilder generates a real plan and applies workout state on top.
type PlanBuilder struct {
	race      time.Time
	tier      models.PlanTier
	completed []int
	skipped   []string
}

func NewPlan() *PlanBuilder {
	race := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	return &PlanBuilder{race: race, tier: models.TierNovice1}
}

func (b *PlanBuilder) WithRaceDate(date string) *PlanBuilder {
	d, err := util.ParseDate(date)
	if err != nil {
		panic(fmt.Sprintf("testutil: bad race date %q: %v", date, err))
	}
	b.race = d
	return b
}

func (b *PlanBuilder) WithTier(tier models.PlanTier) *PlanBuilder {
	b.tier = tier
	return b
}

// WithCompletedWeeks marks every countable workout in the given weeks completed.
func (b *PlanBuilder) WithCompletedWeeks(weeks ...int) *PlanBuilder {
	b.completed = append(b.completed, weeks...)
	return b
}

// WithSkipped skips the workouts on the given dates.
func (b *PlanBuilder) WithSkipped(dates ...string) *PlanBuilder {
	b.skipped = append(b.skipped, dates...)
	return b
}

func (b *PlanBuilder) Build() *models.TrainingPlan {
	p, err := plan.Generate(b.race, b.tier)
	if err != nil {
		panic(fmt.Sprintf("testutil: generate plan: %v", err))
	}
	for _, n := range b.completed {
		week := &p.Weeks[n-1]
		for i := range week.Workouts {
			if week.Workouts[i].Type.Countable() {
				week.Workouts[i].IsCompleted = true
			}
		}
	}
	for _, date := range b.skipped {
		if w, _, ok := p.WorkoutOn(date); ok {
			w.Skip("")
		}
	}
	return p
}
