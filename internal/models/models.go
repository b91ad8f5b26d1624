package models

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/marathon/internal/config"
)

// WorkoutType enumerates the kinds of prescribed activity.
type WorkoutType string

const (
	WorkoutRest  WorkoutType = "rest"
	WorkoutRun   WorkoutType = "run"
	WorkoutPace  WorkoutType = "pace"
	WorkoutCross WorkoutType = "cross"
	WorkoutRace  WorkoutType = "race"
)

// Countable reports whether the type counts toward streaks and completion rate.
func (t WorkoutType) Countable() bool {
	return t != WorkoutRest && t != WorkoutCross
}

// PlanTier names a difficulty/volume level selecting a schedule table.
type PlanTier string

const (
	TierNovice1       PlanTier = "novice1"
	TierNovice2       PlanTier = "novice2"
	TierIntermediate1 PlanTier = "intermediate1"
	TierIntermediate2 PlanTier = "intermediate2"
	TierAdvanced1     PlanTier = "advanced1"
	TierAdvanced2     PlanTier = "advanced2"
)

// UnitMiles is the only unit schedules are authored in.
const UnitMiles = "mi"

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrInvalidDetails  = errors.New("invalid workout details")
)

// Workout is one calendar day's prescribed activity.
type Workout struct {
	ID              string      `json:"id"`
	Date            string      `json:"date"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Type            WorkoutType `json:"type"`
	Distance        *float64    `json:"distance,omitempty"`
	Unit            string      `json:"unit"`
	IsCompleted     bool        `json:"isCompleted"`
	IsSkipped       bool        `json:"isSkipped"`
	ActualDistance  *float64    `json:"actualDistance,omitempty"`
	ActualDuration  *float64    `json:"actualDuration,omitempty"` // minutes
	Notes           string      `json:"notes,omitempty"`
	PerceivedEffort *int        `json:"perceivedEffort,omitempty"`
}

// PlannedDistance returns the prescribed distance, 0 when there is none.
func (w Workout) PlannedDistance() float64 {
	if w.Distance == nil {
		return 0
	}
	return *w.Distance
}

// CompletedDistance prefers the logged distance over the prescribed one.
func (w Workout) CompletedDistance() float64 {
	if w.ActualDistance != nil {
		return *w.ActualDistance
	}
	return w.PlannedDistance()
}

// ToggleCompletion flips the completion flag. Completing clears a skip.
func (w *Workout) ToggleCompletion() {
	w.IsCompleted = !w.IsCompleted
	if w.IsCompleted {
		w.IsSkipped = false
	}
}

// Skip marks the workout skipped, clearing completion. A non-empty reason
// replaces the notes.
func (w *Workout) Skip(reason string) {
	w.IsSkipped = true
	w.IsCompleted = false
	if reason != "" {
		w.Notes = reason
	}
}

// WorkoutDetails is a partial update of the post-workout log; nil fields are left alone.
type WorkoutDetails struct {
	ActualDistance  *float64
	ActualDuration  *float64
	Notes           *string
	PerceivedEffort *int
}

// Validate checks the ranges of the provided fields.
func (d WorkoutDetails) Validate() error {
	if d.ActualDistance != nil && *d.ActualDistance < 0 {
		return fmt.Errorf("%w: distance must not be negative", ErrInvalidDetails)
	}
	if d.ActualDuration != nil && *d.ActualDuration < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidDetails)
	}
	if d.PerceivedEffort != nil && (*d.PerceivedEffort < config.MinEffort || *d.PerceivedEffort > config.MaxEffort) {
		return fmt.Errorf("%w: effort must be between %d and %d", ErrInvalidDetails, config.MinEffort, config.MaxEffort)
	}
	return nil
}

// Apply merges the provided fields into w.
func (d WorkoutDetails) Apply(w *Workout) {
	if d.ActualDistance != nil {
		v := *d.ActualDistance
		w.ActualDistance = &v
	}
	if d.ActualDuration != nil {
		v := *d.ActualDuration
		w.ActualDuration = &v
	}
	if d.Notes != nil {
		w.Notes = *d.Notes
	}
	if d.PerceivedEffort != nil {
		v := *d.PerceivedEffort
		w.PerceivedEffort = &v
	}
}

// TrainingWeek groups seven consecutive workouts.
type TrainingWeek struct {
	WeekNumber          int       `json:"weekNumber"`
	StartDate           string    `json:"startDate"`
	EndDate             string    `json:"endDate"`
	Workouts            []Workout `json:"workouts"`
	TotalPlannedMileage float64   `json:"totalPlannedMileage"`
}

// Contains reports whether date (YYYY-MM-DD) falls inside the week.
func (w TrainingWeek) Contains(date string) bool {
	return w.StartDate <= date && date <= w.EndDate
}

// TrainingPlan is the root aggregate; it exclusively owns its weeks and workouts.
type TrainingPlan struct {
	ID        string         `json:"id"`
	PlanTier  PlanTier       `json:"planTier"`
	PlanName  string         `json:"planName"`
	RaceDate  string         `json:"raceDate"`
	StartDate string         `json:"startDate"`
	Weeks     []TrainingWeek `json:"weeks"`
	CreatedAt int64          `json:"createdAt"` // unix millis
}

// EndDate is the date of the last workout, which is the race.
func (p *TrainingPlan) EndDate() string {
	if len(p.Weeks) == 0 {
		return ""
	}
	return p.Weeks[len(p.Weeks)-1].EndDate
}

// Workout returns the workout with id and the week that owns it.
func (p *TrainingPlan) Workout(id string) (*Workout, *TrainingWeek, error) {
	for i := range p.Weeks {
		week := &p.Weeks[i]
		for j := range week.Workouts {
			if week.Workouts[j].ID == id {
				return &week.Workouts[j], week, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrWorkoutNotFound, id)
}

// WorkoutOn returns the workout scheduled on date and its week.
func (p *TrainingPlan) WorkoutOn(date string) (*Workout, *TrainingWeek, bool) {
	for i := range p.Weeks {
		week := &p.Weeks[i]
		if !week.Contains(date) {
			continue
		}
		for j := range week.Workouts {
			if week.Workouts[j].Date == date {
				return &week.Workouts[j], week, true
			}
		}
	}
	return nil, nil, false
}

// AllWorkouts flattens the plan in week order.
func (p *TrainingPlan) AllWorkouts() []Workout {
	var out []Workout
	for _, week := range p.Weeks {
		out = append(out, week.Workouts...)
	}
	return out
}

// ToggleCompletion flips completion on the workout with id.
func (p *TrainingPlan) ToggleCompletion(id string) error {
	w, _, err := p.Workout(id)
	if err != nil {
		return err
	}
	w.ToggleCompletion()
	return nil
}

// Skip marks the workout with id skipped.
func (p *TrainingPlan) Skip(id, reason string) error {
	w, _, err := p.Workout(id)
	if err != nil {
		return err
	}
	w.Skip(reason)
	return nil
}

// UpdateDetails merges post-workout details into the workout with id.
func (p *TrainingPlan) UpdateDetails(id string, details WorkoutDetails) error {
	if err := details.Validate(); err != nil {
		return err
	}
	w, _, err := p.Workout(id)
	if err != nil {
		return err
	}
	details.Apply(w)
	return nil
}

// PlanStats is a derived view of a plan's progress; it is never persisted.
type PlanStats struct {
	TotalWorkouts       int     `json:"totalWorkouts"`
	CompletedWorkouts   int     `json:"completedWorkouts"`
	SkippedWorkouts     int     `json:"skippedWorkouts"`
	TotalPlannedMiles   float64 `json:"totalPlannedMiles"`
	TotalCompletedMiles float64 `json:"totalCompletedMiles"`
	CurrentStreak       int     `json:"currentStreak"`
	LongestStreak       int     `json:"longestStreak"`
	CompletionRate      int     `json:"completionRate"`
	DaysUntilRace       int     `json:"daysUntilRace"`
	CurrentWeek         int     `json:"currentWeek"`
}

// UserConfig holds persisted user preferences.
type UserConfig struct {
	IsOnboarded bool   `json:"isOnboarded"`
	Units       string `json:"units"`
	Theme       string `json:"theme"`
}

// DefaultUserConfig is the configuration before onboarding.
func DefaultUserConfig() UserConfig {
	return UserConfig{
		IsOnboarded: false,
		Units:       config.UnitsMiles,
		Theme:       config.ThemeSystem,
	}
}

// PlanMetadata describes a tier on the selection screen.
type PlanMetadata struct {
	ID          PlanTier `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	RunsPerWeek int      `json:"runsPerWeek"`
	PeakMileage int      `json:"peakMileage"`
	BestFor     string   `json:"bestFor"`
}
