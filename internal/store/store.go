// Package store owns the user's plan and preferences. Every mutation is a
// load, modify, save cycle against the injected repository.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/database"
	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/plan"
	"github.com/akyairhashvil/marathon/internal/progress"
	"github.com/akyairhashvil/marathon/internal/util"
)

// ErrNoPlan is returned by operations that need a plan before onboarding.
var ErrNoPlan = errors.New("no training plan; complete onboarding first")

type Store struct {
	repo database.Repository
	now  func() time.Time
}

type Option func(*Store)

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(repo database.Repository, opts ...Option) *Store {
	s := &Store{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today is the store's current civil date.
func (s *Store) Today() time.Time {
	return util.CivilDate(s.now())
}

// Onboard generates a plan for raceDate and tier, persists it and marks the
// user onboarded. An existing plan is replaced.
func (s *Store) Onboard(ctx context.Context, raceDate time.Time, tier models.PlanTier) (*models.TrainingPlan, error) {
	p, err := plan.Generate(raceDate, tier)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SavePlan(ctx, p); err != nil {
		util.LogError("onboard: save plan", err)
		return nil, err
	}
	cfg, err := s.repo.LoadUserConfig(ctx)
	if err != nil {
		return nil, err
	}
	cfg.IsOnboarded = true
	if err := s.repo.SaveUserConfig(ctx, cfg); err != nil {
		util.LogError("onboard: save config", err)
		return nil, err
	}
	return p, nil
}

// Plan returns the stored plan or ErrNoPlan.
func (s *Store) Plan(ctx context.Context) (*models.TrainingPlan, error) {
	p, err := s.repo.LoadPlan(ctx)
	if errors.Is(err, database.ErrPlanNotFound) {
		return nil, ErrNoPlan
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) mutate(ctx context.Context, op string, fn func(p *models.TrainingPlan) error) (*models.TrainingPlan, error) {
	p, err := s.Plan(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.repo.SavePlan(ctx, p); err != nil {
		util.LogError(op, err)
		return nil, err
	}
	return p, nil
}

// ToggleCompletion flips completion of workoutID and returns the updated plan.
func (s *Store) ToggleCompletion(ctx context.Context, workoutID string) (*models.TrainingPlan, error) {
	return s.mutate(ctx, "toggle completion", func(p *models.TrainingPlan) error {
		return p.ToggleCompletion(workoutID)
	})
}

// Skip marks workoutID skipped, keeping reason as its notes when given.
func (s *Store) Skip(ctx context.Context, workoutID, reason string) (*models.TrainingPlan, error) {
	return s.mutate(ctx, "skip workout", func(p *models.TrainingPlan) error {
		return p.Skip(workoutID, reason)
	})
}

// UpdateDetails logs post-workout details on workoutID.
func (s *Store) UpdateDetails(ctx context.Context, workoutID string, details models.WorkoutDetails) (*models.TrainingPlan, error) {
	if details.Notes != nil && len(*details.Notes) > config.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes longer than %d characters", models.ErrInvalidDetails, config.MaxNotesLength)
	}
	return s.mutate(ctx, "update details", func(p *models.TrainingPlan) error {
		return p.UpdateDetails(workoutID, details)
	})
}

// Stats recomputes the plan statistics as of today.
func (s *Store) Stats(ctx context.Context) (models.PlanStats, error) {
	p, err := s.Plan(ctx)
	if err != nil {
		return models.PlanStats{}, err
	}
	return progress.Compute(p, s.Today()), nil
}

// TodayWorkout returns today's workout; the workout is nil outside the plan.
func (s *Store) TodayWorkout(ctx context.Context) (*models.Workout, *models.TrainingWeek, error) {
	p, err := s.Plan(ctx)
	if err != nil {
		return nil, nil, err
	}
	w, week, _ := progress.TodayWorkout(p, s.Today())
	return w, week, nil
}

// CurrentWeek returns the week containing today, pinned to the plan bounds.
func (s *Store) CurrentWeek(ctx context.Context) (*models.TrainingWeek, error) {
	p, err := s.Plan(ctx)
	if err != nil {
		return nil, err
	}
	return progress.CurrentWeek(p, s.Today()), nil
}

func (s *Store) Config(ctx context.Context) (models.UserConfig, error) {
	return s.repo.LoadUserConfig(ctx)
}

func (s *Store) SetUnits(ctx context.Context, units string) (models.UserConfig, error) {
	return s.updateConfig(ctx, func(cfg *models.UserConfig) {
		cfg.Units = config.NormalizeUnits(units)
	})
}

func (s *Store) SetTheme(ctx context.Context, theme string) (models.UserConfig, error) {
	return s.updateConfig(ctx, func(cfg *models.UserConfig) {
		cfg.Theme = config.NormalizeTheme(theme)
	})
}

func (s *Store) updateConfig(ctx context.Context, fn func(cfg *models.UserConfig)) (models.UserConfig, error) {
	cfg, err := s.repo.LoadUserConfig(ctx)
	if err != nil {
		return cfg, err
	}
	fn(&cfg)
	if err := s.repo.SaveUserConfig(ctx, cfg); err != nil {
		util.LogError("save user config", err)
		return cfg, err
	}
	return cfg, nil
}

// Reset deletes the plan and restores default preferences.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.repo.DeletePlan(ctx); err != nil {
		util.LogError("reset: delete plan", err)
		return err
	}
	if err := s.repo.SaveUserConfig(ctx, models.DefaultUserConfig()); err != nil {
		util.LogError("reset: save config", err)
		return err
	}
	return nil
}
