package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/marathon/internal/database"
	"github.com/akyairhashvil/marathon/internal/models"
)

// PlanStore is the part of store.Store the TUI drives.
type PlanStore interface {
	Today() time.Time
	Onboard(ctx context.Context, raceDate time.Time, tier models.PlanTier) (*models.TrainingPlan, error)
	Plan(ctx context.Context) (*models.TrainingPlan, error)
	ToggleCompletion(ctx context.Context, workoutID string) (*models.TrainingPlan, error)
	Skip(ctx context.Context, workoutID, reason string) (*models.TrainingPlan, error)
	UpdateDetails(ctx context.Context, workoutID string, details models.WorkoutDetails) (*models.TrainingPlan, error)
	Config(ctx context.Context) (models.UserConfig, error)
	SetUnits(ctx context.Context, units string) (models.UserConfig, error)
	SetTheme(ctx context.Context, theme string) (models.UserConfig, error)
	Reset(ctx context.Context) error
}

// BackupExporter produces backup files from the settings screen.
type BackupExporter interface {
	ExportBackup(ctx context.Context, opts database.ExportOptions) ([]byte, error)
}
