package database

import (
	"context"

	"github.com/akyairhashvil/marathon/internal/models"
)

// TrainingPlanRepository stores the single active plan.
type TrainingPlanRepository interface {
	LoadPlan(ctx context.Context) (*models.TrainingPlan, error)
	SavePlan(ctx context.Context, plan *models.TrainingPlan) error
	DeletePlan(ctx context.Context) error
}

// UserConfigRepository stores user preferences.
type UserConfigRepository interface {
	LoadUserConfig(ctx context.Context) (models.UserConfig, error)
	SaveUserConfig(ctx context.Context, cfg models.UserConfig) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=../store/mock_repository_test.go -package=store
type Repository interface {
	TrainingPlanRepository
	UserConfigRepository
}

var _ Repository = (*Database)(nil)
