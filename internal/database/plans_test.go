package database

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/testutil"
)

func TestLoadPlan_Empty(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, err := db.LoadPlan(ctx); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
	if _, err := db.StoredPlanSummary(ctx); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound from summary, got %v", err)
	}
}

func TestSaveLoadPlan_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	plan := testutil.NewPlan().WithCompletedWeeks(1).WithSkipped("2025-02-04").Build()
	w, _, _ := plan.WorkoutOn("2025-01-28")
	distance, effort := 3.3, 4
	if err := plan.UpdateDetails(w.ID, models.WorkoutDetails{ActualDistance: &distance, PerceivedEffort: &effort}); err != nil {
		t.Fatalf("UpdateDetails failed: %v", err)
	}

	if err := db.SavePlan(ctx, plan); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}
	loaded, err := db.LoadPlan(ctx)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	if !reflect.DeepEqual(plan, loaded) {
		t.Fatalf("plan did not round-trip")
	}

	summary, err := db.StoredPlanSummary(ctx)
	if err != nil {
		t.Fatalf("StoredPlanSummary failed: %v", err)
	}
	if summary.ID != plan.ID || summary.Tier != models.TierNovice1 || summary.RaceDate != "2025-06-01" || summary.PlanName != "Novice 1" {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.UpdatedAt == nil {
		t.Fatalf("expected updated_at to be set")
	}
}

func TestSavePlan_UpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	plan := testutil.NewPlan().Build()
	if err := db.SavePlan(ctx, plan); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}
	first := plan.Weeks[0].Workouts[1]
	if err := plan.ToggleCompletion(first.ID); err != nil {
		t.Fatalf("ToggleCompletion failed: %v", err)
	}
	if err := db.SavePlan(ctx, plan); err != nil {
		t.Fatalf("second SavePlan failed: %v", err)
	}
	loaded, err := db.LoadPlan(ctx)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	if !loaded.Weeks[0].Workouts[1].IsCompleted {
		t.Fatalf("expected completion to persist")
	}

	var count int
	if err := db.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM plans").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one plan row, got %d", count)
	}
}

func TestSavePlan_ReplacesPreviousPlan(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	old := testutil.NewPlan().Build()
	fresh := testutil.NewPlan().WithTier(models.TierAdvanced1).WithRaceDate("2025-11-02").Build()
	if err := db.SavePlan(ctx, old); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}
	if err := db.SavePlan(ctx, fresh); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}
	loaded, err := db.LoadPlan(ctx)
	if err != nil {
		t.Fatalf("LoadPlan failed: %v", err)
	}
	if loaded.ID != fresh.ID || loaded.PlanTier != models.TierAdvanced1 {
		t.Fatalf("expected the newest plan, got %s/%s", loaded.ID, loaded.PlanTier)
	}
}

func TestDeletePlan(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.DeletePlan(ctx); err != nil {
		t.Fatalf("DeletePlan on empty db failed: %v", err)
	}
	if err := db.SavePlan(ctx, testutil.NewPlan().Build()); err != nil {
		t.Fatalf("SavePlan failed: %v", err)
	}
	if err := db.DeletePlan(ctx); err != nil {
		t.Fatalf("DeletePlan failed: %v", err)
	}
	if _, err := db.LoadPlan(ctx); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound after delete, got %v", err)
	}
}

func TestSavePlan_Nil(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	var opErr *OpError
	if err := db.SavePlan(ctx, nil); !errors.As(err, &opErr) {
		t.Fatalf("expected OpError, got %v", err)
	}
}
