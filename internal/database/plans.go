package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/akyairhashvil/marathon/internal/models"
)

// LoadPlan returns the stored plan, or ErrPlanNotFound.
func (d *Database) LoadPlan(ctx context.Context) (*models.TrainingPlan, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var id, payload string
	err := d.DB.QueryRowContext(ctx,
		"SELECT id, payload FROM plans ORDER BY created_at DESC LIMIT 1").Scan(&id, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, wrapErr(EntityPlan, "load", "", err)
	}

	var plan models.TrainingPlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, wrapErr(EntityPlan, "decode", id, err)
	}
	return &plan, nil
}

// SavePlan replaces the stored plan with plan.
func (d *Database) SavePlan(ctx context.Context, plan *models.TrainingPlan) error {
	if plan == nil {
		return wrapErr(EntityPlan, "save", "", errors.New("nil plan"))
	}
	payload, err := json.Marshal(plan)
	if err != nil {
		return wrapErr(EntityPlan, "encode", plan.ID, err)
	}
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM plans WHERE id != ?", plan.ID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO plans (id, tier, plan_name, race_date, start_date, payload, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(id) DO UPDATE SET
				tier = excluded.tier,
				plan_name = excluded.plan_name,
				race_date = excluded.race_date,
				start_date = excluded.start_date,
				payload = excluded.payload,
				updated_at = CURRENT_TIMESTAMP`,
			plan.ID, string(plan.PlanTier), nullableString(plan.PlanName), plan.RaceDate, plan.StartDate,
			string(payload), plan.CreatedAt)
		return err
	})
	return wrapErr(EntityPlan, "save", plan.ID, err)
}

// DeletePlan removes any stored plan. Deleting when none exists is not an error.
func (d *Database) DeletePlan(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	_, err := d.DB.ExecContext(ctx, "DELETE FROM plans")
	return wrapErr(EntityPlan, "delete", "", err)
}

// PlanSummary is the indexed metadata of the stored plan.
type PlanSummary struct {
	ID        string
	Tier      models.PlanTier
	PlanName  string
	RaceDate  string
	StartDate string
	UpdatedAt *string
}

// StoredPlanSummary reads the metadata columns without decoding the payload.
func (d *Database) StoredPlanSummary(ctx context.Context) (PlanSummary, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var s PlanSummary
	var name sql.NullString
	var tier string
	err := d.DB.QueryRowContext(ctx, `
		SELECT id, tier, plan_name, race_date, start_date, updated_at
		FROM plans ORDER BY created_at DESC LIMIT 1`).
		Scan(&s.ID, &tier, &name, &s.RaceDate, &s.StartDate, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return s, ErrPlanNotFound
	}
	if err != nil {
		return s, wrapErr(EntityPlan, "summary", "", err)
	}
	s.Tier = models.PlanTier(tier)
	s.PlanName = name.String
	return s, nil
}
