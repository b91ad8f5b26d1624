package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/models"
)

const backupVersion = 1

type ExportOptions struct {
	EncryptOutput bool
	Passphrase    string
}

// Backup is the portable snapshot of everything the app stores.
type Backup struct {
	Version    int                  `json:"version"`
	ExportedAt string               `json:"exportedAt"`
	Plan       *models.TrainingPlan `json:"plan,omitempty"`
	Config     models.UserConfig    `json:"config"`
}

// ExportBackup serializes the stored plan and preferences, optionally encrypted.
func (d *Database) ExportBackup(ctx context.Context, opts ExportOptions) ([]byte, error) {
	plan, err := d.LoadPlan(ctx)
	if err != nil && !errors.Is(err, ErrPlanNotFound) {
		return nil, err
	}
	cfg, err := d.LoadUserConfig(ctx)
	if err != nil {
		return nil, err
	}

	backup := Backup{
		Version:    backupVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Plan:       plan,
		Config:     cfg,
	}
	jsonData, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, wrapErr(EntityBackup, "encode", "", err)
	}
	if opts.EncryptOutput && opts.Passphrase != "" {
		return encryptData(jsonData, opts.Passphrase)
	}
	return jsonData, nil
}

// ReadBackup decodes payload, decrypting it with passphrase when needed.
func ReadBackup(payload []byte, passphrase string) (Backup, error) {
	var backup Backup
	if IsEncryptedBackup(payload) {
		plain, err := decryptData(payload, passphrase)
		if err != nil {
			return backup, err
		}
		payload = plain
	}
	if err := json.Unmarshal(payload, &backup); err != nil {
		return backup, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if backup.Version == 0 || backup.Version > backupVersion {
		return backup, fmt.Errorf("%w: unsupported version %d", ErrInvalidBackup, backup.Version)
	}
	if backup.Plan != nil && len(backup.Plan.Weeks) != config.PlanWeeks {
		return backup, fmt.Errorf("%w: plan has %d weeks", ErrInvalidBackup, len(backup.Plan.Weeks))
	}
	return backup, nil
}

// ImportBackup replaces the stored plan and preferences with the backup contents.
func (d *Database) ImportBackup(ctx context.Context, payload []byte, passphrase string) error {
	backup, err := ReadBackup(payload, passphrase)
	if err != nil {
		return err
	}

	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM plans"); err != nil {
			return err
		}
		if p := backup.Plan; p != nil {
			raw, err := json.Marshal(p)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO plans (id, tier, plan_name, race_date, start_date, payload, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
				p.ID, string(p.PlanTier), nullableString(p.PlanName), p.RaceDate, p.StartDate,
				string(raw), p.CreatedAt); err != nil {
				return fmt.Errorf("import plan %s: %w", p.ID, err)
			}
		}
		settings := map[string]string{
			settingOnboarded: strconv.FormatBool(backup.Config.IsOnboarded && backup.Plan != nil),
			settingUnits:     config.NormalizeUnits(backup.Config.Units),
			settingTheme:     config.NormalizeTheme(backup.Config.Theme),
		}
		for key, value := range settings {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
				key, value); err != nil {
				return fmt.Errorf("import setting %s: %w", key, err)
			}
		}
		return nil
	})
	return wrapErr(EntityBackup, "import", "", err)
}
