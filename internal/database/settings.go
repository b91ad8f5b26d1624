package database

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/models"
)

const (
	settingOnboarded = "onboarded"
	settingUnits     = "units"
	settingTheme     = "theme"
)

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapErr(EntitySetting, "get", key, err)
	}
	return value.String, value.Valid, nil
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return wrapErr(EntitySetting, "set", key, err)
}

// LoadUserConfig reads preferences, filling gaps from DefaultUserConfig.
func (d *Database) LoadUserConfig(ctx context.Context) (models.UserConfig, error) {
	cfg := models.DefaultUserConfig()

	if v, ok, err := d.GetSetting(ctx, settingOnboarded); err != nil {
		return cfg, err
	} else if ok {
		cfg.IsOnboarded, _ = strconv.ParseBool(v)
	}
	if v, ok, err := d.GetSetting(ctx, settingUnits); err != nil {
		return cfg, err
	} else if ok {
		cfg.Units = config.NormalizeUnits(v)
	}
	if v, ok, err := d.GetSetting(ctx, settingTheme); err != nil {
		return cfg, err
	} else if ok {
		cfg.Theme = config.NormalizeTheme(v)
	}
	return cfg, nil
}

// SaveUserConfig writes all preferences in one transaction.
func (d *Database) SaveUserConfig(ctx context.Context, cfg models.UserConfig) error {
	values := map[string]string{
		settingOnboarded: strconv.FormatBool(cfg.IsOnboarded),
		settingUnits:     config.NormalizeUnits(cfg.Units),
		settingTheme:     config.NormalizeTheme(cfg.Theme),
	}
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		for key, value := range values {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
				key, value); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapErr(EntitySetting, "save", "user config", err)
}
