package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds runtime configuration. Values come from an optional
// config.yaml in the data directory, MARATHON_* environment variables
// and the defaults below, in that order of precedence (env wins).
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Reports  ReportsConfig  `mapstructure:"reports"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type ReportsConfig struct {
	Dir string `mapstructure:"dir"`
}

// UIConfig seeds the user preferences on first launch. After onboarding the
// stored preferences take over.
type UIConfig struct {
	Units string `mapstructure:"units"`
	Theme string `mapstructure:"theme"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

// Load reads configuration rooted at dataDir. A missing config file is not an error.
func Load(dataDir, reportsDir string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(dataDir)
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database.path", filepath.Join(dataDir, DBFileName))
	v.SetDefault("reports.dir", reportsDir)
	v.SetDefault("ui.units", UnitsMiles)
	v.SetDefault("ui.theme", ThemeSystem)
	v.SetDefault("log.file", filepath.Join(dataDir, LogFileName))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.UI.Units = NormalizeUnits(cfg.UI.Units)
	cfg.UI.Theme = NormalizeTheme(cfg.UI.Theme)
	return cfg, nil
}

// NormalizeUnits maps user input onto a supported unit, defaulting to miles.
func NormalizeUnits(units string) string {
	switch strings.ToLower(strings.TrimSpace(units)) {
	case UnitsKm, "kilometers", "kilometres":
		return UnitsKm
	default:
		return UnitsMiles
	}
}

// NormalizeTheme maps user input onto a supported theme, defaulting to system.
func NormalizeTheme(theme string) string {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return ThemeSystem
	}
}
