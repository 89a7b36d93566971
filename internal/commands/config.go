package commands

import (
	"os"

	"github.com/spf13/viper"
)

// Config holds presentation and export settings. Everything has a default;
// the config file is optional.
type Config struct {
	ExportPath string // SQLite file written by `export`
	RankLimit  int    // rows shown by `rank`
}

// LoadConfig reads alchemetrics.yml from the working directory if present,
// with ALCHEMETRICS_* environment overrides. A missing file is not an error.
func LoadConfig() *Config {
	cfg := &Config{
		ExportPath: "data/alchemetrics.db",
		RankLimit:  15,
	}

	v := viper.New()
	v.SetConfigName("alchemetrics")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvPrefix("ALCHEMETRICS")

	v.SetDefault("export.path", cfg.ExportPath)
	v.SetDefault("rank.limit", cfg.RankLimit)

	if _, err := os.Stat("alchemetrics.yml"); err == nil {
		// Best effort: a malformed file falls back to defaults.
		_ = v.ReadInConfig()
	}

	cfg.ExportPath = v.GetString("export.path")
	cfg.RankLimit = v.GetInt("rank.limit")
	return cfg
}
