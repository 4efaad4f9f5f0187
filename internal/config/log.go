package config

import (
	"github.com/hyp3rd/ewrap/pkg/ewrap"
	"go.uber.org/zap/zapcore"
)

var _ validatable = (*LogConfig)(nil)

// LogConfig holds logger settings. An empty File logs to stderr.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	File        string `mapstructure:"file"`
	MaxSizeMB   int    `mapstructure:"max_size_mb"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAgeDays  int    `mapstructure:"max_age_days"`
	Compress    bool   `mapstructure:"compress"`
	Development bool   `mapstructure:"development"`
}

// Validate checks level and format names.
func (c *LogConfig) Validate(eg *ewrap.ErrorGroup) {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		eg.Add(ewrap.Wrap(err, "log level is invalid"))
	}

	if c.Format != "json" && c.Format != "console" {
		eg.Add(ewrap.New("log format must be json or console, got " + c.Format))
	}

	if c.File != "" && c.MaxSizeMB <= 0 {
		eg.Add(ewrap.New("log max_size_mb must be greater than 0 when logging to a file"))
	}
}
