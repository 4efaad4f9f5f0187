package config

import (
	"time"

	"github.com/hyp3rd/ewrap/pkg/ewrap"
)

var _ validatable = (*ViewsConfig)(nil)

// ViewsConfig tunes browsing sessions.
type ViewsConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size"`
	MaxPageSize     int `mapstructure:"max_page_size"`
	// LoadLatency is waited before each extra page is appended.
	LoadLatency   time.Duration `mapstructure:"load_latency"`
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`
	MaxOpen       int           `mapstructure:"max_open"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// Validate checks page sizes and session limits.
func (c *ViewsConfig) Validate(eg *ewrap.ErrorGroup) {
	if c.DefaultPageSize <= 0 {
		eg.Add(ewrap.New("views default_page_size must be greater than 0"))
	}

	if c.MaxPageSize < c.DefaultPageSize {
		eg.Add(ewrap.New("views max_page_size must not be lower than default_page_size"))
	}

	if c.LoadLatency < 0 {
		eg.Add(ewrap.New("views load_latency must not be negative"))
	}

	if c.IdleTTL < 0 {
		eg.Add(ewrap.New("views idle_ttl must not be negative"))
	}

	if c.MaxOpen < 0 {
		eg.Add(ewrap.New("views max_open must not be negative"))
	}

	if c.IdleTTL > 0 && c.SweepInterval <= 0 {
		eg.Add(ewrap.New("views sweep_interval must be greater than 0 when idle_ttl is set"))
	}
}
