package config

import "github.com/hyp3rd/ewrap/pkg/ewrap"

var _ validatable = (*RateLimiterConfig)(nil)

// RateLimiterConfig holds the per-client token bucket applied to the HTTP API.
// Zero requests per second disables limiting.
type RateLimiterConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	BurstSize         int     `mapstructure:"burst_size"`
}

// Enabled reports whether requests are limited.
func (c *RateLimiterConfig) Enabled() bool {
	return c.RequestsPerSecond > 0
}

// Validate ensures the bucket can admit at least one request.
func (c *RateLimiterConfig) Validate(eg *ewrap.ErrorGroup) {
	if c.RequestsPerSecond < 0 {
		eg.Add(ewrap.New("rate limiter requests_per_second must not be negative"))
	}

	if c.Enabled() && c.BurstSize <= 0 {
		eg.Add(ewrap.New("rate limiter burst_size must be greater than 0"))
	}
}
