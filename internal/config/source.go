package config

import "github.com/hyp3rd/ewrap/pkg/ewrap"

var _ validatable = (*SourceConfig)(nil)

// Catalog source kinds.
const (
	SourceMemory  = "memory"
	SourceSpanner = "spanner"
)

// SourceConfig selects where catalog records come from.
type SourceConfig struct {
	Kind string `mapstructure:"kind"`
	// Fixtures is the YAML catalog served by the memory source and written
	// by the seed command.
	Fixtures string `mapstructure:"fixtures"`
	// SpannerDatabase is the full database path:
	// projects/<p>/instances/<i>/databases/<d>.
	SpannerDatabase string `mapstructure:"spanner_database"`
	MaxRecords      int64  `mapstructure:"max_records"`
}

// Validate checks that the selected source has what it needs.
func (c *SourceConfig) Validate(eg *ewrap.ErrorGroup) {
	switch c.Kind {
	case SourceMemory:
		if c.Fixtures == "" {
			eg.Add(ewrap.New("source fixtures path is required for the memory source"))
		}
	case SourceSpanner:
		if c.SpannerDatabase == "" {
			eg.Add(ewrap.New("source spanner_database is required for the spanner source"))
		}
	default:
		eg.Add(ewrap.New("source kind must be memory or spanner, got " + c.Kind))
	}

	if c.MaxRecords <= 0 {
		eg.Add(ewrap.New("source max_records must be greater than 0"))
	}
}
