package config

import (
	"errors"
	"strings"

	"github.com/hyp3rd/ewrap/pkg/ewrap"
	"github.com/spf13/viper"

	"github.com/light-bringer/storefront-service/internal/constants"
)

// Config represents the application configuration, loaded from a YAML file
// with environment overrides.
type Config struct {
	Environment string            `mapstructure:"environment"`
	Servers     ServersConfig     `mapstructure:"servers"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
	Source      SourceConfig      `mapstructure:"source"`
	Views       ViewsConfig       `mapstructure:"views"`
	Log         LogConfig         `mapstructure:"log"`
}

// Options holds configuration options for loading the Config.
type Options struct {
	// ConfigName is the name of the configuration file (without extension).
	ConfigName string
	// ConfigFile, when set, is read instead of searching ConfigName.
	ConfigFile string
	// Paths are searched for ConfigName. Defaults to "." and "./configs".
	Paths []string
}

// DefaultOptions returns the default configuration options.
func DefaultOptions() Options {
	return Options{
		ConfigName: "config",
		Paths:      []string{".", "./configs"},
	}
}

// Load reads the configuration file, applies STOREFRONT_* environment
// overrides and defaults, and validates the result. A missing file is not
// an error when searching by name.
func Load(opts Options) (*Config, error) {
	def := DefaultOptions()
	if opts.ConfigName == "" {
		opts.ConfigName = def.ConfigName
	}
	if len(opts.Paths) == 0 {
		opts.Paths = def.Paths
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(opts.ConfigName)
		for _, p := range opts.Paths {
			v.AddConfigPath(p)
		}
	}
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, ewrap.Wrapf(err, "reading config file")
		}
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ewrap.Wrapf(err, "unmarshaling config")
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, ewrap.Wrap(err, "validating configuration")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("servers.http.port", constants.HTTPPort)
	v.SetDefault("servers.http.read_timeout", constants.HTTPReadTimeout)
	v.SetDefault("servers.http.write_timeout", constants.HTTPWriteTimeout)
	v.SetDefault("servers.http.shutdown_timeout", constants.HTTPShutdownTimeout)

	v.SetDefault("servers.grpc.port", constants.GRPCServerPort)
	v.SetDefault("servers.grpc.max_connection_idle", constants.GRPCServerMaxConnectionIdle)
	v.SetDefault("servers.grpc.max_connection_age", constants.GRPCServerMaxConnectionAge)
	v.SetDefault("servers.grpc.max_connection_age_grace", constants.GRPCServerMaxConnectionAgeGrace)
	v.SetDefault("servers.grpc.keepalive_time", constants.GRPCServerKeepaliveTime)
	v.SetDefault("servers.grpc.keepalive_timeout", constants.GRPCServerKeepaliveTimeout)

	v.SetDefault("rate_limiter.requests_per_second", constants.RateLimitRequestsPerSecond)
	v.SetDefault("rate_limiter.burst_size", constants.RateLimitBurstSize)

	v.SetDefault("source.kind", constants.SourceKind)
	v.SetDefault("source.fixtures", constants.SourceFixtures)
	v.SetDefault("source.spanner_database", "")
	v.SetDefault("source.max_records", constants.SourceMaxRecords)

	v.SetDefault("views.default_page_size", constants.ViewsDefaultPageSize)
	v.SetDefault("views.max_page_size", constants.ViewsMaxPageSize)
	v.SetDefault("views.load_latency", constants.ViewsLoadLatency)
	v.SetDefault("views.idle_ttl", constants.ViewsIdleTTL)
	v.SetDefault("views.max_open", constants.ViewsMaxOpen)
	v.SetDefault("views.sweep_interval", constants.ViewsSweepInterval)

	v.SetDefault("log.level", constants.LogLevel)
	v.SetDefault("log.format", constants.LogFormat)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", constants.LogMaxSizeMB)
	v.SetDefault("log.max_backups", constants.LogMaxBackups)
	v.SetDefault("log.max_age_days", constants.LogMaxAgeDays)
	v.SetDefault("log.compress", true)
	v.SetDefault("log.development", false)
}

func validateConfig(cfg *Config) error {
	validator := NewValidator()

	return validator.Validate(&cfg.Servers,
		&cfg.RateLimiter,
		&cfg.Source,
		&cfg.Views,
		&cfg.Log)
}
