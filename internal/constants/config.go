package constants

import "time"

// EnvPrefix prefixes every configuration environment variable,
// e.g. STOREFRONT_SERVERS_HTTP_PORT.
const EnvPrefix = "STOREFRONT"

const (
	DefaultTimeout = 30 * time.Second

	HTTPPort            = 8080
	HTTPReadTimeout     = "15s"
	HTTPWriteTimeout    = "15s"
	HTTPShutdownTimeout = "10s"

	GRPCServerPort                  = 9090
	GRPCServerMaxConnectionIdle     = "15m"
	GRPCServerMaxConnectionAge      = "30m"
	GRPCServerMaxConnectionAgeGrace = "5m"
	GRPCServerKeepaliveTime         = "5m"
	GRPCServerKeepaliveTimeout      = "20s"

	RateLimitRequestsPerSecond = 20
	RateLimitBurstSize         = 40

	SourceKind       = "memory"
	SourceFixtures   = "configs/fixtures.yaml"
	SourceMaxRecords = 5000

	ViewsDefaultPageSize = 12
	ViewsMaxPageSize     = 100
	ViewsLoadLatency     = "0s"
	ViewsIdleTTL         = "30m"
	ViewsMaxOpen         = 10000
	ViewsSweepInterval   = "1m"

	LogLevel      = "info"
	LogFormat     = "json"
	LogMaxSizeMB  = 100
	LogMaxBackups = 5
	LogMaxAgeDays = 14
)
