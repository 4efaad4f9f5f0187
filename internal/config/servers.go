package config

import (
	"time"

	"github.com/hyp3rd/ewrap/pkg/ewrap"
)

var _ validatable = (*ServersConfig)(nil)

// ServersConfig holds the listeners the service exposes.
type ServersConfig struct {
	HTTP HTTPConfig `mapstructure:"http"`
	GRPC GRPCConfig `mapstructure:"grpc"`
}

// HTTPConfig holds the JSON API server configuration.
type HTTPConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// GRPCConfig holds the gRPC server configuration.
type GRPCConfig struct {
	Port                  int           `mapstructure:"port"`
	MaxConnectionIdle     time.Duration `mapstructure:"max_connection_idle"`
	MaxConnectionAge      time.Duration `mapstructure:"max_connection_age"`
	MaxConnectionAgeGrace time.Duration `mapstructure:"max_connection_age_grace"`
	KeepAliveTime         time.Duration `mapstructure:"keepalive_time"`
	KeepAliveTimeout      time.Duration `mapstructure:"keepalive_timeout"`
}

// Validate checks ports and timeouts of both servers.
func (c *ServersConfig) Validate(eg *ewrap.ErrorGroup) {
	c.validateHTTP(eg)
	c.validateGRPC(eg)

	if c.HTTP.Port == c.GRPC.Port {
		eg.Add(ewrap.New("http and gRPC servers must listen on different ports"))
	}
}

func validPort(port int) bool {
	return port > 1023 && port <= 65535
}

func positive(eg *ewrap.ErrorGroup, d time.Duration, name string) {
	if d <= 0 {
		eg.Add(ewrap.New(name + " must be greater than 0"))
	}
}

func (c *ServersConfig) validateHTTP(eg *ewrap.ErrorGroup) {
	if !validPort(c.HTTP.Port) {
		eg.Add(ewrap.New("http port must be greater than 1023 and less than 65535"))
	}
	positive(eg, c.HTTP.ReadTimeout, "http read timeout")
	positive(eg, c.HTTP.WriteTimeout, "http write timeout")
	positive(eg, c.HTTP.ShutdownTimeout, "http shutdown timeout")
}

func (c *ServersConfig) validateGRPC(eg *ewrap.ErrorGroup) {
	if !validPort(c.GRPC.Port) {
		eg.Add(ewrap.New("gRPC port must be greater than 1023 and less than 65535"))
	}
	positive(eg, c.GRPC.MaxConnectionIdle, "gRPC max connection idle")
	positive(eg, c.GRPC.MaxConnectionAge, "gRPC max connection age")
	positive(eg, c.GRPC.MaxConnectionAgeGrace, "gRPC max connection age grace")
	positive(eg, c.GRPC.KeepAliveTime, "gRPC keepalive time")
	positive(eg, c.GRPC.KeepAliveTimeout, "gRPC keepalive timeout")
}
