package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	EnvUserTable    = "USER_TABLE"
	EnvWriteTimeout = "WRITE_TIMEOUT"
	EnvListen       = "LISTEN"
	EnvLwaPort      = "AWS_LWA_PORT"
)

type Table struct {
	Name         string        `env:"USER_TABLE"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`
}

type Server struct {
	Listen string `env:"LISTEN"`
	Port   string `env:"AWS_LWA_PORT" envDefault:"8081"`
}

type Config struct {
	Table  Table
	Server Server
}

// FromEnv reads configuration from the process environment. A missing table
// name is not an error here; writes report it as ConfigurationMissing.
func FromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if c.Table.WriteTimeout < 0 {
		return Config{}, fmt.Errorf("%s must not be negative, got %s", EnvWriteTimeout, c.Table.WriteTimeout)
	}

	return c, nil
}

// ListenAddr is the address the local server binds to.
func (c Config) ListenAddr() string {
	if c.Server.Listen != "" {
		return c.Server.Listen
	}
	return "0.0.0.0:" + c.Server.Port
}

func (c Config) TableConfigured() bool {
	return c.Table.Name != ""
}
