package server

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config provides configuration for the showdown evaluation service. Values
// come from the environment with the SHOWDOWN_ prefix, e.g. SHOWDOWN_ADDR.
type Config struct {
	Addr         string        `envconfig:"addr" default:":7777"`
	ReadTimeout  time.Duration `envconfig:"read_timeout" default:"5s"`
	WriteTimeout time.Duration `envconfig:"write_timeout" default:"10s"`
}

// LoadConfig reads the service configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("showdown", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
