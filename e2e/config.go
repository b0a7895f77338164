package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// CHAT_SERVER_ADDR points the scenario at an already running server.
	// The suite is skipped when it is empty.
	ServerAddr    string `envconfig:"CHAT_SERVER_ADDR"`
	HeartbeatAddr string `envconfig:"CHAT_HEARTBEAT_ADDR"`
	// E2E_USER_PREFIX keeps usernames from colliding across parallel runs
	UserPrefix string `envconfig:"E2E_USER_PREFIX" default:"e2e"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
