package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/jrsteele09/steam-login-gateway/bots"
)

// envPrefix maps GATEWAY_STEAM_COMMUNITY_URL to steam.community.url etc.
const envPrefix = "GATEWAY_"

type Config interface {
	EnvConfig
	CorsConfig
	SteamConfig
	SecurityConfig

	// GetBots returns bot definitions from the config file, used to seed
	// the registry at startup.
	GetBots() ([]*bots.Bot, error)
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetDatabasePath() string
}

type mainConfig struct {
	k *koanf.Koanf
}

var _ Config = mainConfig{}

// New loads configuration from an optional YAML file, with environment
// variables (GATEWAY_*) overriding file values.
func New(configPath string) (Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "[config.New] loading %s", configPath)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, "[config.New] loading environment")
	}

	return mainConfig{k: k}, nil
}

func (c mainConfig) GetPort() string {
	port := c.stringOr("server.port", "8080")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}

func (c mainConfig) GetAppName() string {
	return c.stringOr("server.app.name", "Steam Login Gateway")
}

func (c mainConfig) GetEnv() string {
	return c.stringOr("server.env", "DEV")
}

func (c mainConfig) GetDatabasePath() string {
	return c.k.String("registry.database.path")
}

func (c mainConfig) GetBots() ([]*bots.Bot, error) {
	var seed []*bots.Bot
	if err := c.k.Unmarshal("bots", &seed); err != nil {
		return nil, errors.Wrap(err, "[config.GetBots] unmarshalling bots")
	}
	return seed, nil
}

func (c mainConfig) stringOr(key, defaultValue string) string {
	if v := c.k.String(key); v != "" {
		return v
	}
	return defaultValue
}
