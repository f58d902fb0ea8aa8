package connector

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "STREAMSQL_"

// LoadConfig builds a Config from layered sources: built-in defaults, then an
// optional YAML file, then STREAMSQL_-prefixed environment variables. Later
// layers win.
//
// Environment keys map a double underscore to nesting:
// STREAMSQL_POOL__MAX_OPEN sets pool.max_open, while STREAMSQL_SSL_MODE sets
// ssl_mode.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")

	// RisingWave's out-of-the-box endpoint
	defaults := map[string]any{
		"host":     "localhost",
		"port":     4566,
		"database": "dev",
		"username": "root",
		"ssl_mode": "disable",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
