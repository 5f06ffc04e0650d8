package config

import (
	"fmt"
	"io"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads configuration from the YAML file named by CONFIG_PATH and
// environment variables. See LoadFile.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// LoadFile reads configuration from path and environment variables, then
// validates it. Priority: ENV > YAML > env-default tags.
// An empty path falls back to ./config.yaml when that file exists, and to
// ENV + defaults otherwise. A non-empty path must exist.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = defaultConfigPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicitPath:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Usage writes the environment variables understood by Load to w.
func Usage(w io.Writer) {
	var cfg Config
	header := "Environment variables:"
	cleanenv.FUsage(w, &cfg, &header)()
}
