// Package config reads settings for the command line tools from the
// environment and an optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	ServerURL string        `yaml:"server-url" env:"LOGIN_SERVER_URL" env-default:"http://localhost:8082"`
	Timeout   time.Duration `yaml:"timeout" env:"LOGIN_TIMEOUT" env-default:"30s"`
	StateFile string        `yaml:"state-file" env:"LOGIN_STATE_FILE"`

	Dev Dev `yaml:"dev"`
}

// Dev configures the local development server.
type Dev struct {
	Addr         string `yaml:"addr" env:"LOGIN_DEV_ADDR" env-default:":8082"`
	WebDir       string `yaml:"web-dir" env:"LOGIN_DEV_WEB_DIR" env-default:"web"`
	Email        string `yaml:"email" env:"LOGIN_DEV_EMAIL" env-default:"admin@example.com"`
	Password     string `yaml:"password" env:"LOGIN_DEV_PASSWORD" env-default:"admin"`
	Name         string `yaml:"name" env:"LOGIN_DEV_NAME" env-default:"Administrator"`
	Registration bool   `yaml:"registration" env:"LOGIN_DEV_REGISTRATION"`
	EmailEnabled bool   `yaml:"email-enabled" env:"LOGIN_DEV_EMAIL_ENABLED"`
	Announcement string `yaml:"announcement" env:"LOGIN_DEV_ANNOUNCEMENT"`
}

// Load reads path when given, then the environment, which wins.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("Error parsing configuration file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("Error parsing configuration from environment variables: %w", err)
	}
	if cfg.StateFile == "" {
		cfg.StateFile = defaultStateFile()
	}
	return cfg, nil
}

func defaultStateFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "login-state.json"
	}
	return filepath.Join(dir, "login-front", "state.json")
}
