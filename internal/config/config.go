package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Players  Players `yaml:"players"`
}

type Players struct {
	Player1Name string `yaml:"player1-name" env:"PLAYER1_NAME" env-default:""`
	Player2Name string `yaml:"player2-name" env:"PLAYER2_NAME" env-default:""`

	// SkipNamePrompt uses the configured names without asking. It must default to false:
	// cleanenv replaces zero values read from the file with env-default.
	SkipNamePrompt bool `yaml:"skip-name-prompt" env:"SKIP_NAME_PROMPT"`
}

// Load reads the config file when it exists and the environment otherwise.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
