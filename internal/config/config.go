package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BotDelayMS int    `yaml:"bot-delay-ms" env:"BOT_DELAY_MS" env-default:"800"`
	RandomSeed int64  `yaml:"random-seed" env:"RANDOM_SEED" env-default:"0"`
}

// MustLoad - load all configurations from the config.yml file, falling back
// to environment variables and defaults when the file is absent.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Config) BotDelay() time.Duration {
	return time.Duration(that.BotDelayMS) * time.Millisecond
}
