package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config holds the front-end defaults read from the environment.
type Config struct {
	Size            string        `env:"DUMMYFILE_SIZE,default=10MB"`
	BufferSize      string        `env:"DUMMYFILE_BUFFER_SIZE,default=10MB"`
	LogLevel        string        `env:"DUMMYFILE_LOG_LEVEL,default=WARN"`
	ProgressRefresh time.Duration `env:"DUMMYFILE_PROGRESS_REFRESH,default=200ms"`
	CompletionWait  time.Duration `env:"DUMMYFILE_COMPLETION_WAIT,default=0s"`
}

// Load reads an optional .env file from the working directory, then the
// process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnviron()
}

// FromEnviron reads the configuration from the process environment only.
func FromEnviron() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config loading failed: %w", err)
	}
	return cfg, nil
}
