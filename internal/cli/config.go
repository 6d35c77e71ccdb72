package cli

import (
	"github.com/mohamed566-11/sqrew/internal/config"
)

// Config holds CLI settings. Environment values become flag defaults;
// flags always win.
type Config struct {
	ServerURL string `env:"SKREW_SERVER" envDefault:"http://localhost:8080"`
	Output    string `env:"SKREW_OUTPUT" envDefault:"text"`
	Yes       bool   `env:"SKREW_YES"`
}

// DefaultConfig reads the environment. A malformed value is returned as
// the error alongside the built-in defaults so the command can report it.
func DefaultConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.ParseEnv(cfg); err != nil {
		return &Config{ServerURL: "http://localhost:8080", Output: "text"}, err
	}
	return cfg, nil
}
