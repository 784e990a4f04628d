package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"

	"github.com/doeshing/diceroll-go/internal/domain"
)

// Env holds the environment overrides. They are applied on top of the file
// config at startup and never written back to it.
type Env struct {
	ConfigPath string `env:"DICEROLL_CONFIG"`
	Debug      bool   `env:"DICEROLL_DEBUG"`
	NoColor    bool   `env:"DICEROLL_NO_COLOR"`
	Seed       string `env:"DICEROLL_SEED"`
}

// LoadEnv parses the DICEROLL_* environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// SeedValue returns the fixed seed from DICEROLL_SEED, if any.
func (e Env) SeedValue() (uint64, bool, error) {
	if e.Seed == "" {
		return 0, false, nil
	}
	seed, err := strconv.ParseUint(e.Seed, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("DICEROLL_SEED must be an unsigned integer: %w", err)
	}
	return seed, true, nil
}

// Apply overlays the environment on cfg.
func (e Env) Apply(cfg domain.Config) domain.Config {
	if e.Debug {
		cfg.Logging.Level = "debug"
	}
	if e.NoColor {
		cfg.Output.Color = domain.ColorNever
	}
	return cfg
}
