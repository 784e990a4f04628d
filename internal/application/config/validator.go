package config

import (
	"fmt"
	"strings"

	"github.com/doeshing/diceroll-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if cfg.ConfigFormatVersion != "" && cfg.ConfigFormatVersion != "1" {
		return fmt.Errorf("config_format_version %s is not supported", cfg.ConfigFormatVersion)
	}
	if err := validateLauncher(cfg); err != nil {
		return err
	}
	if _, err := cfg.ResolveFormat(""); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if err := validateColor(cfg.Output.Color); err != nil {
		return err
	}
	return validateLogging(cfg.Logging)
}

func validateLauncher(cfg domain.Config) error {
	if _, err := cfg.ResolveCopyAction(""); err != nil {
		return fmt.Errorf("launcher.copy_action: %w", err)
	}
	trigger := strings.TrimSpace(cfg.Launcher.Trigger)
	if strings.ContainsAny(trigger, " \t") {
		return fmt.Errorf("launcher.trigger must be a single word, got %q", cfg.Launcher.Trigger)
	}
	return nil
}

func validateColor(mode string) error {
	switch strings.ToLower(mode) {
	case "", domain.ColorAuto, domain.ColorAlways, domain.ColorNever:
		return nil
	default:
		return fmt.Errorf("output.color must be auto|always|never, got %s", mode)
	}
}

func validateLogging(logging domain.LoggingSettings) error {
	switch strings.ToLower(logging.Level) {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug|info|warn|error, got %s", logging.Level)
	}
}
