package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/diceroll-go/internal/domain"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default file not written: %v", err)
	}
	if !strings.Contains(string(data), "copy_action: total") {
		t.Errorf("default file content unexpected:\n%s", data)
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Launcher.Trigger != domain.DefaultTrigger {
		t.Errorf("trigger = %q", cfg.Launcher.Trigger)
	}
	if cfg.Launcher.CopyAction != domain.CopyActionTotal || cfg.Output.Format != domain.FormatText ||
		cfg.Output.Color != domain.ColorAuto || cfg.Logging.Level != "warn" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	loader := NewFileLoader(filepath.Join(t.TempDir(), "config.yaml"))
	cfg := DefaultConfig()
	cfg.Launcher.CopyAction = domain.CopyActionRolls
	cfg.Output.Format = domain.FormatJSON

	if err := loader.Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadHydratesMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("launcher:\n  trigger: \"dice \"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Launcher.Trigger != "dice " || cfg.Launcher.CopyAction != domain.CopyActionTotal || cfg.Logging.Level != "warn" {
		t.Errorf("hydrated config = %+v", cfg)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("launcher: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestBackupAndReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)
	if err := os.WriteFile(path, []byte("output:\n  format: json\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	backup, err := loader.Backup()
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	data, _ := os.ReadFile(backup)
	if string(data) != "output:\n  format: json\n" {
		t.Errorf("backup content = %q", data)
	}

	cfg, err := loader.Reset()
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if cfg.Output.Format != domain.FormatText {
		t.Errorf("reset format = %q", cfg.Output.Format)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DICEROLL_DEBUG", "true")
	t.Setenv("DICEROLL_NO_COLOR", "1")
	t.Setenv("DICEROLL_SEED", "42")
	t.Setenv("DICEROLL_CONFIG", "/tmp/dice.yaml")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if e.ConfigPath != "/tmp/dice.yaml" {
		t.Errorf("ConfigPath = %q", e.ConfigPath)
	}
	seed, ok, err := e.SeedValue()
	if err != nil || !ok || seed != 42 {
		t.Errorf("SeedValue() = %d, %v, %v", seed, ok, err)
	}

	cfg := e.Apply(DefaultConfig())
	if cfg.Logging.Level != "debug" || cfg.Output.Color != domain.ColorNever {
		t.Errorf("applied config = %+v", cfg)
	}
}

func TestEnvRejectsBadSeed(t *testing.T) {
	if _, _, err := (Env{Seed: "-3"}).SeedValue(); err == nil {
		t.Fatal("expected error for negative seed")
	}
}
