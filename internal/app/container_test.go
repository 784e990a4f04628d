package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/doeshing/diceroll-go/internal/domain"
)

func TestBuildContainerWiresServices(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DICEROLL_CONFIG", filepath.Join(dir, "config.yaml"))
	t.Setenv("DICEROLL_SEED", "")
	t.Setenv("HOME", dir)

	c, err := BuildContainer(context.Background(), false)
	if err != nil {
		t.Fatalf("BuildContainer() error = %v", err)
	}
	if c.QueryService == nil || c.DoctorService == nil || c.Plugin == nil || c.Icons == nil {
		t.Fatalf("container not fully wired: %+v", c)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("default config not created: %v", err)
	}

	resp, err := c.QueryService.Run(domain.QueryRequest{Query: "3d6"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(resp.Entries) != 1 || len(resp.Entries[0].Rolls) != 3 {
		t.Errorf("entries = %+v", resp.Entries)
	}
}

func TestBuildContainerFallsBackOnInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("launcher:\n  copy_action: everything\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DICEROLL_CONFIG", path)
	t.Setenv("HOME", dir)

	c, err := BuildContainer(context.Background(), false)
	if err != nil {
		t.Fatalf("BuildContainer() error = %v", err)
	}
	if c.Config.Launcher.CopyAction != domain.CopyActionTotal {
		t.Errorf("copy action = %q, want default", c.Config.Launcher.CopyAction)
	}
}

func TestBuildContainerFallsBackOnUnparsableConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("launcher: [unterminated\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DICEROLL_CONFIG", path)
	t.Setenv("DICEROLL_SEED", "")
	t.Setenv("HOME", dir)

	c, err := BuildContainer(context.Background(), false)
	if err != nil {
		t.Fatalf("BuildContainer() error = %v", err)
	}
	if c.Config.Launcher.Trigger != domain.DefaultTrigger {
		t.Errorf("trigger = %q, want default", c.Config.Launcher.Trigger)
	}

	report, err := c.DoctorService.Run(context.Background())
	if err == nil {
		t.Fatalf("doctor should report the unparsable file")
	}
	if report.Checks[0].Name != "Config file" || report.Checks[0].Status != domain.HealthError {
		t.Errorf("first check = %+v, want failed config file", report.Checks[0])
	}
}

func TestSeededServiceIsReproducible(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DICEROLL_CONFIG", filepath.Join(dir, "config.yaml"))
	t.Setenv("HOME", dir)

	c, err := BuildContainer(context.Background(), false)
	if err != nil {
		t.Fatalf("BuildContainer() error = %v", err)
	}
	first, _ := c.Seeded(7).Run(domain.QueryRequest{Query: "10d20"})
	second, _ := c.Seeded(7).Run(domain.QueryRequest{Query: "10d20"})
	if first.Entries[0].Subtitle != second.Entries[0].Subtitle {
		t.Errorf("seeded rolls differ: %q vs %q", first.Entries[0].Subtitle, second.Entries[0].Subtitle)
	}
}
