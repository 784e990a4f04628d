package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/diceroll-go/internal/application/dice"
	"github.com/doeshing/diceroll-go/internal/domain"
)

func TestRunReportsHealthyEnvironment(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{ConfigFormatVersion: "1"}},
		Plugin:         dice.NewPlugin(dice.NewProcessor(minSource{}, nil), ""),
		Clipboard:      stubClipboard{enabled: true},
		Icons:          stubIcons{},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v, report %+v", err, report)
	}
	if len(report.Checks) != 4 {
		t.Fatalf("got %d checks, want 4", len(report.Checks))
	}
	for _, check := range report.Checks {
		if check.Status != domain.HealthOK {
			t.Errorf("check %s = %s (%s)", check.Name, check.Status, check.Details)
		}
	}
}

func TestRunWarnsWithoutClipboard(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{},
		Plugin:         dice.NewPlugin(dice.NewProcessor(minSource{}, nil), ""),
		Clipboard:      stubClipboard{enabled: false},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("a missing clipboard is only a warning: %v", err)
	}
	if got := findCheck(report, "Clipboard").Status; got != domain.HealthWarn {
		t.Errorf("clipboard status = %s, want warn", got)
	}
}

func TestRunFailsOnInvalidConfig(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{Output: domain.OutputSettings{Format: "xml"}}},
		Plugin:         dice.NewPlugin(dice.NewProcessor(minSource{}, nil), ""),
	}

	report, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	if got := findCheck(report, "Config file").Status; got != domain.HealthError {
		t.Errorf("config status = %s, want error", got)
	}
}

func TestRunContinuesWhenConfigCannotLoad(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{err: errors.New("yaml: line 1: did not find expected ']'")},
		Plugin:         dice.NewPlugin(dice.NewProcessor(minSource{}, nil), ""),
		Clipboard:      stubClipboard{enabled: true},
	}

	report, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected load error")
	}
	if got := findCheck(report, "Config file").Status; got != domain.HealthError {
		t.Errorf("config status = %s, want error", got)
	}
	if got := findCheck(report, "Dice plugin").Status; got != domain.HealthOK {
		t.Errorf("plugin status = %s, want the remaining checks to run", got)
	}
}

func findCheck(report domain.HealthReport, name string) domain.HealthCheck {
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	return domain.HealthCheck{}
}

type minSource struct{}

func (minSource) IntRange(min, _ int) int { return min }

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubClipboard struct {
	enabled bool
}

func (s stubClipboard) Enabled() bool     { return s.enabled }
func (s stubClipboard) Copy(string) error { return nil }

type stubIcons struct{}

func (stubIcons) Name(int) string                 { return domain.IconFallback }
func (stubIcons) Path(name string) (string, error) { return "/icons/" + name + ".svg", nil }
