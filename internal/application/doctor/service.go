package doctor

import (
	"context"
	"fmt"

	configapp "github.com/doeshing/diceroll-go/internal/application/config"
	"github.com/doeshing/diceroll-go/internal/domain"
	"github.com/doeshing/diceroll-go/internal/ports"
)

// probeQuery exercises every entry kind except usage.
const probeQuery = "2d6 1d20 0d6"

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Plugin         ports.LauncherPlugin
	Clipboard      ports.Clipboard
	Icons          ports.IconResolver
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	// the remaining checks do not depend on the file, so keep going
	if cfg, err := s.ConfigProvider.Load(ctx); err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
	} else if err := configapp.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("loaded version %s", cfg.ConfigFormatVersion)))
	}

	if s.Plugin != nil {
		checks = append(checks, pluginCheck(s.Plugin))
	} else {
		checks = append(checks, fail("Dice plugin", "plugin not initialized"))
	}

	if s.Clipboard != nil && s.Clipboard.Enabled() {
		checks = append(checks, ok("Clipboard", "system clipboard available"))
	} else {
		checks = append(checks, warn("Clipboard", "no clipboard utility found (install xclip, xsel or wl-clipboard)"))
	}

	if s.Icons != nil {
		checks = append(checks, iconCheck(s.Icons))
	}

	report := domain.HealthReport{Checks: checks}
	if report.Failed() {
		return report, fmt.Errorf("one or more checks failed")
	}
	return report, nil
}

func pluginCheck(plugin ports.LauncherPlugin) domain.HealthCheck {
	name := "Dice plugin"
	entries := plugin.HandleQuery(probeQuery)
	if len(entries) != 3 {
		return fail(name, fmt.Sprintf("probe %q returned %d entries, want 3", probeQuery, len(entries)))
	}
	for i, sides := range []int{6, 20} {
		for _, roll := range entries[i].Rolls {
			if roll < 1 || roll > sides {
				return fail(name, fmt.Sprintf("rolled %d on a d%d", roll, sides))
			}
		}
	}
	if entries[2].Failure == nil || entries[2].Failure.Kind != domain.InvalidRange {
		return fail(name, "0d6 was not rejected as out of range")
	}
	info := plugin.Info()
	return ok(name, fmt.Sprintf("%s %s (trigger %q)", info.Name, info.Version, info.Trigger))
}

func iconCheck(icons ports.IconResolver) domain.HealthCheck {
	name := "Icons"
	for _, icon := range []string{domain.IconFallback, domain.IconOverall} {
		if _, err := icons.Path(icon); err != nil {
			return warn(name, err.Error())
		}
	}
	path, _ := icons.Path(domain.IconOverall)
	return ok(name, fmt.Sprintf("available at %s", path))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
