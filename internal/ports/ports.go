// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the dice core and the adapters
// around it. The launcher host, the clipboard, the icon files, the configuration
// file and the random number generator all sit behind these interfaces so the
// processor can be driven by the CLI, the interactive launcher, or a test.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., RandomSource, LauncherPlugin)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/diceroll-go/internal/domain"
)

// RandomSource produces uniformly distributed integers.
// Tests substitute a deterministic fake; production uses a seeded PRNG.
type RandomSource interface {
	// IntRange returns a value in the inclusive range [min, max].
	IntRange(min, max int) int
}

// LauncherPlugin is the narrow boundary a launcher host calls into.
// HandleQuery receives the query with any trigger keyword already stripped and
// never fails: invalid input is reported as entries.
type LauncherPlugin interface {
	Info() domain.PluginInfo
	HandleQuery(query string) []domain.DisplayEntry
}

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.diceroll/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Clipboard provides cross-platform clipboard integration for entry activation.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// IconResolver maps a die to an icon and locates it on disk for hosts that
// need a file path.
type IconResolver interface {
	// Name returns the icon for a die with the given sides, falling back to
	// domain.IconFallback when no dedicated icon exists.
	Name(sides int) string
	// Path returns an on-disk path for the named icon.
	Path(name string) (string, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
