package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/diceroll-go/assets"
	"github.com/doeshing/diceroll-go/internal/domain"
	"github.com/doeshing/diceroll-go/internal/pkg/filesystem"
	"github.com/doeshing/diceroll-go/internal/ports"
)

// FileLoader loads YAML configuration from ~/.diceroll/config.yaml (overridable via DICEROLL_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path uses the default location.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	return filepath.Join(filesystem.UserHomeDir(), domain.DefaultConfigDir, domain.DefaultConfigName)
}

// Load implements ports.ConfigProvider. A missing file is created from the
// embedded defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := writeFile(path, assets.DefaultConfigYAML); err != nil {
			return domain.Config{}, err
		}
		data = assets.DefaultConfigYAML
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return hydrateDefaults(cfg), nil
}

// Save writes cfg to the config path.
func (l *FileLoader) Save(cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return writeFile(l.Path(), raw)
}

// Backup copies the current config file next to itself with a timestamp suffix.
func (l *FileLoader) Backup() (string, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read config for backup: %w", err)
	}
	backup := fmt.Sprintf("%s.%s.bak", path, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(backup, data, domain.ConfigFilePermissions); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return backup, nil
}

// Reset overwrites the config file with the embedded defaults.
func (l *FileLoader) Reset() (domain.Config, error) {
	if err := writeFile(l.Path(), assets.DefaultConfigYAML); err != nil {
		return domain.Config{}, err
	}
	return DefaultConfig(), nil
}

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}
	return hydrateDefaults(cfg)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Launcher.CopyAction == "" {
		cfg.Launcher.CopyAction = domain.CopyActionTotal
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = domain.FormatText
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = domain.ColorAuto
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = domain.DefaultLogLevel
	}
	cfg.Icons.Dir = filesystem.ExpandPath(cfg.Icons.Dir)
	return cfg
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	if err := os.WriteFile(path, data, domain.ConfigFilePermissions); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
