package helpers

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/diceroll-go/internal/app"
	configapp "github.com/doeshing/diceroll-go/internal/application/config"
	"github.com/doeshing/diceroll-go/internal/domain"
	configinfra "github.com/doeshing/diceroll-go/internal/infrastructure/config"
)

// GetConfigLoader returns the container's file loader.
func GetConfigLoader(container *app.Container) (*configinfra.FileLoader, error) {
	if container == nil || container.ConfigLoader == nil {
		return nil, fmt.Errorf("config loader unavailable")
	}
	return container.ConfigLoader, nil
}

// SaveConfigWithValidation validates cfg, backs up the existing file and saves.
func SaveConfigWithValidation(container *app.Container, cfg domain.Config) error {
	loader, err := GetConfigLoader(container)
	if err != nil {
		return err
	}
	if err := configapp.Validate(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if _, err := os.Stat(loader.Path()); err == nil {
		if _, err := loader.Backup(); err != nil {
			return fmt.Errorf("failed to create configuration backup: %w", err)
		}
	}
	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	return nil
}

// ConfigMap is the YAML view of a domain.Config addressed by dotted keys such
// as "launcher.copy_action".
type ConfigMap map[string]interface{}

// ConfigToMap round-trips cfg through YAML so keys match the file.
func ConfigToMap(cfg domain.Config) (ConfigMap, error) {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	// decode into a plain map so nested sections are map[string]interface{}
	// too, not ConfigMap
	var m map[string]interface{}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode config map: %w", err)
	}
	return ConfigMap(m), nil
}

// Config decodes the map back into a domain.Config.
func (m ConfigMap) Config() (domain.Config, error) {
	raw, err := yaml.Marshal(map[string]interface{}(m))
	if err != nil {
		return domain.Config{}, fmt.Errorf("marshal config map: %w", err)
	}
	var cfg domain.Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Get returns the value at a dotted key.
func (m ConfigMap) Get(key string) (interface{}, bool) {
	var node interface{} = map[string]interface{}(m)
	for _, part := range strings.Split(key, ".") {
		section, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if node, ok = section[part]; !ok {
			return nil, false
		}
	}
	return node, true
}

// Set replaces the value at a dotted key. Only keys that already exist can be
// set, so a typo fails instead of adding an unknown field.
func (m ConfigMap) Set(key string, value interface{}) bool {
	parts := strings.Split(key, ".")
	section := map[string]interface{}(m)
	for _, part := range parts[:len(parts)-1] {
		child, ok := section[part].(map[string]interface{})
		if !ok {
			return false
		}
		section = child
	}
	last := parts[len(parts)-1]
	if _, ok := section[last]; !ok {
		return false
	}
	if _, isSection := section[last].(map[string]interface{}); isSection {
		return false
	}
	section[last] = value
	return true
}

// ParseYAMLValue reads a command-line value as YAML so "true" or "[a]" keep
// their types; anything unparsable stays a literal string.
func ParseYAMLValue(input string) interface{} {
	var parsed interface{}
	if err := yaml.Unmarshal([]byte(input), &parsed); err != nil || parsed == nil {
		return input
	}
	return parsed
}
