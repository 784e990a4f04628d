package domain

// Config mirrors ~/.diceroll/config.yaml. It only tunes the host adapters; the
// dice processor itself takes nothing but the query text.
type Config struct {
	ConfigFormatVersion string           `yaml:"config_format_version" json:"config_format_version"`
	Launcher            LauncherSettings `yaml:"launcher" json:"launcher"`
	Output              OutputSettings   `yaml:"output" json:"output"`
	Logging             LoggingSettings  `yaml:"logging" json:"logging"`
	Icons               IconSettings     `yaml:"icons" json:"icons"`
}

// LauncherSettings controls how queries arrive and what activation copies.
type LauncherSettings struct {
	Trigger    string `yaml:"trigger" json:"trigger"`
	CopyAction string `yaml:"copy_action" json:"copy_action"`
}

// OutputSettings configures the CLI renderer.
type OutputSettings struct {
	Format string `yaml:"format" json:"format"`
	Color  string `yaml:"color" json:"color"`
}

// LoggingSettings sets the minimum log level.
type LoggingSettings struct {
	Level string `yaml:"level" json:"level"`
}

// IconSettings says where embedded icons are materialized for hosts that need paths.
type IconSettings struct {
	Dir string `yaml:"dir" json:"dir"`
}

// Copy actions selectable through launcher.copy_action.
const (
	CopyActionTotal = "total"
	CopyActionRolls = "rolls"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ActionLabel maps a copy action name to the entry action label it selects.
func ActionLabel(copyAction string) string {
	if copyAction == CopyActionRolls {
		return ActionCopyRolls
	}
	return ActionCopyTotal
}
