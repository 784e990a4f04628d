package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ConfigFilePermissions is the permission for the config file (rw-------)
	ConfigFilePermissions = 0o600
	// IconFilePermissions is the permission for materialized icons (rw-r--r--)
	IconFilePermissions = 0o644
)

// Entry action labels
const (
	ActionCopyTotal = "Copy total to clipboard"
	ActionCopyRolls = "Copy rolls to clipboard"
)

// Icon names
const (
	// IconFallback is used for dice without a dedicated icon
	IconFallback = "d20"
	// IconOverall marks the overall total entry
	IconOverall = "dice"
)

// Defaults for the host adapters
const (
	DefaultTrigger     = "roll "
	DefaultLogLevel    = "warn"
	DefaultConfigDir   = ".diceroll"
	DefaultConfigName  = "config.yaml"
	DefaultIconsSubdir = "icons"
)
