package domain

import (
	"fmt"
	"strings"
)

// ResolveCopyAction picks the clipboard action for activation. An explicit
// override wins over the configured launcher.copy_action.
func (c *Config) ResolveCopyAction(override string) (string, error) {
	action := strings.ToLower(strings.TrimSpace(override))
	if action == "" {
		action = strings.ToLower(c.Launcher.CopyAction)
	}
	switch action {
	case "", CopyActionTotal:
		return CopyActionTotal, nil
	case CopyActionRolls:
		return CopyActionRolls, nil
	default:
		return "", fmt.Errorf("copy action must be %s|%s, got %s", CopyActionTotal, CopyActionRolls, action)
	}
}

// ResolveFormat picks the output format, with the same override rule.
func (c *Config) ResolveFormat(override string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(override))
	if format == "" {
		format = strings.ToLower(c.Output.Format)
	}
	switch format {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("output format must be %s|%s, got %s", FormatText, FormatJSON, format)
	}
}

// ColorEnabled decides whether terminal output is colored.
func (c *Config) ColorEnabled(isTerminal bool) bool {
	switch strings.ToLower(c.Output.Color) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

// StripTrigger removes a launcher activation keyword from the front of query.
// The match is case-insensitive and surrounding whitespace is ignored, so both
// "roll 2d6" and "ROLL   2d6" become "2d6" for trigger "roll ".
func StripTrigger(query, trigger string) string {
	keyword := strings.TrimSpace(trigger)
	trimmed := strings.TrimSpace(query)
	if keyword == "" {
		return trimmed
	}
	if len(trimmed) < len(keyword) || !strings.EqualFold(trimmed[:len(keyword)], keyword) {
		return trimmed
	}
	rest := trimmed[len(keyword):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		// "rolling" is not the trigger "roll"
		return trimmed
	}
	return strings.TrimSpace(rest)
}
