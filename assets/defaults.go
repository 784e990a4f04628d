package assets

import (
	"embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// Icons holds the die icons under icons/, one SVG per die plus dice.svg for
// the overall total.
//
//go:embed icons/*.svg
var Icons embed.FS

// IconsRoot is the directory inside Icons that holds the SVG files.
const IconsRoot = "icons"
