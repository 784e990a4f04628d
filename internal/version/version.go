// Package version carries build metadata injected with -ldflags.
package version

var (
	// Version is the released version, e.g. "0.1.0".
	Version = "0.1.0"
	// Commit is the git commit the binary was built from.
	Commit = ""
	// BuildDate is the RFC3339 build timestamp.
	BuildDate = ""
)
