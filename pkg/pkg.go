//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

// Version is the semantic version of the clonesure module embedded at build
// time. It is printed by the CLI when users invoke the version subcommand.
//
//go:embed VERSION
var Version string

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "clonesure"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Closure capture expander: rewrites capture-annotated closures " +
		"into clone bindings plus a move closure"
)

// VersionString returns the embedded version with surrounding whitespace
// removed.
func VersionString() string { return strings.TrimSpace(Version) }
