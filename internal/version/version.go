// Package version carries the build information stamped at link time
package version

import "fmt"

// Build information set by ldflags:
//
//	-X github.com/marioIncandeza/relay-settings/internal/version.Version={{.Version}}
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String is the one-line version banner
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
