// Package buildinfo carries version details stamped in at link time.
package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/borkshop/quadrant/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("quadrant %s (commit=%s, date=%s)", Version, Commit, Date)
}
