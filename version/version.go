// Package version holds build information set via ldflags
package version

var (
	Version = "dev"
	Commit  = "unknown"
)
