// Package build holds the build information, set with -ldflags at link time.
package build

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
