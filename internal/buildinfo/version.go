// Package buildinfo contains build-time information embedded via ldflags
package buildinfo

import "runtime"

// Version and Commit are set at build time via ldflags
// Example: go build -ldflags "-X github.com/YoshitsuguKoike/smartfarm/internal/buildinfo.Version=v1.0.0"
var (
	Version = "dev"
	Commit  = ""
)

// GetVersion returns the current version, with "dev" as default for development builds
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// Info returns the commit (when known) and the Go toolchain version
func Info() string {
	if Commit == "" {
		return runtime.Version()
	}
	return Commit + " " + runtime.Version()
}
