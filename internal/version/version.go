// Package version holds the flock build version.
package version

// Version is the current flock version. Overridden at build time via
// -ldflags "-X github.com/NielsdaWheelz/flock/internal/version.Version=...".
var Version = "0.1.0-dev"
