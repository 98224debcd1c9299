// Package terminal opens a terminal window running a command in a working
// directory, using a per-platform strategy.
package terminal

import "runtime"

// Platform identifies the host OS family. It is injected into the
// Dispatcher at construction so every branch is testable on any host.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformDarwin
	PlatformLinux
	PlatformWindows
)

// Host returns the Platform for the running process.
func Host() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformDarwin
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnknown
	}
}

func (p Platform) String() string {
	switch p {
	case PlatformDarwin:
		return "darwin"
	case PlatformLinux:
		return "linux"
	case PlatformWindows:
		return "windows"
	default:
		return "unknown"
	}
}
