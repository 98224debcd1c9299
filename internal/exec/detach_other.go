//go:build !windows

package exec

import "os/exec"

// setDetached is a no-op on POSIX platforms: terminal emulators daemonize
// themselves and the child is released after Start.
func setDetached(cmd *exec.Cmd, newConsole bool) {}
