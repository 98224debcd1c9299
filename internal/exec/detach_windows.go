//go:build windows

package exec

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// setDetached opens a new console window for the child when requested.
func setDetached(cmd *exec.Cmd, newConsole bool) {
	if !newConsole {
		return
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_CONSOLE,
	}
}
