package terminal

import "github.com/NielsdaWheelz/flock/internal/core"

// Mode is how an emulator receives the command to run.
type Mode int

const (
	// ModeArgv passes the working directory and command as discrete
	// arguments.
	ModeArgv Mode = iota

	// ModeShell passes one combined "sh -lc '<command>'" string.
	ModeShell

	// ModeShellExplicit passes "-e sh -lc <command>" as discrete
	// arguments (xterm and friends).
	ModeShellExplicit
)

// Emulator is one known Linux terminal emulator and its invocation shape.
type Emulator struct {
	Name    string
	DirFlag string // flag taking the working directory; empty = none
	Trailer string // flag introducing the command
	Mode    Mode
}

// linuxEmulators is the priority-ordered candidate list for auto mode.
var linuxEmulators = []Emulator{
	{Name: "gnome-terminal", DirFlag: "--working-directory", Trailer: "--", Mode: ModeArgv},
	{Name: "konsole", DirFlag: "--workdir", Trailer: "-e", Mode: ModeArgv},
	{Name: "xfce4-terminal", DirFlag: "--working-directory", Trailer: "--command", Mode: ModeShell},
	{Name: "mate-terminal", DirFlag: "--working-directory", Trailer: "--", Mode: ModeArgv},
	{Name: "tilix", DirFlag: "--working-directory", Trailer: "-e", Mode: ModeArgv},
	{Name: "alacritty", DirFlag: "--working-directory", Trailer: "-e", Mode: ModeArgv},
	{Name: "kitty", DirFlag: "--directory", Trailer: "--", Mode: ModeArgv},
	{Name: "xterm", Trailer: "-e", Mode: ModeShellExplicit},
	{Name: "x-terminal-emulator", Trailer: "-e", Mode: ModeShellExplicit},
}

// spawnArgs builds the emulator's argument list for running argv inside dir.
func (e Emulator) spawnArgs(dir string, argv []string) []string {
	var args []string
	if e.DirFlag != "" {
		args = append(args, e.DirFlag, dir)
	}
	args = append(args, e.Trailer)

	switch e.Mode {
	case ModeArgv:
		return append(args, argv...)
	case ModeShellExplicit:
		return append(args, "sh", "-lc", core.ShellCommand(dir, argv))
	default: // ModeShell
		return append(args, "sh -lc "+core.ShellEscapePosix(core.ShellCommand(dir, argv)))
	}
}

// Candidates returns the terminal names probed for platform, in priority
// order. Used by doctor.
func Candidates(platform Platform) []string {
	switch platform {
	case PlatformDarwin:
		return []string{"osascript"}
	case PlatformLinux:
		names := make([]string, len(linuxEmulators))
		for i, e := range linuxEmulators {
			names[i] = e.Name
		}
		return names
	case PlatformWindows:
		return []string{"wt"}
	default:
		return nil
	}
}
