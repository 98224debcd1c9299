package terminal

import (
	"strings"

	"github.com/NielsdaWheelz/flock/internal/core"
	"github.com/NielsdaWheelz/flock/internal/errors"
	"github.com/NielsdaWheelz/flock/internal/exec"
	"github.com/NielsdaWheelz/flock/internal/logging"
)

// PrefAuto means "use the first terminal found for this platform".
const PrefAuto = "auto"

// Dispatcher opens terminal windows. Spawned windows are fire-and-forget:
// they are never waited on and their exit status is not collected.
type Dispatcher struct {
	platform Platform
	runner   exec.CommandRunner
	log      *logging.Logger
}

// New creates a Dispatcher for the given platform.
func New(platform Platform, runner exec.CommandRunner, log *logging.Logger) *Dispatcher {
	return &Dispatcher{platform: platform, runner: runner, log: log}
}

// Platform returns the platform the dispatcher was constructed for.
func (d *Dispatcher) Platform() Platform {
	return d.platform
}

// Launch opens a terminal window running argv inside dir.
//
// Returns (true, nil) when a window was opened and (false, nil) when no
// terminal could be found in auto mode or the platform is unsupported —
// the caller reports that non-fatally. A pinned preference that cannot be
// satisfied is a fatal E_PLATFORM error.
func (d *Dispatcher) Launch(argv []string, dir, pref string) (bool, error) {
	switch d.platform {
	case PlatformDarwin:
		return d.launchDarwin(argv, dir, pref)
	case PlatformLinux:
		return d.launchLinux(argv, dir, pref)
	case PlatformWindows:
		return d.launchWindows(argv, dir, pref)
	default:
		return false, nil
	}
}

func (d *Dispatcher) launchDarwin(argv []string, dir, pref string) (bool, error) {
	if pref != PrefAuto && pref != "terminal" {
		return false, errors.New(errors.EPlatform, "terminal must be 'auto' or 'terminal' on macOS")
	}
	if !d.runner.LookPath("osascript") {
		return false, errors.New(errors.EPlatform, "osascript not found on PATH")
	}

	script := `tell application "Terminal" to do script "` +
		appleScriptEscape(core.ShellCommand(dir, argv)) + `"`
	if err := d.runner.Start("osascript", []string{"-e", script}, exec.StartOpts{}); err != nil {
		return false, errors.Wrap(errors.EPlatform, "failed to launch Terminal via osascript", err)
	}
	d.log.Debug().Str("dir", dir).Msg("opened Terminal window")
	return true, nil
}

func (d *Dispatcher) launchLinux(argv []string, dir, pref string) (bool, error) {
	candidates := linuxEmulators
	if pref != PrefAuto {
		pinned, ok := findEmulator(pref)
		if !ok {
			return false, errors.Newf(errors.EPlatform, "terminal %q is not supported on Linux", pref)
		}
		candidates = []Emulator{pinned}
	}

	for _, e := range candidates {
		if !d.runner.LookPath(e.Name) {
			continue
		}
		if err := d.runner.Start(e.Name, e.spawnArgs(dir, argv), exec.StartOpts{}); err != nil {
			return false, errors.Wrap(errors.EPlatform, "failed to launch "+e.Name, err)
		}
		d.log.Debug().Str("terminal", e.Name).Str("dir", dir).Msg("opened terminal window")
		return true, nil
	}

	if pref != PrefAuto {
		return false, errors.Newf(errors.EPlatform, "terminal %q not found on PATH", pref)
	}
	return false, nil
}

func (d *Dispatcher) launchWindows(argv []string, dir, pref string) (bool, error) {
	useWT := (pref == PrefAuto || pref == "wt") && d.runner.LookPath("wt")
	if pref == "wt" && !useWT {
		return false, errors.New(errors.EPlatform, "terminal is set to 'wt' but wt was not found on PATH")
	}

	if useWT {
		args := append([]string{"-d", dir, "--"}, argv...)
		if err := d.runner.Start("wt", args, exec.StartOpts{}); err != nil {
			return false, errors.Wrap(errors.EPlatform, "failed to launch wt", err)
		}
		d.log.Debug().Str("dir", dir).Msg("opened Windows Terminal tab")
		return true, nil
	}

	err := d.runner.Start("cmd.exe", []string{"/k", windowsCmdLine(argv)}, exec.StartOpts{
		Dir:        dir,
		NewConsole: true,
	})
	if err != nil {
		return false, errors.Wrap(errors.EPlatform, "failed to launch cmd.exe", err)
	}
	d.log.Debug().Str("dir", dir).Msg("opened console window")
	return true, nil
}

func findEmulator(name string) (Emulator, bool) {
	for _, e := range linuxEmulators {
		if e.Name == name {
			return e, true
		}
	}
	return Emulator{}, false
}

func appleScriptEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// windowsCmdLine joins argv using the console-host quoting rules: tokens
// with spaces/tabs are double-quoted, embedded quotes are backslash-escaped
// along with the backslashes that precede them.
func windowsCmdLine(argv []string) string {
	parts := make([]string, len(argv))
	for i, arg := range argv {
		parts[i] = windowsQuote(arg)
	}
	return strings.Join(parts, " ")
}

func windowsQuote(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\"") {
		return arg
	}

	var b strings.Builder
	b.WriteByte('"')
	backslashes := 0
	for i := 0; i < len(arg); i++ {
		switch arg[i] {
		case '\\':
			backslashes++
		case '"':
			b.WriteString(strings.Repeat(`\`, backslashes*2+1))
			b.WriteByte('"')
			backslashes = 0
		default:
			b.WriteString(strings.Repeat(`\`, backslashes))
			backslashes = 0
			b.WriteByte(arg[i])
		}
	}
	b.WriteString(strings.Repeat(`\`, backslashes*2))
	b.WriteByte('"')
	return b.String()
}
