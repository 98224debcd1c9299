package commands

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/flock/internal/confirm"
	"github.com/NielsdaWheelz/flock/internal/errors"
	"github.com/NielsdaWheelz/flock/internal/exec"
	"github.com/NielsdaWheelz/flock/internal/fs"
	"github.com/NielsdaWheelz/flock/internal/logging"
	"github.com/NielsdaWheelz/flock/internal/terminal"
)

// testNow is the fixed clock used by all command tests.
var testNow = time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)

// newTestDeps wires a full Deps around a FakeRunner and MemFS.
// The dispatcher runs as Linux with gnome-terminal on PATH.
func newTestDeps(gateInput string) (Deps, *exec.FakeRunner, *fs.MemFS) {
	runner := &exec.FakeRunner{OnPath: []string{"gnome-terminal"}}
	memfs := fs.NewMemFS()
	log := logging.New(io.Discard, "silent")
	deps := Deps{
		Runner:     runner,
		FS:         memfs,
		Dispatcher: terminal.New(terminal.PlatformLinux, runner, log),
		Gate:       confirm.Gate{In: strings.NewReader(gateInput), Out: io.Discard},
		Log:        log,
		Now:        func() time.Time { return testNow },
	}
	return deps, runner, memfs
}

func writeConfig(memfs *fs.MemFS, path, content string) {
	memfs.Files[path] = []byte(content)
}

const twoAgentRoster = `{
  "agents": [
    {"name": "Alpha", "command": ["run-agent", "--dir", "{WORKTREE}"]},
    {"name": "Beta", "task": "write docs"}
  ]
}`

func TestLaunch_DryRunPrintsPlanAndMutatesNothing(t *testing.T) {
	deps, runner, memfs := newTestDeps("")
	writeConfig(memfs, "/repo/flock.json", twoAgentRoster)

	var out bytes.Buffer
	err := Launch(context.Background(), deps, "/repo", LaunchOpts{
		ConfigPath: "/repo/flock.json",
		DryRun:     true,
	}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Prepared 2 agent(s).")
	assert.Contains(t, out.String(), "- Alpha")
	assert.Contains(t, out.String(), "worktree: /repo/.worktrees/alpha")
	assert.Contains(t, out.String(), "command:  run-agent --dir /repo/.worktrees/alpha")
	assert.Contains(t, out.String(), "- Beta")
	assert.Contains(t, out.String(), "Dry run: no worktrees or reports were created.")

	assert.Zero(t, memfs.Writes, "dry run must not touch the filesystem")
	assert.Empty(t, runner.Started(), "dry run must not open windows")
	for _, c := range runner.Calls {
		assert.Equal(t, []string{"rev-parse", "--git-dir"}, c.Args, "only the repo check may run")
	}
}

func TestLaunch_ProvisionsWorktreeStubsAndWindow(t *testing.T) {
	deps, runner, memfs := newTestDeps("")
	writeConfig(memfs, "/repo/flock.json", `{"agents": [{"name": "Alpha", "task": "fix the bug"}]}`)

	// Branch does not exist yet: worktree add -b from base.
	runner.Results = map[string]exec.CmdResult{
		exec.Key("git", []string{"show-ref", "--verify", "refs/heads/agent/alpha"}): {ExitCode: 1},
	}

	var out bytes.Buffer
	err := Launch(context.Background(), deps, "/repo", LaunchOpts{
		ConfigPath: "/repo/flock.json",
		Yes:        true,
	}, &out)
	require.NoError(t, err, runner.String())

	var worktreeAdds []exec.Call
	for _, c := range runner.Calls {
		if len(c.Args) > 0 && c.Args[0] == "worktree" {
			worktreeAdds = append(worktreeAdds, c)
		}
	}
	require.Len(t, worktreeAdds, 1)
	assert.Equal(t, []string{"worktree", "add", "-b", "agent/alpha", "/repo/.worktrees/alpha", "HEAD"}, worktreeAdds[0].Args)
	assert.Equal(t, "/repo", worktreeAdds[0].Dir)

	report := string(memfs.Files["/repo/reports/agent-alpha.md"])
	assert.Equal(t, "# Agent: Alpha\n\nTask: fix the bug\n\n## Progress\n\n- ", report)

	inbox := string(memfs.Files["/repo/reports/agent-alpha.inbox.md"])
	assert.Contains(t, inbox, "# Inbox: Alpha")
	assert.Contains(t, inbox, "## Command 001 (2026-03-14 09:26)")

	started := runner.Started()
	require.Len(t, started, 1)
	assert.Equal(t, "gnome-terminal", started[0].Name)
}

func TestLaunch_ExistingBranchAttaches(t *testing.T) {
	deps, runner, memfs := newTestDeps("")
	writeConfig(memfs, "/repo/flock.json", `{"agents": [{"name": "Alpha", "task": "fix the bug"}]}`)

	var out bytes.Buffer
	err := Launch(context.Background(), deps, "/repo", LaunchOpts{
		ConfigPath: "/repo/flock.json",
		Yes:        true,
		NoWindow:   true,
	}, &out)
	require.NoError(t, err)

	var worktreeAdds []exec.Call
	for _, c := range runner.Calls {
		if len(c.Args) > 0 && c.Args[0] == "worktree" {
			worktreeAdds = append(worktreeAdds, c)
		}
	}
	require.Len(t, worktreeAdds, 1)
	assert.Equal(t, []string{"worktree", "add", "/repo/.worktrees/alpha", "agent/alpha"}, worktreeAdds[0].Args)
}

func TestLaunch_ExistingWorktreeAndStubsUntouched(t *testing.T) {
	deps, runner, memfs := newTestDeps("")
	writeConfig(memfs, "/repo/flock.json", `{"agents": [{"name": "Alpha", "task": "fix the bug"}]}`)
	memfs.Dirs["/repo/.worktrees/alpha"] = true
	memfs.Files["/repo/reports/agent-alpha.md"] = []byte("existing progress")
	memfs.Files["/repo/reports/agent-alpha.inbox.md"] = []byte("existing inbox")

	var out bytes.Buffer
	err := Launch(context.Background(), deps, "/repo", LaunchOpts{
		ConfigPath: "/repo/flock.json",
		Yes:        true,
		NoWindow:   true,
	}, &out)
	require.NoError(t, err)

	for _, c := range runner.Calls {
		assert.NotEqual(t, "worktree", c.Args[0], "existing worktree must be trusted as-is")
	}
	assert.Equal(t, "existing progress", string(memfs.Files["/repo/reports/agent-alpha.md"]))
	assert.Equal(t, "existing inbox", string(memfs.Files["/repo/reports/agent-alpha.inbox.md"]))
}

func TestLaunch_NoTerminalFoundContinuesToNextAgent(t *testing.T) {
	deps, runner, memfs := newTestDeps("1\nlaunch\n")
	writeConfig(memfs, "/repo/flock.json", twoAgentRoster)
	runner.OnPath = nil // auto mode finds nothing

	var out bytes.Buffer
	err := Launch(context.Background(), deps, "/repo", LaunchOpts{
		ConfigPath: "/repo/flock.json",
		Yes:        true,
	}, &out)
	require.NoError(t, err)

	assert.Empty(t, runner.Started())
	assert.Equal(t, 2, strings.Count(out.String(), "note: window launch not supported on this OS"))

	// Both agents were still fully provisioned.
	assert.Contains(t, memfs.Files, "/repo/reports/agent-alpha.md")
	assert.Contains(t, memfs.Files, "/repo/reports/agent-beta.md")
}

func TestLaunch_PinnedTerminalMissingIsFatal(t *testing.T) {
	deps, runner, memfs := newTestDeps("")
	writeConfig(memfs, "/repo/flock.json", `{
  "terminal": "kitty",
  "agents": [{"name": "Alpha", "task": "fix the bug"}]
}`)
	runner.OnPath = nil

	var out bytes.Buffer
	err := Launch(context.Background(), deps, "/repo", LaunchOpts{
		ConfigPath: "/repo/flock.json",
		Yes:        true,
	}, &out)
	require.Error(t, err)
	assert.Equal(t, errors.EPlatform, errors.GetCode(err))
}

func TestLaunch_GateDeclinedWritesNothing(t *testing.T) {
	deps, _, memfs := newTestDeps("nope\n")
	writeConfig(memfs, "/repo/flock.json", twoAgentRoster)

	var out bytes.Buffer
	err := Launch(context.Background(), deps, "/repo", LaunchOpts{
		ConfigPath: "/repo/flock.json",
	}, &out)
	require.Error(t, err)
	assert.Equal(t, errors.EConfirmFailed, errors.GetCode(err))
	assert.Zero(t, memfs.Writes, "declined gate must leave the filesystem untouched")
}

func TestLaunch_NotARepoIsFatal(t *testing.T) {
	deps, runner, memfs := newTestDeps("")
	writeConfig(memfs, "/repo/flock.json", twoAgentRoster)
	runner.Results = map[string]exec.CmdResult{
		exec.Key("git", []string{"rev-parse", "--git-dir"}): {ExitCode: 128},
	}

	var out bytes.Buffer
	err := Launch(context.Background(), deps, "/repo", LaunchOpts{
		ConfigPath: "/repo/flock.json",
		Yes:        true,
	}, &out)
	require.Error(t, err)
	assert.Equal(t, errors.ENoRepo, errors.GetCode(err))
}

func TestLaunch_TipPrintedAfterApply(t *testing.T) {
	deps, _, memfs := newTestDeps("")
	writeConfig(memfs, "/repo/flock.json", `{"agents": [{"name": "Alpha", "task": "fix the bug"}]}`)

	var out bytes.Buffer
	err := Launch(context.Background(), deps, "/repo", LaunchOpts{
		ConfigPath: "/repo/flock.json",
		Yes:        true,
	}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Tip: use --no-window and open terminals manually on this OS.")
}

func TestLaunch_TipSuppressed(t *testing.T) {
	t.Run("no-window", func(t *testing.T) {
		deps, _, memfs := newTestDeps("")
		writeConfig(memfs, "/repo/flock.json", `{"agents": [{"name": "Alpha", "task": "fix the bug"}]}`)

		var out bytes.Buffer
		err := Launch(context.Background(), deps, "/repo", LaunchOpts{
			ConfigPath: "/repo/flock.json",
			Yes:        true,
			NoWindow:   true,
		}, &out)
		require.NoError(t, err)
		assert.NotContains(t, out.String(), "Tip:")
	})

	t.Run("windows", func(t *testing.T) {
		deps, runner, memfs := newTestDeps("")
		deps.Dispatcher = terminal.New(terminal.PlatformWindows, runner, deps.Log)
		writeConfig(memfs, "/repo/flock.json", `{"agents": [{"name": "Alpha", "task": "fix the bug"}]}`)

		var out bytes.Buffer
		err := Launch(context.Background(), deps, "/repo", LaunchOpts{
			ConfigPath: "/repo/flock.json",
			Yes:        true,
		}, &out)
		require.NoError(t, err)
		assert.NotContains(t, out.String(), "Tip:")
	})

	t.Run("dry-run", func(t *testing.T) {
		deps, _, memfs := newTestDeps("")
		writeConfig(memfs, "/repo/flock.json", `{"agents": [{"name": "Alpha", "task": "fix the bug"}]}`)

		var out bytes.Buffer
		err := Launch(context.Background(), deps, "/repo", LaunchOpts{
			ConfigPath: "/repo/flock.json",
			DryRun:     true,
		}, &out)
		require.NoError(t, err)
		assert.NotContains(t, out.String(), "Tip:")
	})
}

func TestLaunch_ConfigMissing(t *testing.T) {
	deps, _, _ := newTestDeps("")

	var out bytes.Buffer
	err := Launch(context.Background(), deps, "/repo", LaunchOpts{
		ConfigPath: "/repo/missing.json",
	}, &out)
	require.Error(t, err)
	assert.Equal(t, errors.EConfig, errors.GetCode(err))
}

func TestLaunch_RootFromConfigOverridesCwd(t *testing.T) {
	deps, runner, memfs := newTestDeps("")
	writeConfig(memfs, "/elsewhere/flock.json", `{
  "root": "/work/project",
  "agents": [{"name": "Alpha", "task": "fix the bug"}]
}`)

	var out bytes.Buffer
	err := Launch(context.Background(), deps, "/elsewhere", LaunchOpts{
		ConfigPath: "/elsewhere/flock.json",
		Yes:        true,
		NoWindow:   true,
	}, &out)
	require.NoError(t, err)

	require.NotEmpty(t, runner.Calls)
	assert.Equal(t, "/work/project", runner.Calls[0].Dir)
	assert.Contains(t, memfs.Files, "/work/project/reports/agent-alpha.md")
}
