package exec

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealRunner_ExitCode(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		expectCode int
	}{
		{"exit 0", []string{"-c", "exit 0"}, 0},
		{"exit 1", []string{"-c", "exit 1"}, 1},
		{"exit 42", []string{"-c", "exit 42"}, 42},
	}

	r := NewRealRunner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Run(context.Background(), "sh", tt.args, RunOpts{})
			require.NoError(t, err)
			assert.Equal(t, tt.expectCode, result.ExitCode)
		})
	}
}

func TestRealRunner_StdoutStderr(t *testing.T) {
	r := NewRealRunner()
	result, err := r.Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2"}, RunOpts{})
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "out")
	assert.Contains(t, result.Stderr, "err")
}

func TestRealRunner_Dir(t *testing.T) {
	r := NewRealRunner()
	result, err := r.Run(context.Background(), "sh", []string{"-c", "pwd"}, RunOpts{Dir: "/tmp"})
	require.NoError(t, err)
	// On macOS, /tmp is a symlink to /private/tmp
	assert.Contains(t, result.Stdout, "tmp")
}

func TestRealRunner_BinaryNotFound(t *testing.T) {
	r := NewRealRunner()
	_, err := r.Run(context.Background(), "no_such_command_abc123", nil, RunOpts{})
	assert.Error(t, err)
}

func TestRealRunner_LookPath(t *testing.T) {
	r := NewRealRunner()
	assert.True(t, r.LookPath("sh"))
	assert.False(t, r.LookPath("no_such_command_abc123"))
}

func TestRealRunner_StartDetaches(t *testing.T) {
	r := NewRealRunner()
	err := r.Start("sh", []string{"-c", "true"}, StartOpts{Dir: "/tmp"})
	assert.NoError(t, err)
}

func TestRealRunner_StartBinaryNotFound(t *testing.T) {
	r := NewRealRunner()
	err := r.Start("no_such_command_abc123", nil, StartOpts{})
	assert.Error(t, err)
}

func TestFakeRunner_RecordsAndScripts(t *testing.T) {
	f := &FakeRunner{
		Results: map[string]CmdResult{
			"git rev-parse --git-dir": {Stdout: ".git\n"},
			"git show-ref bad":        {ExitCode: 1},
		},
		OnPath: []string{"git"},
	}

	res, err := f.Run(context.Background(), "git", []string{"rev-parse", "--git-dir"}, RunOpts{Dir: "/repo"})
	require.NoError(t, err)
	assert.Equal(t, ".git\n", res.Stdout)
	assert.Equal(t, 0, res.ExitCode)

	res, err = f.Run(context.Background(), "git", []string{"show-ref", "bad"}, RunOpts{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)

	require.NoError(t, f.Start("gnome-terminal", []string{"--"}, StartOpts{Dir: "/wt"}))

	require.Len(t, f.Calls, 3)
	assert.Equal(t, "/repo", f.Calls[0].Dir)
	assert.True(t, f.Calls[2].Detached)
	require.Len(t, f.Started(), 1)
	assert.Equal(t, "gnome-terminal", f.Started()[0].Name)

	assert.True(t, f.LookPath("git"))
	assert.False(t, f.LookPath("tmux"))
	assert.True(t, strings.Contains(f.String(), "gnome-terminal"))
}
