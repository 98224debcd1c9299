package git

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flockerrors "github.com/NielsdaWheelz/flock/internal/errors"
	"github.com/NielsdaWheelz/flock/internal/exec"
)

func TestEnsureRepo_OK(t *testing.T) {
	f := &exec.FakeRunner{}
	err := EnsureRepo(context.Background(), f, "/repo")
	require.NoError(t, err)

	require.Len(t, f.Calls, 1)
	assert.Equal(t, []string{"rev-parse", "--git-dir"}, f.Calls[0].Args)
	assert.Equal(t, "/repo", f.Calls[0].Dir)
}

func TestEnsureRepo_NotARepo(t *testing.T) {
	f := &exec.FakeRunner{
		Results: map[string]exec.CmdResult{
			"git rev-parse --git-dir": {ExitCode: 128, Stderr: "fatal: not a git repository"},
		},
	}
	err := EnsureRepo(context.Background(), f, "/tmp/x")
	require.Error(t, err)
	assert.Equal(t, flockerrors.ENoRepo, flockerrors.GetCode(err))
}

func TestEnsureRepo_EmptyRoot(t *testing.T) {
	err := EnsureRepo(context.Background(), &exec.FakeRunner{}, "")
	require.Error(t, err)
	assert.Equal(t, flockerrors.ENoRepo, flockerrors.GetCode(err))
}

func TestEnsureRepo_GitMissing(t *testing.T) {
	f := &exec.FakeRunner{
		Errs: map[string]error{
			"git rev-parse --git-dir": errors.New("exec: git: not found"),
		},
	}
	err := EnsureRepo(context.Background(), f, "/repo")
	require.Error(t, err)
	assert.Equal(t, flockerrors.ENoRepo, flockerrors.GetCode(err))
}

func TestBranchExists(t *testing.T) {
	f := &exec.FakeRunner{
		Results: map[string]exec.CmdResult{
			"git show-ref --verify refs/heads/agent/alpha": {ExitCode: 0},
			"git show-ref --verify refs/heads/agent/beta":  {ExitCode: 1},
		},
	}

	exists, err := BranchExists(context.Background(), f, "/repo", "agent/alpha")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = BranchExists(context.Background(), f, "/repo", "agent/beta")
	require.NoError(t, err)
	assert.False(t, exists)
}
