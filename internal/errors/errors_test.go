package errors

import (
	"bytes"
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	err := New(EConfig, "config not found: agents.json")
	assert.Equal(t, "E_CONFIG: config not found: agents.json", err.Error())
}

func TestWrap_Unwrap(t *testing.T) {
	cause := goerrors.New("permission denied")
	err := Wrap(EIO, "failed to write report stub", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, EIO, GetCode(err))
}

func TestGetCode_WrappedDeep(t *testing.T) {
	inner := New(EGitFailed, "git worktree add exited 128")
	outer := fmt.Errorf("launch failed: %w", inner)
	assert.Equal(t, EGitFailed, GetCode(outer))
}

func TestGetCode_NonFlockError(t *testing.T) {
	assert.Equal(t, Code(""), GetCode(goerrors.New("plain")))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"usage", New(EUsage, "unknown flag"), 2},
		{"config", New(EConfig, "bad json"), 1},
		{"validation", New(EValidation, "missing name"), 1},
		{"plain error", goerrors.New("plain"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestPrint_SingleErrorLine(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, New(ENoRepo, "not a git repo: /tmp/x"))
	assert.Equal(t, "[ERROR] not a git repo: /tmp/x\n", buf.String())
}

func TestPrint_PlainError(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, goerrors.New("boom"))
	assert.Equal(t, "[ERROR] boom\n", buf.String())
}

func TestPrint_Nil(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, nil)
	assert.Empty(t, buf.String())
}
