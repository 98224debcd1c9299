package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapping_Expand(t *testing.T) {
	m := Mapping{
		{Token: TokenName, Value: "alpha"},
		{Token: TokenTask, Value: "build x"},
	}

	assert.Equal(t, "echo alpha: build x", m.Expand("echo {NAME}: {TASK}"))
}

func TestMapping_ExpandUnknownTokenVerbatim(t *testing.T) {
	m := Mapping{{Token: TokenName, Value: "alpha"}}
	assert.Equal(t, "{NOPE} alpha", m.Expand("{NOPE} {NAME}"))
}

func TestMapping_ExpandMultipleTokensPerElement(t *testing.T) {
	m := Mapping{
		{Token: TokenRoot, Value: "/repo"},
		{Token: TokenWorktree, Value: "/repo/.worktrees/a"},
	}
	got := m.ExpandAll([]string{"sync", "{ROOT}:{WORKTREE}", "{ROOT}{ROOT}"})
	assert.Equal(t, []string{"sync", "/repo:/repo/.worktrees/a", "/repo/repo"}, got)
}

func TestMapping_OrderDependence(t *testing.T) {
	// Each pass is a plain textual ReplaceAll, so whether a value
	// containing another token gets expanded depends only on order.
	m := Mapping{
		{Token: TokenName, Value: "{TASK}"},
		{Token: TokenTask, Value: "real task"},
	}
	// {NAME} -> "{TASK}", and the replacement output is then seen by the
	// {TASK} pass, so order matters and is fixed by the mapping.
	assert.Equal(t, "real task", m.Expand("{NAME}"))

	reversed := Mapping{
		{Token: TokenTask, Value: "real task"},
		{Token: TokenName, Value: "{TASK}"},
	}
	assert.Equal(t, "{TASK}", reversed.Expand("{NAME}"))
}

func TestMapping_Value(t *testing.T) {
	m := Mapping{{Token: TokenReport, Value: "/r.md"}}
	assert.Equal(t, "/r.md", m.Value(TokenReport))
	assert.Equal(t, "", m.Value(TokenInbox))
}
