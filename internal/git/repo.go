// Package git provides repository checks and worktree operations via CommandRunner.
package git

import (
	"context"
	"strings"

	"github.com/NielsdaWheelz/flock/internal/errors"
	"github.com/NielsdaWheelz/flock/internal/exec"
)

// EnsureRepo verifies that root is inside a git repository.
// Uses `git rev-parse --git-dir` via CommandRunner.
//
// Returns E_NO_REPO if root is empty, git cannot run, or git exits non-zero.
func EnsureRepo(ctx context.Context, cr exec.CommandRunner, root string) error {
	if root == "" {
		return errors.New(errors.ENoRepo, "repository root is empty")
	}

	result, err := cr.Run(ctx, "git", []string{"rev-parse", "--git-dir"}, exec.RunOpts{Dir: root})
	if err != nil {
		// Binary not found or execution failure
		return errors.Wrap(errors.ENoRepo, "failed to run git rev-parse", err)
	}
	if result.ExitCode != 0 {
		return errors.Newf(errors.ENoRepo, "not a git repo: %s", root)
	}
	return nil
}

// BranchExists checks if a local branch exists.
// Uses `git show-ref --verify refs/heads/<branch>` via CommandRunner.
//
// Returns (true, nil) if the branch exists locally.
// Returns (false, nil) if the branch does not exist.
// Returns (false, error) only for execution failures.
func BranchExists(ctx context.Context, cr exec.CommandRunner, root, branch string) (bool, error) {
	ref := "refs/heads/" + branch
	result, err := cr.Run(ctx, "git", []string{"show-ref", "--verify", ref}, exec.RunOpts{Dir: root})
	if err != nil {
		return false, errors.Wrap(errors.EGitFailed, "failed to run git show-ref --verify", err)
	}

	// Exit code 0 = branch exists, non-zero = does not exist
	return result.ExitCode == 0, nil
}

// runChecked runs a mutating git command and turns a non-zero exit into a
// fatal E_GIT_FAILED carrying git's stderr.
func runChecked(ctx context.Context, cr exec.CommandRunner, root string, args []string) error {
	result, err := cr.Run(ctx, "git", args, exec.RunOpts{Dir: root})
	if err != nil {
		return errors.Wrap(errors.EGitFailed, "failed to run git "+args[0], err)
	}
	if result.ExitCode != 0 {
		detail := strings.TrimSpace(result.Stderr)
		msg := "command failed: git " + strings.Join(args, " ")
		if detail != "" {
			msg += ": " + detail
		}
		return errors.New(errors.EGitFailed, msg)
	}
	return nil
}
