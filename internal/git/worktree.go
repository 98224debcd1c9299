package git

import (
	"context"
	"os"
	"path/filepath"

	"github.com/NielsdaWheelz/flock/internal/errors"
	"github.com/NielsdaWheelz/flock/internal/exec"
	"github.com/NielsdaWheelz/flock/internal/fs"
)

// EnsureWorktree makes sure worktree exists, checked out to branch.
// Idempotent:
//   - worktree path already on disk: no-op. The existing worktree is
//     trusted as-is; it is NOT verified against branch.
//   - branch exists: attach a new worktree at the path.
//   - otherwise: create branch from baseRef and attach in one operation.
//
// Any git failure is fatal to the whole run; nothing already provisioned
// is rolled back.
func EnsureWorktree(ctx context.Context, cr exec.CommandRunner, fsys fs.FS, root, worktree, branch, baseRef string) error {
	if _, err := fsys.Stat(worktree); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrap(errors.EIO, "failed to stat worktree path: "+worktree, err)
	}

	if err := fsys.MkdirAll(filepath.Dir(worktree), 0755); err != nil {
		return errors.Wrap(errors.EIO, "failed to create worktree parent dir", err)
	}

	exists, err := BranchExists(ctx, cr, root, branch)
	if err != nil {
		return err
	}
	if exists {
		return runChecked(ctx, cr, root, []string{"worktree", "add", worktree, branch})
	}
	return runChecked(ctx, cr, root, []string{"worktree", "add", "-b", branch, worktree, baseRef})
}
