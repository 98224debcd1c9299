// Package commands implements flock CLI commands.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/NielsdaWheelz/flock/internal/command"
	"github.com/NielsdaWheelz/flock/internal/config"
	"github.com/NielsdaWheelz/flock/internal/confirm"
	"github.com/NielsdaWheelz/flock/internal/exec"
	"github.com/NielsdaWheelz/flock/internal/fs"
	"github.com/NielsdaWheelz/flock/internal/git"
	"github.com/NielsdaWheelz/flock/internal/logging"
	"github.com/NielsdaWheelz/flock/internal/paths"
	"github.com/NielsdaWheelz/flock/internal/render"
	"github.com/NielsdaWheelz/flock/internal/stubs"
	"github.com/NielsdaWheelz/flock/internal/terminal"
)

// Deps bundles the injected side-effect implementations shared by the
// commands in this package.
type Deps struct {
	Runner     exec.CommandRunner
	FS         fs.FS
	Dispatcher *terminal.Dispatcher
	Gate       confirm.Gate
	Log        *logging.Logger
	Now        func() time.Time
}

// LaunchOpts holds options for the launch command.
type LaunchOpts struct {
	ConfigPath string
	DryRun     bool // print the plan, mutate nothing
	NoWindow   bool // provision worktrees and stubs, skip terminal dispatch
	Confirm    bool // force the gate even for a single agent
	Yes        bool // skip the gate
}

// prepared is one agent's fully resolved launch: paths plus argv.
// Computed before any mutation.
type prepared struct {
	paths paths.AgentPaths
	argv  []string
}

// Launch executes the flock launch command: plan, confirm, then provision
// a worktree, stub files, and a terminal window per agent, in roster order.
//
// A terminal that cannot be found in auto mode is the only non-fatal
// failure: the agent's note is printed and the run continues. Every other
// failure aborts immediately, leaving earlier agents' artifacts in place.
func Launch(ctx context.Context, deps Deps, cwd string, opts LaunchOpts, stdout io.Writer) error {
	cfg, err := config.Load(deps.FS, opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	root := cwd
	if cfg.Root != "" {
		root = paths.Resolve(cwd, cfg.Root)
	}
	if err := git.EnsureRepo(ctx, deps.Runner, root); err != nil {
		return err
	}

	roots := paths.ResolveRoots(root, cfg)

	plan := make([]prepared, 0, len(cfg.Agents))
	for _, agent := range cfg.Agents {
		p := paths.ForAgent(roots, cfg, agent)
		argv, err := command.Build(agent, cfg.CodexArgs, p.Mapping(root))
		if err != nil {
			return err
		}
		plan = append(plan, prepared{paths: p, argv: argv})
	}

	entries := make([]render.PlanEntry, len(plan))
	for i, pr := range plan {
		entries[i] = render.PlanEntry{
			Name:     pr.paths.Name,
			Worktree: pr.paths.Worktree,
			Report:   pr.paths.Report,
			Inbox:    pr.paths.Inbox,
			Command:  pr.argv,
		}
	}
	render.Plan(stdout, entries)

	if opts.DryRun {
		fmt.Fprintln(stdout, "\nDry run: no worktrees or reports were created.")
		return nil
	}

	if !opts.Yes {
		if err := deps.Gate.Require(len(plan), opts.Confirm); err != nil {
			return err
		}
	}

	if err := apply(ctx, deps, cfg, roots, plan, opts, stdout); err != nil {
		return err
	}

	if !opts.NoWindow && deps.Dispatcher.Platform() != terminal.PlatformWindows {
		fmt.Fprintln(stdout, "\nTip: use --no-window and open terminals manually on this OS.")
	}
	return nil
}

// apply runs the mutating phase. Strictly sequential; no rollback.
func apply(ctx context.Context, deps Deps, cfg config.Config, roots paths.Roots, plan []prepared, opts LaunchOpts, stdout io.Writer) error {
	log := deps.Log.Sub("launch")

	if err := deps.FS.MkdirAll(roots.Reports, 0755); err != nil {
		return err
	}
	if err := deps.FS.MkdirAll(roots.Inboxes, 0755); err != nil {
		return err
	}

	for _, pr := range plan {
		p := pr.paths

		if err := git.EnsureWorktree(ctx, deps.Runner, deps.FS, roots.Root, p.Worktree, p.Branch, cfg.BaseRef); err != nil {
			return err
		}
		log.Debug().Str("agent", p.Name).Str("worktree", p.Worktree).Msg("worktree ready")

		if err := ensureStubs(deps, p); err != nil {
			return err
		}

		if opts.NoWindow {
			continue
		}

		launched, err := deps.Dispatcher.Launch(pr.argv, p.Worktree, cfg.Terminal)
		if err != nil {
			return err
		}
		if !launched {
			render.DispatchNote(stdout, p.Name)
			log.Warn().Str("agent", p.Name).Msg("no terminal found; agent not launched")
			continue
		}
		log.Info().Str("agent", p.Name).Msg("terminal window launched")
	}

	return nil
}

func ensureStubs(deps Deps, p paths.AgentPaths) error {
	if err := stubs.EnsureReport(deps.FS, p.Report, p.Name, p.Task); err != nil {
		return err
	}
	return stubs.EnsureInbox(deps.FS, p.Inbox, p.Name, deps.Now())
}
