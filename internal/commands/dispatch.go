package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/NielsdaWheelz/flock/internal/config"
	"github.com/NielsdaWheelz/flock/internal/core"
	"github.com/NielsdaWheelz/flock/internal/errors"
	"github.com/NielsdaWheelz/flock/internal/git"
	"github.com/NielsdaWheelz/flock/internal/paths"
	"github.com/NielsdaWheelz/flock/internal/stubs"
)

// DispatchOpts holds options for the dispatch command.
type DispatchOpts struct {
	ConfigPath string
	Agents     []string // target agent names (exact name or slug)
	All        bool
	Message    string
	File       string // path to a file holding the message
	ID         string // optional command identifier for the header
	DryRun     bool
}

// Dispatch appends a command block to the selected agents' inbox files.
func Dispatch(ctx context.Context, deps Deps, cwd string, opts DispatchOpts, stdout io.Writer) error {
	cfg, err := config.Load(deps.FS, opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := config.ValidateNames(cfg); err != nil {
		return err
	}

	if !opts.All && len(opts.Agents) == 0 {
		return errors.New(errors.EUsage, "use --all or at least one --agent")
	}

	message, err := readMessage(deps, opts)
	if err != nil {
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

	selected, err := selectAgents(cfg.Agents, opts)
	if err != nil {
		return err
	}

	for _, agent := range selected {
		p := paths.ForAgent(roots, cfg, agent)
		fmt.Fprintf(stdout, "- %s\n", p.Name)
		fmt.Fprintf(stdout, "  inbox: %s\n", p.Inbox)
		if opts.DryRun {
			fmt.Fprintln(stdout, "  dry-run: command not written")
			continue
		}
		if err := stubs.AppendCommand(deps.FS, p.Inbox, p.Name, message, opts.ID, deps.Now()); err != nil {
			return err
		}
	}

	if opts.DryRun {
		fmt.Fprintln(stdout, "\nDry run: no inbox files were modified.")
	}
	return nil
}

// selectAgents filters the roster down to the targeted agents, matching
// each --agent value against the exact name or the derived slug.
func selectAgents(agents []config.Agent, opts DispatchOpts) ([]config.Agent, error) {
	if opts.All {
		return agents, nil
	}

	wanted := make(map[string]bool, len(opts.Agents))
	names := make(map[string]bool, len(opts.Agents))
	for _, a := range opts.Agents {
		wanted[core.Slugify(a)] = true
		names[a] = true
	}

	var selected []config.Agent
	for _, agent := range agents {
		if names[agent.Name] || wanted[core.Slugify(agent.Name)] {
			selected = append(selected, agent)
		}
	}
	if len(selected) == 0 {
		return nil, errors.New(errors.EValidation, "no matching agents found")
	}
	return selected, nil
}

func readMessage(deps Deps, opts DispatchOpts) (string, error) {
	if opts.Message != "" && opts.File != "" {
		return "", errors.New(errors.EUsage, "use either --message or --file, not both")
	}
	if opts.Message != "" {
		return opts.Message, nil
	}
	if opts.File != "" {
		data, err := deps.FS.ReadFile(opts.File)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.Newf(errors.EConfig, "message file not found: %s", opts.File)
			}
			return "", errors.Wrap(errors.EIO, "failed to read message file", err)
		}
		return string(data), nil
	}
	return "", errors.New(errors.EUsage, "either --message or --file is required")
}
