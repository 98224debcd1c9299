// Package paths resolves roster paths against the repository root and
// derives per-agent defaults from the slug.
package paths

import (
	"path/filepath"

	"github.com/NielsdaWheelz/flock/internal/config"
	"github.com/NielsdaWheelz/flock/internal/core"
)

// AgentPaths holds the fully resolved filesystem/git targets for one agent.
// All paths are absolute; computed once before any mutation.
type AgentPaths struct {
	Name     string
	Slug     string
	Task     string
	Branch   string
	Worktree string
	Report   string
	Inbox    string
}

// Resolve joins raw onto root unless raw is already absolute.
// Returns "" for empty input.
func Resolve(root, raw string) string {
	if raw == "" {
		return ""
	}
	if filepath.IsAbs(raw) {
		return filepath.Clean(raw)
	}
	return filepath.Join(root, raw)
}

// Roots holds the resolved directory roots shared by all agents.
type Roots struct {
	Root    string // absolute repository root
	Reports string
	Inboxes string
}

// ResolveRoots computes the shared report/inbox roots for a roster.
// root must already be absolute.
func ResolveRoots(root string, cfg config.Config) Roots {
	return Roots{
		Root:    root,
		Reports: Resolve(root, cfg.ReportsDir),
		Inboxes: Resolve(root, cfg.InboxesDir),
	}
}

// ForAgent derives the per-agent paths, applying defaults for anything the
// roster leaves unset:
//
//	branch   agent/<slug>
//	worktree <worktrees_dir>/<slug>
//	report   <reports_root>/agent-<slug>.md
//	inbox    <inboxes_root>/agent-<slug>.inbox.md
func ForAgent(roots Roots, cfg config.Config, agent config.Agent) AgentPaths {
	slug := core.Slugify(agent.Name)

	branch := agent.Branch
	if branch == "" {
		branch = "agent/" + slug
	}

	worktree := Resolve(roots.Root, agent.Worktree)
	if worktree == "" {
		worktree = Resolve(roots.Root, filepath.Join(cfg.WorktreesDir, slug))
	}

	report := Resolve(roots.Root, agent.Report)
	if report == "" {
		report = filepath.Join(roots.Reports, "agent-"+slug+".md")
	}

	inbox := Resolve(roots.Root, agent.Inbox)
	if inbox == "" {
		inbox = filepath.Join(roots.Inboxes, "agent-"+slug+".inbox.md")
	}

	return AgentPaths{
		Name:     agent.Name,
		Slug:     slug,
		Task:     agent.Task,
		Branch:   branch,
		Worktree: worktree,
		Report:   report,
		Inbox:    inbox,
	}
}

// Mapping builds the ordered placeholder mapping for one agent.
// Order is part of the contract: ROOT, WORKTREE, REPORT, INBOX, TASK, NAME.
func (p AgentPaths) Mapping(root string) core.Mapping {
	return core.Mapping{
		{Token: core.TokenRoot, Value: root},
		{Token: core.TokenWorktree, Value: p.Worktree},
		{Token: core.TokenReport, Value: p.Report},
		{Token: core.TokenInbox, Value: p.Inbox},
		{Token: core.TokenTask, Value: p.Task},
		{Token: core.TokenName, Value: p.Name},
	}
}
