// Package render formats plan output for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"
)

// PlanEntry is one agent's resolved launch plan.
type PlanEntry struct {
	Name     string
	Worktree string
	Report   string
	Inbox    string
	Command  []string
}

// Plan prints the launch plan for every agent, in roster order. The command
// line is the plain space-joined argv, not shell-quoted; it is a preview,
// not something meant to be pasted into a shell.
func Plan(w io.Writer, entries []PlanEntry) {
	fmt.Fprintf(w, "Prepared %d agent(s).\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(w, "- %s\n", e.Name)
		fmt.Fprintf(w, "  worktree: %s\n", e.Worktree)
		fmt.Fprintf(w, "  report:   %s\n", e.Report)
		fmt.Fprintf(w, "  inbox:    %s\n", e.Inbox)
		fmt.Fprintf(w, "  command:  %s\n", strings.Join(e.Command, " "))
	}
}

// DispatchNote prints the per-agent note for a window that could not be
// opened; the agent's worktree and stubs are still in place.
func DispatchNote(w io.Writer, name string) {
	fmt.Fprintf(w, "- %s\n", name)
	fmt.Fprintln(w, "  note: window launch not supported on this OS")
}
