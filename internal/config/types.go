// Package config handles loading and validation of agent roster files.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/flock/internal/errors"
)

// ToolCodex is the only built-in tool a command can be synthesized for.
const ToolCodex = "codex"

// Config is the parsed agent roster with global defaults.
type Config struct {
	Root         string    `json:"root,omitempty" yaml:"root,omitempty"`
	WorktreesDir string    `json:"worktrees_dir,omitempty" yaml:"worktrees_dir,omitempty"`
	ReportsDir   string    `json:"reports_dir,omitempty" yaml:"reports_dir,omitempty"`
	InboxesDir   string    `json:"inboxes_dir,omitempty" yaml:"inboxes_dir,omitempty"`
	BaseRef      string    `json:"base_ref,omitempty" yaml:"base_ref,omitempty"`
	Terminal     string    `json:"terminal,omitempty" yaml:"terminal,omitempty"`
	CodexArgs    []string  `json:"codex_args,omitempty" yaml:"codex_args,omitempty"`
	Agents       []Agent   `json:"agents" yaml:"agents"`
}

// Agent is one roster entry.
type Agent struct {
	Name      string   `json:"name" yaml:"name"`
	Task      string   `json:"task,omitempty" yaml:"task,omitempty"`
	Tool      string   `json:"tool,omitempty" yaml:"tool,omitempty"`
	Command   Argv     `json:"command,omitempty" yaml:"command,omitempty"`
	CodexArgs []string `json:"codex_args,omitempty" yaml:"codex_args,omitempty"`
	Branch    string   `json:"branch,omitempty" yaml:"branch,omitempty"`
	Worktree  string   `json:"worktree,omitempty" yaml:"worktree,omitempty"`
	Report    string   `json:"report,omitempty" yaml:"report,omitempty"`
	Inbox     string   `json:"inbox,omitempty" yaml:"inbox,omitempty"`
}

// HasCommand reports whether an explicit command was given.
// A present-but-empty list still counts as given (and fails validation).
func (a *Agent) HasCommand() bool {
	return a.Command != nil
}

// Argv is a command given as a sequence of strings. A scalar string is
// rejected at decode time in both codecs; that shape is a roster
// validation error by contract, never silently split.
type Argv []string

// UnmarshalJSON rejects anything but an array of strings.
func (a *Argv) UnmarshalJSON(data []byte) error {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return errors.New(errors.EValidation, "command must be an array of strings")
	}
	if _, ok := probe.(string); ok {
		return errors.New(errors.EValidation, "command must be an array of strings, not a single string")
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return errors.New(errors.EValidation, "command must be an array of strings")
	}
	if out == nil {
		out = []string{}
	}
	*a = out
	return nil
}

// UnmarshalYAML rejects anything but a sequence of strings.
func (a *Argv) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return errors.New(errors.EValidation, "command must be an array of strings, not a single string")
	}
	var out []string
	if err := value.Decode(&out); err != nil {
		return errors.New(errors.EValidation, "command must be an array of strings")
	}
	if out == nil {
		out = []string{}
	}
	*a = out
	return nil
}
