// Package command resolves the launch argv for an agent.
package command

import (
	"strings"

	"github.com/NielsdaWheelz/flock/internal/config"
	"github.com/NielsdaWheelz/flock/internal/core"
	"github.com/NielsdaWheelz/flock/internal/errors"
)

// Build resolves the argv to launch for agent.
//
// An explicit command is used as-is; otherwise a codex invocation is
// synthesized:
//
//	[codex, <roster codex_args...>, <agent codex_args...>, <prompt>]
//
// Either way every element of the resulting argv gets one pass of
// placeholder expansion in mapping order, so tokens work inside extra args
// and the task text too. defaults are the roster-level extra args.
func Build(agent config.Agent, defaults []string, mapping core.Mapping) ([]string, error) {
	var argv []string
	if agent.HasCommand() {
		if len(agent.Command) == 0 {
			return nil, errors.Newf(errors.EValidation, "agent %q has an empty command", agent.Name)
		}
		argv = agent.Command
	} else {
		if agent.Tool != "" && agent.Tool != config.ToolCodex {
			return nil, errors.Newf(errors.EValidation, "agent %q has unsupported tool %q", agent.Name, agent.Tool)
		}
		if agent.Task == "" {
			return nil, errors.Newf(errors.EValidation, "agent %q is missing task for %s", agent.Name, config.ToolCodex)
		}

		argv = []string{config.ToolCodex}
		argv = append(argv, defaults...)
		argv = append(argv, agent.CodexArgs...)
		argv = append(argv, Prompt(agent.Task, mapping))
	}
	return mapping.ExpandAll(argv), nil
}

// Prompt renders the fixed instruction block handed to a synthesized tool.
// It embeds the task and the resolved report/inbox paths and ends with the
// stop instruction.
func Prompt(task string, mapping core.Mapping) string {
	return strings.Join([]string{
		"Task: " + task,
		"Write progress to " + mapping.Value(core.TokenReport) + ".",
		"Check " + mapping.Value(core.TokenInbox) + " for new commands.",
		"Stop when done.",
	}, "\n")
}
