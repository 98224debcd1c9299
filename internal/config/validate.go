package config

import (
	"github.com/NielsdaWheelz/flock/internal/errors"
)

// Validate checks roster semantics after loading.
// Returns E_CONFIG for a missing/empty agents array and E_VALIDATION for
// per-agent problems.
func Validate(cfg Config) error {
	if len(cfg.Agents) == 0 {
		return errors.New(errors.EConfig, "config must include a non-empty agents array")
	}

	for i, agent := range cfg.Agents {
		if agent.Name == "" {
			return errors.Newf(errors.EValidation, "agents[%d] must include a name", i)
		}
		if err := validateCommand(agent); err != nil {
			return err
		}
	}

	return nil
}

// ValidateNames checks only that the roster is non-empty and every agent is
// named. Dispatching to inboxes needs names and paths but not launchable
// commands, so a roster mid-authoring can still receive commands.
func ValidateNames(cfg Config) error {
	if len(cfg.Agents) == 0 {
		return errors.New(errors.EConfig, "config must include a non-empty agents array")
	}
	for i, agent := range cfg.Agents {
		if agent.Name == "" {
			return errors.Newf(errors.EValidation, "agents[%d] must include a name", i)
		}
	}
	return nil
}

// validateCommand enforces the exactly-one-of rule: an explicit command is
// used as-is, otherwise a codex command is synthesized from the task.
func validateCommand(agent Agent) error {
	if agent.HasCommand() {
		if len(agent.Command) == 0 {
			return errors.Newf(errors.EValidation, "agent %q has an empty command", agent.Name)
		}
		return nil
	}

	if agent.Tool != "" && agent.Tool != ToolCodex {
		return errors.Newf(errors.EValidation, "agent %q has unsupported tool %q", agent.Name, agent.Tool)
	}
	if agent.Task == "" {
		return errors.Newf(errors.EValidation, "agent %q is missing task for %s", agent.Name, ToolCodex)
	}
	return nil
}
