package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/flock/internal/errors"
	"github.com/NielsdaWheelz/flock/internal/fs"
)

// Load reads and parses a roster file. The canonical interchange format is
// JSON; files ending in .yaml/.yml are parsed as YAML instead.
// Returns E_CONFIG for a missing or malformed file.
// Does NOT perform semantic validation; call Validate for that.
func Load(fsys fs.FS, path string) (Config, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Newf(errors.EConfig, "config not found: %s", path)
		}
		return Config{}, errors.Wrap(errors.EConfig, "failed to read config: "+path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = parseYAML(data)
	default:
		cfg, err = parseJSON(data)
	}
	if err != nil {
		return Config{}, err
	}

	applyDefaults(&cfg)
	return cfg, nil
}

// parseJSON parses the roster with strict per-field type checking, so a
// wrongly-typed field gets a named error instead of a zero value.
func parseJSON(data []byte) (Config, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, errors.New(errors.EConfig, "invalid json in config: "+err.Error())
	}

	var cfg Config
	if err := parseStringField(raw, "root", &cfg.Root); err != nil {
		return Config{}, err
	}
	if err := parseStringField(raw, "worktrees_dir", &cfg.WorktreesDir); err != nil {
		return Config{}, err
	}
	if err := parseStringField(raw, "reports_dir", &cfg.ReportsDir); err != nil {
		return Config{}, err
	}
	if err := parseStringField(raw, "inboxes_dir", &cfg.InboxesDir); err != nil {
		return Config{}, err
	}
	if err := parseStringField(raw, "base_ref", &cfg.BaseRef); err != nil {
		return Config{}, err
	}
	if err := parseStringField(raw, "terminal", &cfg.Terminal); err != nil {
		return Config{}, err
	}
	if err := parseStringListField(raw, "codex_args", &cfg.CodexArgs); err != nil {
		return Config{}, err
	}

	rawAgents, ok := raw["agents"]
	if !ok {
		return Config{}, errors.New(errors.EConfig, "config must include a non-empty agents array")
	}
	var agentMsgs []json.RawMessage
	if err := json.Unmarshal(rawAgents, &agentMsgs); err != nil {
		return Config{}, errors.New(errors.EConfig, "agents must be an array of objects")
	}
	for i, msg := range agentMsgs {
		agent, err := parseAgent(msg, i)
		if err != nil {
			return Config{}, err
		}
		cfg.Agents = append(cfg.Agents, agent)
	}

	return cfg, nil
}

func parseAgent(data json.RawMessage, index int) (Agent, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return Agent{}, errors.Newf(errors.EConfig, "agents[%d] is not valid json", index)
	}
	if _, ok := probe.(map[string]any); !ok {
		return Agent{}, errors.Newf(errors.EConfig, "agents[%d] must be an object", index)
	}

	var agent Agent
	if err := json.Unmarshal(data, &agent); err != nil {
		// Argv's unmarshaler reports scalar commands as E_VALIDATION;
		// keep that code when it surfaces here.
		if errors.GetCode(err) != "" {
			return Agent{}, err
		}
		return Agent{}, errors.Newf(errors.EConfig, "agents[%d]: %s", index, err.Error())
	}
	return agent, nil
}

func parseYAML(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		if errors.GetCode(err) != "" {
			return Config{}, err
		}
		return Config{}, errors.New(errors.EConfig, "invalid yaml in config: "+err.Error())
	}
	return cfg, nil
}

func parseStringField(raw map[string]json.RawMessage, key string, dst *string) error {
	msg, ok := raw[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(msg, dst); err != nil {
		return errors.Newf(errors.EConfig, "%s must be a string", key)
	}
	return nil
}

func parseStringListField(raw map[string]json.RawMessage, key string, dst *[]string) error {
	msg, ok := raw[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(msg, dst); err != nil {
		return errors.Newf(errors.EConfig, "%s must be an array of strings", key)
	}
	return nil
}

// applyDefaults fills the documented defaults for unset fields.
// inboxes_dir defaults to the (possibly defaulted) reports_dir.
func applyDefaults(cfg *Config) {
	if cfg.WorktreesDir == "" {
		cfg.WorktreesDir = ".worktrees"
	}
	if cfg.ReportsDir == "" {
		cfg.ReportsDir = "reports"
	}
	if cfg.InboxesDir == "" {
		cfg.InboxesDir = cfg.ReportsDir
	}
	if cfg.BaseRef == "" {
		cfg.BaseRef = "HEAD"
	}
	if cfg.Terminal == "" {
		cfg.Terminal = "auto"
	}
}
