package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/NielsdaWheelz/flock/internal/config"
	"github.com/NielsdaWheelz/flock/internal/core"
	"github.com/NielsdaWheelz/flock/internal/errors"
	"github.com/NielsdaWheelz/flock/internal/fs"
)

// PrepareOpts holds options for the prepare command.
type PrepareOpts struct {
	Output    string
	Overwrite bool
	Example   bool // write a generated roster instead of prompting
	Count     int  // agent count for --example
}

// Prepare builds an agent roster file, either interactively or from a
// generated example, and writes it as canonical JSON.
func Prepare(deps Deps, cwd string, opts PrepareOpts, stdin io.Reader, stdout io.Writer) error {
	if opts.Output == "" {
		return errors.New(errors.EUsage, "--output is required")
	}
	output := opts.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(cwd, output)
	}

	if opts.Example {
		count := opts.Count
		if count < 1 {
			count = 1
		}
		cfg := exampleRoster(count)
		return writeRoster(deps.FS, output, cfg, opts.Overwrite, stdin, stdout)
	}

	reader := bufio.NewReader(stdin)
	for {
		cfg, err := collectRoster(reader, stdout)
		if err != nil {
			return err
		}

		preview, err := marshalRoster(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "\nConfig preview:\n\n%s\n", preview)

		choice, err := promptLine(reader, stdout, "\nType 'confirm' to write, 'redo' to edit, or 'quit' to exit: ")
		if err != nil {
			return err
		}
		switch choice {
		case "confirm":
			return writeRoster(deps.FS, output, cfg, opts.Overwrite, reader, stdout)
		case "redo":
			continue
		case "quit":
			return errors.New(errors.EUsage, "aborted by user")
		default:
			fmt.Fprintln(stdout, "Unknown option.")
		}
	}
}

// collectRoster runs the interactive prompts for one full roster pass.
func collectRoster(reader *bufio.Reader, out io.Writer) (config.Config, error) {
	raw, err := promptNonEmpty(reader, out, "Number of agents: ")
	if err != nil {
		return config.Config{}, err
	}
	count, convErr := strconv.Atoi(raw)
	if convErr != nil || count < 1 {
		return config.Config{}, errors.New(errors.EUsage, "number of agents must be a positive integer")
	}

	cfg := config.Config{Agents: make([]config.Agent, 0, count)}
	for i := 1; i <= count; i++ {
		agent, err := promptAgent(reader, out, i)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Agents = append(cfg.Agents, agent)
	}

	terminal, err := promptLine(reader, out, "Terminal preference (blank for auto): ")
	if err != nil {
		return config.Config{}, err
	}
	cfg.Terminal = terminal

	return cfg, nil
}

func promptAgent(reader *bufio.Reader, out io.Writer, index int) (config.Agent, error) {
	fmt.Fprintf(out, "\nAgent %d\n", index)

	name, err := promptNonEmpty(reader, out, "Name: ")
	if err != nil {
		return config.Agent{}, err
	}
	task, err := promptLine(reader, out, "Task (optional): ")
	if err != nil {
		return config.Agent{}, err
	}

	agent := config.Agent{Name: name, Task: task}

	custom, err := promptYesNo(reader, out, "Use custom command?", false)
	if err != nil {
		return config.Agent{}, err
	}
	if custom {
		argv, err := promptCommand(reader, out, "Command line: ")
		if err != nil {
			return config.Agent{}, err
		}
		agent.Command = argv
		return agent, nil
	}

	agent.Tool = config.ToolCodex
	extra, err := promptTokens(reader, out, "Extra codex args (optional): ")
	if err != nil {
		return config.Agent{}, err
	}
	agent.CodexArgs = extra
	return agent, nil
}

func promptLine(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.New(errors.EUsage, "input closed")
	}
	return strings.TrimSpace(line), nil
}

func promptNonEmpty(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	for {
		value, err := promptLine(reader, out, label)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		fmt.Fprintln(out, "Value is required.")
	}
}

func promptYesNo(reader *bufio.Reader, out io.Writer, label string, def bool) (bool, error) {
	suffix := " [y/N] "
	if def {
		suffix = " [Y/n] "
	}
	for {
		value, err := promptLine(reader, out, label+suffix)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(value) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(out, "Please enter yes or no.")
	}
}

func promptCommand(reader *bufio.Reader, out io.Writer, label string) ([]string, error) {
	for {
		value, err := promptLine(reader, out, label)
		if err != nil {
			return nil, err
		}
		if value == "" {
			fmt.Fprintln(out, "Command is required.")
			continue
		}
		argv, splitErr := core.SplitTokens(value)
		if splitErr != nil {
			fmt.Fprintln(out, "Invalid quoting; try again.")
			continue
		}
		return argv, nil
	}
}

func promptTokens(reader *bufio.Reader, out io.Writer, label string) ([]string, error) {
	value, err := promptLine(reader, out, label)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	argv, splitErr := core.SplitTokens(value)
	if splitErr != nil {
		return nil, errors.Wrap(errors.EUsage, "invalid quoting in args", splitErr)
	}
	return argv, nil
}

// exampleRoster generates a count-agent roster with placeholder tasks.
func exampleRoster(count int) config.Config {
	cfg := config.Config{Agents: make([]config.Agent, 0, count)}
	for i := 1; i <= count; i++ {
		name := fmt.Sprintf("agent-%d", i)
		cfg.Agents = append(cfg.Agents, config.Agent{
			Name: name,
			Tool: config.ToolCodex,
			Task: "Task for " + name,
		})
	}
	return cfg
}

func marshalRoster(cfg config.Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.EInternal, "failed to encode roster", err)
	}
	return data, nil
}

// writeRoster writes the roster to path as indented JSON, prompting before
// replacing an existing file unless overwrite is set.
func writeRoster(fsys fs.FS, path string, cfg config.Config, overwrite bool, stdin io.Reader, stdout io.Writer) error {
	if fs.Exists(fsys, path) && !overwrite {
		reader, ok := stdin.(*bufio.Reader)
		if !ok {
			reader = bufio.NewReader(stdin)
		}
		replace, err := promptYesNo(reader, stdout, path+" exists. Overwrite?", false)
		if err != nil {
			return err
		}
		if !replace {
			return errors.New(errors.EUsage, "aborted by user")
		}
	}

	data, err := marshalRoster(cfg)
	if err != nil {
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.EIO, "failed to create dir for "+path, err)
	}
	if err := fsys.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.Wrap(errors.EIO, "failed to write "+path, err)
	}
	fmt.Fprintf(stdout, "Written %s\n", path)
	return nil
}
