package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/NielsdaWheelz/flock/internal/errors"
	"github.com/NielsdaWheelz/flock/internal/exec"
	"github.com/NielsdaWheelz/flock/internal/git"
	"github.com/NielsdaWheelz/flock/internal/terminal"
)

// DoctorReport holds all the data for doctor output.
type DoctorReport struct {
	GitVersion string
	RepoOK     bool
	Platform   terminal.Platform

	// Terminals lists the probed candidates in priority order alongside
	// whether each was found on PATH.
	Terminals []TerminalCheck
}

// TerminalCheck is one probed terminal candidate.
type TerminalCheck struct {
	Name      string
	Available bool
}

// Doctor implements the `flock doctor` command: checks git, the current
// repository, and which terminal candidates are available.
func Doctor(ctx context.Context, deps Deps, platform terminal.Platform, cwd string, stdout io.Writer) error {
	gitVersion, err := checkGit(ctx, deps.Runner)
	if err != nil {
		return err
	}

	repoOK := git.EnsureRepo(ctx, deps.Runner, cwd) == nil

	report := DoctorReport{
		GitVersion: gitVersion,
		RepoOK:     repoOK,
		Platform:   platform,
	}
	for _, name := range terminal.Candidates(platform) {
		report.Terminals = append(report.Terminals, TerminalCheck{
			Name:      name,
			Available: deps.Runner.LookPath(name),
		})
	}

	writeDoctorOutput(stdout, report)
	return nil
}

// checkGit verifies git is installed and returns its version.
func checkGit(ctx context.Context, cr exec.CommandRunner) (string, error) {
	result, err := cr.Run(ctx, "git", []string{"--version"}, exec.RunOpts{})
	if err != nil {
		return "", errors.New(errors.EGitFailed, "git is not installed or not on PATH")
	}
	if result.ExitCode != 0 {
		return "", errors.New(errors.EGitFailed, "git --version failed")
	}
	return strings.TrimSpace(result.Stdout), nil
}

// writeDoctorOutput writes the stable key: value output.
func writeDoctorOutput(w io.Writer, r DoctorReport) {
	fmt.Fprintf(w, "git_version: %s\n", r.GitVersion)
	fmt.Fprintf(w, "repo: %s\n", boolStr(r.RepoOK))
	fmt.Fprintf(w, "platform: %s\n", r.Platform)

	for _, t := range r.Terminals {
		fmt.Fprintf(w, "terminal_%s: %s\n", t.Name, boolStr(t.Available))
	}

	fmt.Fprintln(w, "status: ok")
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
