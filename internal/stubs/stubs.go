// Package stubs creates the report/inbox markdown artifacts for an agent
// and owns the inbox command-block format shared with dispatch.
package stubs

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NielsdaWheelz/flock/internal/errors"
	"github.com/NielsdaWheelz/flock/internal/fs"
)

// TimestampFormat is the inbox command-block timestamp layout.
const TimestampFormat = "2006-01-02 15:04"

// EnsureReport creates the report skeleton at path unless it already
// exists. Never overwrites. Parent directories are created.
func EnsureReport(fsys fs.FS, path, name, task string) error {
	if fs.Exists(fsys, path) {
		return nil
	}

	lines := []string{"# Agent: " + name, ""}
	if task != "" {
		lines = append(lines, "Task: "+task, "")
	}
	lines = append(lines, "## Progress", "", "- ")

	return writeNew(fsys, path, strings.Join(lines, "\n"))
}

// EnsureInbox creates the inbox skeleton at path unless it already exists,
// pre-seeded with one command block so agents see the expected shape.
func EnsureInbox(fsys fs.FS, path, name string, now time.Time) error {
	if fs.Exists(fsys, path) {
		return nil
	}

	lines := []string{
		"# Inbox: " + name,
		"",
		"## Command 001 (" + now.Format(TimestampFormat) + ")",
		"- Replace this line with your instruction.",
		"",
	}

	return writeNew(fsys, path, strings.Join(lines, "\n"))
}

// AppendCommand appends one command block to the inbox at path:
//
//	## Command <id> (<YYYY-MM-DD HH:MM>)
//
//	<message>
//
// The id is omitted from the header when empty. A missing inbox file is
// created with its title line first.
func AppendCommand(fsys fs.FS, path, name, message, id string, now time.Time) error {
	header := "## Command"
	if id != "" {
		header += " " + id
	}
	header += " (" + now.Format(TimestampFormat) + ")"

	payload := strings.Join([]string{
		header,
		"",
		strings.TrimRight(message, "\n"),
		"",
	}, "\n")

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.EIO, "failed to create inbox dir", err)
	}
	if !fs.Exists(fsys, path) {
		if err := fsys.WriteFile(path, []byte("# Inbox: "+name+"\n\n"), 0644); err != nil {
			return errors.Wrap(errors.EIO, "failed to create inbox: "+path, err)
		}
	}
	if err := fsys.Append(path, []byte(payload), 0644); err != nil {
		return errors.Wrap(errors.EIO, "failed to append to inbox: "+path, err)
	}
	return nil
}

func writeNew(fsys fs.FS, path, content string) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.EIO, "failed to create dir for "+path, err)
	}
	if err := fsys.WriteFile(path, []byte(content), os.FileMode(0644)); err != nil {
		return errors.Wrap(errors.EIO, "failed to write "+path, err)
	}
	return nil
}
