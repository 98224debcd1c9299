// Package confirm implements the interactive gate guarding multi-agent
// launches.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/NielsdaWheelz/flock/internal/errors"
)

// Gate asks for double confirmation before a multiplying action.
type Gate struct {
	In  io.Reader
	Out io.Writer
}

// Require prompts twice before launching agentCount agents: the user must
// type the exact decimal count, then the word "launch" (case-insensitive).
// One wrong answer aborts; there is no retry.
//
// No-op for a single agent unless forced.
func (g Gate) Require(agentCount int, forced bool) error {
	if agentCount <= 1 && !forced {
		return nil
	}

	reader := bufio.NewReader(g.In)

	fmt.Fprintf(g.Out, "Confirm %d agent(s). Type %d to continue: ", agentCount, agentCount)
	answer, err := readLine(reader)
	if err != nil {
		return errors.Wrap(errors.EConfirmFailed, "confirmation failed", err)
	}
	if answer != fmt.Sprintf("%d", agentCount) {
		return errors.New(errors.EConfirmFailed, "confirmation failed")
	}

	fmt.Fprint(g.Out, "Type 'launch' to proceed: ")
	answer, err = readLine(reader)
	if err != nil {
		return errors.Wrap(errors.EConfirmFailed, "confirmation failed", err)
	}
	if strings.ToLower(answer) != "launch" {
		return errors.New(errors.EConfirmFailed, "confirmation failed")
	}

	return nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
