package exec

import (
	"context"
	"fmt"
	"strings"
)

// Call records one invocation made through a FakeRunner.
type Call struct {
	Name       string
	Args       []string
	Dir        string
	Detached   bool
	NewConsole bool
}

// FakeRunner is a CommandRunner test double. It records every call and
// serves scripted results instead of touching real processes.
type FakeRunner struct {
	Calls []Call

	// Results maps a command key ("name arg1 arg2 ...") to a scripted result.
	// Commands without an entry succeed with empty output.
	Results map[string]CmdResult

	// Errs maps a command key to an execution error (binary missing etc.).
	Errs map[string]error

	// OnPath lists executables visible to LookPath.
	OnPath []string

	// StartErr, if set, is returned from every Start call.
	StartErr error
}

// Key renders a command invocation as a Results/Errs lookup key.
func Key(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

func (f *FakeRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args, Dir: opts.Dir})
	key := Key(name, args)
	if err, ok := f.Errs[key]; ok {
		return CmdResult{}, err
	}
	if res, ok := f.Results[key]; ok {
		return res, nil
	}
	return CmdResult{}, nil
}

func (f *FakeRunner) Start(name string, args []string, opts StartOpts) error {
	f.Calls = append(f.Calls, Call{
		Name:       name,
		Args:       args,
		Dir:        opts.Dir,
		Detached:   true,
		NewConsole: opts.NewConsole,
	})
	return f.StartErr
}

func (f *FakeRunner) LookPath(name string) bool {
	for _, p := range f.OnPath {
		if p == name {
			return true
		}
	}
	return false
}

// Started returns the detached calls only.
func (f *FakeRunner) Started() []Call {
	var out []Call
	for _, c := range f.Calls {
		if c.Detached {
			out = append(out, c)
		}
	}
	return out
}

// String renders the recorded calls, one per line, for test failure output.
func (f *FakeRunner) String() string {
	var b strings.Builder
	for _, c := range f.Calls {
		fmt.Fprintf(&b, "%s (dir=%q detached=%v)\n", Key(c.Name, c.Args), c.Dir, c.Detached)
	}
	return b.String()
}
