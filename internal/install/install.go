// Package install runs the package installer once per sub-project root, in
// order, stopping at the first failure.
package install

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mernkit/create-mern/internal/layout"
	"github.com/mernkit/create-mern/internal/runtime"
)

// Step is one installer invocation scoped to a sub-project root.
type Step struct {
	Name string   // sub-project name
	Dir  string   // absolute working directory
	Argv []string // installer and its arguments
}

// InstallError reports the step that stopped the sequence. ExitCode is -1
// when the installer could not be started.
type InstallError struct {
	Step     string
	Argv     []string
	ExitCode int
	Err      error
}

func (e *InstallError) Error() string {
	cmd := strings.Join(e.Argv, " ")
	if e.Err != nil {
		return fmt.Sprintf("%s install failed: %s: %v", e.Step, cmd, e.Err)
	}
	return fmt.Sprintf("%s install failed: %s exited with code %d", e.Step, cmd, e.ExitCode)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Steps builds one step per sub-project, in the sub-projects' order.
func Steps(target string, subs []layout.SubProject, installer string) []Step {
	steps := make([]Step, 0, len(subs))
	for _, s := range subs {
		steps = append(steps, Step{
			Name: s.Name,
			Dir:  filepath.Join(target, filepath.FromSlash(s.Dir)),
			Argv: []string{installer, "install"},
		})
	}
	return steps
}

// Orchestrator runs install steps one after another.
type Orchestrator struct {
	Runner runtime.Runner
	Out    io.Writer
}

// Run executes steps in order, waiting for each to finish. The first step
// that fails to start or exits non-zero ends the run with an *InstallError;
// later steps are not attempted. Nothing is retried.
func (o *Orchestrator) Run(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		if o.Out != nil {
			fmt.Fprintf(o.Out, "\n→ %s: %s (in %s)\n", step.Name, strings.Join(step.Argv, " "), step.Dir)
		}

		out, err := o.Runner.Run(ctx, step.Dir, step.Argv)
		if err != nil {
			return &InstallError{Step: step.Name, Argv: step.Argv, ExitCode: -1, Err: err}
		}
		if !out.Success() {
			return &InstallError{Step: step.Name, Argv: step.Argv, ExitCode: out.ExitCode}
		}
	}
	return nil
}
