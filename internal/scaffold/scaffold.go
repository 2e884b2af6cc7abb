package scaffold

import (
	"context"
	"fmt"
	"io"

	"github.com/mernkit/create-mern/internal/install"
	"github.com/mernkit/create-mern/internal/layout"
	"github.com/mernkit/create-mern/internal/manifest"
	"github.com/mernkit/create-mern/internal/project"
	"github.com/mernkit/create-mern/internal/runtime"
)

// Phase names a stage of a generator run.
type Phase string

// Phases in execution order.
const (
	PhaseMaterialize Phase = "materialize"
	PhaseInstall     Phase = "install"
	PhaseDone        Phase = "done"
)

// Result holds the outcome of a generator run.
type Result struct {
	Target   string
	Files    []string // slash-separated, relative to Target, in write order
	Warnings []string
	Reached  Phase // last phase entered; PhaseDone on success
}

// Scaffolder runs the three phases of project generation in sequence.
type Scaffolder struct {
	Runner    runtime.Runner
	Installer string // e.g., "npm"
	Out       io.Writer
}

// Run plans the project described by spec, writes it under spec.Target and
// installs dependencies for the backend, client and root in that order.
// Any failure ends the run. The returned Result is nil only when nothing was
// written; otherwise Reached tells callers how far the run got.
func (s *Scaffolder) Run(ctx context.Context, spec *project.Spec) (*Result, error) {
	out := s.Out
	if out == nil {
		out = io.Discard
	}

	subs, err := layout.Plan(spec)
	if err != nil {
		return nil, fmt.Errorf("planning project: %w", err)
	}
	warnings := ValidateManifests(subs)

	fmt.Fprintf(out, "\nCreating MERN project: %s\n", spec.Name)

	m := &Materializer{Out: out}
	result, err := m.Materialize(spec.Target, subs)
	if result != nil {
		result.Warnings = warnings
		result.Reached = PhaseMaterialize
	}
	if err != nil {
		return result, err
	}

	fmt.Fprintln(out, "\nFiles created. Installing dependencies. This may take a few minutes...")

	result.Reached = PhaseInstall
	orch := &install.Orchestrator{Runner: s.Runner, Out: out}
	if err := orch.Run(ctx, install.Steps(spec.Target, subs, s.Installer)); err != nil {
		return result, err
	}

	result.Reached = PhaseDone
	return result, nil
}

// ValidateManifests checks every planned package.json and returns the
// problems found as warnings, prefixed with the file they belong to.
func ValidateManifests(subs []layout.SubProject) []string {
	var warnings []string
	for _, sub := range subs {
		f, ok := sub.File("package.json")
		if !ok {
			continue
		}
		name := sub.Dir + "/package.json"
		if sub.Dir == "." {
			name = "package.json"
		}

		res, err := manifest.Validate([]byte(f.Content))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: could not validate manifest: %v", name, err))
			continue
		}
		for _, issue := range res.Issues {
			warnings = append(warnings, name+": "+issue.String())
		}
	}
	return warnings
}
