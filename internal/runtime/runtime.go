package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes one command in a working directory and waits for it.
type Runner interface {
	// Run starts argv[0] with argv[1:] in dir and blocks until it exits.
	// A process that ran and exited (with any status) yields an Output and a
	// nil error. The error is reserved for failures to start or wait.
	Run(ctx context.Context, dir string, argv []string) (*Output, error)
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
}

// Success reports whether the command exited with status 0.
func (o *Output) Success() bool {
	return o != nil && o.ExitCode == 0
}

// ExecRunner runs commands with os/exec, connected to the caller's terminal.
type ExecRunner struct {
	// Stdin, Stdout and Stderr can be set for testing; they default to the
	// process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run resolves argv[0] on PATH and runs it in dir with inherited streams.
func (r *ExecRunner) Run(ctx context.Context, dir string, argv []string) (*Output, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}

	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", argv[0], err)
	}

	cmd := exec.CommandContext(ctx, bin, argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Output{ExitCode: exitErr.ExitCode()}, nil
		}
		return nil, fmt.Errorf("running %s: %w", argv[0], err)
	}

	return &Output{ExitCode: 0}, nil
}

// Capture runs argv in dir and returns its trimmed standard output. It is
// used for version probes, where the output is data rather than progress.
func Capture(ctx context.Context, dir string, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New("empty command")
	}

	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", argv[0], err)
	}

	cmd := exec.CommandContext(ctx, bin, argv[1:]...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("running %s: %w", argv[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}
