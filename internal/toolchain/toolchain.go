// Package toolchain checks that the tools a generated project needs are
// installed: the package installer and a Node.js recent enough for Vite.
package toolchain

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/mernkit/create-mern/internal/runtime"
)

// MinNodeVersion is the oldest Node.js release the generated client builds on.
const MinNodeVersion = ">= 18.0.0"

// Prober runs a version command and returns its output.
type Prober func(ctx context.Context, argv []string) (string, error)

// LookPath resolves a binary name on PATH.
type LookPath func(file string) (string, error)

// Checker reports on the local toolchain.
type Checker struct {
	Installer string
	Probe     Prober
	Look      LookPath
}

// NewChecker returns a Checker that probes the real system.
func NewChecker(installer string) *Checker {
	return &Checker{
		Installer: installer,
		Probe: func(ctx context.Context, argv []string) (string, error) {
			return runtime.Capture(ctx, "", argv)
		},
		Look: exec.LookPath,
	}
}

// Check writes one status line per tool to w and returns an error if any
// required tool is missing or too old.
func (c *Checker) Check(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Toolchain check:")
	failed := 0

	for _, bin := range []string{c.Installer, "node"} {
		path, err := c.Look(bin)
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %s not found on PATH\n", bin)
			failed++
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s: %s\n", bin, path)
	}

	if failed == 0 {
		raw, err := c.Probe(ctx, []string{"node", "--version"})
		if err != nil {
			fmt.Fprintf(w, "  [WARN] could not read node version: %v\n", err)
		} else {
			ok, err := NodeVersionSatisfies(raw)
			switch {
			case err != nil:
				fmt.Fprintf(w, "  [WARN] %v\n", err)
			case !ok:
				fmt.Fprintf(w, "  [FAIL] node %s does not satisfy %s\n", raw, MinNodeVersion)
				failed++
			default:
				fmt.Fprintf(w, "  [ OK ] node %s satisfies %s\n", raw, MinNodeVersion)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d toolchain check(s) failed", failed)
	}
	return nil
}

// NodeVersionSatisfies reports whether the output of `node --version`
// (e.g., "v20.11.1") meets MinNodeVersion.
func NodeVersionSatisfies(raw string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(raw), "v"))
	if err != nil {
		return false, fmt.Errorf("parsing node version %q: %w", raw, err)
	}
	c, err := semver.NewConstraint(MinNodeVersion)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", MinNodeVersion, err)
	}
	return c.Check(v), nil
}
