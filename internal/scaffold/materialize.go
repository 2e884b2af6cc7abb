package scaffold

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/mernkit/create-mern/internal/layout"
	"github.com/mernkit/create-mern/internal/platform"
)

// CheckTarget fails with ErrTargetNotEmpty if target exists and is either a
// non-empty directory or not a directory at all. A missing or empty directory
// passes. It never modifies the filesystem.
func CheckTarget(target string) error {
	info, err := os.Stat(target)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target %s: %w", target, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q: %w", target, ErrTargetNotEmpty)
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return fmt.Errorf("reading target %s: %w", target, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%q: %w", target, ErrTargetNotEmpty)
	}
	return nil
}

// Materializer writes planned sub-projects to disk.
type Materializer struct {
	Out io.Writer
}

// Materialize checks the target precondition, then creates every
// sub-project in order: declared directories first, then files. The first
// failure aborts with a *WriteError and nothing is rolled back.
func (m *Materializer) Materialize(target string, subs []layout.SubProject) (*Result, error) {
	if err := CheckTarget(target); err != nil {
		return nil, err
	}
	return m.write(target, subs)
}

// write performs the filesystem mutations without the precondition check.
// Directory creation is idempotent and existing files are overwritten.
func (m *Materializer) write(target string, subs []layout.SubProject) (*Result, error) {
	if err := platform.EnsureDir(target); err != nil {
		return nil, &WriteError{Op: "mkdir", Path: target, Err: err}
	}
	result := &Result{Target: target}

	for _, sub := range subs {
		root := filepath.Join(target, filepath.FromSlash(sub.Dir))

		for _, dir := range sub.Dirs {
			p := filepath.Join(root, filepath.FromSlash(dir))
			if err := platform.EnsureDir(p); err != nil {
				return result, &WriteError{Op: "mkdir", Path: p, Err: err}
			}
		}

		for _, f := range sub.Files {
			p := filepath.Join(root, filepath.FromSlash(f.Path))
			if err := platform.WriteFile(p, []byte(f.Content), f.Mode); err != nil {
				return result, &WriteError{Op: "write", Path: p, Err: err}
			}
			result.Files = append(result.Files, path.Join(sub.Dir, f.Path))
		}

		if m.Out != nil {
			fmt.Fprintf(m.Out, "  created %s (%d files)\n", sub.Name, len(sub.Files))
		}
	}

	return result, nil
}
