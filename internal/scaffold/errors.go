package scaffold

import (
	"errors"
	"fmt"
)

// ErrTargetNotEmpty is returned when the target path already holds entries
// (or is not a directory). Nothing has been written when it is returned.
var ErrTargetNotEmpty = errors.New("target directory exists and is not empty")

// WriteError reports a directory-creation or file-write failure during
// materialization. Files written before the failure are left in place.
type WriteError struct {
	Op   string // "mkdir" or "write"
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
