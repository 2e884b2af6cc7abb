// Package project defines the input of a scaffolding run: the project name,
// the absolute directory it is generated into, and the few values the
// generated files are parameterized by.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
)

// ErrInvalidName is returned when a project name cannot be used as an npm
// package name or a single path component.
var ErrInvalidName = errors.New("invalid project name")

// npm caps package names at 214 characters.
const maxNameLength = 214

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Defaults for the generated services.
const (
	DefaultBackendPort = 5000
	DefaultClientPort  = 5173
	DefaultMongoHost   = "127.0.0.1:27017"
)

// Spec is the immutable description of one scaffolding run.
type Spec struct {
	Name        string // e.g., "shopcart"
	Target      string // absolute path the project is generated into
	BackendPort int
	ClientPort  int
	MongoHost   string // host:port of the MongoDB server
}

// New builds a Spec for name under baseDir with default ports.
// An empty name is replaced by defaultName.
func New(name, defaultName, baseDir string) (*Spec, error) {
	if name == "" {
		name = defaultName
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	base, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolving base directory %s: %w", baseDir, err)
	}

	return &Spec{
		Name:        name,
		Target:      filepath.Join(base, name),
		BackendPort: DefaultBackendPort,
		ClientPort:  DefaultClientPort,
		MongoHost:   DefaultMongoHost,
	}, nil
}

// ValidateName rejects names that are not safe as both an npm package name
// and a directory name.
func ValidateName(name string) error {
	if len(name) > maxNameLength {
		return fmt.Errorf("%w %q: longer than %d characters", ErrInvalidName, name, maxNameLength)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w %q: must match pattern [a-z0-9][a-z0-9._-]*", ErrInvalidName, name)
	}
	return nil
}

// DatabaseName is the MongoDB database the generated backend connects to.
func (s *Spec) DatabaseName() string {
	return s.Name + "_db"
}

// MongoURI is the default connection string written into the backend.
func (s *Spec) MongoURI() string {
	return fmt.Sprintf("mongodb://%s/%s", s.MongoHost, s.DatabaseName())
}

// BackendURL is the local address the generated backend listens on.
func (s *Spec) BackendURL() string {
	return fmt.Sprintf("http://localhost:%d", s.BackendPort)
}

// ClientURL is the local address of the Vite dev server.
func (s *Spec) ClientURL() string {
	return fmt.Sprintf("http://localhost:%d", s.ClientPort)
}
