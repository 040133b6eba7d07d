package config

import (
	_ "embed"
	"os"
	"path/filepath"
)

// defaultConfig is the bundled default payload, materialized verbatim on
// first read. It is the single source of truth for the initial document.
//
//go:embed default-config.json
var defaultConfig string

// DefaultConfig returns the bundled default payload.
func DefaultConfig() string {
	return defaultConfig
}

// Store persists the user-editable app config document. The document is
// an opaque text blob, conventionally JSON; the store never parses or
// validates it, and holds no in-memory copy between calls — the
// filesystem owns the document.
//
// Concurrent writers are not arbitrated: two simultaneous Write calls
// race at the filesystem with last-writer-wins semantics. Acceptable in
// a single-user desktop context; known limitation.
type Store struct {
	paths Paths
}

// NewStore returns a store bound to the given paths.
func NewStore(paths Paths) *Store {
	return &Store{paths: paths}
}

// Read returns the config document. If the file does not exist yet, the
// bundled default is written to disk (creating parent directories as
// needed) and returned — a first read is therefore not a pure read.
// Failures other than absence surface as *IOError.
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.paths.Config)
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", &IOError{Op: "read", Path: s.paths.Config, Err: err}
	}
	if err := s.writeFile(defaultConfig); err != nil {
		return "", err
	}
	return defaultConfig, nil
}

// Write overwrites the config document with text exactly as given — no
// validation, no merge. Parent directories are created as needed.
func (s *Store) Write(text string) error {
	return s.writeFile(text)
}

func (s *Store) writeFile(text string) error {
	dir := filepath.Dir(s.paths.Config)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}
	if err := os.WriteFile(s.paths.Config, []byte(text), 0o600); err != nil {
		return &IOError{Op: "write", Path: s.paths.Config, Err: err}
	}
	return nil
}
