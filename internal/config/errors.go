package config

import "fmt"

// PathError reports that the host environment could not supply a usable
// per-user configuration directory.
type PathError struct {
	Message string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// IOError reports a filesystem failure other than simple absence of the
// config file. Absence is never an error in this layer: a missing file
// triggers default materialization instead.
type IOError struct {
	Op   string // "mkdir", "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("config: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
