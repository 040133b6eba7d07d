package config

import (
	"os"
	"path/filepath"
)

const (
	defaultBaseDir = "gateway-app"
	configFileName = "app-config.json"
	logsDirName    = "logs"
)

// Paths holds resolved filesystem paths for gateway-app data.
type Paths struct {
	Base   string // e.g. ~/.config/gateway-app
	Config string // <Base>/app-config.json
	Logs   string // <Base>/logs
}

// ResolvePaths computes the standard paths from the per-user config
// directory. If GATEWAY_APP_HOME is set, it overrides the default base
// directory.
func ResolvePaths() (Paths, error) {
	base := os.Getenv("GATEWAY_APP_HOME")
	if base == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Paths{}, &PathError{Message: "no per-user config directory: " + err.Error()}
		}
		base = filepath.Join(dir, defaultBaseDir)
	}
	return PathsAt(base), nil
}

// PathsAt computes the standard paths under an explicit base directory.
func PathsAt(base string) Paths {
	return Paths{
		Base:   base,
		Config: filepath.Join(base, configFileName),
		Logs:   filepath.Join(base, logsDirName),
	}
}
