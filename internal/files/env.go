package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory
	// searched for log files when no paths are given.
	DefaultDirName = ".tracklog"
)

// ResolveBasePath determines where tracklog looks for log files when no
// paths are supplied, defaulting to ~/.tracklog. The location can be
// overridden by exporting TRACKLOG_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv("TRACKLOG_HOME"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			path, err := normalizePath(override)
			if err != nil {
				return "", err
			}
			return path, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
