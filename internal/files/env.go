package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".dashdo"
)

// ResolveBasePath determines where dashdo stores list files. A non-empty
// override wins (a leading ~ is expanded); otherwise it defaults to ~/.dashdo.
func ResolveBasePath(override string) (string, error) {
	override = strings.TrimSpace(override)
	if override != "" {
		return normalizePath(override)
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
