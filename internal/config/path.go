package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPaths are searched by the CLI when no --config flag is given.
var DefaultPaths = []string{"./moduled.yaml", "~/.config/moduled/config.yaml"}

// ExpandHome expands a leading '~' to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		full, err := ExpandHome(p)
		if err != nil {
			continue
		}
		if _, err := os.Stat(full); err == nil || !errors.Is(err, os.ErrNotExist) {
			return p
		}
	}
	return ""
}
