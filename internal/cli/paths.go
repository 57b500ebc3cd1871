package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a leading ~ against the user's home directory.
// Anything else passes through untouched.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// NormalizeDocumentPath turns a user-supplied document path into an
// absolute one. The file itself does not have to exist, but a path
// naming an existing directory is rejected.
func NormalizeDocumentPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	abs, err := filepath.Abs(ExpandPath(path))
	if err != nil {
		return "", fmt.Errorf("error resolving path %s: %w", path, err)
	}

	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		return "", fmt.Errorf("path is a directory, expected file: %s", abs)
	}

	return abs, nil
}

// ValidateFilePath checks that path names an existing regular file.
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("path does not exist: %s", path)
	case err != nil:
		return fmt.Errorf("error accessing path: %w", err)
	case info.IsDir():
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}
	return nil
}
