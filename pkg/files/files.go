package files

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/scrawl/scrawl-cli/pkg/models"
)

const (
	// DefaultFileMode is the permission mode for saved documents.
	DefaultFileMode = 0o644

	// MaxDocumentSize caps how much of a file the editor will load.
	MaxDocumentSize = 8 << 20

	ConfigDirName    = "scrawl"
	SettingsFileName = "settings.yaml"
)

// ErrNotText is returned when a file is not valid UTF-8 text.
var ErrNotText = errors.New("not a UTF-8 text file")

// ReadDocument loads the file at path as UTF-8 text. CRLF line endings
// are normalized to LF.
func ReadDocument(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("cannot open %s: is a directory", path)
	}
	if info.Size() > MaxDocumentSize {
		return "", fmt.Errorf("cannot open %s: file exceeds %d bytes", path, MaxDocumentSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}
	if !utf8.Valid(content) || bytes.IndexByte(content, 0) != -1 {
		return "", fmt.Errorf("cannot open %s: %w", path, ErrNotText)
	}

	return strings.ReplaceAll(string(content), "\r\n", "\n"), nil
}

// WriteDocument saves content to path, creating parent directories as
// needed. The write is atomic: an interrupted save leaves any existing
// file untouched.
func WriteDocument(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := writeFileAtomic(path, []byte(content), DefaultFileMode); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}
	return nil
}

// SettingsPath returns the location of the user's settings file.
func SettingsPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, ConfigDirName, SettingsFileName), nil
}

// ReadSettings loads user settings, falling back to defaults when no
// settings file exists. Fields absent from the file keep their defaults.
func ReadSettings() (*models.Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return nil, err
	}
	return readSettingsFile(path)
}

func readSettingsFile(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	return settings, nil
}

// WriteSettings persists settings to the user's settings file.
func WriteSettings(settings *models.Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	return writeSettingsFile(path, settings)
}

func writeSettingsFile(path string, settings *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return writeFileAtomic(path, data, DefaultFileMode)
}

// writeFileAtomic writes data to a temp file in path's directory and
// renames it into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}
