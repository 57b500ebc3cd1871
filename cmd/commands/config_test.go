package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrawl/scrawl-cli/pkg/files"
)

// setupConfigEnv points the settings lookup at a throwaway directory.
func setupConfigEnv(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))
}

func TestConfigCommand_Defaults(t *testing.T) {
	setupConfigEnv(t)

	cmd := NewConfigCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Settings file:")
	assert.Contains(t, output, "(defaults)")
	assert.Contains(t, output, "show_line_numbers: true")
	assert.Contains(t, output, "tab_width: 4")
	assert.Contains(t, output, "width_percent: 72")
}

func TestConfigCommand_JSONOutput(t *testing.T) {
	setupConfigEnv(t)

	cmd := NewConfigCommand()
	// The root command normally supplies this persistent flag.
	cmd.Flags().StringP("output", "o", "text", "Output format")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"-o", "json"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"source": "defaults"`)
	assert.Contains(t, output, `"tab_width": 4`)
	assert.Contains(t, output, `"cascade_cols": 2`)
}

func TestConfigCommand_YAMLOutput(t *testing.T) {
	setupConfigEnv(t)

	cmd := NewConfigCommand()
	cmd.Flags().StringP("output", "o", "text", "Output format")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"-o", "yaml"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "source: defaults")
	assert.Contains(t, output, "status_clock: true")
}

func TestConfigCommand_InvalidFormat(t *testing.T) {
	setupConfigEnv(t)

	cmd := NewConfigCommand()
	cmd.Flags().StringP("output", "o", "text", "Output format")
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"-o", "xml"})

	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestConfigCommand_Init(t *testing.T) {
	setupConfigEnv(t)

	cmd := NewConfigCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--init"})

	err := cmd.Execute()
	require.NoError(t, err)

	path, err := files.SettingsPath()
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err, "expected --init to write the settings file")

	// A fresh run now reports the file as the source.
	cmd = NewConfigCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "(file)")
}

func TestConfigCommand_ReadsOverrides(t *testing.T) {
	setupConfigEnv(t)

	path, err := files.SettingsPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  tab_width: 8\n"), 0o644))

	cmd := NewConfigCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "tab_width: 8")
	// Untouched fields keep their defaults.
	assert.Contains(t, output, "width_percent: 72")
}
