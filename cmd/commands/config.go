package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/scrawl/scrawl-cli/internal/cli"
	"github.com/scrawl/scrawl-cli/pkg/files"
	"github.com/scrawl/scrawl-cli/pkg/models"
)

// ConfigResult represents the output structure for the config command
type ConfigResult struct {
	Path     string           `json:"path" yaml:"path"`
	Source   string           `json:"source" yaml:"source"`
	Settings *models.Settings `json:"settings" yaml:"settings"`
}

var configInit bool

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the settings Scrawl runs with and where they come from.

Settings load from settings.yaml in the user config directory. A missing
file or missing keys fall back to the built-in defaults.

Examples:
  # Show effective settings
  scrawl config

  # Show settings as JSON
  scrawl config -o json

  # Write a settings file with the defaults
  scrawl config --init`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}

	cmd.Flags().BoolVar(&configInit, "init", false, "Write a settings file with the defaults if none exists")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	path, err := files.SettingsPath()
	if err != nil {
		return fmt.Errorf("failed to locate settings: %w", err)
	}

	if configInit {
		return initConfigFile(path)
	}

	source := "defaults"
	if _, err := os.Stat(path); err == nil {
		source = "file"
	}

	settings, err := files.ReadSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	result := ConfigResult{
		Path:     path,
		Source:   source,
		Settings: settings,
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "" {
		outputFormat = "text"
	}
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		return outputConfigText(cmd, result)
	}
}

func initConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		cli.PrintInfo("Settings file already exists: %s", path)
		return nil
	}

	if err := files.WriteSettings(models.DefaultSettings()); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	cli.PrintInfo("Wrote default settings to %s", path)
	return nil
}

func outputConfigText(cmd *cobra.Command, result ConfigResult) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Settings file: %s (%s)\n\n", result.Path, result.Source)

	data, err := yaml.Marshal(result.Settings)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))
	return nil
}
