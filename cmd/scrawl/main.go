package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/scrawl/scrawl-cli/cmd/commands"
	"github.com/scrawl/scrawl-cli/internal/cli"
	"github.com/scrawl/scrawl-cli/pkg/files"
	"github.com/scrawl/scrawl-cli/pkg/models"
	"github.com/scrawl/scrawl-cli/pkg/tui"
)

// version is overridden at release time via -ldflags "-X main.version=...".
var version = "dev"

var (
	flagQuiet   bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "scrawl [file...]",
	Short: "Minimalist multi-window text editor for the terminal",
	Long: `Scrawl is a minimalist text editor that keeps several plain text,
Markdown or HTML documents open at once, each in its own window on a
shared canvas. Files named on the command line open in their own
windows; without arguments an empty document opens.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor)
	},
	Run: func(cmd *cobra.Command, args []string) {
		paths := make([]string, 0, len(args))
		for _, arg := range args {
			abs, err := cli.NormalizeDocumentPath(arg)
			if err != nil {
				cli.PrintError("Cannot open %s: %v", arg, err)
				os.Exit(1)
			}
			paths = append(paths, abs)
		}

		settings, err := files.ReadSettings()
		if err != nil {
			cli.PrintWarning("Falling back to default settings: %v", err)
			settings = models.DefaultSettings()
		}
		if cmd.Flags().Changed("line-numbers") {
			v, _ := cmd.Flags().GetBool("line-numbers")
			settings.Editor.ShowLineNumbers = v
		}

		// Launch TUI
		app := tui.NewApp(settings, paths)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			cli.PrintError("Editor exited abnormally: %v", err)
			fmt.Fprintln(os.Stderr, "Your terminal emulator may not support the required features.")
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Scrawl",
	Long:  `Display the current version of the Scrawl editor`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Scrawl version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.Flags().Bool("line-numbers", true, "Show the line number gutter (overrides settings)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewConfigCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
