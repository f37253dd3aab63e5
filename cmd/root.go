package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	noColor               bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "aictl",
	Short: "Manage AI CLI tools, their MCP servers, and skills",
	Long: `aictl keeps your AI assistant CLI tools in sync: it reports installed
and latest versions, toggles MCP server integrations inside each tool's
own configuration file, and installs skill bundles into each tool's
skills directory.`,
	Example: `  aictl mcp list                   # Show MCP server status across tools
  aictl mcp enable linear          # Enable the Linear server everywhere
  aictl skills install owner/repo  # Install skills from a git repository
  aictl apps list                  # Show installed tool versions`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initColor)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Hide the auto-generated completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

func initColor() {
	if noColor {
		color.NoColor = true
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("aictl %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("aictl %s\n", version)
}
