package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aictl/aictl/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Manage MCP servers across AI CLI tools",
	Long: `Enables, disables, and reports MCP server integrations. Each tool keeps
its own configuration file; these commands edit only the server entries
they own and leave everything else in the file untouched.`,
}

var mcpListCmd = &cobra.Command{
	Use:   "list",
	Short: "List MCP servers and their status across tools",
	RunE:  runMCPList,
}

var mcpEnableCmd = &cobra.Command{
	Use:   "enable <server>",
	Short: "Enable an MCP server across all installed tools",
	Long: `Enables a server (by ID, or 'all' for every known server) on every
installed tool. Tools that are not installed are skipped; a failure on
one tool never stops the others.`,
	Args: cobra.ExactArgs(1),
	RunE: runMCPEnable,
}

var mcpDisableCmd = &cobra.Command{
	Use:   "disable <server>",
	Short: "Disable an MCP server across all installed tools",
	Args:  cobra.ExactArgs(1),
	RunE:  runMCPDisable,
}

var mcpDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Show installed tools and their config paths",
	RunE:  runMCPDoctor,
}

func init() {
	mcpCmd.AddCommand(mcpListCmd, mcpEnableCmd, mcpDisableCmd, mcpDoctorCmd)
	rootCmd.AddCommand(mcpCmd)
}

// mcpTargets resolves the target registry against the user's home
// directory. Every target path hangs off it, so failure here is fatal.
func mcpTargets() ([]mcp.Target, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not resolve home directory: %w", err)
	}
	return mcp.Targets(home), nil
}

func runMCPList(cmd *cobra.Command, args []string) error {
	targets, err := mcpTargets()
	if err != nil {
		return err
	}
	servers := mcp.Servers()

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	bold.Println("Available Servers:")
	for _, server := range servers {
		fmt.Printf("  %s  %s\n", color.CyanString(server.ID), dim.Sprint(server.Description))
	}
	fmt.Println()

	statuses := mcp.ProbeAll(targets, servers)

	bold.Println("Status per tool:")
	fmt.Println()

	const toolWidth, cellWidth = 16, 13

	fmt.Printf("  %s", dim.Sprintf("%-*s", toolWidth, "Tool"))
	for _, server := range servers {
		fmt.Printf("  %s", dim.Sprintf("%-*s", cellWidth, server.ID))
	}
	fmt.Println()

	fmt.Printf("  %s", dim.Sprint(strings.Repeat("-", toolWidth)))
	for range servers {
		fmt.Printf("  %s", dim.Sprint(strings.Repeat("-", cellWidth)))
	}
	fmt.Println()

	for _, target := range targets {
		fmt.Printf("  %-*s", toolWidth, target.Name)
		for _, server := range servers {
			status := statuses[mcp.StatusKey{Target: target.Name, Server: server.ID}]
			cell := fmt.Sprintf("%-*s", cellWidth, status)
			switch status {
			case mcp.StatusEnabled:
				cell = color.GreenString(cell)
			case mcp.StatusDisabled:
				cell = color.YellowString(cell)
			default:
				cell = dim.Sprint(cell)
			}
			fmt.Printf("  %s", cell)
		}
		fmt.Println()
	}

	return nil
}

func runMCPEnable(cmd *cobra.Command, args []string) error {
	return runMCPBatch(args[0], "Enabling", "Enabled", mcp.EnableServers)
}

func runMCPDisable(cmd *cobra.Command, args []string) error {
	return runMCPBatch(args[0], "Disabling", "Disabled", mcp.DisableServers)
}

func runMCPBatch(selector, verb, done string, batch func([]mcp.Target, []mcp.Server) mcp.BatchResult) error {
	servers, err := mcp.ResolveServers(selector)
	if err != nil {
		return err
	}
	targets, err := mcpTargets()
	if err != nil {
		return err
	}

	label := selector
	if selector == mcp.SelectorAll {
		label = "all servers"
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	bold.Printf("%s %s across installed tools...\n\n", verb, label)

	result := batch(targets, servers)
	for _, r := range result.Results {
		fmt.Printf("  %-16s", r.Target)
		switch r.Outcome {
		case mcp.OutcomeOK:
			fmt.Println(color.GreenString("[OK]"))
		case mcp.OutcomeSkipped:
			fmt.Println(dim.Sprintf("[SKIP] %s", capitalize(r.Message)))
		case mcp.OutcomeFailed:
			fmt.Printf("%s %s\n", color.RedString("[FAIL]"), r.Message)
		}
	}

	fmt.Println()
	color.Green("Done! %s %s in %d tool(s), skipped %d.", done, label, result.Succeeded, result.Skipped)
	fmt.Println()
	dim.Println("Note: You may need to restart your CLI tools for changes to take effect.")

	// Per-target failures were already reported line by line; one broken
	// tool does not fail the whole run.
	return nil
}

func runMCPDoctor(cmd *cobra.Command, args []string) error {
	targets, err := mcpTargets()
	if err != nil {
		return err
	}

	dim := color.New(color.Faint)
	for _, entry := range mcp.Doctor(targets) {
		status := color.GreenString("installed")
		if !entry.Installed {
			status = color.YellowString("not installed")
		}
		fmt.Printf("%s [%s]\n", color.New(color.Bold).Sprintf("%-16s", entry.Target), status)
		dim.Printf("  %s\n", entry.ConfigPath)
		if entry.Installed {
			if entry.ConfigExists {
				dim.Println("  config exists")
			} else {
				dim.Println("  config not created yet")
			}
		}
		fmt.Println()
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
