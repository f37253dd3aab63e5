package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aictl/aictl/internal/registry"
	"github.com/aictl/aictl/internal/tools"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "Report installed AI CLI tools and their versions",
}

var appsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed AI CLI tools",
	RunE:  runAppsList,
}

var appsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check latest versions available",
	RunE:  runAppsCheck,
}

func init() {
	appsCmd.AddCommand(appsListCmd, appsCheckCmd)
	rootCmd.AddCommand(appsCmd)
}

func fetchVersions(cmd *cobra.Command) []tools.ToolVersion {
	versions := tools.InstalledVersions()
	tools.CheckLatest(cmd.Context(), registry.NewClient(), versions)
	return versions
}

func runAppsList(cmd *cobra.Command, args []string) error {
	versions := fetchVersions(cmd)

	var installed, notInstalled []tools.ToolVersion
	for _, tv := range versions {
		if tv.Installed != "" {
			installed = append(installed, tv)
		} else {
			notInstalled = append(notInstalled, tv)
		}
	}

	if len(installed) > 0 {
		color.New(color.Bold, color.FgGreen).Println("Installed:")
		allCurrent := true
		for _, tv := range installed {
			printToolVersion(tv)
			if !tv.UpToDate() {
				allCurrent = false
			}
		}
		if allCurrent {
			fmt.Println()
			color.Green("✓ All tools are up to date")
		}
	}

	if len(notInstalled) > 0 {
		if len(installed) > 0 {
			fmt.Println()
		}
		color.New(color.Bold, color.Faint).Println("Not Installed:")
		for _, tv := range notInstalled {
			printToolVersion(tv)
		}
	}
	return nil
}

func runAppsCheck(cmd *cobra.Command, args []string) error {
	for _, tv := range fetchVersions(cmd) {
		printToolVersion(tv)
	}
	return nil
}

func printToolVersion(tv tools.ToolVersion) {
	var status string
	switch {
	case tv.Installed == "" && tv.Latest != "":
		status = fmt.Sprintf("%s (%s)", color.RedString("not installed"), color.HiBlueString(tv.Latest))
	case tv.Installed == "":
		status = color.RedString("not installed")
	case tv.UpgradeAvailable():
		status = fmt.Sprintf("%s → %s available", color.YellowString(tv.Installed), color.HiBlueString(tv.Latest))
	default:
		status = color.GreenString(tv.Installed)
	}

	// Pad before colorizing so escape codes don't skew the columns.
	fmt.Printf("%s %s %s\n",
		color.New(color.Bold).Sprint(fmt.Sprintf("%-13s", tv.Name+":")),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-10s", tv.Identifier)),
		status)
}
