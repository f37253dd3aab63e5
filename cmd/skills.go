package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aictl/aictl/internal/skills"
)

var (
	skillsListAgent    string
	skillsInstallAgent string
	skillsRemoveAgent  string
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage skills across AI CLI tools",
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed skills per agent",
	RunE:  runSkillsList,
}

var skillsInstallCmd = &cobra.Command{
	Use:   "install <repo>",
	Short: "Install skill(s) from a git repository",
	Long: `Clones the repository, discovers every SKILL.md bundle in it, and
copies each bundle into the skills directory of every installed agent
(or just the agent given with --agent).`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillsInstall,
}

var skillsRemoveCmd = &cobra.Command{
	Use:   "remove <skill>",
	Short: "Remove installed skill(s)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsRemove,
}

func init() {
	skillsListCmd.Flags().StringVarP(&skillsListAgent, "agent", "a", "", "Filter by specific agent (e.g. 'claude', 'gemini')")
	skillsInstallCmd.Flags().StringVarP(&skillsInstallAgent, "agent", "a", "", "Target specific agent (e.g. 'claude', 'gemini')")
	skillsRemoveCmd.Flags().StringVarP(&skillsRemoveAgent, "agent", "a", "", "Target specific agent (e.g. 'claude', 'gemini')")

	skillsCmd.AddCommand(skillsListCmd, skillsInstallCmd, skillsRemoveCmd)
	rootCmd.AddCommand(skillsCmd)
}

// resolveAgents returns either the single agent named by the filter or the
// whole registry.
func resolveAgents(filter string) ([]skills.Agent, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not resolve home directory: %w", err)
	}
	if filter != "" {
		agent, err := skills.FindAgent(home, filter)
		if err != nil {
			return nil, err
		}
		return []skills.Agent{agent}, nil
	}
	return skills.Agents(home), nil
}

func runSkillsList(cmd *cobra.Command, args []string) error {
	agents, err := resolveAgents(skillsListAgent)
	if err != nil {
		return err
	}

	dim := color.New(color.Faint)
	for _, agent := range agents {
		color.New(color.Bold).Println(agent.Name)

		if !agent.IsInstalled() {
			dim.Println("  (not installed)")
			fmt.Println()
			continue
		}

		installed := skills.ListInstalled(agent.SkillsPath)
		if len(installed) == 0 {
			dim.Println("  (no skills installed)")
		}
		for _, skill := range installed {
			fmt.Printf("  %s %s", color.CyanString("-"), skill.Name)
			if skill.Description != "" {
				desc := skill.Description
				if len(desc) > 60 {
					desc = desc[:57] + "..."
				}
				fmt.Printf(" - %s", dim.Sprint(desc))
			}
			fmt.Println()
		}
		fmt.Println()
	}
	return nil
}

func runSkillsInstall(cmd *cobra.Command, args []string) error {
	repoURL, err := skills.ParseRepoURL(args[0])
	if err != nil {
		return err
	}
	agents, err := resolveAgents(skillsInstallAgent)
	if err != nil {
		return err
	}

	dim := color.New(color.Faint)

	fmt.Printf("%s Cloning %s...\n", color.CyanString("->"), args[0])
	repoDir, cleanup, err := skills.Clone(cmd.Context(), repoURL)
	if err != nil {
		return err
	}
	defer cleanup()

	found := skills.Discover(repoDir)
	if len(found) == 0 {
		return fmt.Errorf("no skills found in repository (no SKILL.md files)")
	}

	fmt.Printf("%s Found %d skill(s):\n", color.CyanString("->"), len(found))
	for _, skill := range found {
		fmt.Printf("  %s %s\n", color.CyanString("-"), skill.Name)
	}
	fmt.Println()

	color.New(color.Bold).Println("Installing skills:")
	installedCount := 0
	for _, agent := range agents {
		fmt.Printf("  %-16s", agent.Name)

		if !agent.IsInstalled() {
			dim.Println("[SKIP] Not installed")
			continue
		}
		if err := skills.Install(agent, found); err != nil {
			fmt.Printf("%s %v\n", color.RedString("[FAIL]"), err)
			continue
		}
		fmt.Println(color.GreenString("[OK]"))
		installedCount++
	}

	fmt.Println()
	if installedCount == 0 {
		return fmt.Errorf("no AI agents installed to install skills to")
	}
	color.Green("Skills installed successfully!")
	return nil
}

func runSkillsRemove(cmd *cobra.Command, args []string) error {
	skillName := args[0]
	agents, err := resolveAgents(skillsRemoveAgent)
	if err != nil {
		return err
	}

	dim := color.New(color.Faint)
	color.New(color.Bold).Printf("Removing skill '%s':\n", skillName)

	removedCount := 0
	for _, agent := range agents {
		fmt.Printf("  %-16s", agent.Name)

		if !agent.IsInstalled() {
			dim.Println("[SKIP] Not installed")
			continue
		}
		removed, err := skills.Remove(agent, skillName)
		if err != nil {
			fmt.Printf("%s %v\n", color.RedString("[FAIL]"), err)
			continue
		}
		if !removed {
			dim.Println("[SKIP] Not found")
			continue
		}
		fmt.Println(color.GreenString("[OK]"))
		removedCount++
	}

	fmt.Println()
	if removedCount == 0 {
		color.Yellow("Skill '%s' not found in any agent", skillName)
	} else {
		color.Green("Removed skill from %d agent(s)", removedCount)
	}
	return nil
}
