// Package skills installs reusable skill bundles (directories containing a
// SKILL.md manifest) into the skills directories of installed AI agents.
package skills

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrUnknownAgent is returned when an --agent flag names no known agent.
var ErrUnknownAgent = errors.New("unknown agent")

// Agent is an AI tool that can have skills installed.
type Agent struct {
	// Name is the display name.
	Name string
	// ID is the identifier used with the --agent flag.
	ID string
	// BinaryName is checked on PATH to detect installation.
	BinaryName string
	// SkillsPath is the agent's global skills directory.
	SkillsPath string
}

var lookPath = exec.LookPath

// IsInstalled reports whether the agent is present. Cursor has no reliable
// CLI binary, so its skills-path parent stands in for the binary check.
func (a Agent) IsInstalled() bool {
	if a.ID == "cursor" {
		_, err := os.Stat(filepath.Dir(a.SkillsPath))
		return err == nil
	}
	_, err := lookPath(a.BinaryName)
	return err == nil
}

// EnsureSkillsDir creates the agent's skills directory if needed.
func (a Agent) EnsureSkillsDir() error {
	return os.MkdirAll(a.SkillsPath, 0o755)
}

// Agents returns all supported agents in stable display order, with skills
// paths resolved relative to the given home directory.
func Agents(home string) []Agent {
	return []Agent{
		{Name: "Claude Code", ID: "claude", BinaryName: "claude", SkillsPath: filepath.Join(home, ".claude", "skills")},
		{Name: "Gemini CLI", ID: "gemini", BinaryName: "gemini", SkillsPath: filepath.Join(home, ".gemini", "skills")},
		{Name: "Codex CLI", ID: "codex", BinaryName: "codex", SkillsPath: filepath.Join(home, ".codex", "skills")},
		{Name: "Amp", ID: "amp", BinaryName: "amp", SkillsPath: filepath.Join(home, ".config", "agents", "skills")},
		{Name: "Cursor", ID: "cursor", BinaryName: "cursor", SkillsPath: filepath.Join(home, ".cursor", "skills")},
		{Name: "GitHub Copilot", ID: "copilot", BinaryName: "copilot", SkillsPath: filepath.Join(home, ".copilot", "skills")},
		{Name: "OpenCode", ID: "opencode", BinaryName: "opencode", SkillsPath: filepath.Join(home, ".config", "opencode", "skill")},
	}
}

// FindAgent looks up an agent by ID, case-insensitively.
func FindAgent(home, id string) (Agent, error) {
	for _, a := range Agents(home) {
		if strings.EqualFold(a.ID, id) {
			return a, nil
		}
	}
	return Agent{}, fmt.Errorf("%w: %s", ErrUnknownAgent, id)
}
