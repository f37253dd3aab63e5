package mcp

import (
	"os"
	"os/exec"
	"path/filepath"
)

// ConfigMethod describes how a target tool stores its MCP server
// configuration. The variant set is closed: JSON documents with a servers
// object, or TOML documents with an mcp_servers table.
type ConfigMethod interface {
	// Path returns the configuration file path.
	Path() string
	// Enable inserts or replaces the server's entry and reports the
	// updated file path.
	Enable(s Server) (string, error)
	// Disable removes the server's entry if present. Disabling a server
	// that was never configured is not an error.
	Disable(s Server) (string, error)
	// IsEnabled reports whether the server's entry is present.
	IsEnabled(s Server) (bool, error)
}

// installProbe selects the installation check for a target. Most tools are
// detected by their binary on PATH; editor-style tools without a reliable
// CLI binary are detected by their config directory instead.
type installProbe int

const (
	probeBinary installProbe = iota
	probeConfigParent
	probeBinaryOrConfigParent
	probeBinaryOrConfigFile
)

// Target is an AI CLI tool that supports MCP servers.
type Target struct {
	Name       string
	BinaryName string
	Config     ConfigMethod

	install installProbe
}

// lookPath is swapped out in tests.
var lookPath = exec.LookPath

// IsInstalled reports whether the target tool is present on this machine.
// A failing PATH lookup means "not found", never an error.
func (t Target) IsInstalled() bool {
	binaryFound := func() bool {
		_, err := lookPath(t.BinaryName)
		return err == nil
	}
	parentExists := func() bool {
		parent := filepath.Dir(t.Config.Path())
		_, err := os.Stat(parent)
		return err == nil
	}
	switch t.install {
	case probeConfigParent:
		return parentExists()
	case probeBinaryOrConfigParent:
		return binaryFound() || parentExists()
	case probeBinaryOrConfigFile:
		if binaryFound() {
			return true
		}
		_, err := os.Stat(t.Config.Path())
		return err == nil
	default:
		return binaryFound()
	}
}

// Targets returns all supported tools in stable display order. Paths are
// resolved relative to the given home directory.
func Targets(home string) []Target {
	return []Target{
		{
			Name:       "Claude Code",
			BinaryName: "claude",
			Config: JSONConfig{
				FilePath:   filepath.Join(home, ".claude.json"),
				ServersKey: "mcpServers",
				TypeValue:  "stdio",
			},
		},
		{
			Name:       "Gemini CLI",
			BinaryName: "gemini",
			Config: JSONConfig{
				FilePath:   filepath.Join(home, ".gemini", "settings.json"),
				ServersKey: "mcpServers",
			},
		},
		{
			Name:       "Codex CLI",
			BinaryName: "codex",
			Config: TOMLConfig{
				FilePath: filepath.Join(home, ".codex", "config.toml"),
			},
			install: probeBinaryOrConfigFile,
		},
		{
			Name:       "Amp",
			BinaryName: "amp",
			Config: JSONConfig{
				FilePath:   filepath.Join(home, ".config", "amp", "settings.json"),
				ServersKey: "amp.mcpServers",
			},
		},
		{
			Name:       "Cursor",
			BinaryName: "cursor",
			Config: JSONConfig{
				FilePath:   filepath.Join(home, ".cursor", "mcp.json"),
				ServersKey: "mcpServers",
			},
			install: probeConfigParent,
		},
		{
			Name:       "Copilot CLI",
			BinaryName: "copilot",
			Config: JSONConfig{
				FilePath:          filepath.Join(home, ".copilot", "mcp-config.json"),
				ServersKey:        "mcpServers",
				TypeValue:         "local",
				IncludeToolsField: true,
			},
			install: probeBinaryOrConfigParent,
		},
	}
}
