// Package tools reports installed and latest versions of the supported AI
// CLI tools.
package tools

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"github.com/aictl/aictl/internal/registry"
)

// ToolVersion is one tool's version report.
type ToolVersion struct {
	// Name is the display name.
	Name string
	// Identifier is the short CLI name shown alongside.
	Identifier string
	// NpmPackage is the registry package queried for the latest version.
	NpmPackage string
	// Installed is the locally detected version, empty when not installed.
	Installed string
	// Latest is the latest published version, empty when unknown.
	Latest string
}

// UpToDate reports whether the installed version matches the latest one.
// Version outputs differ in shape across tools, so containment in either
// direction counts as a match.
func (t ToolVersion) UpToDate() bool {
	if t.Installed == "" || t.Latest == "" {
		return true
	}
	return strings.Contains(t.Installed, t.Latest) || strings.Contains(t.Latest, t.Installed)
}

// UpgradeAvailable reports whether a strictly newer version is published.
func (t ToolVersion) UpgradeAvailable() bool {
	return t.Installed != "" && t.Latest != "" && !t.UpToDate() &&
		registry.IsNewer(t.Latest, t.Installed)
}

type toolProbe struct {
	name       string
	identifier string
	npmPackage string
	version    func() string
}

// commandOutput runs a binary and returns its trimmed stdout, or empty on
// any failure (a missing tool is not an error here).
func commandOutput(name string, args ...string) string {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// firstLine trims output to its first line, dropping a decorative suffix.
func firstLine(out, dropSuffix string) string {
	line, _, _ := strings.Cut(out, "\n")
	if dropSuffix != "" {
		line = strings.ReplaceAll(line, dropSuffix, "")
	}
	return strings.TrimSpace(line)
}

func probes() []toolProbe {
	return []toolProbe{
		{
			name:       "Claude Code",
			identifier: "claude",
			npmPackage: "@anthropic-ai/claude-code",
			version: func() string {
				return firstLine(commandOutput("claude", "--version"), " (Claude Code)")
			},
		},
		{
			name:       "Codex CLI",
			identifier: "codex",
			npmPackage: "@openai/codex",
			version: func() string {
				return firstLine(commandOutput("codex", "--version"), "codex-cli ")
			},
		},
		{
			name:       "Gemini CLI",
			identifier: "gemini",
			npmPackage: "@google/gemini-cli",
			version: func() string {
				return firstLine(commandOutput("gemini", "--version"), "")
			},
		},
		{
			name:       "Copilot CLI",
			identifier: "copilot",
			npmPackage: "@github/copilot",
			version: func() string {
				return firstLine(commandOutput("copilot", "--version"), "")
			},
		},
		{
			name:       "Amp",
			identifier: "amp",
			npmPackage: "@sourcegraph/amp",
			version: func() string {
				return firstLine(commandOutput("amp", "--version"), "")
			},
		},
		{
			name:       "OpenCode",
			identifier: "opencode",
			npmPackage: "opencode-ai",
			version: func() string {
				return firstLine(commandOutput("opencode", "--version"), "")
			},
		},
	}
}

// InstalledVersions probes every supported tool locally.
func InstalledVersions() []ToolVersion {
	var out []ToolVersion
	for _, p := range probes() {
		out = append(out, ToolVersion{
			Name:       p.name,
			Identifier: p.identifier,
			NpmPackage: p.npmPackage,
			Installed:  p.version(),
		})
	}
	return out
}

// CheckLatest fills in the Latest field for every tool, querying the
// registry concurrently. Lookup failures leave Latest empty; a slow or
// offline registry never fails the listing.
func CheckLatest(ctx context.Context, client *registry.Client, versions []ToolVersion) {
	var wg sync.WaitGroup
	for i := range versions {
		if versions[i].NpmPackage == "" {
			continue
		}
		wg.Add(1)
		go func(tv *ToolVersion) {
			defer wg.Done()
			latest, err := client.LatestVersion(ctx, tv.NpmPackage)
			if err != nil {
				return
			}
			tv.Latest = latest
		}(&versions[i])
	}
	wg.Wait()
}
