package skills

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAgents_FixedOrder(t *testing.T) {
	agents := Agents("/home/u")
	want := []string{"claude", "gemini", "codex", "amp", "cursor", "copilot", "opencode"}
	if len(agents) != len(want) {
		t.Fatalf("got %d agents, want %d", len(agents), len(want))
	}
	for i, id := range want {
		if agents[i].ID != id {
			t.Errorf("agents[%d].ID = %q, want %q", i, agents[i].ID, id)
		}
	}
}

func TestFindAgent_CaseInsensitive(t *testing.T) {
	agent, err := FindAgent("/home/u", "Claude")
	if err != nil {
		t.Fatalf("FindAgent: %v", err)
	}
	if agent.Name != "Claude Code" {
		t.Errorf("Name = %q, want Claude Code", agent.Name)
	}

	_, err = FindAgent("/home/u", "nope")
	if !errors.Is(err, ErrUnknownAgent) {
		t.Errorf("error = %v, want ErrUnknownAgent", err)
	}
}

func TestIsInstalled_CursorUsesSkillsParent(t *testing.T) {
	orig := lookPath
	lookPath = func(string) (string, error) { return "", errors.New("not found") }
	t.Cleanup(func() { lookPath = orig })

	dir := t.TempDir()
	cursor := Agent{
		Name:       "Cursor",
		ID:         "cursor",
		BinaryName: "cursor",
		SkillsPath: filepath.Join(dir, ".cursor", "skills"),
	}
	if cursor.IsInstalled() {
		t.Error("IsInstalled = true without .cursor directory")
	}

	if err := os.MkdirAll(filepath.Join(dir, ".cursor"), 0o755); err != nil {
		t.Fatal(err)
	}
	if !cursor.IsInstalled() {
		t.Error("IsInstalled = false with .cursor directory present")
	}
}
