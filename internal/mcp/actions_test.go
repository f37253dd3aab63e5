package mcp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveServers_All(t *testing.T) {
	servers, err := ResolveServers(SelectorAll)
	if err != nil {
		t.Fatalf("ResolveServers: %v", err)
	}
	if len(servers) != len(Servers()) {
		t.Errorf("got %d servers, want %d", len(servers), len(Servers()))
	}
}

func TestResolveServers_Single(t *testing.T) {
	servers, err := ResolveServers("linear")
	if err != nil {
		t.Fatalf("ResolveServers: %v", err)
	}
	if len(servers) != 1 || servers[0].ID != "linear" {
		t.Errorf("got %v, want single linear server", servers)
	}
}

func TestResolveServers_Unknown(t *testing.T) {
	_, err := ResolveServers("not-a-server")
	if !errors.Is(err, ErrUnknownServer) {
		t.Errorf("error = %v, want ErrUnknownServer", err)
	}
}

func TestEnableServers_BatchIsolation(t *testing.T) {
	// Three targets: one with an unparseable config, one not installed,
	// one healthy. Exactly one FAIL, one SKIP, one OK; the batch never
	// aborts and the healthy target ends up with the server enabled.
	dir := t.TempDir()

	brokenPath := filepath.Join(dir, "broken", "mcp.json")
	writeFile(t, brokenPath, `{not json`)
	broken := configDirTarget("broken", brokenPath)

	missing := configDirTarget("missing", filepath.Join(dir, "absent", "mcp.json"))

	healthyPath := filepath.Join(dir, "healthy", "mcp.json")
	writeFile(t, healthyPath, `{"foo": "bar"}`)
	healthy := configDirTarget("healthy", healthyPath)

	targets := []Target{broken, missing, healthy}
	batch := EnableServers(targets, []Server{testServer()})

	if batch.Failed != 1 || batch.Skipped != 1 || batch.Succeeded != 1 {
		t.Errorf("counts = %d ok / %d skip / %d fail, want 1/1/1",
			batch.Succeeded, batch.Skipped, batch.Failed)
	}
	if len(batch.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(batch.Results))
	}

	outcomes := map[string]Outcome{}
	for _, r := range batch.Results {
		outcomes[r.Target] = r.Outcome
	}
	if outcomes["broken"] != OutcomeFailed {
		t.Errorf("broken outcome = %v, want failed", outcomes["broken"])
	}
	if outcomes["missing"] != OutcomeSkipped {
		t.Errorf("missing outcome = %v, want skipped", outcomes["missing"])
	}
	if outcomes["healthy"] != OutcomeOK {
		t.Errorf("healthy outcome = %v, want ok", outcomes["healthy"])
	}

	// Healthy target's file gained the entry; unrelated key survived.
	doc := readJSON(t, healthyPath)
	if doc["foo"] != "bar" {
		t.Errorf("foo = %v, want bar", doc["foo"])
	}
	servers := doc["mcpServers"].(map[string]any)
	if _, ok := servers["linear"]; !ok {
		t.Error("linear entry missing on healthy target")
	}

	// Broken target's file was not truncated.
	data, err := os.ReadFile(brokenPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{not json` {
		t.Errorf("broken file rewritten: %s", data)
	}
}

func TestEnableServers_ContinuesPastServerFailure(t *testing.T) {
	// A target that fails on one server still attempts the others.
	var applied []string
	target := configDirTarget("t", filepath.Join(t.TempDir(), "mcp.json"))

	batch := applyServers([]Target{target}, Servers(), func(_ Target, s Server) error {
		applied = append(applied, s.ID)
		if s.ID == "linear" {
			return errors.New("boom")
		}
		return nil
	})

	if len(applied) != len(Servers()) {
		t.Errorf("applied %v, want every server attempted", applied)
	}
	if batch.Failed != 1 {
		t.Errorf("failed = %d, want 1", batch.Failed)
	}
	if batch.Results[0].Message != "boom" {
		t.Errorf("message = %q, want first failure message", batch.Results[0].Message)
	}
}

func TestDisableServers_RemovesEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcp.json")
	writeFile(t, path, `{"mcpServers": {"linear": {"command": "npx"}}}`)
	target := configDirTarget("t", path)

	batch := DisableServers([]Target{target}, []Server{testServer()})
	if batch.Succeeded != 1 {
		t.Fatalf("succeeded = %d, want 1", batch.Succeeded)
	}
	servers := readJSON(t, path)["mcpServers"].(map[string]any)
	if _, ok := servers["linear"]; ok {
		t.Error("linear still present after batch disable")
	}
}

func TestDoctor(t *testing.T) {
	dir := t.TempDir()

	withConfig := filepath.Join(dir, "tool", "mcp.json")
	writeFile(t, withConfig, `{}`)
	installed := configDirTarget("installed", withConfig)

	absent := configDirTarget("absent", filepath.Join(dir, "nope", "mcp.json"))

	entries := Doctor([]Target{installed, absent})
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if !entries[0].Installed || !entries[0].ConfigExists {
		t.Errorf("installed entry = %+v, want installed with existing config", entries[0])
	}
	if entries[0].ConfigPath != withConfig {
		t.Errorf("config path = %q, want %q", entries[0].ConfigPath, withConfig)
	}
	if entries[1].Installed || entries[1].ConfigExists {
		t.Errorf("absent entry = %+v, want neither installed nor config", entries[1])
	}
}
