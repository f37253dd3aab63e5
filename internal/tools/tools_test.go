package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aictl/aictl/internal/registry"
)

func TestUpToDate(t *testing.T) {
	cases := []struct {
		name string
		tv   ToolVersion
		want bool
	}{
		{"exact match", ToolVersion{Installed: "1.2.3", Latest: "1.2.3"}, true},
		{"installed contains latest", ToolVersion{Installed: "1.2.3 (build 9)", Latest: "1.2.3"}, true},
		{"behind", ToolVersion{Installed: "1.2.2", Latest: "1.2.3"}, false},
		{"not installed", ToolVersion{Installed: "", Latest: "1.2.3"}, true},
		{"latest unknown", ToolVersion{Installed: "1.2.3", Latest: ""}, true},
	}
	for _, tc := range cases {
		if got := tc.tv.UpToDate(); got != tc.want {
			t.Errorf("%s: UpToDate = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestUpgradeAvailable(t *testing.T) {
	behind := ToolVersion{Installed: "1.2.2", Latest: "1.2.3"}
	if !behind.UpgradeAvailable() {
		t.Error("UpgradeAvailable = false for outdated install")
	}
	ahead := ToolVersion{Installed: "1.3.0", Latest: "1.2.3"}
	if ahead.UpgradeAvailable() {
		t.Error("UpgradeAvailable = true for newer local install")
	}
	missing := ToolVersion{Installed: "", Latest: "1.2.3"}
	if missing.UpgradeAvailable() {
		t.Error("UpgradeAvailable = true for missing install")
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("1.0.128 (Claude Code)\nextra", " (Claude Code)"); got != "1.0.128" {
		t.Errorf("firstLine = %q, want 1.0.128", got)
	}
	if got := firstLine("codex-cli 0.42.0", "codex-cli "); got != "0.42.0" {
		t.Errorf("firstLine = %q, want 0.42.0", got)
	}
}

func TestCheckLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/@openai/codex":
			w.Write([]byte(`{"dist-tags":{"latest":"0.42.0"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := &registry.Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	versions := []ToolVersion{
		{Name: "Codex CLI", NpmPackage: "@openai/codex", Installed: "0.41.0"},
		{Name: "Ghost", NpmPackage: "ghost-package"},
		{Name: "No Package"},
	}

	CheckLatest(context.Background(), client, versions)

	if versions[0].Latest != "0.42.0" {
		t.Errorf("codex latest = %q, want 0.42.0", versions[0].Latest)
	}
	if !versions[0].UpgradeAvailable() {
		t.Error("UpgradeAvailable = false, want true")
	}
	if versions[1].Latest != "" {
		t.Errorf("ghost latest = %q, want empty on lookup failure", versions[1].Latest)
	}
	if versions[2].Latest != "" {
		t.Errorf("no-package latest = %q, want empty", versions[2].Latest)
	}
}
