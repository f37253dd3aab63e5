package skills

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSkill(t *testing.T, dir, name, description string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "---\nname: " + name + "\n"
	if description != "" {
		content += "description: " + description + "\n"
	}
	content += "---\n\nInstructions here.\n"
	if err := os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover_PriorityPaths(t *testing.T) {
	repo := t.TempDir()
	writeSkill(t, filepath.Join(repo, "skills", "commit-helper"), "commit-helper", "Writes commits")
	writeSkill(t, filepath.Join(repo, "skills", ".curated", "reviewer"), "reviewer", "")

	skills := Discover(repo)
	if len(skills) != 2 {
		t.Fatalf("got %d skills, want 2: %v", len(skills), skills)
	}

	byName := map[string]Skill{}
	for _, s := range skills {
		byName[s.Name] = s
	}
	if byName["commit-helper"].Description != "Writes commits" {
		t.Errorf("description = %q", byName["commit-helper"].Description)
	}
	if _, ok := byName["reviewer"]; !ok {
		t.Error("curated skill not discovered")
	}
}

func TestDiscover_RootSkill(t *testing.T) {
	repo := t.TempDir()
	writeSkill(t, repo, "solo", "A single-skill repository")

	skills := Discover(repo)
	if len(skills) != 1 || skills[0].Name != "solo" {
		t.Fatalf("skills = %v, want single solo skill", skills)
	}
	if skills[0].Path != repo {
		t.Errorf("path = %q, want repo root", skills[0].Path)
	}
}

func TestDiscover_RecursiveFallback(t *testing.T) {
	repo := t.TempDir()
	deep := filepath.Join(repo, "bundles", "extra", "deep-skill")
	writeSkill(t, deep, "deep-skill", "")

	skills := Discover(repo)
	if len(skills) != 1 || skills[0].Name != "deep-skill" {
		t.Fatalf("skills = %v, want deep-skill via recursive search", skills)
	}
}

func TestDiscover_SkipsDotDirsInFallback(t *testing.T) {
	repo := t.TempDir()
	writeSkill(t, filepath.Join(repo, ".hidden", "secret"), "secret", "")

	if skills := Discover(repo); len(skills) != 0 {
		t.Errorf("skills = %v, want none from dot directories", skills)
	}
}

func TestDiscover_DuplicateNamesKeepFirst(t *testing.T) {
	repo := t.TempDir()
	writeSkill(t, filepath.Join(repo, "skills", "dup"), "dup", "first")
	writeSkill(t, filepath.Join(repo, "skills", ".curated", "dup"), "dup", "second")

	skills := Discover(repo)
	if len(skills) != 1 {
		t.Fatalf("got %d skills, want 1", len(skills))
	}
	if skills[0].Description != "first" {
		t.Errorf("description = %q, want first occurrence kept", skills[0].Description)
	}
}

func TestParseFrontmatter(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    skillManifest
		wantErr bool
	}{
		{
			name:    "full",
			content: "---\nname: helper\ndescription: \"Does things\"\n---\nbody",
			want:    skillManifest{Name: "helper", Description: "Does things"},
		},
		{
			name:    "name only",
			content: "---\nname: helper\n---\n",
			want:    skillManifest{Name: "helper"},
		},
		{
			name:    "missing frontmatter",
			content: "# Just markdown\n",
			wantErr: true,
		},
		{
			name:    "unclosed frontmatter",
			content: "---\nname: helper\n",
			wantErr: true,
		},
		{
			name:    "missing name",
			content: "---\ndescription: nope\n---\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			content: "---\nname: [unclosed\n---\n",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseFrontmatter(tc.content)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("manifest = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestListInstalled(t *testing.T) {
	dir := t.TempDir()
	writeSkill(t, filepath.Join(dir, "alpha"), "alpha", "first")
	writeSkill(t, filepath.Join(dir, "beta"), "beta", "")

	// A directory without SKILL.md is ignored.
	if err := os.MkdirAll(filepath.Join(dir, "junk"), 0o755); err != nil {
		t.Fatal(err)
	}

	skills := ListInstalled(dir)
	if len(skills) != 2 {
		t.Fatalf("got %d skills, want 2: %v", len(skills), skills)
	}
}

func TestListInstalled_MissingDir(t *testing.T) {
	if skills := ListInstalled(filepath.Join(t.TempDir(), "absent")); skills != nil {
		t.Errorf("skills = %v, want nil for missing directory", skills)
	}
}
