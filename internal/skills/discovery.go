package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Skill is a skill bundle found on disk.
type Skill struct {
	// Name from the SKILL.md frontmatter; also the install directory name.
	Name string
	// Description from the frontmatter, may be empty.
	Description string
	// Path is the directory containing SKILL.md.
	Path string
}

// skillManifest is the SKILL.md YAML frontmatter.
type skillManifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// discoveryPaths are searched in priority order before falling back to a
// bounded recursive walk.
var discoveryPaths = []string{
	"",
	"skills",
	filepath.Join("skills", ".curated"),
	filepath.Join("skills", ".experimental"),
}

const maxDiscoveryDepth = 5

// Discover finds skill bundles in a repository checkout. The well-known
// locations are tried first; only when they yield nothing does a recursive
// search run. Duplicate names keep the first occurrence.
func Discover(repoPath string) []Skill {
	var skills []Skill
	seen := map[string]bool{}

	for _, sub := range discoveryPaths {
		dir := filepath.Join(repoPath, sub)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		tryAddSkill(dir, &skills, seen)

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				tryAddSkill(filepath.Join(dir, entry.Name()), &skills, seen)
			}
		}
	}

	if len(skills) == 0 {
		discoverRecursive(repoPath, 0, &skills, seen)
	}
	return skills
}

func tryAddSkill(dir string, skills *[]Skill, seen map[string]bool) {
	skill, err := parseSkillDir(dir)
	if err != nil {
		return
	}
	if !seen[skill.Name] {
		seen[skill.Name] = true
		*skills = append(*skills, skill)
	}
}

func discoverRecursive(dir string, depth int, skills *[]Skill, seen map[string]bool) {
	if depth > maxDiscoveryDepth {
		return
	}
	tryAddSkill(dir, skills, seen)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			discoverRecursive(filepath.Join(dir, entry.Name()), depth+1, skills, seen)
		}
	}
}

// parseSkillDir reads dir/SKILL.md and extracts its frontmatter.
func parseSkillDir(dir string) (Skill, error) {
	manifestPath := filepath.Join(dir, "SKILL.md")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return Skill{}, fmt.Errorf("failed to read %s: %w", manifestPath, err)
	}

	manifest, err := parseFrontmatter(string(data))
	if err != nil {
		return Skill{}, fmt.Errorf("%s: %w", manifestPath, err)
	}
	return Skill{Name: manifest.Name, Description: manifest.Description, Path: dir}, nil
}

// parseFrontmatter extracts the YAML block between the leading --- markers.
func parseFrontmatter(content string) (skillManifest, error) {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "---") {
		return skillManifest{}, fmt.Errorf("missing YAML frontmatter")
	}
	rest := trimmed[3:]
	end := strings.Index(rest, "---")
	if end < 0 {
		return skillManifest{}, fmt.Errorf("frontmatter not closed with ---")
	}

	var manifest skillManifest
	if err := yaml.Unmarshal([]byte(rest[:end]), &manifest); err != nil {
		return skillManifest{}, fmt.Errorf("invalid frontmatter: %w", err)
	}
	if manifest.Name == "" {
		return skillManifest{}, fmt.Errorf("frontmatter missing required name field")
	}
	return manifest, nil
}

// ListInstalled returns the skills installed under an agent's skills
// directory. A missing directory means no skills; unreadable or malformed
// entries are skipped rather than failing the listing.
func ListInstalled(skillsPath string) []Skill {
	entries, err := os.ReadDir(skillsPath)
	if err != nil {
		return nil
	}

	var skills []Skill
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		skill, err := parseSkillDir(filepath.Join(skillsPath, entry.Name()))
		if err != nil {
			continue
		}
		skills = append(skills, skill)
	}
	return skills
}
