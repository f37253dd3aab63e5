package skills

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ParseRepoURL expands a repository argument into a cloneable URL.
// Full https:// and git@ URLs pass through; "owner/repo" becomes a GitHub
// URL; anything else is rejected.
func ParseRepoURL(repo string) (string, error) {
	switch {
	case strings.HasPrefix(repo, "https://"), strings.HasPrefix(repo, "git@"):
		return repo, nil
	case strings.Contains(repo, "/"):
		return fmt.Sprintf("https://github.com/%s.git", repo), nil
	default:
		return "", fmt.Errorf("invalid repository %q: use owner/repo or a full URL", repo)
	}
}

// Clone checks out a repository shallowly into a temporary directory and
// returns its path with a cleanup function.
func Clone(ctx context.Context, repoURL string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "aictl-skills-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", repoURL, dir)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("git clone failed for %s: %w", repoURL, err)
	}
	return dir, cleanup, nil
}

// Install copies each skill into the agent's skills directory, replacing an
// existing install of the same name. The .git directory is never copied.
func Install(agent Agent, skills []Skill) error {
	if err := agent.EnsureSkillsDir(); err != nil {
		return fmt.Errorf("failed to create skills directory for %s: %w", agent.Name, err)
	}
	for _, skill := range skills {
		dest := filepath.Join(agent.SkillsPath, skill.Name)
		if err := os.RemoveAll(dest); err != nil {
			return fmt.Errorf("failed to replace existing skill %s: %w", skill.Name, err)
		}
		if err := copyDir(skill.Path, dest); err != nil {
			return fmt.Errorf("failed to copy skill %s: %w", skill.Name, err)
		}
	}
	return nil
}

// Remove deletes a named skill from the agent's skills directory.
// Returns false when the skill was not installed there.
func Remove(agent Agent, name string) (bool, error) {
	path := filepath.Join(agent.SkillsPath, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	}
	if err := os.RemoveAll(path); err != nil {
		return false, fmt.Errorf("failed to remove skill from %s: %w", agent.Name, err)
	}
	return true, nil
}

func copyDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if entry.Name() == ".git" {
				continue
			}
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		data, err := os.ReadFile(srcPath)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dstPath, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}
