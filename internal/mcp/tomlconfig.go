package mcp

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// tomlServersTable is the top-level table holding one sub-table per server.
const tomlServersTable = "mcp_servers"

// TOMLConfig edits a TOML configuration file containing one
// [mcp_servers.<id>] table per enabled server. Unlike the JSON adapter,
// edits are format-preserving: every byte outside the server's own table,
// including comments, is left exactly as found. The document is parsed
// before and after each edit so an unparseable file is never overwritten
// and a bad splice is never written.
type TOMLConfig struct {
	FilePath string
}

func (c TOMLConfig) Path() string { return c.FilePath }

// readValidated loads the file and confirms it parses as TOML. A missing
// file yields empty content and exists=false.
func (c TOMLConfig) readValidated() (content string, exists bool, err error) {
	data, err := os.ReadFile(c.FilePath)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", c.FilePath, err)
	}
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return "", false, &ParseError{Path: c.FilePath, Err: err}
	}
	return string(data), true, nil
}

func (c TOMLConfig) write(content string) error {
	if err := os.MkdirAll(filepath.Dir(c.FilePath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(c.FilePath), err)
	}
	if err := os.WriteFile(c.FilePath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.FilePath, err)
	}
	return nil
}

func (c TOMLConfig) Enable(s Server) (string, error) {
	content, _, err := c.readValidated()
	if err != nil {
		return "", err
	}

	// Replace any existing table for this server, then append the new one.
	content = removeServerTable(content, s.ID)
	content = strings.TrimRight(content, "\n")
	if content != "" {
		content += "\n\n"
	}
	content += serverTable(s)

	// The splice must still be valid TOML before it touches disk.
	var doc map[string]any
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		return "", fmt.Errorf("internal error: edited %s would be invalid TOML: %w", c.FilePath, err)
	}

	if err := c.write(content); err != nil {
		return "", err
	}
	return c.FilePath, nil
}

func (c TOMLConfig) Disable(s Server) (string, error) {
	content, exists, err := c.readValidated()
	if err != nil {
		return "", err
	}
	if !exists {
		return c.FilePath, nil
	}

	updated := removeServerTable(content, s.ID)
	if updated == content {
		return c.FilePath, nil
	}
	if err := c.write(updated); err != nil {
		return "", err
	}
	return c.FilePath, nil
}

func (c TOMLConfig) IsEnabled(s Server) (bool, error) {
	data, err := os.ReadFile(c.FilePath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", c.FilePath, err)
	}
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return false, &ParseError{Path: c.FilePath, Err: err}
	}
	servers, ok := doc[tomlServersTable].(map[string]any)
	if !ok {
		return false, nil
	}
	_, present := servers[s.ID]
	return present, nil
}

// serverTable renders the [mcp_servers.<id>] table for a server.
func serverTable(s Server) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s.%s]\n", tomlServersTable, s.ID)
	b.WriteString("command = \"npx\"\n")
	b.WriteString("args = [")
	for i, a := range s.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(a))
	}
	b.WriteString("]\n")
	return b.String()
}

// removeServerTable strips the server's entry from the document: its
// header line, its body, and any dotted subtables of the same entry
// (for example [mcp_servers.<id>.env]). All other lines pass through
// untouched. A blank/comment run at the end of the removed body belongs
// to the next sibling table and is kept with it.
func removeServerTable(content, serverID string) string {
	header := fmt.Sprintf("[%s.%s]", tomlServersTable, serverID)
	subPrefix := fmt.Sprintf("[%s.%s.", tomlServersTable, serverID)
	lines := strings.Split(content, "\n")
	var kept []string
	// pending buffers blank and comment lines seen inside the removed
	// entry; they are emitted only when a sibling header follows them.
	var pending []string
	inTable := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if inTable {
			switch {
			case trimmed == header || strings.HasPrefix(trimmed, subPrefix):
				pending = pending[:0]
				continue
			case strings.HasPrefix(trimmed, "["):
				kept = append(kept, pending...)
				pending = pending[:0]
				inTable = false
			case trimmed == "" || strings.HasPrefix(trimmed, "#"):
				pending = append(pending, line)
				continue
			default:
				pending = pending[:0]
				continue
			}
		}
		if trimmed == header || strings.HasPrefix(trimmed, subPrefix) {
			inTable = true
			// Drop a blank separator line immediately before the header.
			if n := len(kept); n > 0 && strings.TrimSpace(kept[n-1]) == "" {
				kept = kept[:n-1]
			}
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
