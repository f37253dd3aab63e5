package mcp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONConfig edits a JSON configuration file holding a servers object at a
// single top-level key (for example "mcpServers"). The whole document is
// decoded, the server's entry is updated, and the document is written back
// pretty-printed. Every key other than the server's own entry is preserved.
type JSONConfig struct {
	// FilePath is the configuration file location.
	FilePath string
	// ServersKey is the literal key under which servers live. It is a
	// single key, not a dotted path ("amp.mcpServers" is one key).
	ServersKey string
	// ServerNameOverride replaces the server ID as the entry key when the
	// tool expects a different spelling.
	ServerNameOverride string
	// TypeValue, when non-empty, is written as the entry's "type" field.
	// The "stdio" variant additionally gets an empty "env" object.
	TypeValue string
	// IncludeToolsField adds "tools": ["*"] to the entry (Copilot format).
	IncludeToolsField bool
}

func (c JSONConfig) Path() string { return c.FilePath }

func (c JSONConfig) serverName(s Server) string {
	if c.ServerNameOverride != "" {
		return c.ServerNameOverride
	}
	return s.ID
}

// readDocument loads the configuration file as a generic JSON object.
// A missing file yields an empty document.
func (c JSONConfig) readDocument() (map[string]any, error) {
	data, err := os.ReadFile(c.FilePath)
	if os.IsNotExist(err) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.FilePath, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: c.FilePath, Err: err}
	}
	return doc, nil
}

func (c JSONConfig) writeDocument(doc map[string]any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.FilePath, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.FilePath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(c.FilePath), err)
	}
	if err := os.WriteFile(c.FilePath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.FilePath, err)
	}
	return nil
}

func (c JSONConfig) Enable(s Server) (string, error) {
	doc, err := c.readDocument()
	if err != nil {
		return "", err
	}

	var servers map[string]any
	switch existing := doc[c.ServersKey].(type) {
	case nil:
		servers = map[string]any{}
		doc[c.ServersKey] = servers
	case map[string]any:
		servers = existing
	default:
		return "", fmt.Errorf("%s: key %q holds a %T, not an object; refusing to overwrite it",
			c.FilePath, c.ServersKey, existing)
	}

	args := make([]any, len(s.Args))
	for i, a := range s.Args {
		args[i] = a
	}
	entry := map[string]any{
		"command": "npx",
		"args":    args,
	}
	if c.TypeValue != "" {
		entry["type"] = c.TypeValue
		if c.TypeValue == "stdio" {
			entry["env"] = map[string]any{}
		}
	}
	if c.IncludeToolsField {
		entry["tools"] = []any{"*"}
	}
	servers[c.serverName(s)] = entry

	if err := c.writeDocument(doc); err != nil {
		return "", err
	}
	return c.FilePath, nil
}

func (c JSONConfig) Disable(s Server) (string, error) {
	if _, err := os.Stat(c.FilePath); os.IsNotExist(err) {
		return c.FilePath, nil
	}

	doc, err := c.readDocument()
	if err != nil {
		return "", err
	}

	servers, ok := doc[c.ServersKey].(map[string]any)
	if !ok {
		return c.FilePath, nil
	}
	if _, present := servers[c.serverName(s)]; !present {
		return c.FilePath, nil
	}
	delete(servers, c.serverName(s))

	if err := c.writeDocument(doc); err != nil {
		return "", err
	}
	return c.FilePath, nil
}

func (c JSONConfig) IsEnabled(s Server) (bool, error) {
	if _, err := os.Stat(c.FilePath); os.IsNotExist(err) {
		return false, nil
	}

	doc, err := c.readDocument()
	if err != nil {
		return false, err
	}
	servers, ok := doc[c.ServersKey].(map[string]any)
	if !ok {
		return false, nil
	}
	_, present := servers[c.serverName(s)]
	return present, nil
}
