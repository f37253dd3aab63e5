// Package mcp manages MCP server configuration across installed AI CLI
// tools. Each tool owns its own configuration file in its own format; this
// package performs the narrow read-modify-write needed to toggle a single
// server entry without disturbing anything else in the file.
package mcp

import "fmt"

// Server is an MCP server that can be enabled or disabled per tool.
// The launch command is always npx; Args is the full npx argument list.
type Server struct {
	// ID is the lowercase identifier used on the command line.
	ID string
	// Name is the display name.
	Name string
	// Args are the arguments passed to npx.
	Args []string
	// Description is shown in list output.
	Description string
}

// Servers returns all known MCP servers in stable display order.
func Servers() []Server {
	return []Server{
		{
			ID:          "linear",
			Name:        "Linear",
			Args:        []string{"mcp-remote", "https://mcp.linear.app/mcp"},
			Description: "Linear issue tracking integration",
		},
		{
			ID:          "playwright",
			Name:        "Playwright",
			Args:        []string{"@playwright/mcp@latest"},
			Description: "Browser automation with Playwright",
		},
	}
}

// FindServer looks up a server by ID. Returns ErrUnknownServer if no
// server with that ID exists.
func FindServer(id string) (Server, error) {
	for _, s := range Servers() {
		if s.ID == id {
			return s, nil
		}
	}
	return Server{}, fmt.Errorf("%w: %s", ErrUnknownServer, id)
}
