package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/a11yref/a11yref/internal/buildinfo"
	"github.com/a11yref/a11yref/internal/catalog"
	"github.com/a11yref/a11yref/internal/logging"
	"github.com/a11yref/a11yref/internal/patterns"
)

// InfoTool exposes build information and catalog statistics.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var InfoTool = mcp.NewTool(
	"info",
	mcp.WithDescription("Get details about the mcp-a11y server build and the loaded accessibility catalog."),
)

// InfoResponse is the response to the info tool.
type InfoResponse struct {
	// Version is the version of the mcp-a11y server.
	Version string `json:"version"`
	Commit  string `json:"commit"`

	// CatalogVersion is the version field of the loaded catalog.
	CatalogVersion string                   `json:"catalog_version"`
	Entries        map[catalog.Category]int `json:"entries"`

	// Patterns is the number of subsections with a pattern document.
	Patterns int `json:"patterns"`
}

// RegisterInfoTool registers the info tool with the MCP server.
func RegisterInfoTool(s *server.MCPServer, c *catalog.Catalog, lib *patterns.Library) {
	s.AddTool(InfoTool, withToolLogger("info", newInfoHandlerFunc(c, lib)))
}

func newInfoHandlerFunc(
	c *catalog.Catalog,
	lib *patterns.Library,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		response := InfoResponse{
			Version:        buildinfo.Version,
			Commit:         buildinfo.Commit,
			CatalogVersion: c.Version(),
			Entries:        c.Counts(),
			Patterns:       lib.Len(),
		}
		return marshalResponse(ctx, logging.WithContext(ctx), response)
	}
}
