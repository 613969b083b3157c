package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/a11yref/a11yref/internal/catalog"
	"github.com/a11yref/a11yref/internal/logging"
)

// ListChaptersTool exposes a tool for browsing the catalog hierarchy.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var ListChaptersTool = mcp.NewTool(
	"list_chapters",
	mcp.WithDescription(
		"Lists the accessibility reference as a tree: chapters and principles at the top, "+
			"pattern subsections under their chapter. Navigate progressively: start at the top, "+
			"then use root_id to expand a chapter. Returns compact metadata only. "+
			"Use get_pattern to retrieve the full pattern for a subsection.",
	),
	mcp.WithNumber(
		"depth",
		mcp.Description("Optional: levels to return (default: 1, max: 2)."),
	),
	mcp.WithString(
		"root_id",
		mcp.Description("Optional: list the subsections of this chapter id (e.g., 'forms')."),
	),
)

const (
	defaultTreeDepth = 1
	maxTreeDepth     = 2
)

type listChaptersParams struct {
	RootID string
	Depth  int
}

type listChaptersResponse struct {
	Tree           []*catalog.NodeDTO `json:"tree"`
	Count          int                `json:"count"`
	Total          int                `json:"total"`
	CatalogVersion string             `json:"catalog_version"`
	Depth          int                `json:"depth"`
	RootID         string             `json:"root_id,omitempty"`
	Usage          string             `json:"usage"`
}

// RegisterListChaptersTool registers the list_chapters tool with the MCP server.
func RegisterListChaptersTool(s *server.MCPServer, c *catalog.Catalog) {
	s.AddTool(ListChaptersTool, withToolLogger("list_chapters", newListChaptersHandlerFunc(c)))
}

func newListChaptersHandlerFunc(
	c *catalog.Catalog,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := logging.WithContext(ctx)
		logger.DebugContext(ctx, "Starting list_chapters operation")

		params := parseListChaptersParams(request)
		logger.DebugContext(ctx, "Parameters",
			slog.String("root_id", params.RootID),
			slog.Int("depth", params.Depth))

		nodes, err := catalog.BuildTree(c, params.RootID, params.Depth)
		if err != nil {
			logger.WarnContext(ctx, "Failed to build catalog tree",
				slog.String("root_id", params.RootID),
				slog.Int("depth", params.Depth),
				slog.String("error", err.Error()))
			return mcp.NewToolResultError(fmt.Sprintf("failed to build catalog tree: %v", err)), nil
		}

		resp := listChaptersResponse{
			Tree:           catalog.NodesToDTO(nodes),
			Count:          len(nodes),
			Total:          c.Len(),
			CatalogVersion: c.Version(),
			Depth:          params.Depth,
			RootID:         params.RootID,
			Usage: "Use the 'id' field with get_pattern to retrieve full content. " +
				"Use 'root_id' to expand a chapter and 'depth' to include its subsections.",
		}

		logger.InfoContext(ctx, "Chapters listed successfully",
			slog.Int("node_count", len(nodes)),
			slog.String("root_id", params.RootID),
			slog.Int("depth", params.Depth))

		return marshalResponse(ctx, logger, resp)
	}
}

func parseListChaptersParams(request mcp.CallToolRequest) listChaptersParams {
	depth := request.GetInt("depth", defaultTreeDepth)
	if depth < 1 {
		depth = defaultTreeDepth
	} else if depth > maxTreeDepth {
		depth = maxTreeDepth
	}

	return listChaptersParams{
		RootID: request.GetString("root_id", ""),
		Depth:  depth,
	}
}
