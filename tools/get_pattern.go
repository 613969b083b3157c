package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/a11yref/a11yref/internal/catalog"
	"github.com/a11yref/a11yref/internal/logging"
	"github.com/a11yref/a11yref/internal/navigate"
	"github.com/a11yref/a11yref/internal/patterns"
)

// GetPatternTool exposes a tool for retrieving one catalog entry and its pattern document.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var GetPatternTool = mcp.NewTool(
	"get_pattern",
	mcp.WithDescription(
		"Retrieves a catalog entry by id: a chapter id (e.g., 'forms'), a subsection section number "+
			"(e.g., '3.1') or a principle id (e.g., 'robust'). For subsections with a pattern document the "+
			"response includes the design logic and the inaccessible vs accessible HTML. "+
			"Chapters list their subsections.",
	),
	mcp.WithString(
		"id",
		mcp.Required(),
		mcp.Description("Entry id from search_patterns or list_chapters output."),
	),
)

type getPatternResponse struct {
	Entry       catalog.Entry      `json:"entry"`
	Destination string             `json:"destination"`
	Pattern     *patterns.Document `json:"pattern,omitempty"`
	Subsections []catalog.Entry    `json:"subsections,omitempty"`
	Note        string             `json:"note,omitempty"`
}

// RegisterGetPatternTool registers the get_pattern tool with the MCP server.
func RegisterGetPatternTool(s *server.MCPServer, c *catalog.Catalog, lib *patterns.Library) {
	s.AddTool(GetPatternTool, withToolLogger("get_pattern", newGetPatternHandlerFunc(c, lib)))
}

func newGetPatternHandlerFunc(
	c *catalog.Catalog,
	lib *patterns.Library,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := logging.WithContext(ctx)
		logger.DebugContext(ctx, "Starting get_pattern operation")

		id, err := request.RequireString("id")
		if err != nil {
			logger.WarnContext(ctx, "Invalid parameters", slog.String("error", err.Error()))
			return mcp.NewToolResultError(fmt.Sprintf("missing or invalid id parameter: %v", err)), nil
		}

		entry, err := c.Get(id)
		if err != nil {
			logger.WarnContext(ctx, "Entry not found",
				slog.String("id", id),
				slog.String("error", err.Error()))
			return mcp.NewToolResultError(fmt.Sprintf(
				"entry not found: %s. Use search_patterns or list_chapters to find valid ids", id,
			)), nil
		}

		resp := getPatternResponse{
			Entry:       entry,
			Destination: navigate.Resolve(entry),
		}

		switch entry.Category {
		case catalog.CategorySubsection:
			doc, err := lib.Get(entry.SectionNumber)
			switch {
			case errors.Is(err, patterns.ErrNoDocument):
				resp.Note = "No pattern document has been written for this subsection yet."
			case err != nil:
				logger.ErrorContext(ctx, "Failed to read pattern document",
					slog.String("section", entry.SectionNumber),
					slog.String("error", err.Error()))
				return mcp.NewToolResultError(err.Error()), nil
			default:
				resp.Pattern = doc
			}
		case catalog.CategoryChapter:
			for _, sub := range c.ByCategory(catalog.CategorySubsection) {
				if sub.Path == entry.Path {
					resp.Subsections = append(resp.Subsections, sub)
				}
			}
		}

		logger.InfoContext(ctx, "Entry retrieved successfully",
			slog.String("id", entry.ID),
			slog.String("category", string(entry.Category)),
			slog.Bool("has_pattern", resp.Pattern != nil))

		return marshalResponse(ctx, logger, resp)
	}
}
