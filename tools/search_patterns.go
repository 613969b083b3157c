package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/a11yref/a11yref/internal/catalog"
	"github.com/a11yref/a11yref/internal/logging"
	"github.com/a11yref/a11yref/internal/navigate"
	"github.com/a11yref/a11yref/internal/search"
	"github.com/a11yref/a11yref/internal/session"
)

// SearchPatternsTool exposes the catalog search used by the site's search box.
//
//nolint:gochecknoglobals // Shared tool definition registered at startup.
var SearchPatternsTool = mcp.NewTool(
	"search_patterns",
	mcp.WithDescription(
		"Searches the accessibility reference catalog (chapters, pattern subsections and principles). "+
			"Matches are case-insensitive substrings of the title or description, or literal substrings "+
			"of the section number (e.g., '3.2'). Results are grouped as chapters, subsections, principles. "+
			"Use get_pattern with a match id to read the bad-vs-good code for a subsection.",
	),
	mcp.WithString(
		"query",
		mcp.Required(),
		mcp.Description("Search text (e.g., 'form', 'label', '8.7'). Leading and trailing spaces are ignored."),
	),
	mcp.WithNumber(
		"limit",
		mcp.Description("Optional: maximum number of matches to return (default: all)."),
	),
)

type searchMatch struct {
	Index         int    `json:"index"`
	OptionID      string `json:"option_id"`
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	SectionNumber string `json:"section_number,omitempty"`
	Destination   string `json:"destination"`
}

type searchGroup struct {
	Category catalog.Category `json:"category"`
	Label    string           `json:"label"`
	Matches  []searchMatch    `json:"matches"`
}

type searchPatternsResponse struct {
	Query     string        `json:"query"`
	Total     int           `json:"total"`
	Returned  int           `json:"returned"`
	Groups    []searchGroup `json:"groups"`
	Truncated bool          `json:"truncated,omitempty"`
	Usage     string        `json:"usage"`
}

// RegisterSearchPatternsTool registers the search tool with the MCP server.
func RegisterSearchPatternsTool(s *server.MCPServer, c *catalog.Catalog) {
	s.AddTool(SearchPatternsTool, withToolLogger("search_patterns", newSearchPatternsHandlerFunc(c)))
}

func newSearchPatternsHandlerFunc(
	c *catalog.Catalog,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := c.Entries()

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := logging.WithContext(ctx)
		logger.DebugContext(ctx, "Starting search_patterns operation")

		query, err := request.RequireString("query")
		if err != nil {
			logger.WarnContext(ctx, "Invalid parameters", slog.String("error", err.Error()))
			return mcp.NewToolResultError(fmt.Sprintf("missing or invalid query parameter: %v", err)), nil
		}
		limit := request.GetInt("limit", 0)
		if limit < 0 {
			return mcp.NewToolResultError("limit must not be negative"), nil
		}

		groups := search.Group(search.Match(query, entries))
		resp := buildSearchResponse(strings.TrimSpace(query), groups, limit)

		logger.InfoContext(ctx, "Search completed",
			slog.String("query", resp.Query),
			slog.Int("total", resp.Total),
			slog.Int("returned", resp.Returned))

		return marshalResponse(ctx, logger, resp)
	}
}

func buildSearchResponse(query string, groups search.Groups, limit int) searchPatternsResponse {
	resp := searchPatternsResponse{
		Query:  query,
		Total:  groups.Total(),
		Groups: []searchGroup{},
		Usage: "Pass a match 'id' to get_pattern for its design logic and code. " +
			"'destination' is the page anchor the site navigates to.",
	}

	for _, bucket := range groups.Buckets() {
		group := searchGroup{Category: bucket.Category, Label: bucket.Label}
		for i, entry := range bucket.Entries {
			if limit > 0 && resp.Returned == limit {
				resp.Truncated = true
				break
			}
			index := bucket.Offset + i
			group.Matches = append(group.Matches, searchMatch{
				Index:         index,
				OptionID:      session.OptionID(index),
				ID:            entry.ID,
				Title:         entry.Title,
				Description:   entry.Description,
				SectionNumber: entry.SectionNumber,
				Destination:   navigate.Resolve(entry),
			})
			resp.Returned++
		}
		if len(group.Matches) > 0 {
			resp.Groups = append(resp.Groups, group)
		}
	}

	return resp
}
