// Package tools provides MCP tool definitions for the mcp-a11y server.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/a11yref/a11yref/internal/logging"
)

// withToolLogger wraps a tool handler to inject a logger and request id into context and provide
// panic recovery. Handlers obtain the annotated logger via logging.WithContext.
func withToolLogger(toolName string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		requestID := uuid.NewString()
		ctx = logging.ContextWithLogger(ctx, logging.WithTool(toolName))
		ctx = logging.ContextWithRequestID(ctx, requestID)
		logger := logging.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(ctx, "panic in tool execution",
					slog.String("tool", toolName),
					slog.Any("panic", r))
				result = nil
				err = fmt.Errorf("internal error in tool execution: %s", r)
			}
			logging.RequestEnd(ctx, toolName, err == nil && (result == nil || !result.IsError), time.Since(start), err)
		}()

		return handler(ctx, request)
	}
}

func marshalResponse(ctx context.Context, logger *slog.Logger, v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.ErrorContext(ctx, "Failed to marshal response",
			slog.String("error", err.Error()))
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
