// Package main provides the accessibility reference MCP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/a11yref/a11yref/internal/assets"
	"github.com/a11yref/a11yref/internal/buildinfo"
	"github.com/a11yref/a11yref/internal/live"
	"github.com/a11yref/a11yref/internal/logging"
	"github.com/a11yref/a11yref/tools"
)

// Server instructions give the agent a short overview of the tools. Keep them brief to save
// conversation tokens.
const instructions = `
Use search_patterns to find accessibility patterns by keyword or section number (e.g. "8.7").
Use get_pattern to read the design logic and the inaccessible vs accessible HTML of a subsection.
Use list_chapters to browse the reference progressively.
`

//nolint:gochecknoglobals // Allows test override for stdio server.
var serveStdio = func(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func main() {
	logger := logging.Default()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, logger, os.Args[1:], os.Stderr)
	stop()
	//nolint:forbidigo // main must exit with the server status code.
	os.Exit(code)
}

type options struct {
	transport    string
	addr         string
	ssePath      string
	messagesPath string
	livePath     string
	catalogPath  string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var opts options
	fs := flag.NewFlagSet("mcp-a11y", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.transport, "transport", "stdio", "Transport mode: stdio or http")
	fs.StringVar(&opts.addr, "addr", ":8080", "HTTP address to listen on")
	fs.StringVar(&opts.ssePath, "sse-path", "/sse", "Path for SSE endpoint")
	fs.StringVar(&opts.messagesPath, "messages-path", "/messages", "Path for message posting")
	fs.StringVar(&opts.livePath, "live-path", "/live", "Path for the live search websocket (empty to disable)")
	fs.StringVar(&opts.catalogPath, "catalog", "", "Catalog JSON file to serve instead of the embedded catalog")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.transport != "stdio" && opts.transport != "http" {
		return nil, fmt.Errorf("unknown transport %q: use stdio or http", opts.transport)
	}
	return &opts, nil
}

func run(ctx context.Context, logger *slog.Logger, args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	logger.Info("Starting accessibility reference MCP server",
		slog.String("version", buildinfo.Version),
		slog.String("commit", buildinfo.Commit),
		slog.String("built_at", buildinfo.Date),
	)

	a, err := assets.Load(opts.catalogPath, logger)
	if err != nil {
		logger.Error("Error loading reference data", slog.String("error", err.Error()))
		_, _ = fmt.Fprintf(stderr, "Failed to load reference data: %v\n", err)
		return 1
	}

	s := newServer(a)

	if opts.transport == "http" {
		return serveHTTP(ctx, logger, stderr, s, a, opts)
	}

	logger.Info("Starting MCP server on stdio")
	if err := serveStdio(s); err != nil {
		logger.Error("Server error", slog.String("error", err.Error()))
		_, _ = fmt.Fprintf(stderr, "MCP server exited with error: %v\n", err)
		return 1
	}

	return 0
}

func newServer(a *assets.Assets) *server.MCPServer {
	s := server.NewMCPServer(
		"a11yref",
		buildinfo.Version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	tools.RegisterInfoTool(s, a.Catalog, a.Patterns)
	tools.RegisterSearchPatternsTool(s, a.Catalog)
	tools.RegisterGetPatternTool(s, a.Catalog, a.Patterns)
	tools.RegisterListChaptersTool(s, a.Catalog)

	return s
}

func newMux(logger *slog.Logger, s *server.MCPServer, a *assets.Assets, opts *options) (*http.ServeMux, string) {
	baseURL := "http://localhost:8080"
	if opts.addr != "" {
		if opts.addr[0] == ':' {
			baseURL = "http://localhost" + opts.addr
		} else {
			baseURL = "http://" + opts.addr
		}
	}

	sseServer := server.NewSSEServer(s,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint(opts.ssePath),
		server.WithMessageEndpoint(opts.messagesPath),
	)
	mux := http.NewServeMux()
	mux.Handle(opts.ssePath, sseServer)
	mux.Handle(opts.messagesPath, sseServer)
	if opts.livePath != "" {
		mux.Handle(opts.livePath, live.NewHandler(a.Catalog.Entries(), logger.With(slog.String("component", "live"))))
	}
	return mux, baseURL
}

func serveHTTP(
	ctx context.Context,
	logger *slog.Logger,
	stderr io.Writer,
	s *server.MCPServer,
	a *assets.Assets,
	opts *options,
) int {
	mux, baseURL := newMux(logger, s, a, opts)

	logger.Info("Starting MCP server on HTTP",
		slog.String("addr", opts.addr),
		slog.String("sse_path", opts.ssePath),
		slog.String("messages_path", opts.messagesPath),
		slog.String("live_path", opts.livePath),
		slog.String("base_url", baseURL),
	)

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", slog.String("error", err.Error()))
		_, _ = fmt.Fprintf(stderr, "MCP server exited with error: %v\n", err)
		return 1
	}
	return 0
}
