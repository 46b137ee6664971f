// Package service hosts the MCP server that exposes the Sudoku engine.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/sudoku/internal/storage"
	"github.com/louisbranch/sudoku/internal/storage/sqlite"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Sudoku MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

// TransportStdio uses standard input/output for MCP.
const TransportStdio TransportKind = "stdio"

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	// DBPath names the sqlite puzzle catalog. Empty disables persistence
	// and the stored puzzle resource.
	DBPath string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	db        *sqlite.Store
}

// New creates a configured MCP server backed by the optional puzzle store.
// A nil store disables sudoku_generate persistence and the stored puzzle
// resource.
func New(store storage.PuzzleStore) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler: completionHandler,
	})
	registerSudokuTools(mcpServer, store)
	if store != nil {
		registerSudokuResources(mcpServer, store)
	}
	return &Server{mcpServer: mcpServer}
}

// Open creates an MCP server that persists generated puzzles to the sqlite
// catalog at path. The catalog is released when serving stops.
func Open(path string) (*Server, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open puzzle store: %w", err)
	}
	server := New(db)
	server.db = db
	return server, nil
}

// completionHandler handles completion/complete requests with empty results.
func completionHandler(ctx context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: []string{},
		},
	}, nil
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Close releases the puzzle catalog held by the server.
func (s *Server) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	return nil
}

// serveWithTransport starts the MCP server using the provided transport and
// releases the puzzle catalog when it stops. Context cancellation counts as
// a clean shutdown.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close puzzle store: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close puzzle store: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	if cfg.Transport != TransportStdio {
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
	return runWithTransport(ctx, cfg, &mcp.StdioTransport{})
}

// runWithTransport creates a server from the config and serves it over the
// provided transport.
func runWithTransport(ctx context.Context, cfg Config, transport mcp.Transport) error {
	if cfg.DBPath == "" {
		return New(nil).serveWithTransport(ctx, transport)
	}
	server, err := Open(cfg.DBPath)
	if err != nil {
		return err
	}
	return server.serveWithTransport(ctx, transport)
}
