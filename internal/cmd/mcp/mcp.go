// Package mcp parses MCP command flags and serves the engine over stdio.
package mcp

import (
	"context"
	"flag"

	"github.com/louisbranch/sudoku/internal/mcp/service"
	entrypoint "github.com/louisbranch/sudoku/internal/platform/cmd"
)

// Config holds MCP command configuration.
type Config struct {
	// DBPath names the sqlite puzzle catalog. Empty disables persistence
	// and the stored puzzle resource.
	DBPath string `env:"SUDOKU_DB"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite catalog path; generated puzzles are persisted when set")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves MCP over stdio until the context ends. Stdout carries the
// protocol, so the command writes nothing else to it.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx, service.Config{
			Transport: service.TransportStdio,
			DBPath:    cfg.DBPath,
		})
	})
}
