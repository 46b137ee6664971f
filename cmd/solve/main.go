// Package main solves Sudoku grids with human-style techniques.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	solvecmd "github.com/louisbranch/sudoku/internal/cmd/solve"
	"github.com/louisbranch/sudoku/internal/platform/config"
)

func main() {
	cfg, err := solvecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := solvecmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
