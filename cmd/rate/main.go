// Package main rates how hard a Sudoku grid is for a human solver.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	ratecmd "github.com/louisbranch/sudoku/internal/cmd/rate"
	"github.com/louisbranch/sudoku/internal/platform/config"
)

func main() {
	cfg, err := ratecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ratecmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
