// Package main generates minimal Sudoku puzzles at a target difficulty.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	generatecmd "github.com/louisbranch/sudoku/internal/cmd/generate"
	"github.com/louisbranch/sudoku/internal/platform/config"
)

func main() {
	cfg, err := generatecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := generatecmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
