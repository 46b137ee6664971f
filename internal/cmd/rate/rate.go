// Package rate parses rate command flags and grades a grid's difficulty.
package rate

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/louisbranch/sudoku/internal/logic"
	entrypoint "github.com/louisbranch/sudoku/internal/platform/cmd"
	"github.com/louisbranch/sudoku/internal/sudoku"
)

// Config holds rate command configuration.
type Config struct {
	Grid string `env:"SUDOKU_GRID"`
	JSON bool   `env:"SUDOKU_JSON"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Grid, "grid", cfg.Grid, "81-character grid, digits 1-9 with '.' or '0' for empty cells")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print the rating as JSON")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// report is the JSON shape of a rating.
type report struct {
	Level             string `json:"level"`
	Solved            bool   `json:"solved"`
	IntermediateCount int    `json:"intermediate_count"`
	AdvancedCount     int    `json:"advanced_count"`
	MasterCount       int    `json:"master_count"`
	Clues             int    `json:"clues"`
}

// Run grades the configured grid and writes the rating to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceRate, func(context.Context) error {
		if cfg.Grid == "" {
			return fmt.Errorf("grid is required: pass -grid")
		}
		board, err := sudoku.Parse(cfg.Grid)
		if err != nil {
			return fmt.Errorf("parse grid: %w", err)
		}

		steps, after := logic.SolveWithSteps(board)
		stats := logic.AnalyzeDifficulty(steps)
		rep := report{
			Level:             stats.MaxLevel.String(),
			Solved:            after.Solved(),
			IntermediateCount: stats.IntermediateCount,
			AdvancedCount:     stats.AdvancedCount,
			MasterCount:       stats.MasterCount,
			Clues:             board.Clues(),
		}

		if cfg.JSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}

		fmt.Fprintf(out, "level: %s\n", rep.Level)
		fmt.Fprintf(out, "solved: %t\n", rep.Solved)
		fmt.Fprintf(out, "intermediate steps: %d\n", rep.IntermediateCount)
		fmt.Fprintf(out, "advanced steps: %d\n", rep.AdvancedCount)
		fmt.Fprintf(out, "master steps: %d\n", rep.MasterCount)
		fmt.Fprintf(out, "clues: %d\n", rep.Clues)
		return nil
	})
}
