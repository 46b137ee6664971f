// Package solve parses solve command flags and runs a logical solve.
package solve

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/louisbranch/sudoku/internal/explain"
	"github.com/louisbranch/sudoku/internal/logic"
	entrypoint "github.com/louisbranch/sudoku/internal/platform/cmd"
	"github.com/louisbranch/sudoku/internal/sudoku"
)

// Config holds solve command configuration.
type Config struct {
	Grid  string `env:"SUDOKU_GRID"`
	Steps bool   `env:"SUDOKU_STEPS"`
	Lang  string `env:"SUDOKU_LANG" envDefault:"en"`
	JSON  bool   `env:"SUDOKU_JSON"`

	// GridFile is the positional argument: a grid file path, or "-" to
	// read the grid from stdin. Ignored when -grid is set.
	GridFile string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Grid, "grid", cfg.Grid, "81-character grid, digits 1-9 with '.' or '0' for empty cells")
	fs.BoolVar(&cfg.Steps, "steps", cfg.Steps, "print every deduction before the final grid")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "language for step explanations (en, pt-BR)")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print the result as JSON")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.GridFile = fs.Arg(0)
	return cfg, nil
}

// report is the JSON shape of a solve run.
type report struct {
	Grid   string       `json:"grid"`
	Solved bool         `json:"solved"`
	Level  string       `json:"level"`
	Steps  []stepReport `json:"steps,omitempty"`
}

// stepReport is one deduction in the JSON report.
type stepReport struct {
	Technique   string `json:"technique"`
	Explanation string `json:"explanation"`
}

// Run solves the configured grid with logical techniques and writes the
// result to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSolve, func(context.Context) error {
		grid, err := resolveGrid(cfg, os.Stdin)
		if err != nil {
			return err
		}
		board, err := sudoku.Parse(grid)
		if err != nil {
			return fmt.Errorf("parse grid: %w", err)
		}

		steps, after := logic.SolveWithSteps(board)
		stats := logic.AnalyzeDifficulty(steps)
		printer := explain.Printer(explain.MatchTag(cfg.Lang))

		if cfg.JSON {
			rep := report{
				Grid:   after.String(),
				Solved: after.Solved(),
				Level:  stats.MaxLevel.String(),
			}
			if cfg.Steps {
				for _, step := range steps {
					rep.Steps = append(rep.Steps, stepReport{
						Technique:   string(step.Technique),
						Explanation: explain.Describe(printer, step),
					})
				}
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}

		if cfg.Steps {
			for i, step := range steps {
				fmt.Fprintf(out, "%d. %s\n", i+1, explain.Describe(printer, step))
			}
		}
		fmt.Fprintln(out, after.String())
		if !after.Solved() {
			fmt.Fprintf(out, "logic stalled after %d steps with %d cells filled\n", len(steps), after.Clues())
		}
		return nil
	})
}

// resolveGrid returns the grid from the -grid flag, a grid file, or stdin
// when the positional argument is "-". File and stdin grids may spread
// over several lines; whitespace is stripped before parsing.
func resolveGrid(cfg Config, stdin io.Reader) (string, error) {
	if cfg.Grid != "" {
		return cfg.Grid, nil
	}
	switch cfg.GridFile {
	case "":
		return "", fmt.Errorf("grid is required: pass -grid, a grid file, or '-' for stdin")
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read grid from stdin: %w", err)
		}
		return compactGrid(string(data)), nil
	default:
		data, err := os.ReadFile(cfg.GridFile)
		if err != nil {
			return "", fmt.Errorf("read grid file: %w", err)
		}
		return compactGrid(string(data)), nil
	}
}

// compactGrid drops every whitespace rune so multi-line grid files parse.
func compactGrid(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
