// Package generate parses generate command flags and produces puzzles.
package generate

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/sudoku/internal/generator"
	entrypoint "github.com/louisbranch/sudoku/internal/platform/cmd"
	"github.com/louisbranch/sudoku/internal/platform/id"
	"github.com/louisbranch/sudoku/internal/random"
	"github.com/louisbranch/sudoku/internal/storage"
	"github.com/louisbranch/sudoku/internal/storage/sqlite"
)

// tracerName identifies spans created by generate runs.
const tracerName = "generate"

// Config holds generate command configuration.
type Config struct {
	Difficulty string        `env:"SUDOKU_DIFFICULTY" envDefault:"easy"`
	Count      int           `env:"SUDOKU_COUNT" envDefault:"1"`
	Seed       int64         `env:"SUDOKU_SEED"`
	Timeout    time.Duration `env:"SUDOKU_TIMEOUT" envDefault:"60s"`
	DBPath     string        `env:"SUDOKU_DB"`
	JSON       bool          `env:"SUDOKU_JSON"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "target difficulty: easy, medium, hard or extreme")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of puzzles to generate")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for reproducible output (0 picks a random seed)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "time budget per puzzle")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite catalog path; generated puzzles are persisted when set")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print one JSON record per puzzle")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// record is the JSON shape of one generated puzzle.
type record struct {
	ID         string `json:"id,omitempty"`
	Grid       string `json:"grid"`
	Solution   string `json:"solution"`
	Difficulty string `json:"difficulty"`
	Level      string `json:"level"`
	Clues      int    `json:"clues"`
	Seed       int64  `json:"seed"`
}

// Run generates the configured number of puzzles, persisting them when a
// catalog path is set, and writes one line per puzzle to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGenerate, func(ctx context.Context) error {
		difficulty, err := generator.ParseDifficulty(cfg.Difficulty)
		if err != nil {
			return err
		}
		if cfg.Count < 1 {
			return fmt.Errorf("count must be at least 1")
		}

		var store storage.PuzzleStore
		if cfg.DBPath != "" {
			db, err := sqlite.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open puzzle store: %w", err)
			}
			defer db.Close()
			store = db
		}

		seed := cfg.Seed
		if seed == 0 {
			if seed, err = random.NewSeed(); err != nil {
				return fmt.Errorf("new seed: %w", err)
			}
		}
		gen := generator.New(seed)

		enc := json.NewEncoder(out)
		for i := 0; i < cfg.Count; i++ {
			puzzle, err := generateOne(ctx, gen, difficulty, cfg.Timeout)
			if err != nil {
				return err
			}

			rec := record{
				Grid:       puzzle.Grid.String(),
				Solution:   puzzle.Solution.String(),
				Difficulty: difficulty.String(),
				Level:      puzzle.Stats.MaxLevel.String(),
				Clues:      puzzle.Clues,
				Seed:       seed,
			}
			if store != nil {
				rec.ID, err = persist(ctx, store, puzzle, difficulty)
				if err != nil {
					return err
				}
			}

			if cfg.JSON {
				if err := enc.Encode(rec); err != nil {
					return err
				}
				continue
			}
			fmt.Fprintln(out, rec.Grid)
		}
		return nil
	})
}

// generateOne produces a single puzzle under its own span and time budget.
func generateOne(ctx context.Context, gen *generator.Generator, difficulty generator.Difficulty, timeout time.Duration) (generator.Puzzle, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "generate.puzzle",
		trace.WithAttributes(attribute.String("sudoku.difficulty", difficulty.String())))
	defer span.End()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	puzzle, err := gen.Generate(ctx, difficulty)
	if err != nil {
		return generator.Puzzle{}, fmt.Errorf("generate %s puzzle: %w", difficulty, err)
	}
	span.SetAttributes(
		attribute.Int("sudoku.clues", puzzle.Clues),
		attribute.String("sudoku.level", puzzle.Stats.MaxLevel.String()),
	)
	return puzzle, nil
}

// persist stores one generated puzzle and returns its catalog identifier.
// A grid already in the catalog is not a failure; the record simply
// carries no identifier.
func persist(ctx context.Context, store storage.PuzzleStore, puzzle generator.Puzzle, difficulty generator.Difficulty) (string, error) {
	puzzleID, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("new puzzle id: %w", err)
	}
	err = store.SavePuzzle(ctx, storage.Puzzle{
		ID:                puzzleID,
		Grid:              puzzle.Grid.String(),
		Solution:          puzzle.Solution.String(),
		Difficulty:        difficulty,
		MaxLevel:          puzzle.Stats.MaxLevel,
		IntermediateCount: puzzle.Stats.IntermediateCount,
		AdvancedCount:     puzzle.Stats.AdvancedCount,
		MasterCount:       puzzle.Stats.MasterCount,
		Clues:             puzzle.Clues,
		CreatedAt:         time.Now().UTC(),
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("save puzzle: %w", err)
	}
	return puzzleID, nil
}
