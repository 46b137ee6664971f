package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/sudoku/internal/generator"
	"github.com/louisbranch/sudoku/internal/platform/id"
	"github.com/louisbranch/sudoku/internal/random"
	"github.com/louisbranch/sudoku/internal/storage"
)

// generateTimeout bounds the otherwise unbounded difficulty search.
const generateTimeout = 60 * time.Second

// SudokuGenerateInput represents the MCP tool input for puzzle generation.
type SudokuGenerateInput struct {
	Difficulty string `json:"difficulty" jsonschema:"target difficulty (easy, medium, hard, extreme)"`
	Seed       *int64 `json:"seed,omitempty" jsonschema:"optional seed for reproducible generation"`
}

// SudokuGenerateResult represents the MCP tool output for puzzle generation.
type SudokuGenerateResult struct {
	ID         string `json:"id,omitempty" jsonschema:"catalog identifier when the puzzle was stored"`
	Grid       string `json:"grid" jsonschema:"generated puzzle grid"`
	Solution   string `json:"solution" jsonschema:"unique solution of the puzzle"`
	Difficulty string `json:"difficulty" jsonschema:"difficulty the puzzle was generated for"`
	Level      string `json:"level" jsonschema:"hardest technique level the logical solve required"`
	Clues      int    `json:"clues" jsonschema:"number of clues in the puzzle"`
	Seed       int64  `json:"seed" jsonschema:"seed the generator ran with"`
}

// SudokuGenerateTool defines the MCP tool schema for puzzle generation.
func SudokuGenerateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "sudoku_generate",
		Description: "Generates a minimal Sudoku puzzle with a unique solution at the requested difficulty",
	}
}

// SudokuGenerateHandler executes a puzzle generation request. A nil store
// skips persistence.
func SudokuGenerateHandler(store storage.PuzzleStore) mcp.ToolHandlerFor[SudokuGenerateInput, SudokuGenerateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SudokuGenerateInput) (*mcp.CallToolResult, SudokuGenerateResult, error) {
		ctx, span := otel.Tracer(tracerName).Start(ctx, "sudoku_generate",
			trace.WithAttributes(attribute.String("sudoku.difficulty", input.Difficulty)))
		defer span.End()

		difficulty, err := generator.ParseDifficulty(input.Difficulty)
		if err != nil {
			return nil, SudokuGenerateResult{}, err
		}

		var seed int64
		if input.Seed != nil {
			seed = *input.Seed
		} else if seed, err = random.NewSeed(); err != nil {
			return nil, SudokuGenerateResult{}, fmt.Errorf("new seed: %w", err)
		}

		runCtx, cancel := context.WithTimeout(ctx, generateTimeout)
		defer cancel()

		puzzle, err := generator.New(seed).Generate(runCtx, difficulty)
		if err != nil {
			return nil, SudokuGenerateResult{}, fmt.Errorf("generate %s puzzle: %w", difficulty, err)
		}
		span.SetAttributes(
			attribute.Int64("sudoku.seed", seed),
			attribute.Int("sudoku.clues", puzzle.Clues),
		)

		result := SudokuGenerateResult{
			Grid:       puzzle.Grid.String(),
			Solution:   puzzle.Solution.String(),
			Difficulty: difficulty.String(),
			Level:      puzzle.Stats.MaxLevel.String(),
			Clues:      puzzle.Clues,
			Seed:       seed,
		}
		if store == nil {
			return nil, result, nil
		}

		puzzleID, err := id.NewID()
		if err != nil {
			return nil, SudokuGenerateResult{}, fmt.Errorf("new puzzle id: %w", err)
		}
		record := storage.Puzzle{
			ID:                puzzleID,
			Grid:              result.Grid,
			Solution:          result.Solution,
			Difficulty:        difficulty,
			MaxLevel:          puzzle.Stats.MaxLevel,
			IntermediateCount: puzzle.Stats.IntermediateCount,
			AdvancedCount:     puzzle.Stats.AdvancedCount,
			MasterCount:       puzzle.Stats.MasterCount,
			Clues:             puzzle.Clues,
			CreatedAt:         time.Now().UTC(),
		}
		// A regenerated grid already in the catalog is not a failure; the
		// result simply carries no catalog identifier.
		if err := store.SavePuzzle(ctx, record); err == nil {
			result.ID = puzzleID
		} else if !errors.Is(err, storage.ErrAlreadyExists) {
			return nil, SudokuGenerateResult{}, fmt.Errorf("save puzzle: %w", err)
		}

		return nil, result, nil
	}
}
