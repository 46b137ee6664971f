package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/sudoku/internal/backtrack"
	"github.com/louisbranch/sudoku/internal/sudoku"
)

// SudokuCountSolutionsInput represents the MCP tool input for solution counting.
type SudokuCountSolutionsInput struct {
	Grid string `json:"grid" jsonschema:"81-character grid, digits 1-9 with '.' or '0' for empty cells"`
}

// SudokuCountSolutionsResult represents the MCP tool output for solution counting.
type SudokuCountSolutionsResult struct {
	Count  int  `json:"count" jsonschema:"number of solutions found, capped at 2"`
	Unique bool `json:"unique" jsonschema:"whether the grid has exactly one solution"`
}

// SudokuCountSolutionsTool defines the MCP tool schema for solution counting.
func SudokuCountSolutionsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "sudoku_count_solutions",
		Description: "Counts the solutions of a Sudoku grid, stopping at two, to check uniqueness",
	}
}

// SudokuCountSolutionsHandler executes a solution counting request.
func SudokuCountSolutionsHandler() mcp.ToolHandlerFor[SudokuCountSolutionsInput, SudokuCountSolutionsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SudokuCountSolutionsInput) (*mcp.CallToolResult, SudokuCountSolutionsResult, error) {
		_, span := otel.Tracer(tracerName).Start(ctx, "sudoku_count_solutions",
			trace.WithAttributes(attribute.String("sudoku.grid", input.Grid)))
		defer span.End()

		board, err := sudoku.Parse(input.Grid)
		if err != nil {
			return nil, SudokuCountSolutionsResult{}, fmt.Errorf("parse grid: %w", err)
		}

		count := backtrack.CountSolutions(board)
		span.SetAttributes(attribute.Int("sudoku.count", count))

		return nil, SudokuCountSolutionsResult{
			Count:  count,
			Unique: count == 1,
		}, nil
	}
}
