package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/sudoku/internal/logic"
	"github.com/louisbranch/sudoku/internal/sudoku"
)

// SudokuRateInput represents the MCP tool input for difficulty rating.
type SudokuRateInput struct {
	Grid string `json:"grid" jsonschema:"81-character grid, digits 1-9 with '.' or '0' for empty cells"`
}

// SudokuRateResult represents the MCP tool output for difficulty rating.
type SudokuRateResult struct {
	Level             string `json:"level" jsonschema:"hardest technique level the solve required"`
	Solved            bool   `json:"solved" jsonschema:"whether logic alone completed the grid"`
	IntermediateCount int    `json:"intermediate_count" jsonschema:"number of intermediate-level steps"`
	AdvancedCount     int    `json:"advanced_count" jsonschema:"number of advanced-level steps"`
	MasterCount       int    `json:"master_count" jsonschema:"number of master-level steps"`
	Clues             int    `json:"clues" jsonschema:"number of filled cells in the input grid"`
}

// SudokuRateTool defines the MCP tool schema for difficulty rating.
func SudokuRateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "sudoku_rate",
		Description: "Rates how hard a Sudoku grid is for a human solver",
	}
}

// SudokuRateHandler executes a difficulty rating request.
func SudokuRateHandler() mcp.ToolHandlerFor[SudokuRateInput, SudokuRateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SudokuRateInput) (*mcp.CallToolResult, SudokuRateResult, error) {
		_, span := otel.Tracer(tracerName).Start(ctx, "sudoku_rate",
			trace.WithAttributes(attribute.String("sudoku.grid", input.Grid)))
		defer span.End()

		board, err := sudoku.Parse(input.Grid)
		if err != nil {
			return nil, SudokuRateResult{}, fmt.Errorf("parse grid: %w", err)
		}

		steps, after := logic.SolveWithSteps(board)
		stats := logic.AnalyzeDifficulty(steps)
		span.SetAttributes(
			attribute.String("sudoku.level", stats.MaxLevel.String()),
			attribute.Bool("sudoku.solved", after.Solved()),
		)

		return nil, SudokuRateResult{
			Level:             stats.MaxLevel.String(),
			Solved:            after.Solved(),
			IntermediateCount: stats.IntermediateCount,
			AdvancedCount:     stats.AdvancedCount,
			MasterCount:       stats.MasterCount,
			Clues:             board.Clues(),
		}, nil
	}
}
