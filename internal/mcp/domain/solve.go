package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/sudoku/internal/explain"
	"github.com/louisbranch/sudoku/internal/logic"
	"github.com/louisbranch/sudoku/internal/sudoku"
)

// SudokuSolveInput represents the MCP tool input for logical solving.
type SudokuSolveInput struct {
	Grid string `json:"grid" jsonschema:"81-character grid, digits 1-9 with '.' or '0' for empty cells"`
	Lang string `json:"lang,omitempty" jsonschema:"optional BCP 47 language tag for explanations (en, pt-BR)"`
}

// SudokuSolveResult represents the MCP tool output for logical solving.
type SudokuSolveResult struct {
	Grid   string       `json:"grid" jsonschema:"grid after applying every logical step"`
	Solved bool         `json:"solved" jsonschema:"whether logic alone completed the grid"`
	Level  string       `json:"level" jsonschema:"hardest technique level the solve required"`
	Steps  []StepDetail `json:"steps" jsonschema:"deductions in the order they were applied"`
}

// SudokuHintInput represents the MCP tool input for hint requests.
type SudokuHintInput struct {
	Grid string `json:"grid" jsonschema:"81-character grid, digits 1-9 with '.' or '0' for empty cells"`
	Lang string `json:"lang,omitempty" jsonschema:"optional BCP 47 language tag for explanations (en, pt-BR)"`
}

// SudokuHintResult represents the MCP tool output for hint requests.
type SudokuHintResult struct {
	Step StepDetail `json:"step" jsonschema:"the next logical deduction"`
}

// SudokuSolveTool defines the MCP tool schema for logical solving.
func SudokuSolveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "sudoku_solve",
		Description: "Solves a Sudoku grid with human-style techniques, reporting every deduction",
	}
}

// SudokuHintTool defines the MCP tool schema for hint requests.
func SudokuHintTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "sudoku_hint",
		Description: "Returns the next logical deduction for a Sudoku grid",
	}
}

// SudokuSolveHandler executes a logical solve request.
func SudokuSolveHandler() mcp.ToolHandlerFor[SudokuSolveInput, SudokuSolveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SudokuSolveInput) (*mcp.CallToolResult, SudokuSolveResult, error) {
		_, span := otel.Tracer(tracerName).Start(ctx, "sudoku_solve",
			trace.WithAttributes(attribute.String("sudoku.grid", input.Grid)))
		defer span.End()

		board, err := sudoku.Parse(input.Grid)
		if err != nil {
			return nil, SudokuSolveResult{}, fmt.Errorf("parse grid: %w", err)
		}

		steps, after := logic.SolveWithSteps(board)
		stats := logic.AnalyzeDifficulty(steps)
		printer := explain.Printer(explain.MatchTag(input.Lang))

		details := make([]StepDetail, 0, len(steps))
		for _, step := range steps {
			details = append(details, stepDetail(printer, step))
		}
		span.SetAttributes(
			attribute.Int("sudoku.steps", len(steps)),
			attribute.Bool("sudoku.solved", after.Solved()),
		)

		return nil, SudokuSolveResult{
			Grid:   after.String(),
			Solved: after.Solved(),
			Level:  stats.MaxLevel.String(),
			Steps:  details,
		}, nil
	}
}

// SudokuHintHandler executes a hint request by solving just far enough to
// surface the first deduction.
func SudokuHintHandler() mcp.ToolHandlerFor[SudokuHintInput, SudokuHintResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SudokuHintInput) (*mcp.CallToolResult, SudokuHintResult, error) {
		_, span := otel.Tracer(tracerName).Start(ctx, "sudoku_hint",
			trace.WithAttributes(attribute.String("sudoku.grid", input.Grid)))
		defer span.End()

		board, err := sudoku.Parse(input.Grid)
		if err != nil {
			return nil, SudokuHintResult{}, fmt.Errorf("parse grid: %w", err)
		}
		if board.Solved() {
			return nil, SudokuHintResult{}, fmt.Errorf("grid is already solved")
		}

		steps, _ := logic.SolveWithSteps(board)
		if len(steps) == 0 {
			return nil, SudokuHintResult{}, fmt.Errorf("no logical step applies to this grid")
		}

		printer := explain.Printer(explain.MatchTag(input.Lang))
		span.SetAttributes(attribute.String("sudoku.technique", string(steps[0].Technique)))

		return nil, SudokuHintResult{Step: stepDetail(printer, steps[0])}, nil
	}
}
