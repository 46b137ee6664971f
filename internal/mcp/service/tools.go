package service

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/sudoku/internal/mcp/domain"
	"github.com/louisbranch/sudoku/internal/storage"
)

func registerSudokuTools(mcpServer *mcp.Server, store storage.PuzzleStore) {
	mcp.AddTool(mcpServer, domain.SudokuSolveTool(), domain.SudokuSolveHandler())
	mcp.AddTool(mcpServer, domain.SudokuHintTool(), domain.SudokuHintHandler())
	mcp.AddTool(mcpServer, domain.SudokuRateTool(), domain.SudokuRateHandler())
	mcp.AddTool(mcpServer, domain.SudokuGenerateTool(), domain.SudokuGenerateHandler(store))
	mcp.AddTool(mcpServer, domain.SudokuCountSolutionsTool(), domain.SudokuCountSolutionsHandler())
}

// registerSudokuResources registers readable puzzle catalog MCP resources.
func registerSudokuResources(mcpServer *mcp.Server, store storage.PuzzleStore) {
	mcpServer.AddResource(domain.PuzzleListResource(), domain.PuzzleListResourceHandler(store))
}
