package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/sudoku/internal/storage"
)

// puzzleListPageSize caps how many stored puzzles the resource renders.
const puzzleListPageSize = 50

// PuzzleListEntry represents a readable stored puzzle entry.
type PuzzleListEntry struct {
	ID         string `json:"id"`
	Grid       string `json:"grid"`
	Difficulty string `json:"difficulty"`
	Level      string `json:"level"`
	Clues      int    `json:"clues"`
	CreatedAt  string `json:"created_at"`
}

// PuzzleListPayload represents the MCP resource payload for stored puzzles.
type PuzzleListPayload struct {
	Puzzles       []PuzzleListEntry `json:"puzzles"`
	NextPageToken string            `json:"next_page_token,omitempty"`
}

// PuzzleListResource defines the MCP resource for stored puzzles.
func PuzzleListResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "puzzle_list",
		Title:       "Generated puzzles",
		Description: "Readable listing of generated puzzles in the catalog",
		MIMEType:    "application/json",
		URI:         "sudoku://puzzles",
	}
}

// PuzzleListResourceHandler returns a readable stored puzzle listing.
func PuzzleListResourceHandler(store storage.PuzzleStore) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if store == nil {
			return nil, fmt.Errorf("puzzle store is not configured")
		}

		uri := PuzzleListResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		page, err := store.ListPuzzles(ctx, "", puzzleListPageSize, "")
		if err != nil {
			return nil, fmt.Errorf("list puzzles: %w", err)
		}

		payload := PuzzleListPayload{NextPageToken: page.NextPageToken}
		for _, puzzle := range page.Puzzles {
			payload.Puzzles = append(payload.Puzzles, PuzzleListEntry{
				ID:         puzzle.ID,
				Grid:       puzzle.Grid,
				Difficulty: puzzle.Difficulty.String(),
				Level:      puzzle.MaxLevel.String(),
				Clues:      puzzle.Clues,
				CreatedAt:  puzzle.CreatedAt.Format(time.RFC3339),
			})
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal puzzle list: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}
