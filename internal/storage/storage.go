// Package storage defines persistence contracts for generated puzzles.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/sudoku/internal/generator"
	"github.com/louisbranch/sudoku/internal/logic"
)

var (
	// ErrNotFound indicates a requested puzzle record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained puzzle already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// Puzzle stores one generated puzzle with its solution and difficulty
// profile. Grid and Solution use the canonical 81-character form, row by
// row, with '.' for empty cells.
type Puzzle struct {
	ID                string
	Grid              string
	Solution          string
	Difficulty        generator.Difficulty
	MaxLevel          logic.Level
	IntermediateCount int
	AdvancedCount     int
	MasterCount       int
	Clues             int
	CreatedAt         time.Time
}

// PuzzlePage stores one page of puzzle records.
type PuzzlePage struct {
	Puzzles       []Puzzle
	NextPageToken string
}

// PuzzleStore persists generated puzzle records.
//
// ListPuzzles pages by ID in ascending order; difficulty narrows the page
// to one difficulty label and the empty string matches all difficulties.
type PuzzleStore interface {
	SavePuzzle(ctx context.Context, puzzle Puzzle) error
	GetPuzzle(ctx context.Context, grid string) (Puzzle, error)
	ListPuzzles(ctx context.Context, difficulty string, pageSize int, pageToken string) (PuzzlePage, error)
}
