// Package sqlite provides a SQLite-backed puzzle storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/sudoku/internal/generator"
	"github.com/louisbranch/sudoku/internal/logic"
	sqlitemigrate "github.com/louisbranch/sudoku/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/sudoku/internal/storage"
	"github.com/louisbranch/sudoku/internal/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists generated puzzles in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite puzzle store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SavePuzzle inserts one puzzle record.
func (s *Store) SavePuzzle(ctx context.Context, puzzle storage.Puzzle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(puzzle.ID)
	grid := strings.TrimSpace(puzzle.Grid)
	solution := strings.TrimSpace(puzzle.Solution)
	if id == "" {
		return fmt.Errorf("puzzle id is required")
	}
	if len(grid) != 81 {
		return fmt.Errorf("grid must be 81 characters")
	}
	if len(solution) != 81 {
		return fmt.Errorf("solution must be 81 characters")
	}
	createdAt := puzzle.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO puzzles (
		   id,
		   grid,
		   solution,
		   difficulty,
		   max_level,
		   intermediate_count,
		   advanced_count,
		   master_count,
		   clues,
		   created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		grid,
		solution,
		puzzle.Difficulty.String(),
		int(puzzle.MaxLevel),
		puzzle.IntermediateCount,
		puzzle.AdvancedCount,
		puzzle.MasterCount,
		puzzle.Clues,
		toMillis(createdAt),
	)
	if err != nil {
		if isPuzzleUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("save puzzle: %w", err)
	}
	return nil
}

// GetPuzzle returns one puzzle by its grid.
func (s *Store) GetPuzzle(ctx context.Context, grid string) (storage.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return storage.Puzzle{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Puzzle{}, fmt.Errorf("storage is not configured")
	}
	grid = strings.TrimSpace(grid)
	if grid == "" {
		return storage.Puzzle{}, fmt.Errorf("grid is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, grid, solution, difficulty, max_level,
		        intermediate_count, advanced_count, master_count,
		        clues, created_at
		   FROM puzzles
		  WHERE grid = ?`,
		grid,
	)

	puzzle, err := scanPuzzle(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Puzzle{}, storage.ErrNotFound
		}
		return storage.Puzzle{}, fmt.Errorf("get puzzle: %w", err)
	}
	return puzzle, nil
}

// ListPuzzles returns one page of puzzle records.
func (s *Store) ListPuzzles(ctx context.Context, difficulty string, pageSize int, pageToken string) (storage.PuzzlePage, error) {
	if err := ctx.Err(); err != nil {
		return storage.PuzzlePage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.PuzzlePage{}, fmt.Errorf("storage is not configured")
	}
	if pageSize <= 0 {
		return storage.PuzzlePage{}, fmt.Errorf("page size must be greater than zero")
	}
	difficulty = strings.TrimSpace(difficulty)
	pageToken = strings.TrimSpace(pageToken)

	query := `SELECT id, grid, solution, difficulty, max_level,
	                 intermediate_count, advanced_count, master_count,
	                 clues, created_at
	            FROM puzzles`
	var clauses []string
	var args []any
	if difficulty != "" {
		clauses = append(clauses, "difficulty = ?")
		args = append(args, difficulty)
	}
	if pageToken != "" {
		clauses = append(clauses, "id > ?")
		args = append(args, pageToken)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id ASC LIMIT ?"
	args = append(args, pageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return storage.PuzzlePage{}, fmt.Errorf("list puzzles: %w", err)
	}
	defer rows.Close()

	page := storage.PuzzlePage{
		Puzzles: make([]storage.Puzzle, 0, pageSize),
	}
	for rows.Next() {
		puzzle, err := scanPuzzle(rows.Scan)
		if err != nil {
			return storage.PuzzlePage{}, fmt.Errorf("list puzzles: %w", err)
		}
		page.Puzzles = append(page.Puzzles, puzzle)
	}
	if err := rows.Err(); err != nil {
		return storage.PuzzlePage{}, fmt.Errorf("list puzzles: %w", err)
	}
	if len(page.Puzzles) > pageSize {
		page.NextPageToken = page.Puzzles[pageSize-1].ID
		page.Puzzles = page.Puzzles[:pageSize]
	}

	return page, nil
}

func scanPuzzle(scan func(dest ...any) error) (storage.Puzzle, error) {
	var puzzle storage.Puzzle
	var difficulty string
	var maxLevel int
	var createdAt int64
	if err := scan(
		&puzzle.ID,
		&puzzle.Grid,
		&puzzle.Solution,
		&difficulty,
		&maxLevel,
		&puzzle.IntermediateCount,
		&puzzle.AdvancedCount,
		&puzzle.MasterCount,
		&puzzle.Clues,
		&createdAt,
	); err != nil {
		return storage.Puzzle{}, err
	}

	parsed, err := generator.ParseDifficulty(difficulty)
	if err != nil {
		return storage.Puzzle{}, fmt.Errorf("stored difficulty %q: %w", difficulty, err)
	}
	puzzle.Difficulty = parsed
	puzzle.MaxLevel = logic.Level(maxLevel)
	puzzle.CreatedAt = fromMillis(createdAt)
	return puzzle, nil
}

func isPuzzleUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "puzzles.")
}

var _ storage.PuzzleStore = (*Store)(nil)
