// Package generator produces Sudoku puzzles targeting a difficulty grade.
// It manufactures random full solutions, strips them down to minimal
// puzzles with a unique solution, and keeps only puzzles whose logical
// solve matches the requested grade.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/louisbranch/sudoku/internal/backtrack"
	"github.com/louisbranch/sudoku/internal/logic"
	"github.com/louisbranch/sudoku/internal/sudoku"
)

// ErrUnknownDifficulty indicates a difficulty label outside the accepted
// set.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty is the target grade of a generated puzzle.
type Difficulty int

const (
	// DifficultyEasy puzzles fall to singles alone.
	DifficultyEasy Difficulty = iota
	// DifficultyMedium puzzles need intermediate techniques.
	DifficultyMedium
	// DifficultyHard puzzles need advanced techniques.
	DifficultyHard
	// DifficultyExtreme puzzles resist every technique and force
	// backtracking.
	DifficultyExtreme
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	case DifficultyExtreme:
		return "extreme"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty maps a label to its Difficulty, ignoring case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	case "extreme":
		return DifficultyExtreme, nil
	default:
		return 0, fmt.Errorf("difficulty %q: %w", s, ErrUnknownDifficulty)
	}
}

// Puzzle is a generated puzzle with its solution and solve statistics.
type Puzzle struct {
	// Grid is the puzzle with a unique solution and no removable clue.
	Grid sudoku.Board
	// Solution is the full board the puzzle was carved from.
	Solution sudoku.Board
	// Stats grades the logical solve of Grid.
	Stats logic.Stats
	// Clues counts the filled cells of Grid.
	Clues int
}

// Generator builds puzzles from an owned random source. Not safe for
// concurrent use; give each goroutine its own Generator.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded deterministically: the same seed yields
// the same sequence of puzzles.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate loops until a puzzle matches the difficulty: carve a minimal
// puzzle out of a fresh random solution, grade it, retry on mismatch.
// The search is unbounded, so callers should cap it with a context
// deadline; the context is checked between iterations.
func (g *Generator) Generate(ctx context.Context, difficulty Difficulty) (Puzzle, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Puzzle{}, err
		}

		solution := g.fullSolution()
		grid := g.minimize(solution)

		steps, solved := logic.SolveWithSteps(grid)
		stats := logic.AnalyzeDifficulty(steps)
		if !matchesDifficulty(difficulty, stats, solved.Solved()) {
			continue
		}
		return Puzzle{
			Grid:     grid,
			Solution: solution,
			Stats:    stats,
			Clues:    grid.Clues(),
		}, nil
	}
}

// fullSolution fills an empty grid with a random digit order.
func (g *Generator) fullSolution() sudoku.Board {
	order := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	g.rng.Shuffle(9, func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	solution, _ := backtrack.SolveRandomized(sudoku.Board{}, order)
	return solution
}

// minimize clears clues in random order, restoring any clue whose removal
// breaks solution uniqueness. The result has no removable clue left.
func (g *Generator) minimize(solution sudoku.Board) sudoku.Board {
	grid := solution
	for _, idx := range g.rng.Perm(81) {
		removed := grid[idx]
		grid[idx] = 0
		if backtrack.CountSolutions(grid) != 1 {
			grid[idx] = removed
		}
	}
	return grid
}

// matchesDifficulty gates a graded puzzle against the target. The three
// logical grades demand an exact level match on a fully solved grid;
// extreme demands the opposite, a grid the techniques cannot finish.
func matchesDifficulty(difficulty Difficulty, stats logic.Stats, solved bool) bool {
	switch difficulty {
	case DifficultyEasy:
		return solved && stats.MaxLevel == logic.LevelBasic
	case DifficultyMedium:
		return solved && stats.MaxLevel == logic.LevelIntermediate
	case DifficultyHard:
		return solved && stats.MaxLevel == logic.LevelAdvanced
	case DifficultyExtreme:
		return !solved
	default:
		return false
	}
}
