package logic

import (
	"testing"

	"github.com/louisbranch/sudoku/internal/sudoku"
)

func mustParse(t *testing.T, grid string) sudoku.Board {
	t.Helper()
	b, err := sudoku.Parse(grid)
	if err != nil {
		t.Fatalf("Parse(%q): %v", grid, err)
	}
	return b
}

func boardFromGrid(t *testing.T, grid string) *board {
	t.Helper()
	return newBoard(mustParse(t, grid))
}

// firstStepOfTechnique returns the first step using the technique, or nil.
func firstStepOfTechnique(steps []Step, technique Technique) *Step {
	for i := range steps {
		if steps[i].Technique == technique {
			return &steps[i]
		}
	}
	return nil
}

func hasElimination(step *Step, index, digit int) bool {
	for _, e := range step.Eliminations {
		if e.Index == index && e.Digit == digit {
			return true
		}
	}
	return false
}

func hasCauseIndex(step *Step, index int) bool {
	for _, c := range step.Cause {
		if c.Index == index {
			return true
		}
	}
	return false
}

// assertValidGrid fails when a filled cell repeats inside any unit or an
// original clue was overwritten.
func assertValidGrid(t *testing.T, original, result sudoku.Board) {
	t.Helper()
	for i := 0; i < 81; i++ {
		if original[i] != 0 && result[i] != original[i] {
			t.Fatalf("clue at index %d changed from %d to %d", i, original[i], result[i])
		}
	}
	for u := range sudoku.AllUnits {
		var seen [10]int
		for _, idx := range sudoku.AllUnits[u] {
			d := result[idx]
			if d == 0 {
				continue
			}
			if seen[d] != 0 {
				t.Fatalf("unit %d holds digit %d twice", u, d)
			}
			seen[d] = idx + 1
		}
	}
}
