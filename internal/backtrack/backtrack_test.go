package backtrack

import (
	"strings"
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

func TestCountSolutions(t *testing.T) {
	tests := []struct {
		name string
		grid string
		want int
	}{
		{
			name: "unique solution",
			grid: "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79",
			want: 1,
		},
		{
			name: "already solved",
			grid: "123456789456789123789123456214365897365897214897214365531642978642978531978531642",
			want: 1,
		},
		{
			name: "empty grid has many solutions",
			grid: strings.Repeat(".", 81),
			want: 2,
		},
		{
			name: "clues clash in a row",
			grid: "11" + strings.Repeat(".", 79),
			want: 0,
		},
		{
			name: "two clues leave multiple solutions",
			grid: "12" + strings.Repeat(".", 79),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountSolutions(mustParse(t, tt.grid))
			if got != tt.want {
				t.Errorf("CountSolutions() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSolve(t *testing.T) {
	grid := mustParse(t, "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79")
	solved, ok := Solve(grid)
	if !ok {
		t.Fatal("Solve() = false, want a solution")
	}
	assertSolutionOf(t, grid, solved)
}

func TestSolveUnsolvable(t *testing.T) {
	grid := mustParse(t, "11"+strings.Repeat(".", 79))
	if _, ok := Solve(grid); ok {
		t.Error("Solve() = true on a grid with clashing clues")
	}
}

func TestSolveRandomizedFillsEmptyGrid(t *testing.T) {
	order := [9]uint8{9, 8, 7, 6, 5, 4, 3, 2, 1}
	solved, ok := SolveRandomized(sudoku.Board{}, order)
	if !ok {
		t.Fatal("SolveRandomized() = false on an empty grid")
	}
	assertSolutionOf(t, sudoku.Board{}, solved)
	// The first empty cell takes the first digit of the order.
	if solved[0] != 9 {
		t.Errorf("cell 0 = %d, want 9 for a descending order", solved[0])
	}
}

func TestSolveRandomizedOrderChangesSolution(t *testing.T) {
	asc, ok := SolveRandomized(sudoku.Board{}, [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if !ok {
		t.Fatal("ascending solve failed")
	}
	desc, ok := SolveRandomized(sudoku.Board{}, [9]uint8{9, 8, 7, 6, 5, 4, 3, 2, 1})
	if !ok {
		t.Fatal("descending solve failed")
	}
	if asc == desc {
		t.Error("different digit orders produced the same full solution")
	}
}

// assertSolutionOf fails unless solved completes the original grid with
// every unit holding the digits 1-9 exactly once.
func assertSolutionOf(t *testing.T, original, solved sudoku.Board) {
	t.Helper()
	if !solved.Solved() {
		t.Fatalf("grid not fully solved: %s", solved)
	}
	for i := 0; i < 81; i++ {
		if original[i] != 0 && solved[i] != original[i] {
			t.Fatalf("clue at index %d changed from %d to %d", i, original[i], solved[i])
		}
	}
	for u := range sudoku.AllUnits {
		var seen [10]bool
		for _, idx := range sudoku.AllUnits[u] {
			d := solved[idx]
			if d < 1 || d > 9 || seen[d] {
				t.Fatalf("unit %d is invalid in %s", u, solved)
			}
			seen[d] = true
		}
	}
}
