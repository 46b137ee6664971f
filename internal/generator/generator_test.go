package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/sudoku/internal/backtrack"
	"github.com/louisbranch/sudoku/internal/logic"
	"github.com/louisbranch/sudoku/internal/sudoku"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"EASY", DifficultyEasy, false},
		{" Medium ", DifficultyMedium, false},
		{"hard", DifficultyHard, false},
		{"Extreme", DifficultyExtreme, false},
		{"", 0, true},
		{"impossible", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownDifficulty) {
					t.Fatalf("ParseDifficulty(%q) error = %v, want ErrUnknownDifficulty", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDifficulty(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDifficultyString(t *testing.T) {
	labels := map[Difficulty]string{
		DifficultyEasy:    "easy",
		DifficultyMedium:  "medium",
		DifficultyHard:    "hard",
		DifficultyExtreme: "extreme",
	}
	for d, want := range labels {
		if got := d.String(); got != want {
			t.Errorf("Difficulty(%d).String() = %q, want %q", int(d), got, want)
		}
		// String and ParseDifficulty round-trip.
		parsed, err := ParseDifficulty(want)
		if err != nil || parsed != d {
			t.Errorf("ParseDifficulty(%q) = %v, %v, want %v", want, parsed, err, d)
		}
	}
}

func TestGenerateEasy(t *testing.T) {
	g := New(1)
	puzzle, err := g.Generate(context.Background(), DifficultyEasy)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got := backtrack.CountSolutions(puzzle.Grid); got != 1 {
		t.Errorf("CountSolutions = %d, want 1", got)
	}
	if puzzle.Clues == 0 || puzzle.Clues == 81 {
		t.Errorf("Clues = %d, want a partial grid", puzzle.Clues)
	}
	if got := puzzle.Grid.Clues(); got != puzzle.Clues {
		t.Errorf("Clues = %d, grid holds %d", puzzle.Clues, got)
	}
	if puzzle.Stats.MaxLevel != logic.LevelBasic {
		t.Errorf("MaxLevel = %v, want %v", puzzle.Stats.MaxLevel, logic.LevelBasic)
	}
	assertSolves(t, puzzle.Grid, puzzle.Solution)
}

func TestGenerateDeterministicBySeed(t *testing.T) {
	a, err := New(42).Generate(context.Background(), DifficultyEasy)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	b, err := New(42).Generate(context.Background(), DifficultyEasy)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if a.Grid != b.Grid || a.Solution != b.Solution {
		t.Error("same seed produced different puzzles")
	}
}

func TestGenerateMedium(t *testing.T) {
	if testing.Short() {
		t.Skip("medium generation loops until a match")
	}
	puzzle, err := New(7).Generate(context.Background(), DifficultyMedium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if puzzle.Stats.MaxLevel != logic.LevelIntermediate {
		t.Errorf("MaxLevel = %v, want %v", puzzle.Stats.MaxLevel, logic.LevelIntermediate)
	}
	steps, solved := logic.SolveWithSteps(puzzle.Grid)
	if !solved.Solved() {
		t.Error("medium puzzle did not fall to technique logic")
	}
	if len(steps) == 0 {
		t.Error("no steps recorded")
	}
}

func TestGenerateExtreme(t *testing.T) {
	if testing.Short() {
		t.Skip("extreme generation loops until a match")
	}
	puzzle, err := New(3).Generate(context.Background(), DifficultyExtreme)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := backtrack.CountSolutions(puzzle.Grid); got != 1 {
		t.Errorf("CountSolutions = %d, want 1", got)
	}
	_, solved := logic.SolveWithSteps(puzzle.Grid)
	if solved.Solved() {
		t.Error("extreme puzzle fell to technique logic alone")
	}
}

func TestGenerateHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(1).Generate(ctx, DifficultyEasy)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate error = %v, want context.Canceled", err)
	}
}

func TestGenerateDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := New(1).Generate(ctx, DifficultyExtreme)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Generate error = %v, want context.DeadlineExceeded", err)
	}
}

// assertSolves fails unless solution completes grid.
func assertSolves(t *testing.T, grid, solution sudoku.Board) {
	t.Helper()
	if !solution.Solved() {
		t.Fatalf("solution is not full: %s", solution)
	}
	for i := 0; i < 81; i++ {
		if grid[i] != 0 && grid[i] != solution[i] {
			t.Fatalf("clue at index %d is %d but solution holds %d", i, grid[i], solution[i])
		}
	}
	for u := range sudoku.AllUnits {
		var seen [10]bool
		for _, idx := range sudoku.AllUnits[u] {
			d := solution[idx]
			if d < 1 || d > 9 || seen[d] {
				t.Fatalf("solution unit %d is invalid", u)
			}
			seen[d] = true
		}
	}
}
