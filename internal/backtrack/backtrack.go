// Package backtrack is the exhaustive Sudoku solver. It guesses digits
// cell by cell and unwinds on contradiction, with no candidate tracking
// or pattern knowledge. The deduction engine never guesses; counting
// solutions and completing stubborn grids happens here.
package backtrack

import "github.com/louisbranch/sudoku/internal/sudoku"

// defaultOrder tries digits ascending.
var defaultOrder = [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}

// CountSolutions counts the distinct solutions of a grid, short-circuiting
// at 2. The result is 0 (unsolvable), 1 (unique) or 2 (at least two).
// Grids whose clues already repeat inside a unit count as unsolvable.
func CountSolutions(grid sudoku.Board) int {
	if !consistent(&grid) {
		return 0
	}
	count := 0
	var dfs func() bool // reports whether the search should stop
	dfs = func() bool {
		idx, ok := firstEmpty(&grid)
		if !ok {
			count++
			return count >= 2
		}
		for d := uint8(1); d <= 9; d++ {
			if !placeable(&grid, idx, d) {
				continue
			}
			grid[idx] = d
			if dfs() {
				grid[idx] = 0
				return true
			}
			grid[idx] = 0
		}
		return false
	}
	dfs()
	return count
}

// Solve returns the first solution found trying digits ascending, or
// false when the grid has none.
func Solve(grid sudoku.Board) (sudoku.Board, bool) {
	return SolveRandomized(grid, defaultOrder)
}

// SolveRandomized solves the grid trying digits in the caller's order.
// A shuffled order turns the solver into a full-solution generator: on an
// empty grid it produces a random complete board.
func SolveRandomized(grid sudoku.Board, order [9]uint8) (sudoku.Board, bool) {
	if consistent(&grid) && solveInOrder(&grid, &order) {
		return grid, true
	}
	return sudoku.Board{}, false
}

// consistent reports whether no clue repeats inside a unit. The search
// only validates the digits it places itself.
func consistent(grid *sudoku.Board) bool {
	for u := range sudoku.AllUnits {
		var seen [10]bool
		for _, idx := range sudoku.AllUnits[u] {
			d := grid[idx]
			if d == 0 {
				continue
			}
			if seen[d] {
				return false
			}
			seen[d] = true
		}
	}
	return true
}

func solveInOrder(grid *sudoku.Board, order *[9]uint8) bool {
	idx, ok := firstEmpty(grid)
	if !ok {
		return true
	}
	for _, d := range order {
		if !placeable(grid, idx, d) {
			continue
		}
		grid[idx] = d
		if solveInOrder(grid, order) {
			return true
		}
		grid[idx] = 0
	}
	return false
}

// firstEmpty returns the lowest-index empty cell.
func firstEmpty(grid *sudoku.Board) (int, bool) {
	for i := 0; i < 81; i++ {
		if grid[i] == 0 {
			return i, true
		}
	}
	return 0, false
}

// placeable reports whether digit d can go at idx without repeating in
// the cell's row, column or box.
func placeable(grid *sudoku.Board, idx int, d uint8) bool {
	row, col := idx/9, idx%9
	for c := 0; c < 9; c++ {
		if grid[row*9+c] == d {
			return false
		}
	}
	for r := 0; r < 9; r++ {
		if grid[r*9+col] == d {
			return false
		}
	}
	startRow, startCol := (row/3)*3, (col/3)*3
	for r := startRow; r < startRow+3; r++ {
		for c := startCol; c < startCol+3; c++ {
			if grid[r*9+c] == d {
				return false
			}
		}
	}
	return true
}
