package logic

import (
	"math/bits"

	"github.com/louisbranch/sudoku/internal/sudoku"
)

// allCandidates is the bitmask holding digits 1-9. Bit d-1 set means
// digit d is still possible.
const allCandidates uint16 = 0b111111111

// board tracks placed digits plus the candidate mask of every cell. A
// filled cell has a zero candidate mask.
type board struct {
	cells      [81]uint8
	candidates [81]uint16
}

// newBoard seeds every empty cell with all nine candidates, then lets the
// given clues prune their peers.
func newBoard(grid sudoku.Board) *board {
	b := &board{cells: grid}
	for i := 0; i < 81; i++ {
		if b.cells[i] == 0 {
			b.candidates[i] = allCandidates
		}
	}
	for i := 0; i < 81; i++ {
		if b.cells[i] != 0 {
			b.eliminateFromPeers(i, b.cells[i])
		}
	}
	return b
}

// setCell places a digit, clears the cell's own candidates and prunes the
// digit from all peers. It reports false when the cell is already filled.
func (b *board) setCell(index int, digit uint8) bool {
	if b.cells[index] != 0 {
		return false
	}
	b.cells[index] = digit
	b.candidates[index] = 0
	b.eliminateFromPeers(index, digit)
	return true
}

// eliminateFromPeers removes a digit from the candidate masks of every
// peer of index.
func (b *board) eliminateFromPeers(index int, digit uint8) {
	clear := ^digitBit(int(digit))
	for _, peer := range sudoku.Peers[index] {
		b.candidates[peer] &= clear
	}
}

// eliminate removes one candidate digit from one cell.
func (b *board) eliminate(index, digit int) {
	b.candidates[index] &^= digitBit(digit)
}

// hasCandidate reports whether an empty cell still holds a digit.
func (b *board) hasCandidate(index, digit int) bool {
	return b.cells[index] == 0 && b.candidates[index]&digitBit(digit) != 0
}

// grid returns the placed digits as a plain board.
func (b *board) grid() sudoku.Board {
	return b.cells
}

// fishMasks indexes candidate positions per digit in a single board pass.
// rows[d][r] has bit c set when digit d is a candidate at row r, column c;
// cols[d][c] has bit r set for the same cell. Index 0 is unused. Fish,
// Skyscraper and Two-String Kite all scan these masks.
func (b *board) fishMasks() (rows, cols [10][9]uint16) {
	for i := 0; i < 81; i++ {
		if b.cells[i] != 0 {
			continue
		}
		r, c := i/9, i%9
		for mask := b.candidates[i]; mask != 0; mask &= mask - 1 {
			d := bits.TrailingZeros16(mask) + 1
			rows[d][r] |= 1 << c
			cols[d][c] |= 1 << r
		}
	}
	return rows, cols
}

// digitBit maps digit d (1-9) to its candidate mask bit.
func digitBit(d int) uint16 {
	return 1 << (d - 1)
}

// digitsOf unpacks a candidate mask into ascending digits.
func digitsOf(mask uint16) []int {
	digits := make([]int, 0, bits.OnesCount16(mask))
	for m := mask; m != 0; m &= m - 1 {
		digits = append(digits, bits.TrailingZeros16(m)+1)
	}
	return digits
}

// singleDigit returns the digit of a one-bit candidate mask.
func singleDigit(mask uint16) int {
	return bits.TrailingZeros16(mask) + 1
}
