package logic

import (
	"math/bits"

	"github.com/louisbranch/sudoku/internal/sudoku"
)

// findNakedSingle returns a placement for the first cell (in index order)
// whose candidate mask holds exactly one digit.
func findNakedSingle(b *board) *Step {
	for i := 0; i < 81; i++ {
		if b.cells[i] != 0 || bits.OnesCount16(b.candidates[i]) != 1 {
			continue
		}
		digit := singleDigit(b.candidates[i])
		return &Step{
			Technique:    TechniqueNakedSingle,
			Placements:   []Placement{{Index: i, Digit: digit}},
			Eliminations: peerEliminations(b, i, digit),
		}
	}
	return nil
}

// findHiddenSingle returns a placement for the first digit that has exactly
// one possible cell inside a unit. Units are scanned rows first, then
// columns, then boxes, digits ascending within each unit.
func findHiddenSingle(b *board) *Step {
	for u := range sudoku.AllUnits {
		if step := findHiddenSingleInUnit(b, sudoku.AllUnits[u][:]); step != nil {
			return step
		}
	}
	return nil
}

func findHiddenSingleInUnit(b *board, unit []int) *Step {
	for digit := 1; digit <= 9; digit++ {
		target, ok := uniquePositionInUnit(b, unit, digit)
		if !ok {
			continue
		}
		eliminations := peerEliminations(b, target, digit)

		// The placement also discards the target cell's other candidates.
		other := b.candidates[target] &^ digitBit(digit)
		for _, d := range digitsOf(other) {
			eliminations = append(eliminations, Elimination{Index: target, Digit: d})
		}

		return &Step{
			Technique:    TechniqueHiddenSingle,
			Placements:   []Placement{{Index: target, Digit: digit}},
			Eliminations: eliminations,
		}
	}
	return nil
}

// peerEliminations lists the peers of index that still hold digit, in
// ascending cell order.
func peerEliminations(b *board, index, digit int) []Elimination {
	var elims []Elimination
	for _, peer := range sudoku.Peers[index] {
		if b.hasCandidate(peer, digit) {
			elims = append(elims, Elimination{Index: peer, Digit: digit})
		}
	}
	return elims
}

// uniquePositionInUnit finds the only cell of a unit where digit remains a
// candidate, if there is exactly one.
func uniquePositionInUnit(b *board, unit []int, digit int) (int, bool) {
	count, target := 0, 0
	for _, idx := range unit {
		if b.hasCandidate(idx, digit) {
			count++
			target = idx
			if count > 1 {
				return 0, false
			}
		}
	}
	return target, count == 1
}
