package logic

import (
	"math/bits"

	"github.com/louisbranch/sudoku/internal/sudoku"
)

// Naked subsets: n cells of a unit whose candidates together cover only n
// digits lock those digits, removing them from the rest of the unit.

func findNakedPair(b *board) *Step {
	for u := range sudoku.AllUnits {
		unit := sudoku.AllUnits[u][:]
		cells := nakedSubsetCells(b, unit, 2)
		if len(cells) < 2 {
			continue
		}
		for i := 0; i < len(cells); i++ {
			for j := i + 1; j < len(cells); j++ {
				mask := b.candidates[cells[i]]
				if mask != b.candidates[cells[j]] || bits.OnesCount16(mask) != 2 {
					continue
				}
				if step := nakedSubsetStep(b, []int{cells[i], cells[j]}, mask, unit, TechniqueNakedPair); step != nil {
					return step
				}
			}
		}
	}
	return nil
}

func findNakedTriple(b *board) *Step {
	for u := range sudoku.AllUnits {
		unit := sudoku.AllUnits[u][:]
		cells := nakedSubsetCells(b, unit, 3)
		if len(cells) < 3 {
			continue
		}
		for i := 0; i < len(cells); i++ {
			for j := i + 1; j < len(cells); j++ {
				for k := j + 1; k < len(cells); k++ {
					union := b.candidates[cells[i]] | b.candidates[cells[j]] | b.candidates[cells[k]]
					if bits.OnesCount16(union) != 3 {
						continue
					}
					if step := nakedSubsetStep(b, []int{cells[i], cells[j], cells[k]}, union, unit, TechniqueNakedTriple); step != nil {
						return step
					}
				}
			}
		}
	}
	return nil
}

// nakedSubsetCells lists the empty cells of a unit holding between 2 and
// size candidates, in unit order.
func nakedSubsetCells(b *board, unit []int, size int) []int {
	var cells []int
	for _, idx := range unit {
		if b.cells[idx] != 0 {
			continue
		}
		if n := bits.OnesCount16(b.candidates[idx]); n >= 2 && n <= size {
			cells = append(cells, idx)
		}
	}
	return cells
}

// nakedSubsetStep eliminates the subset digits from every other cell of
// the unit that holds one. Returns nil when nothing can be eliminated.
func nakedSubsetStep(b *board, subset []int, mask uint16, unit []int, technique Technique) *Step {
	digits := digitsOf(mask)

	var elims []Elimination
	for _, idx := range unit {
		if containsInt(subset, idx) || b.cells[idx] != 0 || b.candidates[idx]&mask == 0 {
			continue
		}
		for _, d := range digits {
			if b.candidates[idx]&digitBit(d) != 0 {
				elims = append(elims, Elimination{Index: idx, Digit: d})
			}
		}
	}
	if len(elims) == 0 {
		return nil
	}

	cause := make([]CauseCell, 0, len(subset))
	for _, idx := range subset {
		cause = append(cause, CauseCell{Index: idx, Digits: digits})
	}
	return &Step{Technique: technique, Eliminations: elims, Cause: cause}
}

// Hidden subsets: n digits confined to the same n cells of a unit strip
// every other candidate from those cells.

func findHiddenPair(b *board) *Step {
	for u := range sudoku.AllUnits {
		unit := sudoku.AllUnits[u][:]
		positions := candidatePositionsInUnit(b, unit)
		digits := hiddenSubsetDigits(positions, 2)
		if len(digits) < 2 {
			continue
		}
		for i := 0; i < len(digits); i++ {
			for j := i + 1; j < len(digits); j++ {
				d1, d2 := digits[i], digits[j]
				if positions[d1] != positions[d2] || bits.OnesCount16(positions[d1]) != 2 {
					continue
				}
				cells := cellsFromUnitMask(unit, positions[d1])
				keep := digitBit(d1) | digitBit(d2)
				if step := hiddenSubsetStep(b, cells, keep, []int{d1, d2}, TechniqueHiddenPair); step != nil {
					return step
				}
			}
		}
	}
	return nil
}

func findHiddenTriple(b *board) *Step {
	for u := range sudoku.AllUnits {
		unit := sudoku.AllUnits[u][:]
		positions := candidatePositionsInUnit(b, unit)
		digits := hiddenSubsetDigits(positions, 3)
		if len(digits) < 3 {
			continue
		}
		for i := 0; i < len(digits); i++ {
			for j := i + 1; j < len(digits); j++ {
				for k := j + 1; k < len(digits); k++ {
					d1, d2, d3 := digits[i], digits[j], digits[k]
					combined := positions[d1] | positions[d2] | positions[d3]
					if bits.OnesCount16(combined) != 3 {
						continue
					}
					cells := cellsFromUnitMask(unit, combined)
					keep := digitBit(d1) | digitBit(d2) | digitBit(d3)
					if step := hiddenSubsetStep(b, cells, keep, []int{d1, d2, d3}, TechniqueHiddenTriple); step != nil {
						return step
					}
				}
			}
		}
	}
	return nil
}

// candidatePositionsInUnit maps each digit to a bitmask of the unit
// positions (0-8) still holding it. Index 0 is unused.
func candidatePositionsInUnit(b *board, unit []int) [10]uint16 {
	var positions [10]uint16
	for pos, idx := range unit {
		if b.cells[idx] != 0 {
			continue
		}
		for mask := b.candidates[idx]; mask != 0; mask &= mask - 1 {
			d := bits.TrailingZeros16(mask) + 1
			positions[d] |= 1 << pos
		}
	}
	return positions
}

// hiddenSubsetDigits lists the digits appearing in 2 to size positions of
// a unit, ascending.
func hiddenSubsetDigits(positions [10]uint16, size int) []int {
	var digits []int
	for d := 1; d <= 9; d++ {
		if n := bits.OnesCount16(positions[d]); n >= 2 && n <= size {
			digits = append(digits, d)
		}
	}
	return digits
}

// cellsFromUnitMask resolves a position bitmask back to cell indices, in
// unit order.
func cellsFromUnitMask(unit []int, mask uint16) []int {
	cells := make([]int, 0, bits.OnesCount16(mask))
	for pos, idx := range unit {
		if mask&(1<<pos) != 0 {
			cells = append(cells, idx)
		}
	}
	return cells
}

// hiddenSubsetStep strips every candidate outside keep from the subset
// cells. Returns nil when the cells hold nothing else.
func hiddenSubsetStep(b *board, cells []int, keep uint16, digits []int, technique Technique) *Step {
	var elims []Elimination
	for _, idx := range cells {
		other := b.candidates[idx] &^ keep
		for _, d := range digitsOf(other) {
			elims = append(elims, Elimination{Index: idx, Digit: d})
		}
	}
	if len(elims) == 0 {
		return nil
	}

	cause := make([]CauseCell, 0, len(cells))
	for _, idx := range cells {
		cause = append(cause, CauseCell{Index: idx, Digits: digits})
	}
	return &Step{Technique: technique, Eliminations: elims, Cause: cause}
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
