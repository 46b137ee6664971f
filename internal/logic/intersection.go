package logic

import "github.com/louisbranch/sudoku/internal/sudoku"

// findPointingSubset scans boxes for a digit confined to a single row or
// column of the box. The digit then disappears from the rest of that line.
// Two aligned cells make a PointingPair, three a PointingTriple.
func findPointingSubset(b *board) *Step {
	for boxIdx := 0; boxIdx < 9; boxIdx++ {
		for digit := 1; digit <= 9; digit++ {
			var cells []int
			for _, idx := range sudoku.BoxUnits[boxIdx] {
				if b.hasCandidate(idx, digit) {
					cells = append(cells, idx)
				}
			}
			if len(cells) < 2 || len(cells) > 3 {
				continue
			}
			if step := checkPointingAlignment(b, cells, boxIdx, digit); step != nil {
				return step
			}
		}
	}
	return nil
}

func checkPointingAlignment(b *board, cells []int, boxIdx, digit int) *Step {
	row0, col0 := cells[0]/9, cells[0]%9
	sameRow, sameCol := true, true
	for _, c := range cells {
		if c/9 != row0 {
			sameRow = false
		}
		if c%9 != col0 {
			sameCol = false
		}
	}

	if sameRow {
		elims := pointingEliminations(b, digit, boxIdx, func(k int) int { return row0*9 + k })
		if len(elims) != 0 {
			return pointingStep(cells, elims, digit)
		}
	}
	if sameCol {
		elims := pointingEliminations(b, digit, boxIdx, func(k int) int { return k*9 + col0 })
		if len(elims) != 0 {
			return pointingStep(cells, elims, digit)
		}
	}
	return nil
}

// pointingEliminations walks a line via the coordinate mapper and collects
// the cells outside the source box that still hold digit.
func pointingEliminations(b *board, digit, boxIdx int, mapper func(int) int) []Elimination {
	var elims []Elimination
	for k := 0; k < 9; k++ {
		idx := mapper(k)
		if sudoku.BoxIndex(idx) != boxIdx && b.hasCandidate(idx, digit) {
			elims = append(elims, Elimination{Index: idx, Digit: digit})
		}
	}
	return elims
}

func pointingStep(cells []int, elims []Elimination, digit int) *Step {
	technique := TechniquePointingPair
	if len(cells) == 3 {
		technique = TechniquePointingTriple
	}
	cause := make([]CauseCell, 0, len(cells))
	for _, idx := range cells {
		cause = append(cause, CauseCell{Index: idx, Digits: []int{digit}})
	}
	return &Step{Technique: technique, Eliminations: elims, Cause: cause}
}

// findClaiming scans rows then columns for a digit confined to a single
// box. The digit then disappears from the box cells off that line.
func findClaiming(b *board) *Step {
	for row := 0; row < 9; row++ {
		if step := findClaimingInLine(b, sudoku.RowUnits[row][:], row, true); step != nil {
			return step
		}
	}
	for col := 0; col < 9; col++ {
		if step := findClaimingInLine(b, sudoku.ColUnits[col][:], col, false); step != nil {
			return step
		}
	}
	return nil
}

func findClaimingInLine(b *board, line []int, lineIdx int, isRow bool) *Step {
	for digit := 1; digit <= 9; digit++ {
		var cells []int
		var boxes [9]bool
		boxCount := 0
		boxIdx := -1
		for _, idx := range line {
			if !b.hasCandidate(idx, digit) {
				continue
			}
			cells = append(cells, idx)
			if box := sudoku.BoxIndex(idx); !boxes[box] {
				boxes[box] = true
				boxCount++
				boxIdx = box
			}
		}
		if len(cells) == 0 || boxCount != 1 {
			continue
		}

		elims := claimingEliminations(b, boxIdx, lineIdx, isRow, digit)
		if len(elims) == 0 {
			continue
		}
		cause := make([]CauseCell, 0, len(cells))
		for _, idx := range cells {
			cause = append(cause, CauseCell{Index: idx, Digits: []int{digit}})
		}
		return &Step{Technique: TechniqueClaiming, Eliminations: elims, Cause: cause}
	}
	return nil
}

// claimingEliminations collects the box cells off the source line that
// still hold digit.
func claimingEliminations(b *board, boxIdx, lineIdx int, isRow bool, digit int) []Elimination {
	var elims []Elimination
	for _, idx := range sudoku.BoxUnits[boxIdx] {
		onLine := idx%9 == lineIdx
		if isRow {
			onLine = idx/9 == lineIdx
		}
		if !onLine && b.hasCandidate(idx, digit) {
			elims = append(elims, Elimination{Index: idx, Digit: digit})
		}
	}
	return elims
}
