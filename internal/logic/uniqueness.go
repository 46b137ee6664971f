package logic

import (
	"math/bits"

	"github.com/louisbranch/sudoku/internal/sudoku"
)

// findUniqueRectangle detects Unique Rectangle Type 1: four empty corners
// across exactly two boxes where three corners hold the same bare pair. If
// the fourth corner kept that pair the rectangle's digits could swap
// freely, giving two solutions, so the pair is removed from it. Only valid
// on puzzles with a unique solution.
func findUniqueRectangle(b *board) *Step {
	for r1 := 0; r1 < 9; r1++ {
		for r2 := r1 + 1; r2 < 9; r2++ {
			for c1 := 0; c1 < 9; c1++ {
				for c2 := c1 + 1; c2 < 9; c2++ {
					if step := checkRectangle(b, r1, r2, c1, c2); step != nil {
						return step
					}
				}
			}
		}
	}
	return nil
}

func checkRectangle(b *board, r1, r2, c1, c2 int) *Step {
	corners := [4]int{
		r1*9 + c1, // top left
		r1*9 + c2, // top right
		r2*9 + c1, // bottom left
		r2*9 + c2, // bottom right
	}

	if !validRectangleGeometry(corners) {
		return nil
	}
	for _, idx := range corners {
		if b.cells[idx] != 0 {
			return nil
		}
	}
	return rectangleType1Step(b, corners)
}

// validRectangleGeometry requires the corners to span exactly two boxes,
// pairing up either vertically or horizontally.
func validRectangleGeometry(corners [4]int) bool {
	tl := sudoku.BoxIndex(corners[0])
	tr := sudoku.BoxIndex(corners[1])
	bl := sudoku.BoxIndex(corners[2])
	br := sudoku.BoxIndex(corners[3])

	if tl == bl && tr == br && tl != tr {
		return true
	}
	if tl == tr && bl == br && tl != bl {
		return true
	}
	return false
}

func rectangleType1Step(b *board, corners [4]int) *Step {
	var masks [4]uint16
	for i, idx := range corners {
		masks[i] = b.candidates[idx]
	}

	// At least three corners must share the same bare pair.
	var common uint16
	found := false
	for i := 0; i < 4 && !found; i++ {
		if bits.OnesCount16(masks[i]) != 2 {
			continue
		}
		count := 0
		for _, m := range masks {
			if m == masks[i] {
				count++
			}
		}
		if count >= 3 {
			common = masks[i]
			found = true
		}
	}
	if !found {
		return nil
	}

	for i := 0; i < 4; i++ {
		if masks[i] == common || masks[i]&common != common {
			continue
		}
		digits := digitsOf(common)

		elims := make([]Elimination, 0, len(digits))
		for _, d := range digits {
			elims = append(elims, Elimination{Index: corners[i], Digit: d})
		}
		cause := make([]CauseCell, 0, 3)
		for j, idx := range corners {
			if j != i {
				cause = append(cause, CauseCell{Index: idx, Digits: digits})
			}
		}
		return &Step{Technique: TechniqueUniqueRectangle, Eliminations: elims, Cause: cause}
	}
	return nil
}
