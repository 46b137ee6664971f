package logic

import "math/bits"

// Fish patterns: when every candidate for a digit inside n base lines
// falls on at most n cover lines of the other orientation, the digit
// cannot appear anywhere else on those cover lines. Sizes 2, 3 and 4 are
// X-Wing, Swordfish and Jellyfish.

type fishSearch struct {
	digit     int
	lines     []int // base line indices with 2..size candidates
	masks     *[9]uint16
	size      int
	isRowBase bool
	technique Technique
}

var fishConfigs = []struct {
	size      int
	technique Technique
}{
	{2, TechniqueXWing},
	{3, TechniqueSwordfish},
	{4, TechniqueJellyfish},
}

// findFish searches digits ascending; per digit the smaller fish are tried
// first, rows as base lines before columns.
func findFish(b *board) *Step {
	rowMasks, colMasks := b.fishMasks()

	for digit := 1; digit <= 9; digit++ {
		for _, cfg := range fishConfigs {
			if step := checkFish(b, digit, &rowMasks[digit], cfg.size, true, cfg.technique); step != nil {
				return step
			}
			if step := checkFish(b, digit, &colMasks[digit], cfg.size, false, cfg.technique); step != nil {
				return step
			}
		}
	}
	return nil
}

func checkFish(b *board, digit int, masks *[9]uint16, size int, isRowBase bool, technique Technique) *Step {
	var lines []int
	for i, m := range masks {
		if n := bits.OnesCount16(m); n >= 2 && n <= size {
			lines = append(lines, i)
		}
	}
	if len(lines) < size {
		return nil
	}

	search := &fishSearch{
		digit:     digit,
		lines:     lines,
		masks:     masks,
		size:      size,
		isRowBase: isRowBase,
		technique: technique,
	}
	return findFishCombo(b, search, 0, make([]int, 0, size))
}

// findFishCombo walks base-line combinations in ascending index order.
func findFishCombo(b *board, search *fishSearch, start int, combo []int) *Step {
	if len(combo) == search.size {
		var union uint16
		for _, idx := range combo {
			union |= search.masks[idx]
		}
		// A union narrower than the base set still covers it, so
		// degenerate fish are accepted rather than left to a smaller
		// pattern.
		if bits.OnesCount16(union) <= search.size {
			return fishStep(b, search, combo, union)
		}
		return nil
	}

	for i := start; i < len(search.lines); i++ {
		combo = append(combo, search.lines[i])
		if step := findFishCombo(b, search, i+1, combo); step != nil {
			return step
		}
		combo = combo[:len(combo)-1]
	}
	return nil
}

func fishStep(b *board, search *fishSearch, base []int, union uint16) *Step {
	var cover []int
	for x := 0; x < 9; x++ {
		if union&(1<<x) != 0 {
			cover = append(cover, x)
		}
	}

	var cause []CauseCell
	for _, baseIdx := range base {
		for _, coverIdx := range cover {
			idx := fishCell(baseIdx, coverIdx, search.isRowBase)
			if b.hasCandidate(idx, search.digit) {
				cause = append(cause, CauseCell{Index: idx, Digits: []int{search.digit}})
			}
		}
	}

	var elims []Elimination
	for _, coverIdx := range cover {
		for orth := 0; orth < 9; orth++ {
			if containsInt(base, orth) {
				continue
			}
			idx := fishCell(orth, coverIdx, search.isRowBase)
			if b.hasCandidate(idx, search.digit) {
				elims = append(elims, Elimination{Index: idx, Digit: search.digit})
			}
		}
	}
	if len(elims) == 0 {
		return nil
	}
	return &Step{Technique: search.technique, Eliminations: elims, Cause: cause}
}

// fishCell maps a (base line, cover line) pair to a cell index.
func fishCell(baseIdx, coverIdx int, isRowBase bool) int {
	if isRowBase {
		return baseIdx*9 + coverIdx
	}
	return coverIdx*9 + baseIdx
}
