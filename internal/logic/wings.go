package logic

import (
	"math/bits"

	"github.com/louisbranch/sudoku/internal/sudoku"
)

// findXYWing looks for a bivalue pivot {a,b} with two bivalue pincers
// {a,c} and {b,c} among its peers. Whichever pivot digit is true forces c
// into one pincer, so cells seeing both pincers drop c.
func findXYWing(b *board) *Step {
	var bivalue []int
	for i := 0; i < 81; i++ {
		if b.cells[i] == 0 && bits.OnesCount16(b.candidates[i]) == 2 {
			bivalue = append(bivalue, i)
		}
	}
	if len(bivalue) < 3 {
		return nil
	}

	for _, pivot := range bivalue {
		if step := findXYWingForPivot(b, pivot); step != nil {
			return step
		}
	}
	return nil
}

func findXYWingForPivot(b *board, pivot int) *Step {
	pivotDigits := digitsOf(b.candidates[pivot])
	a, bb := pivotDigits[0], pivotDigits[1]

	var pincers []int
	for _, idx := range sudoku.Peers[pivot] {
		if b.cells[idx] == 0 &&
			bits.OnesCount16(b.candidates[idx]) == 2 &&
			b.candidates[idx]&b.candidates[pivot] != 0 {
			pincers = append(pincers, idx)
		}
	}

	for _, p1 := range pincers {
		if step := checkXYWingPincers(b, pivot, p1, pincers, a, bb); step != nil {
			return step
		}
	}
	return nil
}

func checkXYWingPincers(b *board, pivot, p1 int, pincers []int, a, bb int) *Step {
	p1Mask := b.candidates[p1]
	shareA := p1Mask&digitBit(a) != 0
	shareB := p1Mask&digitBit(bb) != 0

	// The first pincer must share exactly one pivot digit.
	if shareA == shareB {
		return nil
	}

	var c, otherPivotDigit int
	if shareA {
		c = singleDigit(p1Mask &^ digitBit(a))
		otherPivotDigit = bb
	} else {
		c = singleDigit(p1Mask &^ digitBit(bb))
		otherPivotDigit = a
	}
	targetMask := digitBit(otherPivotDigit) | digitBit(c)

	for _, p2 := range pincers {
		if p2 == p1 || b.candidates[p2] != targetMask {
			continue
		}
		elims := xyWingEliminations(b, p1, p2, pivot, c)
		if len(elims) == 0 {
			continue
		}
		return &Step{
			Technique:    TechniqueXYWing,
			Eliminations: elims,
			Cause: []CauseCell{
				{Index: pivot, Digits: []int{a, bb}},
				{Index: p1, Digits: digitsOf(b.candidates[p1])},
				{Index: p2, Digits: digitsOf(b.candidates[p2])},
			},
		}
	}
	return nil
}

func xyWingEliminations(b *board, p1, p2, pivot, c int) []Elimination {
	var elims []Elimination
	for _, target := range sudoku.Peers[p1] {
		if target != pivot && target != p2 &&
			b.hasCandidate(target, c) &&
			sudoku.ArePeers(p2, target) {
			elims = append(elims, Elimination{Index: target, Digit: c})
		}
	}
	return elims
}

// findXYZWing is the XY-Wing variant whose pivot holds all three digits.
// The shared digit z can only be eliminated from cells seeing the pivot
// and both pincers.
func findXYZWing(b *board) *Step {
	for pivot := 0; pivot < 81; pivot++ {
		if b.cells[pivot] != 0 || bits.OnesCount16(b.candidates[pivot]) != 3 {
			continue
		}
		if step := findXYZWingForPivot(b, pivot); step != nil {
			return step
		}
	}
	return nil
}

func findXYZWingForPivot(b *board, pivot int) *Step {
	pivotMask := b.candidates[pivot]

	var pincers []int
	for _, idx := range sudoku.Peers[pivot] {
		if b.cells[idx] == 0 &&
			bits.OnesCount16(b.candidates[idx]) == 2 &&
			b.candidates[idx]&^pivotMask == 0 {
			pincers = append(pincers, idx)
		}
	}
	if len(pincers) < 2 {
		return nil
	}

	for i := 0; i < len(pincers); i++ {
		for j := i + 1; j < len(pincers); j++ {
			if step := checkXYZWingPincers(b, pivot, pincers[i], pincers[j], pivotMask); step != nil {
				return step
			}
		}
	}
	return nil
}

func checkXYZWingPincers(b *board, pivot, p1, p2 int, pivotMask uint16) *Step {
	m1, m2 := b.candidates[p1], b.candidates[p2]

	common := pivotMask & m1 & m2
	if bits.OnesCount16(common) != 1 {
		return nil
	}
	z := singleDigit(common)

	var elims []Elimination
	for _, target := range sudoku.Peers[pivot] {
		if target != p1 && target != p2 &&
			b.hasCandidate(target, z) &&
			sudoku.ArePeers(p1, target) && sudoku.ArePeers(p2, target) {
			elims = append(elims, Elimination{Index: target, Digit: z})
		}
	}
	if len(elims) == 0 {
		return nil
	}
	return &Step{
		Technique:    TechniqueXYZWing,
		Eliminations: elims,
		Cause: []CauseCell{
			{Index: pivot, Digits: digitsOf(pivotMask)},
			{Index: p1, Digits: digitsOf(m1)},
			{Index: p2, Digits: digitsOf(m2)},
		},
	}
}

// findWWing pairs two non-peer bivalue cells with identical digits {a,b}.
// A unit where one of the digits has exactly two cells, each seeing one
// end of the pair, forms a strong link: the other digit must sit in one
// end, so common peers of the pair drop it.
func findWWing(b *board) *Step {
	type bivalueCell struct {
		index int
		mask  uint16
	}
	var bivalue []bivalueCell
	for i := 0; i < 81; i++ {
		if b.cells[i] == 0 && bits.OnesCount16(b.candidates[i]) == 2 {
			bivalue = append(bivalue, bivalueCell{index: i, mask: b.candidates[i]})
		}
	}

	for i := 0; i < len(bivalue); i++ {
		for j := i + 1; j < len(bivalue); j++ {
			c1, c2 := bivalue[i], bivalue[j]
			if c1.mask != c2.mask || sudoku.ArePeers(c1.index, c2.index) {
				continue
			}
			digits := digitsOf(c1.mask)
			if step := checkWWingLink(b, c1.index, c2.index, digits[0], digits[1]); step != nil {
				return step
			}
			if step := checkWWingLink(b, c1.index, c2.index, digits[1], digits[0]); step != nil {
				return step
			}
		}
	}
	return nil
}

// checkWWingLink scans all units for a strong link on linkDigit connecting
// idx1 and idx2, then eliminates elimDigit from their common peers.
func checkWWingLink(b *board, idx1, idx2, linkDigit, elimDigit int) *Step {
	for u := range sudoku.AllUnits {
		var positions []int
		for _, idx := range sudoku.AllUnits[u] {
			if b.hasCandidate(idx, linkDigit) {
				positions = append(positions, idx)
			}
		}
		if len(positions) != 2 {
			continue
		}
		p1, p2 := positions[0], positions[1]

		straight := sudoku.ArePeers(idx1, p1) && sudoku.ArePeers(idx2, p2)
		crossed := sudoku.ArePeers(idx1, p2) && sudoku.ArePeers(idx2, p1)
		if !straight && !crossed {
			continue
		}

		elims := commonPeerEliminations(b, idx1, idx2, elimDigit)
		if len(elims) == 0 {
			continue
		}
		return &Step{
			Technique:    TechniqueWWing,
			Eliminations: elims,
			Cause: []CauseCell{
				{Index: idx1, Digits: []int{linkDigit, elimDigit}},
				{Index: idx2, Digits: []int{linkDigit, elimDigit}},
				{Index: p1, Digits: []int{linkDigit}},
				{Index: p2, Digits: []int{linkDigit}},
			},
		}
	}
	return nil
}
