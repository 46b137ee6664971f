package logic

import (
	"math/bits"

	"github.com/louisbranch/sudoku/internal/sudoku"
)

// Single-digit chains built on lines where a digit has exactly two
// possible cells.

// findSkyscraper looks for two parallel lines whose candidate pairs share
// one cover line. One of the two off-line cells (the roof) must hold the
// digit, so any cell seeing both roofs drops it.
func findSkyscraper(b *board) *Step {
	rowMasks, colMasks := b.fishMasks()

	for digit := 1; digit <= 9; digit++ {
		if step := checkSkyscraper(b, digit, &rowMasks[digit], true); step != nil {
			return step
		}
		if step := checkSkyscraper(b, digit, &colMasks[digit], false); step != nil {
			return step
		}
	}
	return nil
}

func checkSkyscraper(b *board, digit int, masks *[9]uint16, isRowBase bool) *Step {
	var lines []int
	for i, m := range masks {
		if bits.OnesCount16(m) == 2 {
			lines = append(lines, i)
		}
	}
	if len(lines) < 2 {
		return nil
	}

	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			if step := checkSkyscraperPair(b, digit, masks, isRowBase, lines[i], lines[j]); step != nil {
				return step
			}
		}
	}
	return nil
}

func checkSkyscraperPair(b *board, digit int, masks *[9]uint16, isRowBase bool, l1, l2 int) *Step {
	m1, m2 := masks[l1], masks[l2]

	common := m1 & m2
	if bits.OnesCount16(common) != 1 {
		return nil
	}

	roof1 := lineCell(l1, bits.TrailingZeros16(m1&^common), isRowBase)
	roof2 := lineCell(l2, bits.TrailingZeros16(m2&^common), isRowBase)

	baseCover := bits.TrailingZeros16(common)
	base1 := lineCell(l1, baseCover, isRowBase)
	base2 := lineCell(l2, baseCover, isRowBase)

	elims := commonPeerEliminations(b, roof1, roof2, digit)
	if len(elims) == 0 {
		return nil
	}
	return &Step{
		Technique:    TechniqueSkyscraper,
		Eliminations: elims,
		Cause: []CauseCell{
			{Index: roof1, Digits: []int{digit}},
			{Index: roof2, Digits: []int{digit}},
			{Index: base1, Digits: []int{digit}},
			{Index: base2, Digits: []int{digit}},
		},
	}
}

// findTwoStringKite links a two-candidate row and a two-candidate column
// through a shared box. The row and column ends outside the box cannot
// both lack the digit, so their common peers drop it.
func findTwoStringKite(b *board) *Step {
	rowMasks, colMasks := b.fishMasks()

	for digit := 1; digit <= 9; digit++ {
		if step := checkTwoStringKite(b, digit, &rowMasks[digit], &colMasks[digit]); step != nil {
			return step
		}
	}
	return nil
}

func checkTwoStringKite(b *board, digit int, rowMasks, colMasks *[9]uint16) *Step {
	var rows, cols []int
	for i, m := range rowMasks {
		if bits.OnesCount16(m) == 2 {
			rows = append(rows, i)
		}
	}
	for i, m := range colMasks {
		if bits.OnesCount16(m) == 2 {
			cols = append(cols, i)
		}
	}

	for _, r := range rows {
		for _, c := range cols {
			rowCols := digitsOf(rowMasks[r])
			colRows := digitsOf(colMasks[c])

			rowCells := [2]int{r*9 + rowCols[0] - 1, r*9 + rowCols[1] - 1}
			colCells := [2]int{(colRows[0]-1)*9 + c, (colRows[1]-1)*9 + c}

			if step := checkKiteConnection(b, digit, rowCells, colCells); step != nil {
				return step
			}
		}
	}
	return nil
}

func checkKiteConnection(b *board, digit int, rowCells, colCells [2]int) *Step {
	for _, rc := range rowCells {
		for _, cc := range colCells {
			if rc == cc || sudoku.BoxIndex(rc) != sudoku.BoxIndex(cc) {
				continue
			}
			otherRC := rowCells[0]
			if rc == rowCells[0] {
				otherRC = rowCells[1]
			}
			otherCC := colCells[0]
			if cc == colCells[0] {
				otherCC = colCells[1]
			}
			if step := kiteStep(b, digit, rc, cc, otherRC, otherCC); step != nil {
				return step
			}
		}
	}
	return nil
}

func kiteStep(b *board, digit, rc, cc, otherRC, otherCC int) *Step {
	elims := commonPeerEliminations(b, otherRC, otherCC, digit)
	if len(elims) == 0 {
		return nil
	}
	return &Step{
		Technique:    TechniqueTwoStringKite,
		Eliminations: elims,
		Cause: []CauseCell{
			{Index: rc, Digits: []int{digit}},
			{Index: cc, Digits: []int{digit}},
			{Index: otherRC, Digits: []int{digit}},
			{Index: otherCC, Digits: []int{digit}},
		},
	}
}

// lineCell maps a (line, cover) position to a cell index.
func lineCell(line, cover int, isRowBase bool) int {
	if isRowBase {
		return line*9 + cover
	}
	return cover*9 + line
}

// commonPeerEliminations lists the cells seeing both a and c that still
// hold digit, in ascending cell order.
func commonPeerEliminations(b *board, a, c, digit int) []Elimination {
	var elims []Elimination
	for _, peer := range sudoku.Peers[a] {
		if b.hasCandidate(peer, digit) && sudoku.ArePeers(c, peer) {
			elims = append(elims, Elimination{Index: peer, Digit: digit})
		}
	}
	return elims
}
