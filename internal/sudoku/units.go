package sudoku

// Board geometry, computed once at package initialization and treated as
// read-only afterwards. Every unit-driven scan in this module iterates
// AllUnits in the same fixed sequence: rows 0-8, columns 0-8, boxes 0-8.
var (
	// RowUnits lists the cell indices of each row.
	RowUnits = buildRowUnits()
	// ColUnits lists the cell indices of each column.
	ColUnits = buildColUnits()
	// BoxUnits lists the cell indices of each 3x3 box, in row-major order
	// within the box.
	BoxUnits = buildBoxUnits()
	// AllUnits concatenates RowUnits, ColUnits and BoxUnits.
	AllUnits = buildAllUnits()
	// Peers maps each cell to its 20 peers (same row, column or box,
	// excluding the cell itself).
	//
	// # Ordering
	//
	// Peer lists are sorted ascending, so any scan over Peers[i] visits
	// cells in index order. Elimination ordering inside solving steps
	// relies on this.
	Peers = buildPeers()
)

func buildRowUnits() [9][9]int {
	var units [9][9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			units[r][c] = r*9 + c
		}
	}
	return units
}

func buildColUnits() [9][9]int {
	var units [9][9]int
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			units[c][r] = r*9 + c
		}
	}
	return units
}

func buildBoxUnits() [9][9]int {
	var units [9][9]int
	for b := 0; b < 9; b++ {
		startRow := (b / 3) * 3
		startCol := (b % 3) * 3
		for j := 0; j < 9; j++ {
			units[b][j] = (startRow+j/3)*9 + (startCol + j%3)
		}
	}
	return units
}

func buildAllUnits() [27][9]int {
	var units [27][9]int
	copy(units[0:9], RowUnits[:])
	copy(units[9:18], ColUnits[:])
	copy(units[18:27], BoxUnits[:])
	return units
}

func buildPeers() [81][20]int {
	var peers [81][20]int
	for i := 0; i < 81; i++ {
		row, col := i/9, i%9
		startRow := (row / 3) * 3
		startCol := (col / 3) * 3

		var seen [81]bool
		for c := 0; c < 9; c++ {
			seen[row*9+c] = true
		}
		for r := 0; r < 9; r++ {
			seen[r*9+col] = true
		}
		for r := startRow; r < startRow+3; r++ {
			for c := startCol; c < startCol+3; c++ {
				seen[r*9+c] = true
			}
		}
		seen[i] = false

		n := 0
		for j := 0; j < 81; j++ {
			if seen[j] {
				peers[i][n] = j
				n++
			}
		}
	}
	return peers
}

// BoxIndex returns the 3x3 box (0-8) containing cell i.
func BoxIndex(i int) int {
	return (i/27)*3 + (i%9)/3
}

// ArePeers reports whether two distinct cells share a row, column or box.
// A cell is not its own peer.
func ArePeers(a, b int) bool {
	if a == b {
		return false
	}
	if a/9 == b/9 || a%9 == b%9 {
		return true
	}
	return BoxIndex(a) == BoxIndex(b)
}
