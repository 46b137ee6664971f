// Package sudoku provides the 9x9 grid value type and the fixed board
// geometry (rows, columns, boxes, peers) shared by every solver in this
// module.
package sudoku

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGridLength indicates a grid string is not exactly 81 characters.
	ErrGridLength = errors.New("grid must be 81 characters")
	// ErrGridCharacter indicates a grid string holds a character other
	// than 1-9, '.' or '0'.
	ErrGridCharacter = errors.New("grid character must be 1-9, '.' or '0'")
)

// Board is a 9x9 grid in row-major order. A cell holds 0 when empty or a
// placed digit 1-9. Index i maps to row i/9, column i%9.
type Board [81]uint8

// Parse decodes an 81-character grid string. Digits 1-9 are placed cells;
// '.' and '0' are empty cells.
func Parse(s string) (Board, error) {
	var b Board
	if len(s) != 81 {
		return Board{}, fmt.Errorf("grid length %d: %w", len(s), ErrGridLength)
	}
	for i := 0; i < 81; i++ {
		c := s[i]
		switch {
		case c == '.' || c == '0':
			b[i] = 0
		case c >= '1' && c <= '9':
			b[i] = c - '0'
		default:
			return Board{}, fmt.Errorf("grid index %d has %q: %w", i, c, ErrGridCharacter)
		}
	}
	return b, nil
}

// String encodes the board as an 81-character grid string with '.' for
// empty cells. It round-trips through Parse.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(81)
	for _, c := range b {
		if c == 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + c)
		}
	}
	return sb.String()
}

// Solved reports whether every cell holds a digit.
func (b Board) Solved() bool {
	for _, c := range b {
		if c == 0 {
			return false
		}
	}
	return true
}

// Clues counts the filled cells.
func (b Board) Clues() int {
	n := 0
	for _, c := range b {
		if c != 0 {
			n++
		}
	}
	return n
}
