package sudoku

import (
	"errors"
	"strings"
	"testing"
)

const sampleGrid = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		grid    string
		wantErr error
	}{
		{
			name: "dots for empty cells",
			grid: sampleGrid,
		},
		{
			name: "zeros for empty cells",
			grid: strings.ReplaceAll(sampleGrid, ".", "0"),
		},
		{
			name: "fully empty",
			grid: strings.Repeat(".", 81),
		},
		{
			name:    "too short",
			grid:    strings.Repeat(".", 80),
			wantErr: ErrGridLength,
		},
		{
			name:    "too long",
			grid:    strings.Repeat(".", 82),
			wantErr: ErrGridLength,
		},
		{
			name:    "invalid character",
			grid:    "x" + strings.Repeat(".", 80),
			wantErr: ErrGridCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(tt.grid)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			want := strings.ReplaceAll(tt.grid, "0", ".")
			if got := b.String(); got != want {
				t.Errorf("String() got %q, want %q", got, want)
			}
		})
	}
}

func TestParse_CellValues(t *testing.T) {
	b, err := Parse(sampleGrid)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if b[0] != 5 {
		t.Errorf("cell 0 got %d, want 5", b[0])
	}
	if b[2] != 0 {
		t.Errorf("cell 2 got %d, want 0", b[2])
	}
	if b[80] != 9 {
		t.Errorf("cell 80 got %d, want 9", b[80])
	}
}

func TestBoard_Solved(t *testing.T) {
	var b Board
	if b.Solved() {
		t.Error("Solved() got true for empty board, want false")
	}
	for i := range b {
		b[i] = uint8(i%9) + 1
	}
	if !b.Solved() {
		t.Error("Solved() got false for full board, want true")
	}
}

func TestBoard_Clues(t *testing.T) {
	b, err := Parse(sampleGrid)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := b.Clues(); got != 30 {
		t.Errorf("Clues() got %d, want 30", got)
	}
}
