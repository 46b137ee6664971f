// Package logic is a human-style Sudoku deduction engine. It repeatedly
// applies named solving techniques to a candidate-tracking board until no
// technique makes progress, recording every step it takes, and classifies
// a puzzle's difficulty by the hardest technique the run required.
//
// The engine never guesses: every placement and elimination it emits is
// provable from the current candidate state. Grids that resist all
// techniques are returned partially solved; completing them is the
// backtracking solver's job.
package logic

// Technique identifies the solving technique that produced a step. The
// vocabulary is closed: difficulty classification depends on these exact
// strings.
type Technique string

const (
	TechniqueNakedSingle       Technique = "NakedSingle"
	TechniqueHiddenSingle      Technique = "HiddenSingle"
	TechniqueNakedPair         Technique = "NakedPair"
	TechniqueNakedTriple       Technique = "NakedTriple"
	TechniqueHiddenPair        Technique = "HiddenPair"
	TechniqueHiddenTriple      Technique = "HiddenTriple"
	TechniquePointingPair      Technique = "PointingPair"
	TechniquePointingTriple    Technique = "PointingTriple"
	TechniqueClaiming          Technique = "ClaimingCandidate"
	TechniqueXWing             Technique = "X-Wing"
	TechniqueSwordfish         Technique = "Swordfish"
	TechniqueJellyfish         Technique = "Jellyfish"
	TechniqueXYWing            Technique = "XY-Wing"
	TechniqueXYZWing           Technique = "XYZ-Wing"
	TechniqueSkyscraper        Technique = "Skyscraper"
	TechniqueTwoStringKite     Technique = "TwoStringKite"
	TechniqueUniqueRectangle   Technique = "UniqueRectangleType1"
	TechniqueWWing             Technique = "W-Wing"
)

// Placement fills one cell with a digit.
type Placement struct {
	Index int
	Digit int
}

// Elimination removes one candidate digit from one cell.
type Elimination struct {
	Index int
	Digit int
}

// CauseCell marks a cell (and the candidate digits in it) that justifies a
// step. Cause cells explain the deduction to a human; they carry no
// correctness weight.
type CauseCell struct {
	Index  int
	Digits []int
}

// Step is one committed deduction: the technique that found it, at most
// one placement, zero or more eliminations, and the cells that justify it.
// Every step a finder returns has at least one placement or elimination.
type Step struct {
	Technique    Technique
	Placements   []Placement
	Eliminations []Elimination
	Cause        []CauseCell
}
