package logic

import "github.com/louisbranch/sudoku/internal/sudoku"

// A finder inspects the board and returns one applicable step, or nil.
// Finders never mutate the board and return the first match of their
// fixed search order.
type finder func(*board) *Step

// finders is the technique priority list. The orchestrator always applies
// the first technique that matches, so cheap deductions run before
// expensive pattern searches.
var finders = []finder{
	findNakedSingle,
	findHiddenSingle,
	findNakedPair,
	findNakedTriple,
	findPointingSubset,
	findHiddenPair,
	findHiddenTriple,
	findClaiming,
	findFish,
	findXYWing,
	findXYZWing,
	findSkyscraper,
	findTwoStringKite,
	findUniqueRectangle,
	findWWing,
}

// SolveWithSteps applies techniques until none matches, recording every
// step, and returns the steps with the resulting grid. The grid comes
// back fully solved only when technique logic alone suffices; stubborn
// cells stay empty.
//
// # Determinism
//
// The same grid always yields the same step sequence: the technique
// priority list is fixed, each finder scans in a fixed order, and every
// applied step restarts the search from the top of the list.
func SolveWithSteps(grid sudoku.Board) ([]Step, sudoku.Board) {
	b := newBoard(grid)
	var steps []Step

	for {
		step := nextStep(b)
		if step == nil {
			break
		}
		applyStep(b, step)
		steps = append(steps, *step)
	}
	return steps, b.grid()
}

func nextStep(b *board) *Step {
	for _, find := range finders {
		if step := find(b); step != nil {
			return step
		}
	}
	return nil
}

// applyStep commits a step: placements first, then eliminations.
func applyStep(b *board, step *Step) {
	for _, p := range step.Placements {
		b.setCell(p.Index, uint8(p.Digit))
	}
	for _, e := range step.Eliminations {
		b.eliminate(e.Index, e.Digit)
	}
}
