package logic

import "testing"

func TestPointingPairStep(t *testing.T) {
	grid := mustParse(t, ".....8..5..97...1..1.....687.51..........3..46......57.6...5.9..8........4.9.....")
	steps, _ := SolveWithSteps(grid)

	if len(steps) < 33 {
		t.Fatalf("SolveWithSteps returned %d steps, want at least 33", len(steps))
	}
	step := steps[32]
	if step.Technique != TechniquePointingPair {
		t.Fatalf("step 32 technique = %q, want %q", step.Technique, TechniquePointingPair)
	}
	if len(step.Cause) != 2 {
		t.Fatalf("cause = %v, want 2 cells", step.Cause)
	}
	if !hasCauseIndex(&step, 15) || !hasCauseIndex(&step, 17) {
		t.Errorf("cause cells = %v, want indices 15 and 17", step.Cause)
	}
	if got := step.Cause[0].Digits; len(got) != 1 || got[0] != 2 {
		t.Errorf("cause digits = %v, want [2]", got)
	}
	if !hasElimination(&step, 13, 2) {
		t.Errorf("eliminations %v miss digit 2 at index 13", step.Eliminations)
	}
}

func TestPointingTripleDetected(t *testing.T) {
	grid := mustParse(t, "6...5481.9.48136..81.62...42.648....18.36274.4..5.1268.68..5...5.2.38..6..1..658.")
	steps, _ := SolveWithSteps(grid)

	if firstStepOfTechnique(steps, TechniquePointingTriple) == nil {
		t.Error("no PointingTriple step in solve")
	}
}

func TestClaimingStep(t *testing.T) {
	grid := mustParse(t, "7356814..681492.3.4..7356813.71..9.894..73.1.1....937.5.4318...8.392.15.21.5.78.3")
	steps, _ := SolveWithSteps(grid)

	step := firstStepOfTechnique(steps, TechniqueClaiming)
	if step == nil {
		t.Fatal("no ClaimingCandidate step in solve")
	}
	if len(step.Eliminations) == 0 {
		t.Error("claiming step has no eliminations")
	}
	if len(step.Cause) < 2 {
		t.Errorf("cause = %v, want at least 2 cells", step.Cause)
	}
}
