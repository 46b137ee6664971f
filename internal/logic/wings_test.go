package logic

import "testing"

func TestXYWingDetected(t *testing.T) {
	grid := mustParse(t, "68.5172.451.2946....468351.8.67.59419.14683.5.451.986..628.14..1.89427.64..3.61..")
	steps, _ := SolveWithSteps(grid)

	if firstStepOfTechnique(steps, TechniqueXYWing) == nil {
		t.Error("no XY-Wing step in solve")
	}
}

func TestXYZWingDetected(t *testing.T) {
	grid := mustParse(t, ".92..175.5..2....8....3.2...75..496.2...6..75.697...3...8.9..2.7....3.899.38...4.")
	steps, _ := SolveWithSteps(grid)

	if firstStepOfTechnique(steps, TechniqueXYZWing) == nil {
		t.Error("no XYZ-Wing step in solve")
	}
}

func TestWWingDetected(t *testing.T) {
	grid := mustParse(t, "4..2....9..16...7..8.4....17.4....9.....4.....9....7.65....3.2..2...61..9....4..7")
	steps, _ := SolveWithSteps(grid)

	step := firstStepOfTechnique(steps, TechniqueWWing)
	if step == nil {
		t.Fatal("no W-Wing step in solve")
	}
	// The first two cause cells are the bivalue ends, the last two the
	// strong-link cells.
	if len(step.Cause) != 4 {
		t.Errorf("cause = %v, want 4 cells", step.Cause)
	}
}
