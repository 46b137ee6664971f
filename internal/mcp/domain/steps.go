package domain

import (
	"golang.org/x/text/message"

	"github.com/louisbranch/sudoku/internal/explain"
	"github.com/louisbranch/sudoku/internal/logic"
)

// tracerName identifies spans created by the MCP tool handlers.
const tracerName = "mcp"

// CellDigit pairs a cell label with a digit.
type CellDigit struct {
	Cell  string `json:"cell" jsonschema:"cell in r1c1 notation"`
	Digit int    `json:"digit" jsonschema:"digit 1-9"`
}

// CellCandidates lists the candidate digits that remain in a cell.
type CellCandidates struct {
	Cell   string `json:"cell" jsonschema:"cell in r1c1 notation"`
	Digits []int  `json:"digits" jsonschema:"candidate digits in the cell"`
}

// StepDetail is one solver deduction rendered for MCP clients.
type StepDetail struct {
	Technique    string           `json:"technique" jsonschema:"technique identifier"`
	Explanation  string           `json:"explanation" jsonschema:"localized description of the step"`
	Placements   []CellDigit      `json:"placements,omitempty" jsonschema:"digits the step places"`
	Eliminations []CellDigit      `json:"eliminations,omitempty" jsonschema:"candidates the step removes"`
	Cause        []CellCandidates `json:"cause,omitempty" jsonschema:"cells that justify the step"`
}

// stepDetail renders one solver step with a localized explanation.
func stepDetail(p *message.Printer, step logic.Step) StepDetail {
	detail := StepDetail{
		Technique:   string(step.Technique),
		Explanation: explain.Describe(p, step),
	}
	for _, placement := range step.Placements {
		detail.Placements = append(detail.Placements, CellDigit{
			Cell:  explain.CellLabel(placement.Index),
			Digit: placement.Digit,
		})
	}
	for _, elimination := range step.Eliminations {
		detail.Eliminations = append(detail.Eliminations, CellDigit{
			Cell:  explain.CellLabel(elimination.Index),
			Digit: elimination.Digit,
		})
	}
	for _, cause := range step.Cause {
		detail.Cause = append(detail.Cause, CellCandidates{
			Cell:   explain.CellLabel(cause.Index),
			Digits: cause.Digits,
		})
	}
	return detail
}
