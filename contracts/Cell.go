package contracts

import (
	"errors"
	"strings"
)

// FormulaMarker prefixes input that must be evaluated instead of shown verbatim.
const FormulaMarker = "="

// ErrorDisplay is the fixed sentinel shown for any cell whose evaluation failed
// or which sits on (or behind) a reference cycle.
const ErrorDisplay = "#ERROR"

// CellRef is a zero-based (row, column) grid coordinate.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Cell struct {
	Input    string `json:"input"`
	Display  string `json:"display"`
	HasError bool   `json:"has_error"`
}

func (c *Cell) IsFormula() bool {
	return strings.HasPrefix(c.Input, FormulaMarker)
}

// FormulaBody strips the marker; ok is false for plain input.
func (c *Cell) FormulaBody() (body string, ok bool) {
	if !c.IsFormula() {
		return "", false
	}
	return c.Input[len(FormulaMarker):], true
}

// CellUpdate pairs a coordinate with the cell state it holds after a recompute.
type CellUpdate struct {
	Ref  CellRef `json:"ref"`
	Cell Cell    `json:"cell"`
}

var CellOutOfBoundsError = errors.New("cell is outside the grid")
