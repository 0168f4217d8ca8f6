package contracts

// CellValueSource resolves a zero-based coordinate to the current textual value
// of that cell. ok is false when the cell is empty or absent, which the
// evaluator treats differently from non-numeric text.
type CellValueSource func(row int, col int) (value string, ok bool)

type FormulaEvaluator interface {
	// Evaluate computes a marker-free formula body against source and returns
	// the formatted display value.
	Evaluate(formula string, source CellValueSource) (string, error)

	// ExtractDependencies returns the distinct cell coordinates the formula
	// text mentions. The scan is purely textual: a range contributes its two
	// endpoints, not every interior cell.
	ExtractDependencies(formula string) []CellRef
}
