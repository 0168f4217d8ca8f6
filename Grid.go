package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"gridsheet/contracts"
)

// Grid owns the fixed-size cell array and keeps every display value consistent
// with a cycle-free evaluation order after each edit. A single mutex guards
// edit-plus-recompute because the HTTP handlers run concurrently while a
// recompute pass reads and writes the whole array non-atomically.
type Grid struct {
	mu        sync.Mutex
	rows      int
	cols      int
	cells     [][]contracts.Cell
	evaluator contracts.FormulaEvaluator
}

func NewGrid(rows int, cols int, evaluator contracts.FormulaEvaluator) *Grid {
	cells := make([][]contracts.Cell, rows)
	for row := range cells {
		cells[row] = make([]contracts.Cell, cols)
	}

	return &Grid{
		rows:      rows,
		cols:      cols,
		cells:     cells,
		evaluator: evaluator,
	}
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

func (g *Grid) Cell(row int, col int) (contracts.Cell, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inBounds(row, col) {
		return contracts.Cell{}, fmt.Errorf("%d,%d: %w", row, col, contracts.CellOutOfBoundsError)
	}

	return g.cells[row][col], nil
}

// Snapshot returns a copy of the whole cell array.
func (g *Grid) Snapshot() [][]contracts.Cell {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

// SetInput stores raw input without recomputing; used when rehydrating the
// grid from storage, followed by one Recompute for the whole batch.
func (g *Grid) SetInput(row int, col int, input string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inBounds(row, col) {
		return fmt.Errorf("%d,%d: %w", row, col, contracts.CellOutOfBoundsError)
	}

	g.cells[row][col].Input = input
	return nil
}

// Recompute rebuilds the dependency graph and re-evaluates every cell.
func (g *Grid) Recompute() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.recomputeLocked()
}

// ApplyEdit stores the new input, evaluates the edited cell right away against
// the possibly stale current displays, then runs the authoritative full
// recompute. It returns the final state of the edited cell, every cell whose
// state changed, and the edited cell's evaluation error if it has one.
func (g *Grid) ApplyEdit(row int, col int, input string) (contracts.Cell, []contracts.CellUpdate, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inBounds(row, col) {
		return contracts.Cell{}, nil, fmt.Errorf("%d,%d: %w", row, col, contracts.CellOutOfBoundsError)
	}

	before := g.snapshotLocked()

	cell := &g.cells[row][col]
	cell.Input = input
	if body, ok := cell.FormulaBody(); ok {
		display, err := g.evaluator.Evaluate(body, g.valueSource())
		if err != nil {
			cell.Display = contracts.ErrorDisplay
			cell.HasError = true
		} else {
			cell.Display = display
			cell.HasError = false
		}
	}

	failures := g.recomputeLocked()

	updates := make([]contracts.CellUpdate, 0, 1)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] != before[r][c] {
				updates = append(updates, contracts.CellUpdate{
					Ref:  contracts.CellRef{Row: r, Col: c},
					Cell: g.cells[r][c],
				})
			}
		}
	}

	return g.cells[row][col], updates, failures[contracts.CellRef{Row: row, Col: col}]
}

// recomputeLocked is one full recalculation pass: plain cells settle to their
// normalized literal, formula cells enter a dependency graph and evaluate in
// Kahn topological order, and anything the order never reaches sits on or
// behind a cycle and is flagged without evaluation. It returns the evaluation
// failure per formula cell, if any.
func (g *Grid) recomputeLocked() map[contracts.CellRef]error {
	formulaCells := make([]contracts.CellRef, 0)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := &g.cells[row][col]
			if cell.IsFormula() {
				formulaCells = append(formulaCells, contracts.CellRef{Row: row, Col: col})
				continue
			}

			cell.Display = normalizeLiteral(cell.Input)
			cell.HasError = false
		}
	}

	isFormula := make(map[contracts.CellRef]bool, len(formulaCells))
	for _, ref := range formulaCells {
		isFormula[ref] = true
	}

	// edges run dependency -> dependent; only formula-cell dependencies block
	// evaluation, plain cells are constants
	dependents := make(map[contracts.CellRef][]contracts.CellRef)
	inDegree := make(map[contracts.CellRef]int, len(formulaCells))
	for _, ref := range formulaCells {
		body, _ := g.cells[ref.Row][ref.Col].FormulaBody()
		inDegree[ref] = 0
		for _, dependency := range g.evaluator.ExtractDependencies(body) {
			if !g.inBounds(dependency.Row, dependency.Col) || !isFormula[dependency] {
				continue
			}
			dependents[dependency] = append(dependents[dependency], ref)
			inDegree[ref]++
		}
	}

	queue := make([]contracts.CellRef, 0, len(formulaCells))
	for _, ref := range formulaCells {
		if inDegree[ref] == 0 {
			queue = append(queue, ref)
		}
	}

	order := make([]contracts.CellRef, 0, len(formulaCells))
	for len(queue) > 0 {
		ref := queue[0]
		queue = queue[1:]
		order = append(order, ref)

		for _, dependent := range dependents[ref] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	failures := make(map[contracts.CellRef]error)

	ordered := make(map[contracts.CellRef]bool, len(order))
	for _, ref := range order {
		ordered[ref] = true
	}
	for _, ref := range formulaCells {
		if !ordered[ref] {
			cell := &g.cells[ref.Row][ref.Col]
			cell.Display = contracts.ErrorDisplay
			cell.HasError = true
			failures[ref] = fmt.Errorf("%s: %w", cell.Input, CircularReferenceError)
		}
	}

	// dependencies were appended before their dependents, so the lookup source
	// always reads settled display values
	source := g.valueSource()
	for _, ref := range order {
		cell := &g.cells[ref.Row][ref.Col]
		body, _ := cell.FormulaBody()

		display, err := g.evaluator.Evaluate(body, source)
		if err != nil {
			cell.Display = contracts.ErrorDisplay
			cell.HasError = true
			failures[ref] = err
			continue
		}

		cell.Display = display
		cell.HasError = false
	}

	return failures
}

func (g *Grid) valueSource() contracts.CellValueSource {
	return func(row int, col int) (string, bool) {
		if !g.inBounds(row, col) {
			return "", false
		}

		display := g.cells[row][col].Display
		if display == "" {
			return "", false
		}
		return display, true
	}
}

func (g *Grid) inBounds(row int, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) snapshotLocked() [][]contracts.Cell {
	snapshot := make([][]contracts.Cell, g.rows)
	for row := range g.cells {
		snapshot[row] = make([]contracts.Cell, g.cols)
		copy(snapshot[row], g.cells[row])
	}
	return snapshot
}

// normalizeLiteral reformats numeric plain input ("007" becomes "7", "2.50"
// becomes "2.5") and passes any other text through untouched.
func normalizeLiteral(input string) string {
	if input == "" {
		return ""
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return input
	}

	return strconv.FormatFloat(value, 'f', -1, 64)
}
