package main

import "gridsheet/contracts"

// NewMapValueSource serves cell values from a fixed coordinate map; used by
// the eval command and by tests.
func NewMapValueSource(values map[contracts.CellRef]string) contracts.CellValueSource {
	return func(row int, col int) (string, bool) {
		value, ok := values[contracts.CellRef{Row: row, Col: col}]
		return value, ok
	}
}
