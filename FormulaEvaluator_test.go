package main

import (
	"testing"

	"gridsheet/contracts"
	"gridsheet/mocks"

	"github.com/stretchr/testify/assert"
)

// _makeLabelSource builds a CellValueSource from label->text pairs.
func _makeLabelSource(t *testing.T, cells map[string]string) contracts.CellValueSource {
	t.Helper()
	codec := NewRefCodec()

	values := make(map[contracts.CellRef]string, len(cells))
	for label, text := range cells {
		row, col, err := codec.Decode(label)
		assert.NoError(t, err, label)
		values[contracts.CellRef{Row: row, Col: col}] = text
	}

	return NewMapValueSource(values)
}

func TestFormulaEvaluator_Evaluate(t *testing.T) {
	evaluator := NewFormulaEvaluator(NewRefCodec())

	t.Run("arithmetic", func(t *testing.T) {
		testCases := map[string]string{
			"5+3":     "8",
			"1+2*3":   "7",
			"(5+3)*2": "16",
			"7/2":     "3.5",
			"1/3":     "0.333333",
			"1/4":     "0.25",
			"10/4":    "2.5",
			"-5+3":    "-2",
			"2*(3+1":  "8", // missing parenthesis is appended
			"1e3+1":   "1001",
			"2.0+1":   "3",
		}

		for formula, expected := range testCases {
			actual, err := evaluator.Evaluate(formula, nil)

			assert.NoError(t, err, formula)
			assert.Equal(t, expected, actual, formula)
		}
	})

	t.Run("division_by_zero", func(t *testing.T) {
		_, err := evaluator.Evaluate("1/0", nil)

		assert.Error(t, err)
		assert.ErrorIs(t, err, DivisionByZeroError)

		// an empty referenced cell substitutes 0 and still divides by zero
		source := _makeLabelSource(t, map[string]string{"A1": "10"})
		_, err = evaluator.Evaluate("A1/B1", source)

		assert.Error(t, err)
		assert.ErrorIs(t, err, DivisionByZeroError)
	})

	t.Run("invalid_formula", func(t *testing.T) {
		for _, formula := range []string{"hello", "1+&2", "5%2", "", "1..2+1"} {
			_, err := evaluator.Evaluate(formula, nil)

			assert.Error(t, err, formula)
			assert.ErrorIs(t, err, InvalidFormulaError, formula)
		}
	})

	t.Run("references", func(t *testing.T) {
		source := _makeLabelSource(t, map[string]string{
			"A1": "10",
			"B2": "5",
			"C1": "2.5",
		})

		testCases := map[string]string{
			"A1+B2":   "15",
			"A1*C1":   "25",
			"A1+D4":   "10", // empty cell reads as 0
			"a1 + b2": "15",
		}

		for formula, expected := range testCases {
			actual, err := evaluator.Evaluate(formula, source)

			assert.NoError(t, err, formula)
			assert.Equal(t, expected, actual, formula)
		}
	})

	t.Run("bare_reference_to_text_fails", func(t *testing.T) {
		// arithmetic-shaped text must fail the same way plain words do, not
		// splice itself into the surrounding expression
		source := _makeLabelSource(t, map[string]string{
			"A1": "hello",
			"B1": "1+1",
			"C1": "2)*(3",
		})

		for _, formula := range []string{"A1+1", "A1", "B1+2", "(C1+1)"} {
			_, err := evaluator.Evaluate(formula, source)

			assert.Error(t, err, formula)
			assert.ErrorIs(t, err, InvalidFormulaError, formula)
		}
	})

	t.Run("invalid_reference", func(t *testing.T) {
		_, err := evaluator.Evaluate("A0+1", nil)

		assert.Error(t, err)
		assert.ErrorIs(t, err, InvalidReferenceError)
	})

	t.Run("mocked_source", func(t *testing.T) {
		valueSource := mocks.NewCellValueSource(t)
		valueSource.On("Execute", 0, 0).Return("110", true)
		valueSource.On("Execute", 1, 0).Return("20.5", true)

		actual, err := evaluator.Evaluate("A1+A2", valueSource.Execute)

		assert.NoError(t, err)
		assert.Equal(t, "130.5", actual)
	})
}

func TestFormulaEvaluator_Functions(t *testing.T) {
	evaluator := NewFormulaEvaluator(NewRefCodec())

	source := _makeLabelSource(t, map[string]string{
		"A1": "10",
		"A3": "30",
		"B1": "4",
		"B2": "5",
		"C1": "text",
		"C2": "6",
		"E1": "-5",
	})

	t.Run("aggregates", func(t *testing.T) {
		testCases := map[string]string{
			"SUM(A1:A3)":       "40", // A2 is empty
			"SUM(A3:A1)":       "40", // direction is irrelevant
			"sum(a1:a3)":       "40",
			"SUM(A1,A3,2)":     "42",
			"SUM()":            "0",
			"SUM(A1:A3":        "40", // parenthesis appended
			"PRODUCT(B1:B2)":   "20",
			"PRODUCT(D1:D3)":   "0", // empty set is 0, not 1
			"AVERAGE(A1:A3)":   "20",
			"AVERAGE(D1:D3)":   "0",
			"MIN(B1,B2,A1)":    "4",
			"MAX(B1,B2,A1)":    "10",
			"MIN()":            "0",
			"COUNT(A1:A3)":     "2", // empty A2 is not counted
			"COUNT(C1:C2)":     "1", // text is not counted
			"SUM(C1:C2)":       "6", // text folds to 0 in range context
			"ABS(E1)":          "5",
			"ABS()":            "0",
			"ROUND(0.333333;2)": "0.33",
			"ROUND(2.675)":      "3",
			"ROUND(2.675;1)":   "2.7",
			"SUM(A1:A3)+B1":    "44",
			"SUM(A1:B1)":       "14", // rectangular two-column range
			"1+SUM(A1,A3)*2":   "81",
			"MIN(SUM(A1:A3))":  "40", // nested calls expand innermost-first
			"SUM( A1 , A3 )":   "40",
			"COUNT(A1,A3,1,2)": "4",
		}

		for formula, expected := range testCases {
			actual, err := evaluator.Evaluate(formula, source)

			assert.NoError(t, err, formula)
			assert.Equal(t, expected, actual, formula)
		}
	})

	t.Run("nested_functions_compose", func(t *testing.T) {
		nestedSource := _makeLabelSource(t, map[string]string{
			"A1": "2",
			"A2": "3",
			"B1": "4",
			"B2": "5",
		})

		actual, err := evaluator.Evaluate("MIN(SUM(A1:A2);PRODUCT(B1:B2))", nestedSource)

		assert.NoError(t, err)
		assert.Equal(t, "5", actual)
	})

	t.Run("unknown_function", func(t *testing.T) {
		_, err := evaluator.Evaluate("FOO(1,2)", source)

		assert.Error(t, err)
		assert.ErrorIs(t, err, InvalidFunctionError)

		_, err = evaluator.Evaluate("MIN(FOO(1))", source)

		assert.Error(t, err)
		assert.ErrorIs(t, err, InvalidFunctionError)
	})

	t.Run("invalid_range", func(t *testing.T) {
		for _, formula := range []string{"SUM(A1:)", "SUM(:A1)", "SUM(A1:B2:C3)"} {
			_, err := evaluator.Evaluate(formula, source)

			assert.Error(t, err, formula)
			assert.ErrorIs(t, err, InvalidRangeError, formula)
		}

		_, err := evaluator.Evaluate("SUM(A0:B2)", source)

		assert.Error(t, err)
		assert.ErrorIs(t, err, InvalidReferenceError)
	})
}

func TestFormulaEvaluator_ExtractDependencies(t *testing.T) {
	evaluator := NewFormulaEvaluator(NewRefCodec())

	t.Run("bare_and_range_references", func(t *testing.T) {
		refs := evaluator.ExtractDependencies("SUM(A1:A3)+B2*2")

		assert.ElementsMatch(t, []contracts.CellRef{
			{Row: 0, Col: 0},
			{Row: 2, Col: 0},
			{Row: 1, Col: 1},
		}, refs)
	})

	t.Run("duplicates_collapse", func(t *testing.T) {
		refs := evaluator.ExtractDependencies("A1+A1+a1")

		assert.Equal(t, []contracts.CellRef{{Row: 0, Col: 0}}, refs)
	})

	t.Run("no_references", func(t *testing.T) {
		assert.Empty(t, evaluator.ExtractDependencies("1+2*3"))
	})

	t.Run("undecodable_tokens_are_skipped", func(t *testing.T) {
		assert.Empty(t, evaluator.ExtractDependencies("A0+1"))
	})
}
