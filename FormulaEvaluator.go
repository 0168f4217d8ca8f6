package main

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"gridsheet/contracts"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var FormulaError = errors.New("formula error")

var InvalidFormulaError = fmt.Errorf("%w: invalid formula", FormulaError)
var DivisionByZeroError = fmt.Errorf("%w: division by zero", FormulaError)
var InvalidFunctionError = fmt.Errorf("%w: unknown function", FormulaError)
var InvalidRangeError = fmt.Errorf("%w: invalid range", FormulaError)
var CircularReferenceError = fmt.Errorf("%w: circular reference detected", FormulaError)

// a supported function call whose argument text holds no nested parentheses;
// repeated scanning expands nested calls innermost-first
var functionCallPattern = regexp.MustCompile(`(?i)\b(SUM|PRODUCT|AVERAGE|MIN|MAX|COUNT|ABS|ROUND)\(([^()]*)\)`)

// any identifier left in call position after expansion is an unknown function
var identifierCallPattern = regexp.MustCompile(`([A-Za-z][A-Za-z0-9]*)\(`)

var bareReferencePattern = regexp.MustCompile(`\b[A-Za-z]+[0-9]+\b`)

// after substitution only arithmetic may remain
var arithmeticCharsPattern = regexp.MustCompile(`^[0-9+\-*/().eE\s]*$`)

var numberLiteralPattern = regexp.MustCompile(`\d+(?:\.\d+)?(?:[eE][+-]?\d+)?|\.\d+`)

// FormulaEvaluator turns a marker-free formula body into a display value by
// three rewrite passes: function expansion, reference substitution, and
// arithmetic evaluation on the expr VM.
type FormulaEvaluator struct {
	codec           contracts.RefCodec
	compilerOptions []expr.Option
	vmPool          sync.Pool
}

func NewFormulaEvaluator(codec contracts.RefCodec) *FormulaEvaluator {
	return &FormulaEvaluator{
		codec: codec,
		compilerOptions: []expr.Option{
			expr.Optimize(false),
			expr.DisableAllBuiltins(),
		},

		vmPool: sync.Pool{
			New: func() any {
				return new(vm.VM)
			},
		},
	}
}

func (e *FormulaEvaluator) Evaluate(formula string, source contracts.CellValueSource) (string, error) {
	formula = balanceParentheses(formula)

	expanded, err := e.expandFunctions(formula, source)
	if err != nil {
		return "", err
	}

	substituted, err := e.substituteReferences(expanded, source)
	if err != nil {
		return "", err
	}

	value, err := e.evaluateArithmetic(substituted)
	if err != nil {
		return "", err
	}

	return formatNumber(value), nil
}

// ExtractDependencies scans the raw formula text for reference tokens. Range
// endpoints surface individually; interior range cells do not.
func (e *FormulaEvaluator) ExtractDependencies(formula string) []contracts.CellRef {
	seen := map[contracts.CellRef]bool{}
	refs := make([]contracts.CellRef, 0)

	for _, token := range bareReferencePattern.FindAllString(formula, -1) {
		row, col, err := e.codec.Decode(token)
		if err != nil {
			continue
		}

		ref := contracts.CellRef{Row: row, Col: col}
		if !seen[ref] {
			seen[ref] = true
			refs = append(refs, ref)
		}
	}

	return refs
}

// balanceParentheses appends the closing parentheses a caller forgot. It
// tolerates nothing else.
func balanceParentheses(formula string) string {
	missing := strings.Count(formula, "(") - strings.Count(formula, ")")
	if missing > 0 {
		formula += strings.Repeat(")", missing)
	}
	return formula
}

func (e *FormulaEvaluator) expandFunctions(formula string, source contracts.CellValueSource) (string, error) {
	for {
		matches := functionCallPattern.FindAllStringSubmatchIndex(formula, -1)
		if matches == nil {
			break
		}

		// rightmost-first keeps the offsets of earlier matches valid
		for i := len(matches) - 1; i >= 0; i-- {
			match := matches[i]
			name := strings.ToUpper(formula[match[2]:match[3]])
			args := formula[match[4]:match[5]]

			result, err := e.applyFunction(name, args, source)
			if err != nil {
				return "", err
			}

			formula = formula[:match[0]] + formatNumber(result) + formula[match[1]:]
		}
	}

	for _, match := range identifierCallPattern.FindAllStringSubmatch(formula, -1) {
		if _, ok := formulaFunctions[strings.ToUpper(match[1])]; !ok {
			return "", fmt.Errorf("%s: %w", match[1], InvalidFunctionError)
		}
	}

	return formula, nil
}

// applyFunction resolves one argument list and applies the named function.
// The part after `;` is the secondary scalar segment (ROUND's places); the
// primary segment splits on `,` into range, literal, or reference tokens.
func (e *FormulaEvaluator) applyFunction(name string, rawArgs string, source contracts.CellValueSource) (float64, error) {
	segments := strings.SplitN(rawArgs, ";", 2)
	secondary := ""
	if len(segments) > 1 {
		secondary = segments[1]
	}

	args := argValues{}
	for _, token := range strings.Split(segments[0], ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if strings.Contains(token, ":") {
			if err := e.resolveRange(token, source, &args); err != nil {
				return 0, err
			}
		} else if value, err := strconv.ParseFloat(token, 64); err == nil {
			args.values = append(args.values, value)
			args.numeric++
		} else if err := e.resolveCell(token, source, &args); err != nil {
			return 0, err
		}
	}

	return formulaFunctions[name](args, secondary), nil
}

func (e *FormulaEvaluator) resolveCell(token string, source contracts.CellValueSource, args *argValues) error {
	row, col, err := e.codec.Decode(token)
	if err != nil {
		return err
	}

	e.appendCellValue(source, row, col, args)
	return nil
}

// resolveRange walks the inclusive bounding box of a REF1:REF2 token, so the
// direction the range was written in is irrelevant.
func (e *FormulaEvaluator) resolveRange(token string, source contracts.CellValueSource, args *argValues) error {
	endpoints := strings.Split(token, ":")
	if len(endpoints) != 2 || strings.TrimSpace(endpoints[0]) == "" || strings.TrimSpace(endpoints[1]) == "" {
		return fmt.Errorf("%s: %w", token, InvalidRangeError)
	}

	startRow, startCol, err := e.codec.Decode(strings.TrimSpace(endpoints[0]))
	if err != nil {
		return err
	}
	endRow, endCol, err := e.codec.Decode(strings.TrimSpace(endpoints[1]))
	if err != nil {
		return err
	}

	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}

	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			e.appendCellValue(source, row, col, args)
		}
	}

	return nil
}

// appendCellValue folds one cell into an argument list. Empty cells are
// skipped entirely; non-numeric text becomes a 0 that COUNT ignores.
func (e *FormulaEvaluator) appendCellValue(source contracts.CellValueSource, row int, col int, args *argValues) {
	if source == nil {
		return
	}

	text, ok := source(row, col)
	if !ok || strings.TrimSpace(text) == "" {
		return
	}

	if value, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		args.values = append(args.values, value)
		args.numeric++
	} else {
		args.values = append(args.values, 0)
	}
}

// substituteReferences replaces every remaining reference token with its
// cell's numeric text. Empty cells become 0. A bare reference to non-numeric
// content fails here: a bare reference, unlike a range cell, needs a number,
// and the cell's text must never reach the arithmetic stage as expression
// fragments.
func (e *FormulaEvaluator) substituteReferences(formula string, source contracts.CellValueSource) (string, error) {
	var substErr error

	replaced := bareReferencePattern.ReplaceAllStringFunc(formula, func(token string) string {
		row, col, err := e.codec.Decode(token)
		if err != nil {
			if substErr == nil {
				substErr = err
			}
			return token
		}

		if source == nil {
			return "0"
		}

		text, ok := source(row, col)
		if !ok || strings.TrimSpace(text) == "" {
			return "0"
		}

		if value, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			return strconv.FormatFloat(value, 'f', -1, 64)
		}

		if substErr == nil {
			substErr = fmt.Errorf("%s is not numeric: %w", token, InvalidFormulaError)
		}
		return token
	})

	if substErr != nil {
		return "", substErr
	}
	return replaced, nil
}

func (e *FormulaEvaluator) evaluateArithmetic(expression string) (float64, error) {
	if !arithmeticCharsPattern.MatchString(expression) {
		return 0, fmt.Errorf("%s: %w", expression, InvalidFormulaError)
	}

	if strings.TrimSpace(expression) == "" {
		return 0, fmt.Errorf("%w: empty expression", InvalidFormulaError)
	}

	program, err := expr.Compile(promoteIntegerLiterals(expression), e.compilerOptions...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", expression, InvalidFormulaError)
	}

	machine := e.vmPool.Get().(*vm.VM)
	output, err := machine.Run(program, nil)
	e.vmPool.Put(machine)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", expression, InvalidFormulaError)
	}

	value, ok := numericOutput(output)
	if !ok {
		return 0, fmt.Errorf("%s: %w", expression, InvalidFormulaError)
	}

	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%s: %w", expression, DivisionByZeroError)
	}

	return value, nil
}

// promoteIntegerLiterals appends ".0" to every bare integer so the whole
// expression evaluates in floating point and division yields a true quotient.
func promoteIntegerLiterals(expression string) string {
	return numberLiteralPattern.ReplaceAllStringFunc(expression, func(literal string) string {
		if strings.ContainsAny(literal, ".eE") {
			return literal
		}
		return literal + ".0"
	})
}

func numericOutput(output any) (float64, bool) {
	switch value := output.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	}
	return 0, false
}

// formatNumber renders a result the way the sheet displays numbers: whole
// values without a decimal point, fractional ones with up to six decimal
// places and trailing zeros trimmed.
func formatNumber(value float64) string {
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	formatted := strconv.FormatFloat(value, 'f', 6, 64)
	formatted = strings.TrimRight(formatted, "0")
	return strings.TrimRight(formatted, ".")
}
