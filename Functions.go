package main

import (
	"math"
	"strconv"
	"strings"
)

// argValues carries the resolved numeric arguments of one function call.
// values holds one entry per literal or non-empty cell (non-numeric cell text
// folds to 0); numeric counts how many of those parsed as numbers, which is
// what COUNT reports.
type argValues struct {
	values  []float64
	numeric int
}

type formulaFunction func(args argValues, secondary string) float64

var formulaFunctions = map[string]formulaFunction{
	"SUM":     calculateSum,
	"PRODUCT": calculateProduct,
	"AVERAGE": calculateAverage,
	"MIN":     calculateMin,
	"MAX":     calculateMax,
	"COUNT":   calculateCount,
	"ABS":     calculateAbs,
	"ROUND":   calculateRound,
}

func calculateSum(args argValues, _ string) float64 {
	sum := 0.0
	for _, value := range args.values {
		sum += value
	}
	return sum
}

func calculateProduct(args argValues, _ string) float64 {
	// an empty argument set yields 0, not the algebraic identity 1
	if len(args.values) == 0 {
		return 0
	}

	product := 1.0
	for _, value := range args.values {
		product *= value
	}
	return product
}

func calculateAverage(args argValues, _ string) float64 {
	if len(args.values) == 0 {
		return 0
	}
	return calculateSum(args, "") / float64(len(args.values))
}

func calculateMin(args argValues, _ string) float64 {
	if len(args.values) == 0 {
		return 0
	}

	minValue := args.values[0]
	for _, value := range args.values[1:] {
		if value < minValue {
			minValue = value
		}
	}
	return minValue
}

func calculateMax(args argValues, _ string) float64 {
	if len(args.values) == 0 {
		return 0
	}

	maxValue := args.values[0]
	for _, value := range args.values[1:] {
		if value > maxValue {
			maxValue = value
		}
	}
	return maxValue
}

func calculateCount(args argValues, _ string) float64 {
	return float64(args.numeric)
}

func calculateAbs(args argValues, _ string) float64 {
	if len(args.values) == 0 {
		return 0
	}
	return math.Abs(args.values[0])
}

// calculateRound rounds the first argument to the number of decimal places
// given by the `;`-separated secondary segment, defaulting to 0.
func calculateRound(args argValues, secondary string) float64 {
	if len(args.values) == 0 {
		return 0
	}

	places, err := strconv.Atoi(strings.TrimSpace(secondary))
	if err != nil {
		places = 0
	}

	shift := math.Pow(10, float64(places))
	return math.Round(args.values[0]*shift) / shift
}
