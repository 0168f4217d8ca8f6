package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const lettersCount = 'Z' - 'A' + 1

// column letters followed by a 1-based row number, e.g. "AA12"
var referencePattern = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

var InvalidReferenceError = fmt.Errorf("%w: invalid cell reference", FormulaError)

type RefCodec struct{}

func NewRefCodec() *RefCodec {
	return &RefCodec{}
}

// Decode converts a label such as "AA12" into a zero-based (row, column) pair.
// Letters are case-insensitive and map via the spreadsheet base-26 scheme
// (A..Z are 0..25, AA is 26); there is no letter for "zero".
func (c *RefCodec) Decode(label string) (row int, col int, err error) {
	match := referencePattern.FindStringSubmatch(label)
	if match == nil {
		return 0, 0, fmt.Errorf("%s: %w", label, InvalidReferenceError)
	}

	for _, letter := range strings.ToUpper(match[1]) {
		col = col*lettersCount + int(letter-'A') + 1
	}

	row, err = strconv.Atoi(match[2])
	if err != nil || row <= 0 {
		return 0, 0, fmt.Errorf("%s: %w", label, InvalidReferenceError)
	}

	return row - 1, col - 1, nil
}

// Encode is the inverse of Decode: zero-based coordinates to an uppercase label.
func (c *RefCodec) Encode(row int, col int) string {
	letters := make([]byte, 0, 3)
	for n := col + 1; n > 0; n /= lettersCount {
		n--
		letters = append(letters, byte('A'+n%lettersCount))
	}

	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}

	return string(letters) + strconv.Itoa(row+1)
}
