package main

import (
	"errors"
	"fmt"
)

var SerializerError = errors.New("invalid serialized cell")

// CellBinarySerializer frames a cell record as a single label-length byte, the
// label, then the raw input text. A label is column letters plus a row number,
// so one byte of length is plenty.
type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

func (s *CellBinarySerializer) Marshal(label string, input string) []byte {
	record := make([]byte, 1, 1+len(label)+len(input))
	record[0] = byte(len(label))
	record = append(record, label...)
	record = append(record, input...)
	return record
}

func (s *CellBinarySerializer) Unmarshal(data []byte) (label string, input string, err error) {
	if len(data) == 0 {
		return "", "", fmt.Errorf("%w: empty record", SerializerError)
	}

	end := int(data[0]) + 1
	if end > len(data) {
		return "", "", fmt.Errorf("%w: label length %d exceeds the %d-byte record", SerializerError, data[0], len(data))
	}

	return string(data[1:end]), string(data[end:]), nil
}
