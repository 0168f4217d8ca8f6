package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellBinarySerializer_Marshal(t *testing.T) {
	serializer := NewCellBinarySerializer()

	record := serializer.Marshal("A1", "=SUM(B1:B3)")

	assert.NotNil(t, record)
	assert.Equal(t, byte(2), record[0])
	assert.Equal(t, "A1=SUM(B1:B3)", string(record[1:]))
}

func TestCellBinarySerializer_Unmarshal(t *testing.T) {
	serializer := NewCellBinarySerializer()

	t.Run("valid_data", func(t *testing.T) {
		assertMarshalAndUnmarshal := func(expectedLabel string, expectedInput string) {
			record := serializer.Marshal(expectedLabel, expectedInput)
			actualLabel, actualInput, err := serializer.Unmarshal(record)

			assert.NoError(t, err)
			assert.Equal(t, expectedLabel, actualLabel)
			assert.Equal(t, expectedInput, actualInput)
		}

		assertMarshalAndUnmarshal("A1", "5")
		assertMarshalAndUnmarshal("AA12", "=SUM(A1:A10)+ROUND(B2;2)")
		assertMarshalAndUnmarshal("B2", "")
	})

	t.Run("empty_data", func(t *testing.T) {
		label, input, err := serializer.Unmarshal([]byte{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, SerializerError)
		assert.Equal(t, "", label)
		assert.Equal(t, "", input)
	})

	t.Run("truncated_data", func(t *testing.T) {
		label, input, err := serializer.Unmarshal([]byte{' ', 'q', 'r'})

		assert.Error(t, err)
		assert.ErrorIs(t, err, SerializerError)
		assert.Equal(t, "", label)
		assert.Equal(t, "", input)
	})
}
