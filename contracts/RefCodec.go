package contracts

// RefCodec converts between "AA12"-style labels and zero-based coordinates.
type RefCodec interface {
	Decode(label string) (row int, col int, err error)
	Encode(row int, col int) string
}
