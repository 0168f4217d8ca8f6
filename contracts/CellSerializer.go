package contracts

type CellSerializer interface {
	Marshal(label string, input string) []byte
	Unmarshal(data []byte) (label string, input string, err error)
}
