package contracts

// GridStore persists raw cell inputs keyed by their label. Display values are
// never stored; the grid recomputes them after loading.
type GridStore interface {
	SaveCell(label string, input string) error
	LoadAll() (map[string]string, error)
	Close() error
}
