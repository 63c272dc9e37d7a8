package classbreaks

import "fmt"

// table is a rows×cols matrix stored as one flat row-major slice, so cell
// (r, c) lives at r*cols+c. Every access is checked against both
// dimensions; a column overflow would otherwise silently land in the next
// row.
type table[T any] struct {
	rows, cols int
	cells      []T
}

// newTable allocates a rows×cols table with every cell set to fill.
func newTable[T any](rows, cols int, fill T) *table[T] {
	cells := make([]T, rows*cols)
	for i := range cells {
		cells[i] = fill
	}
	return &table[T]{rows: rows, cols: cols, cells: cells}
}

func (t *table[T]) index(r, c int) int {
	if uint(r) >= uint(t.rows) || uint(c) >= uint(t.cols) {
		panic(fmt.Sprintf("classbreaks: table index (%d, %d) out of range [%d, %d)", r, c, t.rows, t.cols))
	}
	return r*t.cols + c
}

func (t *table[T]) at(r, c int) T { return t.cells[t.index(r, c)] }

func (t *table[T]) set(r, c int, v T) { t.cells[t.index(r, c)] = v }
