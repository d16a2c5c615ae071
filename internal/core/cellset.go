package core

// CellSet is a set of grid cells.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells []Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is in the set. A nil set is empty.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// CountIn returns how many members lie inside the grid.
func (s CellSet) CountIn(g Grid) int {
	n := 0
	for c := range s {
		if g.Contains(c) {
			n++
		}
	}
	return n
}
