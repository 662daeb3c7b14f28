package model

// Grid is a bounds-checked width x height store indexed by (x, y).
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// NewGrid creates a grid with every cell set to fill.
func NewGrid[T any](width, height int, fill T) *Grid[T] {
	g := &Grid[T]{width: width, height: height, cells: make([]T, width*height)}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Get returns the cell at (x, y). The second result is false outside the grid.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[y*g.width+x], true
}

// Set writes the cell at (x, y) and reports whether it was in bounds.
func (g *Grid[T]) Set(x, y int, v T) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.width+x] = v
	return true
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{width: g.width, height: g.height, cells: make([]T, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Schema is a floor plan as a grid of materials.
type Schema = Grid[Material]

// ParseSchema builds a schema from text rows, one rune per cell:
// '#' wall, 'D' door, 'W' window, anything else blank. Rows shorter than
// the longest row are padded with blank cells.
func ParseSchema(rows ...string) *Schema {
	width := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > width {
			width = n
		}
	}
	s := NewGrid(width, len(rows), Blank)
	for y, r := range rows {
		for x, c := range []rune(r) {
			switch c {
			case '#':
				s.Set(x, y, Wall)
			case 'D':
				s.Set(x, y, Door)
			case 'W':
				s.Set(x, y, Window)
			}
		}
	}
	return s
}
