package maze

// CellKind classifies a cell of the wall grid
type CellKind uint8

const (
	Wall CellKind = iota
	Path
	Origin
)

func (k CellKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Origin:
		return "origin"
	}
	return "invalid"
}

// Cell is a derived wall-grid classification; Dir is meaningful only for Path
type Cell struct {
	Kind CellKind
	Dir  Direction
}

// WallGridSize returns the dimensions of the wall-inclusive grid
func (m *Maze) WallGridSize() (rows, cols int) {
	return m.rows*2 + 1, m.cols*2 + 1
}

// WallCoordinates returns the wall-grid position of a maze cell
func (m *Maze) WallCoordinates(offset uint32) (row, col int) {
	row, col = m.Coordinates(offset)
	return row*2 + 1, col*2 + 1
}

// Classify derives the wall-grid cell at (row, col) from the tree alone
// Returns false outside WallGridSize
//
// Odd/odd positions are maze cells. Any other interior position is a wall
// unless a neighboring maze cell links through it, in which case it takes
// that link's direction.
func (m *Maze) Classify(row, col int) (Cell, bool) {
	maxRow, maxCol := m.WallGridSize()
	if row < 0 || col < 0 || row >= maxRow || col >= maxCol {
		return Cell{}, false
	}
	if row == 0 || col == 0 || row == maxRow-1 || col == maxCol-1 {
		return Cell{Kind: Wall}, true
	}
	if c, ok := m.pathCell(row, col); ok {
		return c, true
	}

	// Holes: probes use the maze-cell rule only, never Classify
	if c, ok := m.pathCell(row-1, col); ok && c.Kind == Path && c.Dir == Down {
		return c, true
	}
	if c, ok := m.pathCell(row+1, col); ok && c.Kind == Path && c.Dir == Up {
		return c, true
	}
	if c, ok := m.pathCell(row, col-1); ok && c.Kind == Path && c.Dir == Right {
		return c, true
	}
	if c, ok := m.pathCell(row, col+1); ok && c.Kind == Path && c.Dir == Left {
		return c, true
	}
	return Cell{Kind: Wall}, true
}

// pathCell classifies odd/odd positions; false for anything else
// Callers only pass positions within one step of the interior
func (m *Maze) pathCell(row, col int) (Cell, bool) {
	if row%2 == 0 || col%2 == 0 {
		return Cell{}, false
	}
	offset := m.Offset(row/2, col/2)
	next := m.path[offset]
	if next == Sentinel {
		return Cell{Kind: Origin}, true
	}
	d, _ := m.DirectionBetween(offset, next)
	return Cell{Kind: Path, Dir: d}, true
}
