package maze

// Grid materializes the wall grid; true marks a wall
func (m *Maze) Grid() [][]bool {
	rows, cols := m.WallGridSize()
	grid := make([][]bool, rows)
	for y := range grid {
		grid[y] = make([]bool, cols)
		for x := range grid[y] {
			c, _ := m.Classify(y, x)
			grid[y][x] = c.Kind == Wall
		}
	}
	return grid
}

// Route returns the unique cell path from one offset to another, both inclusive
// Returns nil when either offset is outside the grid
func (m *Maze) Route(from, to uint32) []uint32 {
	n := uint32(len(m.path))
	if from >= n || to >= n {
		return nil
	}

	// Climb the deeper end until both sit at the same depth, then climb together
	// until the chains join at their lowest common ancestor
	a, b := from, to
	da, db := m.depth(a), m.depth(b)
	head := make([]uint32, 0, da+1)
	tail := make([]uint32, 0, db+1)
	for da > db {
		head = append(head, a)
		a = m.path[a]
		da--
	}
	for db > da {
		tail = append(tail, b)
		b = m.path[b]
		db--
	}
	for a != b {
		head = append(head, a)
		tail = append(tail, b)
		a, b = m.path[a], m.path[b]
	}

	head = append(head, a)
	for i := len(tail) - 1; i >= 0; i-- {
		head = append(head, tail[i])
	}
	return head
}

// depth counts links from offset to the origin
func (m *Maze) depth(offset uint32) int {
	d := 0
	for m.path[offset] != Sentinel {
		offset = m.path[offset]
		d++
	}
	return d
}
