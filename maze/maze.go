// Package maze maintains a perfect maze as a spanning tree over a grid and
// mutates it with the Origin Shift algorithm.
//
// Each cell of a row-major path array holds the offset of the adjacent cell it
// points toward. Exactly one cell, the origin, holds Sentinel instead. Every
// chain of links ends at the origin, so the links form a spanning tree rooted
// there. Step moves the origin to a neighbor and re-roots the tree, keeping it
// a perfect maze after every single step.
//
// The path array is caller-owned memory; a Maze never grows, shrinks or
// reallocates it. A Maze is not safe for concurrent use: callers serialize
// mutation against reads.
package maze

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// Sentinel marks the origin's entry in the path array
const Sentinel uint32 = math.MaxUint32

// DefaultIterations selects the mixing heuristic of rows*columns*IterationFactor
const DefaultIterations = -1

// IterationFactor scales the default iteration count per cell
// Empirical: enough to look mixed on small and medium grids
const IterationFactor = 20

// MinDimension is the smallest row or column count accepted
const MinDimension = 2

var (
	ErrInvalidBufferSize = errors.New("maze: buffer length does not match rows*columns")
	ErrInvalidDimensions = errors.New("maze: rows and columns must both be at least 2")
	ErrNilSource         = errors.New("maze: nil random source")
	ErrCorruptTree       = errors.New("maze: path array is not a spanning tree")
)

// Maze is a spanning tree over a rows x cols grid stored in a caller-owned buffer
type Maze struct {
	path   []uint32
	rows   int
	cols   int
	origin uint32
	src    Source
}

// New builds the canonical seed tree in buf and applies iterations random steps
// A negative iteration count selects DefaultIterationCount; zero leaves the seed tree untouched
func New(buf []uint32, rows, cols int, src Source, iterations int) (*Maze, error) {
	m, err := attach(buf, rows, cols, src)
	if err != nil {
		return nil, err
	}
	m.Reset()
	m.Iterate(iterations)
	return m, nil
}

// Restore adopts a buffer that already holds a spanning tree, such as a saved maze
func Restore(buf []uint32, rows, cols int, src Source) (*Maze, error) {
	m, err := attach(buf, rows, cols, src)
	if err != nil {
		return nil, err
	}

	found := false
	for i, next := range buf {
		if next == Sentinel {
			if found {
				return nil, fmt.Errorf("%w: second sentinel at offset %d", ErrCorruptTree, i)
			}
			m.origin = uint32(i)
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: no origin", ErrCorruptTree)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func attach(buf []uint32, rows, cols int, src Source) (*Maze, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: got %d, want %d*%d", ErrInvalidBufferSize, len(buf), rows, cols)
	}
	// Product must leave Sentinel unused; checked in 128 bits so it cannot wrap
	if hi, lo := bits.Mul64(uint64(rows), uint64(cols)); hi != 0 || lo >= uint64(Sentinel) {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if len(buf) != rows*cols {
		return nil, fmt.Errorf("%w: got %d, want %d*%d", ErrInvalidBufferSize, len(buf), rows, cols)
	}
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if src == nil {
		return nil, ErrNilSource
	}
	return &Maze{path: buf, rows: rows, cols: cols, src: src}, nil
}

// DefaultIterationCount returns the mixing heuristic for a grid size
func DefaultIterationCount(rows, cols int) int {
	return rows * cols * IterationFactor
}

// Reset restores the canonical seed tree in place
// Every cell points right, the last cell of each row points down, the bottom-right cell is the origin
func (m *Maze) Reset() {
	for i := range m.path {
		if (i+1)%m.cols != 0 {
			m.path[i] = uint32(i + 1)
		} else {
			m.path[i] = uint32(i + m.cols)
		}
	}
	m.origin = uint32(len(m.path) - 1)
	m.path[m.origin] = Sentinel
}

// Step moves the origin one cell in d and re-roots the tree there
// Moves leaving the grid are no-ops; returns whether the origin moved
func (m *Maze) Step(d Direction) bool {
	if d >= DirectionCount {
		return false
	}

	row, col := m.Origin()
	dRow, dCol := d.Delta()
	row, col = row+dRow, col+dCol
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return false
	}

	next := m.Offset(row, col)
	m.path[m.origin] = next
	m.origin = next
	m.path[next] = Sentinel
	return true
}

// Iterate applies n steps in directions drawn from the maze's Source
// A negative n selects DefaultIterationCount
func (m *Maze) Iterate(n int) {
	if n < 0 {
		n = DefaultIterationCount(m.rows, m.cols)
	}
	for i := 0; i < n; i++ {
		m.Step(m.src.Direction())
	}
}

// Walk is Iterate with an observer called after every step
// moved is false for steps absorbed at the grid edge
func (m *Maze) Walk(n int, fn func(d Direction, moved bool)) {
	if n < 0 {
		n = DefaultIterationCount(m.rows, m.cols)
	}
	for i := 0; i < n; i++ {
		d := m.src.Direction()
		moved := m.Step(d)
		fn(d, moved)
	}
}

// Rows returns the grid height in cells
func (m *Maze) Rows() int { return m.rows }

// Columns returns the grid width in cells
func (m *Maze) Columns() int { return m.cols }

// Len returns the number of cells
func (m *Maze) Len() int { return len(m.path) }

// Path returns the backing path array; callers must not modify it
func (m *Maze) Path() []uint32 { return m.path }

// Next returns the offset cell points toward, Sentinel for the origin
func (m *Maze) Next(offset uint32) uint32 { return m.path[offset] }

// OriginOffset returns the origin's linear offset
func (m *Maze) OriginOffset() uint32 { return m.origin }

// Origin returns the origin's row and column
func (m *Maze) Origin() (row, col int) {
	return m.Coordinates(m.origin)
}

// Offset converts a row and column to a linear offset
// Coordinates must be in range; no check is made
func (m *Maze) Offset(row, col int) uint32 {
	return uint32(row*m.cols + col)
}

// Coordinates converts a linear offset to a row and column
func (m *Maze) Coordinates(offset uint32) (row, col int) {
	return int(offset) / m.cols, int(offset) % m.cols
}

// DirectionBetween returns the direction from a to b, false when a == b
// b must be a grid neighbor of a, typically Next(a)
func (m *Maze) DirectionBetween(a, b uint32) (Direction, bool) {
	if a == b {
		return 0, false
	}
	aRow, aCol := m.Coordinates(a)
	bRow, bCol := m.Coordinates(b)
	switch {
	case bRow == aRow && bCol > aCol:
		return Right, true
	case bRow == aRow:
		return Left, true
	case bRow < aRow:
		return Up, true
	default:
		return Down, true
	}
}

// Validate checks the spanning-tree invariant over the whole path array
// Allocates one byte per cell; intended for tests and debug tooling
func (m *Maze) Validate() error {
	n := uint32(len(m.path))
	if m.origin >= n || m.path[m.origin] != Sentinel {
		return fmt.Errorf("%w: origin %d does not hold the sentinel", ErrCorruptTree, m.origin)
	}

	for i, next := range m.path {
		offset := uint32(i)
		if offset == m.origin {
			continue
		}
		if next == Sentinel {
			return fmt.Errorf("%w: second sentinel at offset %d", ErrCorruptTree, offset)
		}
		if next >= n || !m.adjacent(offset, next) {
			return fmt.Errorf("%w: offset %d links to non-neighbor %d", ErrCorruptTree, offset, next)
		}
	}

	const (
		unvisited = iota
		visiting
		rooted
	)
	state := make([]uint8, n)
	state[m.origin] = rooted
	for i := range m.path {
		cur := uint32(i)
		for state[cur] == unvisited {
			state[cur] = visiting
			cur = m.path[cur]
		}
		if state[cur] == visiting {
			return fmt.Errorf("%w: cycle through offset %d", ErrCorruptTree, cur)
		}
		for cur = uint32(i); state[cur] == visiting; cur = m.path[cur] {
			state[cur] = rooted
		}
	}
	return nil
}

func (m *Maze) adjacent(a, b uint32) bool {
	aRow, aCol := m.Coordinates(a)
	bRow, bCol := m.Coordinates(b)
	return abs(aRow-bRow)+abs(aCol-bCol) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
