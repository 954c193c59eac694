package maze

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeded(t *testing.T, rows, cols int, seed uint64, iterations int) *Maze {
	t.Helper()
	m, err := New(make([]uint32, rows*cols), rows, cols, NewRandSource(seed), iterations)
	require.NoError(t, err)
	return m
}

func sentinelCount(path []uint32) int {
	n := 0
	for _, next := range path {
		if next == Sentinel {
			n++
		}
	}
	return n
}

func TestNewRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		buf    int
		rows   int
		cols   int
		src    Source
		target error
	}{
		{"short buffer", 8, 3, 3, NewRandSource(1), ErrInvalidBufferSize},
		{"long buffer", 10, 3, 3, NewRandSource(1), ErrInvalidBufferSize},
		{"negative rows", 4, -2, -2, NewRandSource(1), ErrInvalidBufferSize},
		{"single row", 5, 1, 5, NewRandSource(1), ErrInvalidDimensions},
		{"single column", 5, 5, 1, NewRandSource(1), ErrInvalidDimensions},
		{"empty", 0, 0, 0, NewRandSource(1), ErrInvalidDimensions},
		{"nil source", 4, 2, 2, nil, ErrNilSource},
		{"overflowing dimensions", 0, 1 << 16, 1 << 16, NewRandSource(1), ErrInvalidDimensions},
		{"wrapping product", 0, math.MaxInt, 2, NewRandSource(1), ErrInvalidDimensions},
		{"sentinel sized", 0, 65535, 65537, NewRandSource(1), ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m *Maze
			var err error
			require.NotPanics(t, func() {
				m, err = New(make([]uint32, tt.buf), tt.rows, tt.cols, tt.src, 0)
			})
			assert.ErrorIs(t, err, tt.target)
			assert.Nil(t, m)
		})
	}
}

func TestSeedTree(t *testing.T) {
	m := newSeeded(t, 3, 3, 1, 0)

	assert.Equal(t, []uint32{1, 2, 5, 4, 5, 8, 7, 8, Sentinel}, m.Path())
	assert.Equal(t, uint32(8), m.OriginOffset())
	require.NoError(t, m.Validate())
}

func TestSeedTreeTenByTen(t *testing.T) {
	m := newSeeded(t, 10, 10, 1, 0)

	row, col := m.Origin()
	assert.Equal(t, uint32(99), m.OriginOffset())
	assert.Equal(t, 9, row)
	assert.Equal(t, 9, col)
	assert.Equal(t, uint32(10), m.Offset(1, 0))
	assert.Equal(t, uint32(23), m.Offset(2, 3))

	wr, wc := m.WallGridSize()
	assert.Equal(t, 21, wr)
	assert.Equal(t, 21, wc)
}

func TestDefaultIterationCount(t *testing.T) {
	calls := 0
	src := SourceFunc(func() Direction {
		calls++
		return Direction(calls % DirectionCount)
	})

	m, err := New(make([]uint32, 12), 3, 4, src, DefaultIterations)
	require.NoError(t, err)
	assert.Equal(t, 3*4*20, calls)
	require.NoError(t, m.Validate())

	calls = 0
	m.Iterate(-1)
	assert.Equal(t, 240, calls)

	calls = 0
	m.Iterate(7)
	assert.Equal(t, 7, calls)
}

func TestStepRelinksOrigin(t *testing.T) {
	m := newSeeded(t, 2, 2, 1, 0)
	require.Equal(t, []uint32{1, 3, 3, Sentinel}, m.Path())

	assert.True(t, m.Step(Left))
	assert.Equal(t, []uint32{1, 3, Sentinel, 2}, m.Path())
	assert.Equal(t, uint32(2), m.OriginOffset())

	assert.True(t, m.Step(Up))
	assert.Equal(t, []uint32{Sentinel, 3, 0, 2}, m.Path())
	row, col := m.Origin()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	require.NoError(t, m.Validate())
}

func TestStepAtEdgeIsNoOp(t *testing.T) {
	m := newSeeded(t, 2, 2, 1, 0)
	require.True(t, m.Step(Up))

	before := append([]uint32(nil), m.Path()...)
	origin := m.OriginOffset()

	for _, d := range []Direction{Up, Right, Direction(9)} {
		assert.False(t, m.Step(d), "step %s", d)
		assert.Equal(t, before, m.Path())
		assert.Equal(t, origin, m.OriginOffset())
	}
}

func TestRandomWalkKeepsTree(t *testing.T) {
	sizes := [][2]int{{2, 2}, {2, 7}, {5, 3}, {8, 8}}

	for _, size := range sizes {
		m := newSeeded(t, size[0], size[1], 42, 0)
		src := NewRandSource(uint64(size[0]*100 + size[1]))

		for step := 0; step < 500; step++ {
			m.Step(src.Direction())

			require.NoError(t, m.Validate(), "%dx%d step %d", size[0], size[1], step)
			require.Equal(t, 1, sentinelCount(m.Path()))
			require.Equal(t, Sentinel, m.Next(m.OriginOffset()))

			for i := range m.Path() {
				offset := uint32(i)
				if offset == m.OriginOffset() {
					continue
				}
				next := m.Next(offset)
				d, ok := m.DirectionBetween(offset, next)
				require.True(t, ok)

				row, col := m.Coordinates(offset)
				dRow, dCol := d.Delta()
				require.Equal(t, next, m.Offset(row+dRow, col+dCol))
			}
		}
	}
}

func TestReproducible(t *testing.T) {
	a := newSeeded(t, 6, 9, 1234, DefaultIterations)
	b := newSeeded(t, 6, 9, 1234, DefaultIterations)
	c := newSeeded(t, 6, 9, 4321, DefaultIterations)

	assert.Equal(t, a.Path(), b.Path())
	assert.Equal(t, a.OriginOffset(), b.OriginOffset())
	assert.NotEqual(t, a.Path(), c.Path())
}

func TestWalkReportsMoves(t *testing.T) {
	m := newSeeded(t, 4, 4, 7, 0)

	steps, moves := 0, 0
	m.Walk(200, func(d Direction, moved bool) {
		steps++
		if moved {
			moves++
		}
		assert.Less(t, int(d), DirectionCount)
	})

	assert.Equal(t, 200, steps)
	assert.Positive(t, moves)
	require.NoError(t, m.Validate())
}

func TestReset(t *testing.T) {
	m := newSeeded(t, 3, 3, 5, DefaultIterations)
	m.Reset()
	assert.Equal(t, []uint32{1, 2, 5, 4, 5, 8, 7, 8, Sentinel}, m.Path())
	assert.Equal(t, uint32(8), m.OriginOffset())
}

func TestRestore(t *testing.T) {
	m := newSeeded(t, 4, 5, 99, DefaultIterations)
	buf := append([]uint32(nil), m.Path()...)

	r, err := Restore(buf, 4, 5, NewRandSource(1))
	require.NoError(t, err)
	assert.Equal(t, m.OriginOffset(), r.OriginOffset())
	assert.Equal(t, m.Path(), r.Path())
}

func TestRestoreRejectsCorruptTrees(t *testing.T) {
	tests := []struct {
		name string
		path []uint32
	}{
		{"no origin", []uint32{1, 3, 3, 2}},
		{"two origins", []uint32{Sentinel, 3, 3, Sentinel}},
		{"cycle", []uint32{1, 0, 3, Sentinel}},
		{"diagonal link", []uint32{3, 3, 3, Sentinel}},
		{"out of range link", []uint32{1, 3, 17, Sentinel}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.path, 2, 2, NewRandSource(1))
			assert.ErrorIs(t, err, ErrCorruptTree)
		})
	}
}

func TestDirectionBetween(t *testing.T) {
	m := newSeeded(t, 3, 3, 1, 0)

	_, ok := m.DirectionBetween(4, 4)
	assert.False(t, ok)

	cases := map[uint32]Direction{5: Right, 3: Left, 1: Up, 7: Down}
	for b, want := range cases {
		d, ok := m.DirectionBetween(4, b)
		assert.True(t, ok)
		assert.Equal(t, want, d, "4 -> %d", b)
	}
}

func TestDirection(t *testing.T) {
	for d := Direction(0); d < DirectionCount; d++ {
		assert.Equal(t, d, d.Opposite().Opposite())
		dRow, dCol := d.Delta()
		oRow, oCol := d.Opposite().Delta()
		assert.Equal(t, 0, dRow+oRow)
		assert.Equal(t, 0, dCol+oCol)
	}
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "invalid", Direction(4).String())
}

func TestRandSourceCoversAllDirections(t *testing.T) {
	src := NewRandSource(3)
	var seen [DirectionCount]int
	for i := 0; i < 4000; i++ {
		d := src.Direction()
		require.Less(t, int(d), DirectionCount)
		seen[d]++
	}
	for d, n := range seen {
		assert.Greater(t, n, 800, "direction %s underrepresented", Direction(d))
	}
}
