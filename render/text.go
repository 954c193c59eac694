// Package render draws an Origin Shift maze as text, images and terminal cells.
// It only consumes the maze package's public queries.
package render

import (
	"bufio"
	"io"

	"github.com/lixenwraith/origin-shift/maze"
)

// Arrow glyphs indexed by maze.Direction
var Arrows = [maze.DirectionCount]rune{'→', '←', '↑', '↓'}

// OriginGlyph marks the origin in the arrow dump
const OriginGlyph = '●'

// Glyphs holds the two-character strings drawn per wall-grid cell
type Glyphs struct {
	Wall   string
	Path   string
	Origin string
	Route  string
}

// DefaultGlyphs returns block walls, blank paths and a bracketed origin
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Wall:   "██",
		Path:   "  ",
		Origin: "()",
		Route:  "··",
	}
}

// Options controls the wall-grid text renderer
type Options struct {
	Glyphs Glyphs
	// Directional arrows on path cells instead of Glyphs.Path
	ShowArrows bool
	// Cell offsets to highlight, typically from maze.Route
	Route []uint32
}

// WriteArrows prints one glyph per maze cell: the direction it points, or the origin
func WriteArrows(w io.Writer, m *maze.Maze) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Columns(); col++ {
			offset := m.Offset(row, col)
			next := m.Next(offset)
			if next == maze.Sentinel {
				bw.WriteRune(OriginGlyph)
				continue
			}
			d, _ := m.DirectionBetween(offset, next)
			bw.WriteRune(Arrows[d])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteWallified prints the wall grid, two characters per cell
func WriteWallified(w io.Writer, m *maze.Maze, opts Options) error {
	rows, cols := m.WallGridSize()
	mask := RouteMask(m, opts.Route)
	bw := bufio.NewWriter(w)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c, _ := m.Classify(row, col)
			switch {
			case c.Kind == maze.Wall:
				bw.WriteString(opts.Glyphs.Wall)
			case c.Kind == maze.Origin:
				bw.WriteString(opts.Glyphs.Origin)
			case mask != nil && mask[row*cols+col]:
				bw.WriteString(opts.Glyphs.Route)
			case opts.ShowArrows:
				bw.WriteRune(Arrows[c.Dir])
				bw.WriteByte(' ')
			default:
				bw.WriteString(opts.Glyphs.Path)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// RouteMask flags the wall-grid cells a route passes through, row-major
// Offsets outside the maze are skipped; walls are opened only between grid neighbors
// Returns nil for an empty route
func RouteMask(m *maze.Maze, route []uint32) []bool {
	if len(route) == 0 {
		return nil
	}
	rows, cols := m.WallGridSize()
	mask := make([]bool, rows*cols)

	prevRow, prevCol := -1, -1
	for _, offset := range route {
		if int(offset) >= m.Len() {
			prevRow, prevCol = -1, -1
			continue
		}
		row, col := m.WallCoordinates(offset)
		mask[row*cols+col] = true
		if prevRow >= 0 && abs(row-prevRow)+abs(col-prevCol) == 2 {
			// Wall cell between consecutive route cells
			mask[((row+prevRow)/2)*cols+(col+prevCol)/2] = true
		}
		prevRow, prevCol = row, col
	}
	return mask
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
