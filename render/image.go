package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/lixenwraith/origin-shift/maze"
)

// Image exposes a maze's wall grid as an image.Image, Scale pixels per cell
// Pixels are classified on demand; the maze must not change while encoding
type Image struct {
	m     *maze.Maze
	scale int
	route []bool
}

// NewImage wraps m; scale below 1 is treated as 1
func NewImage(m *maze.Maze, scale int, route []uint32) *Image {
	if scale < 1 {
		scale = 1
	}
	return &Image{m: m, scale: scale, route: RouteMask(m, route)}
}

func (img *Image) ColorModel() color.Model { return color.RGBAModel }

func (img *Image) Bounds() image.Rectangle {
	rows, cols := img.m.WallGridSize()
	return image.Rect(0, 0, cols*img.scale, rows*img.scale)
}

func (img *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 {
		return color.RGBA{}
	}
	row, col := y/img.scale, x/img.scale
	c, ok := img.m.Classify(row, col)
	if !ok {
		return color.RGBA{}
	}
	switch c.Kind {
	case maze.Wall:
		return ColorWall
	case maze.Origin:
		return ColorOrigin
	}
	if img.route != nil {
		_, cols := img.m.WallGridSize()
		if img.route[row*cols+col] {
			return ColorRoute
		}
	}
	return ColorPath
}

// WritePNG encodes the wall grid as a PNG
func WritePNG(w io.Writer, m *maze.Maze, scale int, route []uint32) error {
	return png.Encode(w, NewImage(m, scale, route))
}
