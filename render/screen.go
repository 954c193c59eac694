package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/origin-shift/maze"
)

// Styles holds the tcell styles for each wall-grid cell kind
type Styles struct {
	Wall   tcell.Style
	Path   tcell.Style
	Arrow  tcell.Style
	Origin tcell.Style
}

// DefaultStyles returns the standard palette
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(RgbPath)
	return Styles{
		Wall:   base.Foreground(RgbWall),
		Path:   base,
		Arrow:  base.Foreground(RgbPathArrow),
		Origin: base.Foreground(RgbOrigin).Bold(true),
	}
}

// ScreenPainter draws the wall grid onto a tcell screen, two columns per cell
type ScreenPainter struct {
	screen     tcell.Screen
	styles     Styles
	showArrows bool
}

// NewScreenPainter creates a painter for screen
func NewScreenPainter(screen tcell.Screen, styles Styles, showArrows bool) *ScreenPainter {
	return &ScreenPainter{screen: screen, styles: styles, showArrows: showArrows}
}

// SetArrows toggles directional glyphs on path cells
func (p *ScreenPainter) SetArrows(on bool) { p.showArrows = on }

// Paint draws m with its top-left corner at (x0, y0), clipped to the screen
func (p *ScreenPainter) Paint(m *maze.Maze, x0, y0 int) {
	width, height := p.screen.Size()
	rows, cols := m.WallGridSize()

	for row := 0; row < rows; row++ {
		y := y0 + row
		if y < 0 || y >= height {
			continue
		}
		for col := 0; col < cols; col++ {
			x := x0 + col*2
			if x < 0 || x+1 >= width {
				continue
			}
			c, _ := m.Classify(row, col)
			switch c.Kind {
			case maze.Wall:
				p.screen.SetContent(x, y, '█', nil, p.styles.Wall)
				p.screen.SetContent(x+1, y, '█', nil, p.styles.Wall)
			case maze.Origin:
				p.screen.SetContent(x, y, '(', nil, p.styles.Origin)
				p.screen.SetContent(x+1, y, ')', nil, p.styles.Origin)
			default:
				if p.showArrows {
					p.screen.SetContent(x, y, Arrows[c.Dir], nil, p.styles.Arrow)
				} else {
					p.screen.SetContent(x, y, ' ', nil, p.styles.Path)
				}
				p.screen.SetContent(x+1, y, ' ', nil, p.styles.Path)
			}
		}
	}
}

// DrawText writes s starting at (x, y), clipped to the screen width
func DrawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	width, _ := screen.Size()
	for _, r := range s {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
