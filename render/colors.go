package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Terminal colors for wall-grid cells
var (
	RgbWall       = tcell.NewRGBColor(65, 72, 104)   // Slate
	RgbPath       = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbPathArrow  = tcell.NewRGBColor(122, 162, 247) // Soft blue
	RgbOrigin     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbRoute      = tcell.NewRGBColor(0, 200, 200)   // Vibrant cyan
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
)

// Image colors, same palette as the terminal
var (
	ColorWall   = color.RGBA{R: 65, G: 72, B: 104, A: 255}
	ColorPath   = color.RGBA{R: 26, G: 27, B: 38, A: 255}
	ColorOrigin = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	ColorRoute  = color.RGBA{R: 0, G: 200, B: 200, A: 255}
)
