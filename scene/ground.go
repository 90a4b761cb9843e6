package scene

import (
	"github.com/gdamore/tcell/v2"

	"wetterm/render"
)

// Texture thresholds on the 0..99 hash value. Only the ordering matters
// (flowers rarer than blades, blades rarer than plain grass); the exact
// numbers are aesthetic tuning.
const (
	flowerThreshold     = 5
	grassBladeThreshold = 15
	soilWaveThreshold   = 20
	soilDotThreshold    = 25
)

var (
	grassStyle      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	grassBladeStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	soilStyle       = tcell.StyleDefault.Foreground(tcell.NewRGBColor(101, 67, 33))
	pathStyle       = tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 160, 120))

	flowerStyles = []tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorDarkMagenta),
		tcell.StyleDefault.Foreground(tcell.ColorRed),
		tcell.StyleDefault.Foreground(tcell.ColorDarkCyan),
		tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
)

// groundHash is a pure function of the coordinate, so the same cell always
// grows the same decoration across frames and resizes. This is deliberately
// not the spawn RNG: texture must repeat, spawning must not.
func groundHash(x, y int) uint32 {
	return ((uint32(x) ^ 0x5DEECE6) * (uint32(y) ^ 0xB)) % 100
}

// groundCell returns the glyph and style for one ground cell. row is the
// depth into the ground strip (0 = horizon row). The path widens by one
// column per row toward the viewer, centered on pathCenter.
func groundCell(x, row, pathCenter int) (rune, tcell.Style) {
	pathWidth := 4 + row
	pathStart := sub(pathCenter, pathWidth/2)
	pathEnd := pathCenter + pathWidth/2
	if x >= pathStart && x <= pathEnd {
		return '=', pathStyle
	}

	r := groundHash(x, row)
	if row == 0 {
		switch {
		case r < flowerThreshold:
			return '*', flowerStyles[(x+row)%len(flowerStyles)]
		case r < grassBladeThreshold:
			return ',', grassBladeStyle
		default:
			return '^', grassStyle
		}
	}
	switch {
	case r < soilWaveThreshold:
		return '~', soilStyle
	case r < soilDotThreshold:
		return '.', soilStyle
	default:
		return ' ', soilStyle
	}
}

func renderGround(g *render.Grid, l Layout) {
	for row := 0; row < GroundHeight; row++ {
		y := l.HorizonY + row
		for x := 0; x < l.Width; x++ {
			ch, style := groundCell(x, row, l.PathCenter)
			g.WriteCell(x, y, ch, style)
		}
	}
}
