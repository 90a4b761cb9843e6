package animation

import (
	"github.com/gdamore/tcell/v2"

	"wetterm/render"
)

const sunRayPeriod = 24 // ticks per ray phase

var (
	sunCoreStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	sunRayStyle  = tcell.StyleDefault.Foreground(tcell.ColorOlive)
)

var sunCore = []string{
	` \ | / `,
	`-- O --`,
	` / | \ `,
}

// Sun is not particle-based: a fixed glyph cluster in the upper right whose
// ray set alternates on a slow phase for a subtle shimmer.
type Sun struct {
	active bool
	tick   int
}

func NewSun() *Sun {
	return &Sun{}
}

// SetActive shows or hides the sun entirely.
func (s *Sun) SetActive(active bool) { s.active = active }

func (s *Sun) Update(b Bounds) {
	s.tick++
}

func (s *Sun) Render(g *render.Grid) {
	if !s.active {
		return
	}
	x := g.Width() - 14
	y := 1
	if x < 0 {
		x = 0
	}

	for i, line := range sunCore {
		for col, ch := range line {
			if ch == ' ' {
				continue
			}
			style := sunRayStyle
			if ch == 'O' {
				style = sunCoreStyle
			}
			g.WriteCell(x+col, y+i, ch, style)
		}
	}

	// long rays alternate between the diagonal and the straight set
	if (s.tick/sunRayPeriod)%2 == 0 {
		g.WriteCell(x-2, y+1, '-', sunRayStyle)
		g.WriteCell(x+len(sunCore[1])+1, y+1, '-', sunRayStyle)
	} else {
		g.WriteCell(x+3, y-1, '|', sunRayStyle)
		g.WriteCell(x+3, y+3, '|', sunRayStyle)
	}
}
