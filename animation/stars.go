package animation

import (
	"github.com/gdamore/tcell/v2"

	"wetterm/render"
)

const starChance = 3 // percent of sky cells

var (
	starStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	moonStyle = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
)

var moonArt = []string{
	" _.._ ",
	"(    )",
	" `--' ",
}

// Stars renders a deterministic star field over the night sky plus the
// moon. Star placement is a pure hash of the coordinate, like the ground
// texture, so the field is stable across frames; only the twinkle moves.
type Stars struct {
	active bool
	tick   int
}

func NewStars() *Stars {
	return &Stars{}
}

// SetActive shows or hides the night sky.
func (s *Stars) SetActive(active bool) { s.active = active }

func (s *Stars) Update(b Bounds) {
	s.tick++
}

// starHash mirrors the ground hash approach on different constants so the
// two fields don't correlate.
func starHash(x, y int) uint32 {
	return ((uint32(x) ^ 0x9E3779B) * (uint32(y) ^ 0x85)) % 100
}

func (s *Stars) Render(g *render.Grid) {
	if !s.active {
		return
	}

	skyBottom := g.Height() / 2
	for y := 0; y < skyBottom; y++ {
		for x := 0; x < g.Width(); x++ {
			h := starHash(x, y)
			if h >= starChance {
				continue
			}
			// slow twinkle, phased by position so the sky doesn't pulse
			if (s.tick/20+x+y)%3 == 0 {
				g.WriteCell(x, y, '.', dimStyle)
			} else {
				g.WriteCell(x, y, '*', starStyle)
			}
		}
	}

	moonX := 4
	for i, line := range moonArt {
		for col, ch := range line {
			if ch == ' ' {
				continue
			}
			g.WriteCell(moonX+col, 1+i, ch, moonStyle)
		}
	}
}
