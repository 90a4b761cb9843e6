package animation

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"wetterm/render"
)

const planeTrailCap = 8

var planeArt = []string{
	"           _",
	"         -=\\`\\",
	"     |\\ ____\\_\\__",
	"   -=\\c`\"\"\"\"\"\"\" \"`)",
	"      `~~~~~/ /~~`",
	"        -==/ /",
	"          '-'",
}

// trail age bands, newest first
var planeTrailStyles = []tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorWhite),
	tcell.StyleDefault.Foreground(tcell.ColorWhite),
	tcell.StyleDefault.Foreground(tcell.ColorGray),
	tcell.StyleDefault.Foreground(tcell.ColorGray),
	tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
	tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
}

type plane struct {
	x, y  float64
	speed float64
	trail []float64 // past x positions, newest first
}

// Airplanes drifts multi-glyph aircraft across the upper quarter of the
// screen, each towing a brightness-decaying dot trail.
type Airplanes struct {
	planes []plane
	spawn  *spawner
	active bool
	rng    *rand.Rand
}

func NewAirplanes() *Airplanes {
	rng := newRNG()
	return &Airplanes{
		spawn: newSpawner(400, 600, 0.003, rng),
		rng:   rng,
	}
}

// SetActive gates spawning; aircraft already in the air keep flying out.
func (a *Airplanes) SetActive(active bool) { a.active = active }

func (a *Airplanes) Update(b Bounds) {
	kept := a.planes[:0]
	for i := range a.planes {
		p := &a.planes[i]
		p.x += p.speed

		p.trail = append([]float64{p.x}, p.trail...)
		if len(p.trail) > planeTrailCap {
			p.trail = p.trail[:planeTrailCap]
		}

		if p.x < float64(b.Width) && int(p.y) < b.Height {
			kept = append(kept, *p)
		}
	}
	a.planes = kept

	scale := 0.0
	if a.active {
		scale = 1.0
	}
	if a.spawn.tick(scale) {
		a.spawnPlane(b)
	}
}

func (a *Airplanes) spawnPlane(b Bounds) {
	band := b.Height / 4
	if band < 1 {
		band = 1
	}
	a.planes = append(a.planes, plane{
		x:     0,
		y:     float64(a.rng.Intn(band)),
		speed: 0.3 + a.rng.Float64()*0.2,
	})
}

func (a *Airplanes) Render(g *render.Grid) {
	for _, p := range a.planes {
		x, y := int(p.x), int(p.y)

		for i, trailX := range p.trail {
			ch := '.'
			style := planeTrailStyles[len(planeTrailStyles)-1]
			if i < len(planeTrailStyles) {
				style = planeTrailStyles[i]
			} else {
				ch = '·'
			}
			g.WriteCell(int(trailX), y+3, ch, style)
		}

		for row, line := range planeArt {
			for col, ch := range line {
				if ch == ' ' {
					continue
				}
				g.WriteCell(x+col, y+row, ch, planeGlyphStyle(ch))
			}
		}
	}
}

// per-glyph color overrides: windows cyan, wings blue, frame grays
func planeGlyphStyle(ch rune) tcell.Style {
	switch ch {
	case '"':
		return tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	case '\\':
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case '_':
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case '~':
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}
