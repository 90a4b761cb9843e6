package animation

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"wetterm/render"
)

const smokeMaxAge = 70

// young puffs are dense and bright, old ones thin and dark
var smokePhases = []struct {
	maxAge int
	ch     rune
	style  tcell.Style
}{
	{20, 'o', tcell.StyleDefault.Foreground(tcell.ColorWhite)},
	{45, 'o', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	{smokeMaxAge, '.', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)},
}

type puff struct {
	x, y  float64
	drift float64
	age   int
}

// Smoke rises from the chimney with a slight drift, fading with age. The
// anchor follows the house, so the orchestrator re-points it after resize.
type Smoke struct {
	puffs   []puff
	active  bool
	anchorX int
	anchorY int
	spawn   *spawner
	rng     *rand.Rand
}

func NewSmoke() *Smoke {
	rng := newRNG()
	return &Smoke{
		spawn: newSpawner(6, 14, 0.6, rng),
		rng:   rng,
	}
}

// SetActive gates spawning; risen puffs fade out on their own.
func (s *Smoke) SetActive(active bool) { s.active = active }

// SetAnchor points the spawn position at the chimney.
func (s *Smoke) SetAnchor(x, y int) {
	s.anchorX = x
	s.anchorY = y
}

func (s *Smoke) Update(b Bounds) {
	kept := s.puffs[:0]
	for i := range s.puffs {
		p := &s.puffs[i]
		p.age++
		p.y -= 0.2
		p.x += p.drift
		if p.age < smokeMaxAge && p.y >= 0 &&
			p.x >= 0 && p.x < float64(b.Width) && p.y < float64(b.Height) {
			kept = append(kept, *p)
		}
	}
	s.puffs = kept

	scale := 0.0
	if s.active {
		scale = 1.0
	}
	if s.spawn.tick(scale) {
		s.puffs = append(s.puffs, puff{
			x:     float64(s.anchorX) + s.rng.Float64() - 0.5,
			y:     float64(s.anchorY),
			drift: (s.rng.Float64() - 0.3) * 0.08,
		})
	}
}

func (s *Smoke) Render(g *render.Grid) {
	for _, p := range s.puffs {
		for _, phase := range smokePhases {
			if p.age <= phase.maxAge {
				g.WriteCell(int(p.x), int(p.y), phase.ch, phase.style)
				break
			}
		}
	}
}
