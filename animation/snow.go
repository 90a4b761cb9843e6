package animation

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"wetterm/render"
)

type flake struct {
	x, y  float64
	speed float64
}

var snowStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)

// Snow drifts flakes down slowly with a per-tick horizontal wobble.
type Snow struct {
	flakes    []flake
	intensity float64
	active    bool
	spawn     *spawner
	rng       *rand.Rand
}

func NewSnow() *Snow {
	rng := newRNG()
	return &Snow{
		spawn: newSpawner(0, 1, 0.08, rng),
		rng:   rng,
	}
}

// SetIntensity stores the density scalar in [0,1]. Pure setter.
func (s *Snow) SetIntensity(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.intensity = v
}

// SetActive gates spawning; falling flakes drain out naturally.
func (s *Snow) SetActive(active bool) { s.active = active }

// Len reports the current population size.
func (s *Snow) Len() int { return len(s.flakes) }

func (s *Snow) Update(b Bounds) {
	kept := s.flakes[:0]
	for i := range s.flakes {
		f := &s.flakes[i]
		f.y += f.speed
		f.x += (s.rng.Float64() - 0.5) * 0.6 // wobble
		if f.y < float64(b.Height) && f.x >= 0 && f.x < float64(b.Width) {
			kept = append(kept, *f)
		}
	}
	s.flakes = kept

	if !s.active {
		s.spawn.tick(0)
		return
	}

	attempts := 1 + b.Width/8
	for i := 0; i < attempts; i++ {
		if s.spawn.tick(s.intensity) {
			s.flakes = append(s.flakes, flake{
				x:     float64(s.rng.Intn(max(b.Width, 1))),
				y:     0,
				speed: 0.15 + s.rng.Float64()*0.25,
			})
		}
	}
}

func (s *Snow) Render(g *render.Grid) {
	for _, f := range s.flakes {
		ch := '*'
		if f.speed < 0.25 {
			ch = '.'
		}
		g.WriteCell(int(f.x), int(f.y), ch, snowStyle)
	}
}
