package animation

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"wetterm/render"
)

const (
	fireflyMaxAge = 900
	fireflyMaxPop = 12
)

var fireflyStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

type firefly struct {
	x, y    float64
	vx, vy  float64
	age     int
	lit     bool
	blinkIn int // ticks until the next blink toggle
}

// Fireflies wander the yard on warm clear nights: a small random-walk
// population that blinks on per-particle timers. Whether the night
// qualifies is the weather snapshot's call, not this subsystem's.
type Fireflies struct {
	flies  []firefly
	active bool
	spawn  *spawner
	rng    *rand.Rand
}

func NewFireflies() *Fireflies {
	rng := newRNG()
	return &Fireflies{
		spawn: newSpawner(10, 40, 0.3, rng),
		rng:   rng,
	}
}

// SetActive gates spawning; the swarm ages out on its own.
func (f *Fireflies) SetActive(active bool) { f.active = active }

// Len reports the current population size.
func (f *Fireflies) Len() int { return len(f.flies) }

func (f *Fireflies) Update(b Bounds) {
	kept := f.flies[:0]
	for i := range f.flies {
		fl := &f.flies[i]
		fl.age++

		// random-walk: nudge velocity, not position, so paths curve
		fl.vx += (f.rng.Float64() - 0.5) * 0.08
		fl.vy += (f.rng.Float64() - 0.5) * 0.05
		fl.vx = clampF(fl.vx, -0.4, 0.4)
		fl.vy = clampF(fl.vy, -0.2, 0.2)
		fl.x += fl.vx
		fl.y += fl.vy

		fl.blinkIn--
		if fl.blinkIn <= 0 {
			fl.lit = !fl.lit
			fl.blinkIn = 8 + f.rng.Intn(25)
		}

		inBounds := fl.x >= 0 && fl.x < float64(b.Width) &&
			fl.y >= 0 && fl.y < float64(b.Height)
		if inBounds && fl.age < fireflyMaxAge {
			kept = append(kept, *fl)
		}
	}
	f.flies = kept

	scale := 0.0
	if f.active && len(f.flies) < fireflyMaxPop {
		scale = 1.0
	}
	if f.spawn.tick(scale) {
		f.spawnFly(b)
	}
}

// spawnFly places a firefly in the air just above the yard.
func (f *Fireflies) spawnFly(b Bounds) {
	top := b.HorizonY - 8
	if top < 0 {
		top = 0
	}
	span := b.HorizonY - top
	if span < 1 {
		span = 1
	}
	f.flies = append(f.flies, firefly{
		x:       float64(f.rng.Intn(max(b.Width, 1))),
		y:       float64(top + f.rng.Intn(span)),
		lit:     true,
		blinkIn: 8 + f.rng.Intn(25),
	})
}

func (f *Fireflies) Render(g *render.Grid) {
	for _, fl := range f.flies {
		if !fl.lit {
			continue
		}
		g.WriteCell(int(fl.x), int(fl.y), '•', fireflyStyle)
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
