package animation

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"wetterm/render"
)

type drop struct {
	x, y  float64
	speed float64
	drift float64
}

// Rain is a population of falling streaks. One instance serves plain rain;
// a second, faster and slanted instance serves the storm downpour, so the
// orchestrator can keep their activations mutually exclusive.
type Rain struct {
	drops     []drop
	intensity float64
	active    bool

	// per-variant tuning
	baseSpeed float64
	drift     float64
	style     tcell.Style
	glyph     rune
	heavy     rune // glyph for fast drops

	spawn *spawner
	rng   *rand.Rand
}

// NewRain creates the plain rain subsystem.
func NewRain() *Rain {
	rng := newRNG()
	return &Rain{
		baseSpeed: 0.6,
		drift:     0.0,
		style:     tcell.StyleDefault.Foreground(tcell.ColorBlue),
		glyph:     '.',
		heavy:     '|',
		spawn:     newSpawner(0, 1, 0.12, rng),
		rng:       rng,
	}
}

// NewStormRain creates the thunderstorm downpour: faster, wind-slanted,
// always at full density while active.
func NewStormRain() *Rain {
	rng := newRNG()
	return &Rain{
		baseSpeed: 1.1,
		drift:     -0.3,
		style:     tcell.StyleDefault.Foreground(tcell.ColorDarkBlue),
		glyph:     '/',
		heavy:     '/',
		intensity: 1.0,
		spawn:     newSpawner(0, 1, 0.25, rng),
		rng:       rng,
	}
}

// SetIntensity stores the density scalar in [0,1] consumed on the next
// update. Pure setter, idempotent.
func (r *Rain) SetIntensity(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	r.intensity = v
}

// SetActive gates spawning; drops already falling drain out naturally.
func (r *Rain) SetActive(active bool) { r.active = active }

// Len reports the current population size.
func (r *Rain) Len() int { return len(r.drops) }

func (r *Rain) Update(b Bounds) {
	kept := r.drops[:0]
	for i := range r.drops {
		d := &r.drops[i]
		d.y += d.speed
		d.x += d.drift
		if d.y < float64(b.Height) && d.x >= 0 && d.x < float64(b.Width) {
			kept = append(kept, *d)
		}
	}
	r.drops = kept

	if !r.active {
		// still drain the cooldown so reactivation is not delayed
		r.spawn.tick(0)
		return
	}

	// density scales with both intensity and width: one attempt per few
	// columns keeps the look consistent across terminal sizes
	attempts := 1 + b.Width/6
	for i := 0; i < attempts; i++ {
		if r.spawn.tick(r.intensity) {
			r.drops = append(r.drops, drop{
				x:     float64(r.rng.Intn(max(b.Width, 1))),
				y:     0,
				speed: r.baseSpeed + r.rng.Float64()*0.4,
				drift: r.drift * (0.5 + r.rng.Float64()),
			})
		}
	}
}

func (r *Rain) Render(g *render.Grid) {
	for _, d := range r.drops {
		ch := r.glyph
		if d.speed > r.baseSpeed+0.2 {
			ch = r.heavy
		}
		g.WriteCell(int(d.x), int(d.y), ch, r.style)
	}
}
