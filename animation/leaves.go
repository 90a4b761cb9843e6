package animation

import (
	"math"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"wetterm/render"
)

const (
	leafSwayAmplitude = 3.0
	leafSwayRate      = 0.12
)

var leafStyles = []tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorOrange),
	tcell.StyleDefault.Foreground(tcell.ColorDarkRed),
	tcell.StyleDefault.Foreground(tcell.ColorYellow),
}

var leafGlyphs = []rune{'❦', '*', ','}

type leaf struct {
	baseX float64 // sway centerline
	y     float64
	speed float64
	phase float64
	age   int
	kind  int
}

// Leaves fall with a sinusoidal sway as a function of age, so each leaf
// traces its own swinging descent. Enabled by a boot-time toggle.
type Leaves struct {
	leaves []leaf
	active bool
	spawn  *spawner
	rng    *rand.Rand
}

func NewLeaves() *Leaves {
	rng := newRNG()
	return &Leaves{
		spawn: newSpawner(15, 60, 0.4, rng),
		rng:   rng,
	}
}

// SetActive gates spawning; airborne leaves finish their fall.
func (l *Leaves) SetActive(active bool) { l.active = active }

// Len reports the current population size.
func (l *Leaves) Len() int { return len(l.leaves) }

func (l *Leaves) Update(b Bounds) {
	kept := l.leaves[:0]
	for i := range l.leaves {
		lf := &l.leaves[i]
		lf.age++
		lf.y += lf.speed

		x := lf.swayX()
		if lf.y < float64(b.Height) && x >= 0 && x < float64(b.Width) {
			kept = append(kept, *lf)
		}
	}
	l.leaves = kept

	scale := 0.0
	if l.active {
		scale = 1.0
	}
	if l.spawn.tick(scale) {
		l.leaves = append(l.leaves, leaf{
			baseX: float64(l.rng.Intn(max(b.Width, 1))),
			y:     0,
			speed: 0.15 + l.rng.Float64()*0.2,
			phase: l.rng.Float64() * 2 * math.Pi,
			kind:  l.rng.Intn(len(leafGlyphs)),
		})
	}
}

func (lf *leaf) swayX() float64 {
	return lf.baseX + leafSwayAmplitude*math.Sin(lf.phase+float64(lf.age)*leafSwayRate)
}

func (l *Leaves) Render(g *render.Grid) {
	for i := range l.leaves {
		lf := &l.leaves[i]
		g.WriteCell(int(lf.swayX()), int(lf.y), leafGlyphs[lf.kind], leafStyles[lf.kind%len(leafStyles)])
	}
}
