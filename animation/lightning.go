package animation

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"wetterm/render"
)

const (
	flashHoldTicks  = 3
	lightningChance = 0.015
)

var (
	boltStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	flashStyle = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
)

type boltPoint struct {
	x, y int
	ch   rune
}

// Lightning fires a low-probability flash per tick while a storm is active,
// holds it for a fixed few ticks, then resets. It owns no rain particles.
type Lightning struct {
	active     bool
	flashTicks int
	bolt       []boltPoint
	onStrike   func()
	rng        *rand.Rand
}

func NewLightning() *Lightning {
	return &Lightning{rng: newRNG()}
}

// SetActive gates new strikes; a flash already lit finishes its hold.
func (l *Lightning) SetActive(active bool) { l.active = active }

// OnStrike registers a hook invoked once at each flash onset (the thunder
// sound). Nil is fine.
func (l *Lightning) OnStrike(fn func()) { l.onStrike = fn }

// Flashing reports whether a flash is currently lit.
func (l *Lightning) Flashing() bool { return l.flashTicks > 0 }

func (l *Lightning) Update(b Bounds) {
	if l.flashTicks > 0 {
		l.flashTicks--
		if l.flashTicks == 0 {
			l.bolt = nil
		}
		return
	}
	if !l.active || b.Width < 6 || b.HorizonY < 4 {
		return
	}
	if l.rng.Float64() < lightningChance {
		l.strike(b)
	}
}

// strike walks a jittered bolt from the cloud layer down to the horizon.
func (l *Lightning) strike(b Bounds) {
	l.flashTicks = flashHoldTicks
	l.bolt = l.bolt[:0]

	x := 2 + l.rng.Intn(b.Width-4)
	for y := 2; y < b.HorizonY; y++ {
		step := l.rng.Intn(3) - 1 // -1, 0, +1
		ch := '|'
		switch step {
		case -1:
			ch = '\\'
		case 1:
			ch = '/'
		}
		x += step
		if x < 0 || x >= b.Width {
			break
		}
		l.bolt = append(l.bolt, boltPoint{x: x, y: y, ch: ch})
	}

	if l.onStrike != nil {
		l.onStrike()
	}
}

func (l *Lightning) Render(g *render.Grid) {
	if l.flashTicks == 0 {
		return
	}
	// brighten the sky line on the first, brightest tick
	if l.flashTicks == flashHoldTicks {
		for x := 0; x < g.Width(); x++ {
			g.WriteCell(x, 1, '▒', flashStyle)
		}
	}
	for _, p := range l.bolt {
		g.WriteCell(p.x, p.y, p.ch, boltStyle)
	}
}
