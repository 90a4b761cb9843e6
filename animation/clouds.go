package animation

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"wetterm/render"
)

var cloudArt = []string{
	"   .--.    ",
	" .(    ).  ",
	"(___.__)__)",
}

var (
	cloudStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stormCloudStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

type cloud struct {
	x, y  float64
	speed float64
}

// Clouds drifts a handful of cloud blobs across the sky band. The storm
// variant renders them darker.
type Clouds struct {
	clouds []cloud
	active bool
	dark   bool
	spawn  *spawner
	rng    *rand.Rand
}

func NewClouds() *Clouds {
	rng := newRNG()
	return &Clouds{
		spawn: newSpawner(60, 180, 0.05, rng),
		rng:   rng,
	}
}

// SetActive gates spawning; drifting clouds exit on their own.
func (c *Clouds) SetActive(active bool) { c.active = active }

// SetDark switches between the fair-weather and thundercloud palette.
func (c *Clouds) SetDark(dark bool) { c.dark = dark }

func (c *Clouds) Update(b Bounds) {
	kept := c.clouds[:0]
	for i := range c.clouds {
		cl := &c.clouds[i]
		cl.x += cl.speed
		if int(cl.x) < b.Width && int(cl.y) < b.Height {
			kept = append(kept, *cl)
		}
	}
	c.clouds = kept

	scale := 0.0
	if c.active && len(c.clouds) < 5 {
		scale = 1.0
	}
	if c.spawn.tick(scale) {
		band := b.Height / 5
		if band < 1 {
			band = 1
		}
		c.clouds = append(c.clouds, cloud{
			x:     -float64(len(cloudArt[0])),
			y:     float64(1 + c.rng.Intn(band)),
			speed: 0.05 + c.rng.Float64()*0.1,
		})
	}
}

func (c *Clouds) Render(g *render.Grid) {
	style := cloudStyle
	if c.dark {
		style = stormCloudStyle
	}
	for _, cl := range c.clouds {
		for row, line := range cloudArt {
			for col, ch := range line {
				if ch == ' ' {
					continue
				}
				g.WriteCell(int(cl.x)+col, int(cl.y)+row, ch, style)
			}
		}
	}
}
