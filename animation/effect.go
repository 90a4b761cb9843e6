// Package animation owns the per-frame effect subsystems (precipitation,
// sky objects, fireflies, smoke, lightning and friends) and the manager
// that activates and composites them from a weather snapshot.
package animation

import (
	"math/rand"
	"time"

	"wetterm/render"
)

// Bounds is the area an effect may occupy for one update. HorizonY is the
// first ground row; effects that live in the sky or yard use it, falling
// particles use the full height.
type Bounds struct {
	Width    int
	Height   int
	HorizonY int
}

// Effect is the lifecycle contract every subsystem implements: advance one
// tick, then draw. Update must tolerate bounds smaller than any existing
// particle position (terminal shrink) by culling, never by indexing out.
type Effect interface {
	Update(b Bounds)
	Render(g *render.Grid)
}

// newRNG seeds a private generator for spawn timing. Spawn randomness is
// separate from the deterministic scene texture hash on purpose: texture
// must repeat per coordinate, spawning must vary run to run.
func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// spawner gates particle creation: a cooldown in ticks, then a probability
// draw per tick, optionally scaled by the subsystem's intensity. After a
// spawn the cooldown resets to a random value in [minCooldown, maxCooldown].
type spawner struct {
	cooldown    int
	minCooldown int
	maxCooldown int
	chance      float64
	rng         *rand.Rand
}

func newSpawner(minCooldown, maxCooldown int, chance float64, rng *rand.Rand) *spawner {
	return &spawner{
		minCooldown: minCooldown,
		maxCooldown: maxCooldown,
		chance:      chance,
		rng:         rng,
	}
}

// tick advances the cooldown and reports whether a spawn fires this tick.
// scale multiplies the base probability; zero disables spawning entirely
// while still draining the cooldown.
func (s *spawner) tick(scale float64) bool {
	if s.cooldown > 0 {
		s.cooldown--
		return false
	}
	if scale <= 0 {
		return false
	}
	if s.rng.Float64() >= s.chance*scale {
		return false
	}
	span := s.maxCooldown - s.minCooldown
	if span > 0 {
		s.cooldown = s.minCooldown + s.rng.Intn(span)
	} else {
		s.cooldown = s.minCooldown
	}
	return true
}
