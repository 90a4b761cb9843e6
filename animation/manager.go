package animation

import (
	"wetterm/render"
	"wetterm/scene"
	"wetterm/weather"
)

// Activation is the per-frame derived active-effect vector. Rain and Storm
// are mutually exclusive: a thunderstorm owns the precipitation.
type Activation struct {
	Stars     bool
	Sun       bool
	Clouds    bool
	Airplanes bool
	Smoke     bool
	Rain      bool
	Storm     bool
	Snow      bool
	Fireflies bool
	Leaves    bool
}

// Manager owns every effect subsystem, derives the activation vector from
// the weather snapshot each frame, and composites the subsystems in a fixed
// layered order: background sky → (static scene, drawn by the caller) →
// chimney smoke → foreground precipitation and critters.
type Manager struct {
	stars     *Stars
	sun       *Sun
	clouds    *Clouds
	airplanes *Airplanes
	smoke     *Smoke
	rain      *Rain
	stormRain *Rain
	lightning *Lightning
	snow      *Snow
	fireflies *Fireflies
	leaves    *Leaves

	leavesEnabled bool
	rainIntensity float64
	snowIntensity float64
	act           Activation
}

// NewManager builds the closed set of subsystems. leavesEnabled is the
// boot-time toggle for the falling-leaves effect.
func NewManager(leavesEnabled bool) *Manager {
	return &Manager{
		stars:         NewStars(),
		sun:           NewSun(),
		clouds:        NewClouds(),
		airplanes:     NewAirplanes(),
		smoke:         NewSmoke(),
		rain:          NewRain(),
		stormRain:     NewStormRain(),
		lightning:     NewLightning(),
		snow:          NewSnow(),
		fireflies:     NewFireflies(),
		leaves:        NewLeaves(),
		leavesEnabled: leavesEnabled,
	}
}

// SetRainIntensity stores the rain density scalar consumed on the next
// Advance. Pure setter.
func (m *Manager) SetRainIntensity(v float64) { m.rainIntensity = v }

// SetSnowIntensity stores the snow density scalar consumed on the next
// Advance. Pure setter.
func (m *Manager) SetSnowIntensity(v float64) { m.snowIntensity = v }

// OnLightning registers the thunder hook, fired once per flash onset.
func (m *Manager) OnLightning(fn func()) { m.lightning.OnStrike(fn) }

// Activation returns the vector derived by the last Advance.
func (m *Manager) Activation() Activation { return m.act }

// Advance derives the activation vector from the snapshot, then updates
// every subsystem for one tick. Deactivated populations keep updating so
// particles already in flight fall out and cull naturally; only their
// spawning stops.
func (m *Manager) Advance(snap weather.Snapshot, l scene.Layout) {
	storm := snap.IsThunderstorm
	m.act = Activation{
		Stars:     snap.ShowStars(),
		Sun:       snap.ShowSun(),
		Clouds:    snap.IsCloudy || storm,
		Airplanes: !storm,
		Smoke:     true,
		Rain:      snap.IsRaining && !storm,
		Storm:     storm,
		Snow:      snap.IsSnowing,
		Fireflies: snap.ShowFireflies(),
		Leaves:    m.leavesEnabled && !snap.IsSnowing,
	}

	m.stars.SetActive(m.act.Stars)
	m.sun.SetActive(m.act.Sun)
	m.clouds.SetActive(m.act.Clouds)
	m.clouds.SetDark(storm)
	m.airplanes.SetActive(m.act.Airplanes)
	m.smoke.SetActive(m.act.Smoke)
	m.rain.SetActive(m.act.Rain)
	m.stormRain.SetActive(m.act.Storm)
	m.lightning.SetActive(m.act.Storm)
	m.snow.SetActive(m.act.Snow)
	m.fireflies.SetActive(m.act.Fireflies)
	m.leaves.SetActive(m.act.Leaves)

	m.rain.SetIntensity(m.rainIntensity)
	m.snow.SetIntensity(m.snowIntensity)
	m.smoke.SetAnchor(l.ChimneyX, l.ChimneyY)

	b := Bounds{Width: l.Width, Height: l.Height, HorizonY: l.HorizonY}
	for _, e := range m.updateOrder() {
		e.Update(b)
	}
}

// updateOrder is the fixed subsystem list; the effect set is closed, so
// there is no registration machinery.
func (m *Manager) updateOrder() []Effect {
	return []Effect{
		m.stars, m.sun, m.clouds, m.airplanes, m.smoke,
		m.rain, m.stormRain, m.lightning, m.snow,
		m.fireflies, m.leaves,
	}
}

// RenderBackground draws the sky layer, back to front: stars, sun, clouds,
// aircraft. Drawn before the static scene so the house occludes the sky.
func (m *Manager) RenderBackground(g *render.Grid) {
	m.stars.Render(g)
	m.sun.Render(g)
	m.clouds.Render(g)
	m.airplanes.Render(g)
}

// RenderMid draws the chimney smoke, between the scene and the weather.
func (m *Manager) RenderMid(g *render.Grid) {
	m.smoke.Render(g)
}

// RenderForeground draws precipitation, lightning, fireflies and leaves
// over everything else.
func (m *Manager) RenderForeground(g *render.Grid) {
	m.rain.Render(g)
	m.stormRain.Render(g)
	m.snow.Render(g)
	m.lightning.Render(g)
	m.fireflies.Render(g)
	m.leaves.Render(g)
}
