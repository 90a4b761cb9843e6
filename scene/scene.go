// Package scene draws the static world: the house, the procedurally
// textured ground with its path, and the yard decorations. Everything is a
// pure function of terminal size and the day flag; nothing here keeps
// per-frame state.
package scene

import (
	"wetterm/render"
)

// Render draws the full static scene for the given layout.
func Render(g *render.Grid, l Layout, day bool) {
	renderGround(g, l)
	renderHouse(g, l)
	renderDecorations(g, l, day)
}
