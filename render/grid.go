package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is a single character cell with its style.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Blank is the empty cell: a space with default styling.
var Blank = Cell{Rune: ' ', Style: tcell.StyleDefault}

// Screen is the output sink a Grid flushes to. tcell.Screen satisfies it;
// tests substitute a recording fake.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Grid is a double-buffered cell grid. Draw calls go to the current buffer;
// Flush emits only the cells that differ from the previously flushed frame.
// Row-major, exclusively owned by the frame loop.
type Grid struct {
	width  int
	height int
	cur    []Cell
	prev   []Cell
	stale  bool // next flush repaints every cell
}

// NewGrid creates a grid with both buffers blank.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height.
func (g *Grid) Height() int { return g.height }

// Resize reallocates both buffers to blank cells and marks the previous
// frame fully stale so the next flush is a full repaint.
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	g.cur = make([]Cell, size)
	g.prev = make([]Cell, size)
	for i := range g.cur {
		g.cur[i] = Blank
		g.prev[i] = Blank
	}
	g.width = width
	g.height = height
	g.stale = true
}

// Clear resets the current buffer to blank. The previous buffer is left
// untouched so the next flush still diffs against the displayed frame.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Blank
	}
}

// WriteCell writes one cell. Out-of-bounds coordinates are silently
// ignored so effect code never bounds-checks.
func (g *Grid) WriteCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cur[y*g.width+x] = Cell{Rune: ch, Style: style}
}

// WriteText writes a row of cells left to right starting at x, clipping at
// both edges. Spaces are written too: a line of art occludes what is
// behind it.
func (g *Grid) WriteText(x, y int, text string, style tcell.Style) {
	if y < 0 || y >= g.height {
		return
	}
	col := x
	for _, ch := range text {
		if col >= g.width {
			break
		}
		if col >= 0 {
			g.cur[y*g.width+col] = Cell{Rune: ch, Style: style}
		}
		col++
	}
}

// Cell returns the current buffer's cell, or Blank when out of bounds.
func (g *Grid) Cell(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Blank
	}
	return g.cur[y*g.width+x]
}

// Flush pushes the current buffer to the screen, emitting only cells that
// changed since the last flush (every cell when the grid was resized), then
// records the current buffer as displayed. Flushing twice without
// intervening writes emits nothing the second time.
func (g *Grid) Flush(s Screen) {
	for y := 0; y < g.height; y++ {
		row := y * g.width
		for x := 0; x < g.width; x++ {
			c := g.cur[row+x]
			if g.stale || c != g.prev[row+x] {
				s.SetContent(x, y, c.Rune, nil, c.Style)
			}
		}
	}
	s.Show()
	copy(g.prev, g.cur)
	g.stale = false
}
