package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// fakeScreen records SetContent calls for flush assertions.
type fakeScreen struct {
	puts  int
	shows int
	cells map[[2]int]rune
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{cells: make(map[[2]int]rune)}
}

func (f *fakeScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	f.puts++
	f.cells[[2]int{x, y}] = primary
}

func (f *fakeScreen) Show() {
	f.shows++
}

func TestNewGridBlank(t *testing.T) {
	g := NewGrid(10, 5)

	if g.Width() != 10 || g.Height() != 5 {
		t.Fatalf("expected 10x5, got %dx%d", g.Width(), g.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if g.Cell(x, y) != Blank {
				t.Errorf("cell (%d,%d) not blank", x, y)
			}
		}
	}
}

func TestWriteCellOutOfBounds(t *testing.T) {
	g := NewGrid(4, 4)

	// None of these may panic or write anything
	g.WriteCell(-1, 0, 'x', tcell.StyleDefault)
	g.WriteCell(0, -1, 'x', tcell.StyleDefault)
	g.WriteCell(4, 0, 'x', tcell.StyleDefault)
	g.WriteCell(0, 4, 'x', tcell.StyleDefault)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if g.Cell(x, y) != Blank {
				t.Errorf("out-of-bounds write leaked into (%d,%d)", x, y)
			}
		}
	}
}

func TestWriteTextClipping(t *testing.T) {
	g := NewGrid(5, 2)

	g.WriteText(-2, 0, "hello", tcell.StyleDefault)
	if g.Cell(0, 0).Rune != 'l' || g.Cell(1, 0).Rune != 'l' || g.Cell(2, 0).Rune != 'o' {
		t.Errorf("left clip wrong: %q %q %q", g.Cell(0, 0).Rune, g.Cell(1, 0).Rune, g.Cell(2, 0).Rune)
	}
	if g.Cell(3, 0) != Blank {
		t.Errorf("expected blank after clipped text, got %q", g.Cell(3, 0).Rune)
	}

	g.WriteText(3, 1, "world", tcell.StyleDefault)
	if g.Cell(3, 1).Rune != 'w' || g.Cell(4, 1).Rune != 'o' {
		t.Errorf("right clip wrong: %q %q", g.Cell(3, 1).Rune, g.Cell(4, 1).Rune)
	}
}

func TestFlushEmitsOnlyChanges(t *testing.T) {
	g := NewGrid(8, 3)
	s := newFakeScreen()

	// First flush after creation repaints everything
	g.Flush(s)
	if s.puts != 8*3 {
		t.Errorf("expected full repaint of %d cells, got %d", 8*3, s.puts)
	}

	s.puts = 0
	g.WriteCell(2, 1, '#', tcell.StyleDefault.Foreground(tcell.ColorRed))
	g.Flush(s)
	if s.puts != 1 {
		t.Errorf("expected 1 emitted cell, got %d", s.puts)
	}
	if s.cells[[2]int{2, 1}] != '#' {
		t.Errorf("emitted wrong rune %q", s.cells[[2]int{2, 1}])
	}
}

func TestFlushIdempotent(t *testing.T) {
	g := NewGrid(6, 4)
	g.WriteCell(1, 1, '@', tcell.StyleDefault)
	s := newFakeScreen()
	g.Flush(s)

	s.puts = 0
	g.Flush(s)
	if s.puts != 0 {
		t.Errorf("second flush with no writes emitted %d cells", s.puts)
	}
	if s.shows != 2 {
		t.Errorf("expected 2 shows, got %d", s.shows)
	}
}

func TestResizeForcesFullRepaint(t *testing.T) {
	g := NewGrid(6, 4)
	s := newFakeScreen()
	g.Flush(s)

	g.Resize(6, 4) // same size, content identical
	s.puts = 0
	g.Flush(s)
	if s.puts != 6*4 {
		t.Errorf("expected full repaint after resize, got %d of %d cells", s.puts, 6*4)
	}
}

func TestClearPreservesDiffBase(t *testing.T) {
	g := NewGrid(4, 2)
	s := newFakeScreen()
	g.WriteCell(0, 0, 'a', tcell.StyleDefault)
	g.Flush(s)

	// Clearing then redrawing the identical frame emits nothing
	g.Clear()
	g.WriteCell(0, 0, 'a', tcell.StyleDefault)
	s.puts = 0
	g.Flush(s)
	if s.puts != 0 {
		t.Errorf("identical redraw after clear emitted %d cells", s.puts)
	}

	// Clearing without redrawing emits the erasure
	g.Clear()
	s.puts = 0
	g.Flush(s)
	if s.puts != 1 {
		t.Errorf("expected 1 erased cell, got %d", s.puts)
	}
}

func TestZeroSizeGrid(t *testing.T) {
	g := NewGrid(0, 0)
	g.WriteCell(0, 0, 'x', tcell.StyleDefault)
	g.WriteText(0, 0, "x", tcell.StyleDefault)
	s := newFakeScreen()
	g.Flush(s)
	if s.puts != 0 {
		t.Errorf("zero-size grid emitted %d cells", s.puts)
	}
}
