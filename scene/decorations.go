package scene

import (
	"github.com/gdamore/tcell/v2"

	"wetterm/render"
)

var treeArt = []string{
	"      ####      ",
	"    ########    ",
	"   ##########   ",
	"    ########    ",
	"      _||_      ",
}

var bushArt = []string{
	"  ,.,  ",
	" (,,,,)",
	"  \"||\" ",
}

var fenceArt = []string{
	"|--|--|--|--|",
	"|  |  |  |  |",
}

var mailboxArt = []string{
	" ___ ",
	"|___|",
	"  |  ",
}

// decorPalette is the decoration color set; night dims foliage and warms
// nothing, matching the rest of the scene going dark.
type decorPalette struct {
	tree    tcell.Style
	bush    tcell.Style
	fence   tcell.Style
	mailbox tcell.Style
}

var dayPalette = decorPalette{
	tree:    tcell.StyleDefault.Foreground(tcell.ColorDarkGreen),
	bush:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
	fence:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	mailbox: tcell.StyleDefault.Foreground(tcell.ColorBlue),
}

var nightPalette = decorPalette{
	tree:    tcell.StyleDefault.Foreground(tcell.NewRGBColor(20, 70, 20)),
	bush:    tcell.StyleDefault.Foreground(tcell.NewRGBColor(30, 90, 30)),
	fence:   tcell.StyleDefault.Foreground(tcell.ColorGray),
	mailbox: tcell.StyleDefault.Foreground(tcell.ColorNavy),
}

func renderArt(g *render.Grid, x, y int, art []string, style tcell.Style) {
	for i, line := range art {
		g.WriteText(x, y+i, line, style)
	}
}

func renderDecorations(g *render.Grid, l Layout, day bool) {
	pal := dayPalette
	if !day {
		pal = nightPalette
	}

	// Tree left of the house
	treeX := sub(l.HouseX, 20)
	if treeX > 0 {
		renderArt(g, treeX, sub(l.HorizonY, len(treeArt)), treeArt, pal.tree)
	}

	// Fence right of the house, sitting on the ground
	fenceX := l.HouseX + houseWidth() + 2
	if fenceX < l.Width {
		renderArt(g, fenceX, sub(l.HorizonY, len(fenceArt)), fenceArt, pal.fence)
	}

	// Mailbox beside the path, a step onto the grass
	mailboxX := l.PathCenter + 6
	if mailboxX < l.Width {
		renderArt(g, mailboxX, l.HorizonY+1, mailboxArt, pal.mailbox)
	}

	// Bush left of the path, half sunk into the ground line
	bushX := sub(l.PathCenter, 10)
	if bushX > 0 {
		renderArt(g, bushX, sub(l.HorizonY, len(bushArt)/2), bushArt, pal.bush)
	}
}
