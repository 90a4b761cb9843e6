package scene

import (
	"github.com/gdamore/tcell/v2"

	"wetterm/render"
)

// houseArt rows render with their base sitting on the horizon. The door sits
// at doorOffset; the curls above the roof belong to the chimney.
var houseArt = []string{
	"          (                  ",
	"                             ",
	"            )                ",
	"          ( _   _._          ",
	"           |_|-'_~_`-._      ",
	"        _.-'-_~_-~_-~-_`-._  ",
	"    _.-'_~-_~-_-~-_~_~-_~-_`-._",
	"   ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~",
	"     |  []  []   []   []  [] |",
	"     |           __    ___   |",
	"   ._|  []  []  | .|  [___]  |_._._._._._._._._._._._._._._._._.",
	"   |=|________()|__|()_______|=|=|=|=|=|=|=|=|=|=|=|=|=|=|=|=|=|",
	" ^^^^^^^^^^^^^^^ === ^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^",
}

func houseHeight() int { return len(houseArt) }

func houseWidth() int {
	w := 0
	for _, line := range houseArt {
		if len(line) > w {
			w = len(line)
		}
	}
	return w
}

var houseStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)

func renderHouse(g *render.Grid, l Layout) {
	for i, line := range houseArt {
		g.WriteText(l.HouseX, l.HouseY+i, line, houseStyle)
	}
}
