package engine

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"wetterm/weather"
)

func newTestApp(t *testing.T, opts Options) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return NewApp(screen, opts), screen
}

func screenText(screen tcell.SimulationScreen) string {
	var sb strings.Builder
	cells, width, height := screen.GetContents()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := cells[y*width+x]
			if len(c.Runes) > 0 {
				sb.WriteRune(c.Runes[0])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestFrameRendersSceneAndHUD(t *testing.T) {
	snap := weather.Default()
	app, screen := newTestApp(t, Options{Simulate: &snap, Location: weather.Location{Latitude: 52.52, Longitude: 13.41}})

	app.frame()

	out := screenText(screen)
	if !strings.Contains(out, "[]") {
		t.Error("house windows missing from frame")
	}
	if !strings.Contains(out, "=") {
		t.Error("path missing from frame")
	}
	if !strings.Contains(out, "Weather: Clear") {
		t.Error("HUD missing condition text")
	}
	if !strings.Contains(out, "52.52") {
		t.Error("HUD missing location")
	}
}

func TestSimulatedSnapshotSkipsLoading(t *testing.T) {
	snap := weather.NewSnapshot(weather.Rain, true, 8.0)
	app, screen := newTestApp(t, Options{Simulate: &snap})

	app.frame()
	if strings.Contains(screenText(screen), "Loading") {
		t.Error("simulated run should never show the loading spinner")
	}
	if !app.manager.Activation().Rain {
		t.Error("simulated rain snapshot did not activate rain")
	}
}

func TestLoadingSpinnerBeforeFirstResult(t *testing.T) {
	ch := make(chan weather.Result, 1)
	app, screen := newTestApp(t, Options{Weather: ch})

	app.frame()
	if !strings.Contains(screenText(screen), "Loading") {
		t.Error("expected loading HUD before the first weather result")
	}

	ch <- weather.Result{Snapshot: weather.NewSnapshot(weather.Snow, true, -3.0)}
	app.frame()
	out := screenText(screen)
	if !strings.Contains(out, "Snow") {
		t.Error("HUD did not pick up the delivered snapshot")
	}
	if !app.manager.Activation().Snow {
		t.Error("delivered snow snapshot did not activate snow")
	}
}

func TestFetchErrorShownNotFatal(t *testing.T) {
	ch := make(chan weather.Result, 1)
	app, screen := newTestApp(t, Options{Weather: ch})

	ch <- weather.Result{Err: errFake("timeout")}
	app.frame()
	if !strings.Contains(screenText(screen), "Error fetching weather") {
		t.Error("fetch error missing from HUD")
	}

	// rendering continues on the last-known (default) snapshot
	app.frame()
	if !strings.Contains(screenText(screen), "[]") {
		t.Error("scene stopped rendering after a fetch error")
	}
}

func TestResizeRepaints(t *testing.T) {
	snap := weather.Default()
	app, screen := newTestApp(t, Options{Simulate: &snap})
	app.frame()

	screen.SetSize(60, 20)
	app.frame()
	if app.grid.Width() != 60 || app.grid.Height() != 20 {
		t.Errorf("grid not resized: %dx%d", app.grid.Width(), app.grid.Height())
	}
	if !strings.Contains(screenText(screen), "[]") {
		t.Error("scene missing after resize")
	}
}

func TestQuitKeys(t *testing.T) {
	snap := weather.Default()
	app, _ := newTestApp(t, Options{Simulate: &snap})

	for _, ev := range []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		if app.handleEvent(ev) {
			t.Errorf("event %v did not quit", ev)
		}
	}
	if !app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("unrelated key quit the loop")
	}
}

type errFake string

func (e errFake) Error() string { return string(e) }
