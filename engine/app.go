// Package engine runs the frame loop: one goroutine owns the grid, the
// scene and every animation subsystem; weather arrives over a channel and
// is checked without blocking, so a slow fetch never stalls a frame.
package engine

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"wetterm/animation"
	"wetterm/render"
	"wetterm/scene"
	"wetterm/weather"
)

// FrameInterval is the render cadence; it also bounds input latency since
// the same select serves both.
const FrameInterval = 33 * time.Millisecond // ~30 FPS

var (
	hudStyle      = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	hudErrorStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

var spinnerFrames = []rune{'|', '/', '-', '\\'}

// Options configures an App at boot.
type Options struct {
	Leaves   bool
	Imperial bool
	Location weather.Location

	// Simulate, when set, replaces live fetching entirely.
	Simulate *weather.Snapshot

	// Weather delivers live results; ignored when Simulate is set.
	Weather <-chan weather.Result

	// OnThunder fires once per lightning strike. Nil for silence.
	OnThunder func()
}

// App is the frame loop driver. It exclusively owns the grid and the
// animation manager; nothing here is shared across goroutines.
type App struct {
	screen  tcell.Screen
	grid    *render.Grid
	manager *animation.Manager
	opts    Options

	snap        weather.Snapshot
	haveWeather bool
	fetchErr    string

	tick    int
	spinner int
}

// NewApp wires the loop around an initialized screen.
func NewApp(screen tcell.Screen, opts Options) *App {
	width, height := screen.Size()
	a := &App{
		screen:  screen,
		grid:    render.NewGrid(width, height),
		manager: animation.NewManager(opts.Leaves),
		opts:    opts,
		snap:    weather.Default(),
	}
	a.manager.OnLightning(opts.OnThunder)
	if opts.Simulate != nil {
		a.applySnapshot(*opts.Simulate)
	}
	return a
}

// Run drives frames until a quit key or an interrupt-driven screen close.
func (a *App) Run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		}
	case *tcell.EventResize:
		a.screen.Sync()
		// the grid and layout pick up the new size on the next frame
	}
	return true
}

// frame renders one tick: ingest weather, update, composite in layer
// order, flush the diff.
func (a *App) frame() {
	a.tick++
	a.pollWeather()

	width, height := a.screen.Size()
	if width != a.grid.Width() || height != a.grid.Height() {
		a.grid.Resize(width, height)
	}
	layout := scene.NewLayout(width, height)

	a.grid.Clear()
	a.manager.Advance(a.snap, layout)
	a.manager.RenderBackground(a.grid)
	scene.Render(a.grid, layout, a.snap.IsDay)
	a.manager.RenderMid(a.grid)
	a.manager.RenderForeground(a.grid)
	a.renderHUD()
	a.grid.Flush(a.screen)
}

// pollWeather performs the non-blocking once-per-frame check. No new value
// is not an error: the last snapshot keeps driving the scene.
func (a *App) pollWeather() {
	if a.opts.Simulate != nil || a.opts.Weather == nil {
		return
	}
	select {
	case res := <-a.opts.Weather:
		if res.Err != nil {
			a.fetchErr = res.Err.Error()
			return
		}
		a.fetchErr = ""
		a.applySnapshot(res.Snapshot)
	default:
	}
}

func (a *App) applySnapshot(snap weather.Snapshot) {
	a.snap = snap
	a.haveWeather = true
	a.manager.SetRainIntensity(snap.RainIntensity)
	a.manager.SetSnowIntensity(snap.SnowIntensity)
}

func (a *App) renderHUD() {
	loc := a.opts.Location
	style := hudStyle
	var text string
	switch {
	case a.fetchErr != "":
		style = hudErrorStyle
		text = fmt.Sprintf("Error fetching weather: %s | Location: %.2f°N, %.2f°E | Press 'q' to quit",
			a.fetchErr, loc.Latitude, loc.Longitude)
	case !a.haveWeather:
		if a.tick%3 == 0 {
			a.spinner = (a.spinner + 1) % len(spinnerFrames)
		}
		text = fmt.Sprintf("Weather: Loading... %c | Location: %.2f°N, %.2f°E | Press 'q' to quit",
			spinnerFrames[a.spinner], loc.Latitude, loc.Longitude)
	default:
		text = fmt.Sprintf("Weather: %s | Temp: %s | Location: %.2f°N, %.2f°E | Press 'q' to quit",
			a.snap.Condition, a.formatTemp(), loc.Latitude, loc.Longitude)
	}
	a.grid.WriteText(2, 1, text, style)
}

func (a *App) formatTemp() string {
	if a.opts.Imperial {
		return fmt.Sprintf("%.1f°F", a.snap.Temperature*9/5+32)
	}
	return fmt.Sprintf("%.1f°C", a.snap.Temperature)
}
