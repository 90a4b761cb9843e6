// Package audio plays the thunder rumble. Sound is optional: if the
// speaker cannot initialize the scene runs silently.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Thunder owns the speaker and produces a filtered-noise rumble per strike.
type Thunder struct {
	ready bool
}

// NewThunder initializes the speaker. A failure is returned but the value
// is still usable; Rumble just becomes a no-op.
func NewThunder() (*Thunder, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Thunder{ready: err == nil}, err
}

// Ready reports whether the speaker initialized.
func (t *Thunder) Ready() bool { return t.ready }

// Rumble plays one thunder clap: a burst of low-passed noise with a sharp
// attack and a long release. Non-blocking.
func (t *Thunder) Rumble() {
	if !t.ready {
		return
	}
	dur := 900*time.Millisecond + time.Duration(rand.Intn(600))*time.Millisecond
	noise := newRumbleNoise(dur)
	quiet := &effects.Volume{
		Streamer: noise,
		Base:     2,
		Volume:   -1.5,
	}
	speaker.Play(quiet)
}

// Close releases the speaker.
func (t *Thunder) Close() {
	if t.ready {
		speaker.Close()
	}
}

// rumbleNoise streams low-pass filtered noise under a decay envelope, the
// cheap way to sound like distant thunder.
type rumbleNoise struct {
	total    int
	position int
	last     float64
}

func newRumbleNoise(d time.Duration) beep.Streamer {
	return &rumbleNoise{total: sampleRate.N(d)}
}

func (r *rumbleNoise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if r.position >= r.total {
			return i, false
		}

		// one-pole low-pass over white noise keeps only the rumble
		white := rand.Float64()*2 - 1
		r.last += 0.04 * (white - r.last)

		// fast attack, exponential release
		progress := float64(r.position) / float64(r.total)
		env := math.Exp(-4 * progress)
		if r.position < 500 {
			env *= float64(r.position) / 500
		}

		v := r.last * env * 6
		samples[i][0] = v
		samples[i][1] = v
		r.position++
	}
	return len(samples), true
}

func (r *rumbleNoise) Err() error { return nil }
