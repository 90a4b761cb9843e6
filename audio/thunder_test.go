package audio

import (
	"testing"
	"time"
)

func TestRumbleNoiseStreamEnds(t *testing.T) {
	s := newRumbleNoise(50 * time.Millisecond)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > int(sampleRate)*2 {
			t.Fatal("stream never terminated")
		}
	}
	want := sampleRate.N(50 * time.Millisecond)
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestRumbleNoiseBounded(t *testing.T) {
	s := newRumbleNoise(100 * time.Millisecond)
	buf := make([][2]float64, 1024)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v < -1.5 || v > 1.5 {
				t.Fatalf("sample %v out of range", v)
			}
			if buf[i][0] != buf[i][1] {
				t.Fatal("channels should carry the same signal")
			}
		}
		if !ok {
			return
		}
	}
}

func TestThunderNotReadyIsNoop(t *testing.T) {
	th := &Thunder{}
	th.Rumble() // must not panic without a speaker
	th.Close()
	if th.Ready() {
		t.Error("zero-value thunder reported ready")
	}
}
