package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// drain counts the samples a streamer yields before it ends.
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestSquareWaveLength(t *testing.T) {
	d := 50 * time.Millisecond
	if got, want := drain(squareWave(880, d)), sampleRate.N(d); got != want {
		t.Errorf("samples = %d, want %d", got, want)
	}
}

func TestSquareWaveAmplitude(t *testing.T) {
	buf := make([][2]float64, 100)
	n, _ := squareWave(440, time.Second).Stream(buf)
	for i := range n {
		if v := buf[i][0]; v != volume && v != -volume {
			t.Fatalf("sample %d = %v, want ±%v", i, v, volume)
		}
	}
}

func TestPlayerDispatchesKnownSounds(t *testing.T) {
	var played []beep.Streamer
	p := &Player{play: func(s ...beep.Streamer) { played = append(played, s...) }}

	p.Play(core.SoundPaddleHit)
	p.Play(core.SoundBrickBreak)
	p.Play(core.Sound(99))

	if len(played) != 2 {
		t.Fatalf("played %d streamers, want 2", len(played))
	}
	brick := drain(played[1])
	want := sampleRate.N(25*time.Millisecond) + sampleRate.N(35*time.Millisecond)
	if brick != want {
		t.Errorf("brick break samples = %d, want %d", brick, want)
	}
}
