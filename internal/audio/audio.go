// Package audio plays the game's sound triggers as short square-wave blips
// through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// volume is the square-wave amplitude.
const volume = 0.2

var (
	mu          sync.Mutex
	initialized bool
)

// Player is a core.SoundPlayer backed by the beep speaker.
type Player struct {
	play func(s ...beep.Streamer)
}

// Open initializes the speaker. The speaker is process-wide, so repeated
// calls share it.
func Open() (*Player, error) {
	mu.Lock()
	defer mu.Unlock()

	if !initialized {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
			return nil, err
		}
		initialized = true
	}
	return &Player{play: speaker.Play}, nil
}

// Close shuts down the speaker.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		speaker.Close()
		initialized = false
	}
}

// OpenOrSilent opens the speaker, or logs a warning and returns a silent
// player when no audio device is available.
func OpenOrSilent(logger *log.Logger) core.SoundPlayer {
	p, err := Open()
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "err", err)
		return core.Silent{}
	}
	return p
}

// Play starts the blip for s and returns immediately.
func (p *Player) Play(s core.Sound) {
	if st := streamer(s); st != nil {
		p.play(st)
	}
}

// streamer builds the waveform for a sound, or nil for unknown sounds.
func streamer(s core.Sound) beep.Streamer {
	switch s {
	case core.SoundPaddleHit:
		return squareWave(880, 50*time.Millisecond)
	case core.SoundBrickBreak:
		return beep.Seq(
			squareWave(1320, 25*time.Millisecond),
			squareWave(990, 35*time.Millisecond),
		)
	default:
		return nil
	}
}

// squareWave generates a square wave tone at freq for d.
func squareWave(freq float64, d time.Duration) beep.Streamer {
	remaining := sampleRate.N(d)
	phase := 0.0
	step := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, i > 0
			}
			v := volume
			if math.Mod(phase, 1.0) > 0.5 {
				v = -v
			}
			samples[i][0] = v
			samples[i][1] = v
			phase += step
			remaining--
		}
		return len(samples), true
	})
}
