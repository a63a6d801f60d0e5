package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

var initialized bool

// Init opens the speaker. When it fails, or is never called, every
// Play function is a silent no-op.
func Init() error {
	if initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// squareWave generates a square wave tone for a retro 8-bit feel
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// PlayPaddleHit plays a high short beep for a paddle bounce
func PlayPaddleHit() {
	if !initialized {
		return
	}
	speaker.Play(squareWave(880, 50*time.Millisecond))
}

// PlayWallBounce plays a medium short beep for a wall bounce
func PlayWallBounce() {
	if !initialized {
		return
	}
	speaker.Play(squareWave(440, 30*time.Millisecond))
}

// PlayScore plays a descending three-note jingle for a goal
func PlayScore() {
	if !initialized {
		return
	}
	speaker.Play(beep.Seq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	))
}
