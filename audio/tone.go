// Package audio turns an origin walk into sound: one short tone per Origin
// Shift step, pitched by direction and silent when the step was absorbed at
// the grid edge.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/origin-shift/maze"
)

const (
	SampleRate   = beep.SampleRate(48000)
	ToneDuration = 40 * time.Millisecond
	// Attenuation applied to every tone, see effects.Gain
	ToneGain = -0.6
)

// Pitches in Hz indexed by maze.Direction (C major: C5, G4, E5, E4)
var Pitches = [maze.DirectionCount]float64{
	maze.Right: 523.25,
	maze.Left:  392.00,
	maze.Up:    659.25,
	maze.Down:  329.63,
}

// Format is the PCM format of every streamer this package produces
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// ToneSamples is the length of one step in samples
func ToneSamples() int {
	return SampleRate.N(ToneDuration)
}

// Tone returns the sound of one step
func Tone(d maze.Direction, moved bool) (beep.Streamer, error) {
	n := ToneSamples()
	if !moved || d >= maze.DirectionCount {
		return beep.Silence(n), nil
	}
	sine, err := generators.SineTone(SampleRate, Pitches[d])
	if err != nil {
		return nil, err
	}
	return &effects.Gain{Streamer: beep.Take(n, sine), Gain: ToneGain}, nil
}
