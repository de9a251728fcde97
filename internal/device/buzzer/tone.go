// Package buzzer implements the game over alarm outputs.
package buzzer

import (
	"encoding/binary"
	"io"
	"sync/atomic"
)

const (
	DefaultSampleRate = 44100
	DefaultFrequency  = 2000
	defaultAmplitude  = 0x2000
)

// SquareWave streams a signed 16-bit little-endian mono square wave while
// active and silence otherwise.
type SquareWave struct {
	active    atomic.Bool
	halfCycle int
	phase     int
	amplitude int16
}

// NewSquareWave creates a tone generator for the given rate and pitch.
func NewSquareWave(sampleRate, frequency int) *SquareWave {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	halfCycle := sampleRate / (2 * frequency)
	if halfCycle < 1 {
		halfCycle = 1
	}
	return &SquareWave{halfCycle: halfCycle, amplitude: defaultAmplitude}
}

// SetActive switches the tone on or off.
func (wave *SquareWave) SetActive(active bool) {
	wave.active.Store(active)
}

// Read fills p with whole samples. Buffers shorter than one sample are rejected.
func (wave *SquareWave) Read(p []byte) (int, error) {
	samples := len(p) / 2
	if samples == 0 {
		return 0, io.ErrShortBuffer
	}
	if !wave.active.Load() {
		clear(p[:samples*2])
		wave.phase = 0
		return samples * 2, nil
	}

	for i := 0; i < samples; i++ {
		value := wave.amplitude
		if wave.phase >= wave.halfCycle {
			value = -value
		}
		binary.LittleEndian.PutUint16(p[i*2:], uint16(value))
		wave.phase++
		if wave.phase >= 2*wave.halfCycle {
			wave.phase = 0
		}
	}
	return samples * 2, nil
}
