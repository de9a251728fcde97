package buzzer

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/rs/zerolog/log"
)

// Speaker plays the alarm tone through the host audio device.
type Speaker struct {
	ctx    *oto.Context
	player *oto.Player
	wave   *SquareWave
	mutex  sync.Mutex
}

// NewSpeaker opens the audio device and starts streaming (silent) samples.
func NewSpeaker(sampleRate, frequency int) (*Speaker, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	wave := NewSquareWave(sampleRate, frequency)
	player := ctx.NewPlayer(wave)
	player.Play()

	return &Speaker{ctx: ctx, player: player, wave: wave}, nil
}

// SetActive switches the tone on or off.
func (speaker *Speaker) SetActive(active bool) {
	speaker.wave.SetActive(active)
}

// Close stops playback.
func (speaker *Speaker) Close() {
	speaker.mutex.Lock()
	defer speaker.mutex.Unlock()

	if speaker.player == nil {
		return
	}
	speaker.wave.SetActive(false)
	if err := speaker.player.Close(); err != nil {
		log.Warn().Err(err).Msg("buzzer: close player")
	}
	speaker.player = nil
}
