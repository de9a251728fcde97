package buzzer

import (
	"io"

	"github.com/rs/zerolog/log"
)

// Alarm is anything that can be switched on and off.
type Alarm interface {
	SetActive(active bool)
}

// Func adapts a plain function to Alarm.
type Func func(active bool)

// SetActive calls f(active).
func (f Func) SetActive(active bool) {
	f(active)
}

// Multi drives several outputs together.
type Multi []Alarm

// SetActive forwards to every output.
func (outputs Multi) SetActive(active bool) {
	for _, output := range outputs {
		if output != nil {
			output.SetActive(active)
		}
	}
}

// Bell rings the terminal bell when activated.
type Bell struct {
	Out io.Writer
}

// SetActive writes BEL on activation.
func (bell Bell) SetActive(active bool) {
	if !active || bell.Out == nil {
		return
	}
	if _, err := io.WriteString(bell.Out, "\a"); err != nil {
		log.Warn().Err(err).Msg("buzzer: ring bell")
	}
}

// Logged records alarm transitions in the log.
type Logged struct{}

// SetActive logs the new alarm level.
func (Logged) SetActive(active bool) {
	log.Info().Bool("active", active).Msg("alarm")
}
