package model

import "time"

const (
	// TickPeriod is the fixed interval between two countdown steps.
	TickPeriod = time.Second

	// DefaultAlarmDuration is how long the alarm sounds at game over.
	DefaultAlarmDuration = time.Second
	// MaxAlarmDuration bounds user configured alarm lengths.
	MaxAlarmDuration = 10 * time.Second

	DefaultPlayer1Key = 'F'
	DefaultPlayer2Key = 'C'
)

// ClockConfig contains runtime settings for the clock engine.
type ClockConfig struct {
	TickInterval  time.Duration
	AlarmDuration time.Duration

	// Player1Key hands the turn to player one, Player2Key to player two.
	Player1Key rune
	Player2Key rune
}

// DefaultClockConfig returns the factory configuration of the device.
func DefaultClockConfig() ClockConfig {
	return ClockConfig{
		TickInterval:  TickPeriod,
		AlarmDuration: DefaultAlarmDuration,
		Player1Key:    DefaultPlayer1Key,
		Player2Key:    DefaultPlayer2Key,
	}
}
