package model

import "time"

// Settings defines user preferences that survive restarts.
type Settings struct {
	AlarmDuration time.Duration
	SoundEnabled  bool
	Player1Key    rune
	Player2Key    rune
}

// DefaultSettings returns factory settings.
func DefaultSettings() Settings {
	return Settings{
		AlarmDuration: DefaultAlarmDuration,
		SoundEnabled:  true,
		Player1Key:    DefaultPlayer1Key,
		Player2Key:    DefaultPlayer2Key,
	}
}

// ValidSwitchKeys reports whether the pair can serve as the two turn keys.
// Mode keys are allowed since the mode menu and play never overlap.
func ValidSwitchKeys(player1, player2 rune) bool {
	return IsKeypadKey(player1) && IsKeypadKey(player2) && player1 != player2
}

// ClockConfig converts settings to a ClockConfig.
func (settings Settings) ClockConfig() ClockConfig {
	config := DefaultClockConfig()
	config.AlarmDuration = settings.AlarmDuration
	if ValidSwitchKeys(settings.Player1Key, settings.Player2Key) {
		config.Player1Key = settings.Player1Key
		config.Player2Key = settings.Player2Key
	}
	return config
}
