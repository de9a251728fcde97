package model

import "time"

// TimeControl is a preset starting duration applied to both players.
type TimeControl struct {
	Name     string
	Duration time.Duration
}

var (
	TimeControlTest  = TimeControl{Name: "Test", Duration: 30 * time.Second}
	TimeControlBlitz = TimeControl{Name: "Blitz", Duration: 5 * time.Minute}
	TimeControlRapid = TimeControl{Name: "Rapid", Duration: 15 * time.Minute}
)

// TimeControlForKey maps a mode menu key to its preset.
func TimeControlForKey(key rune) (TimeControl, bool) {
	switch key {
	case '1':
		return TimeControlTest, true
	case '2':
		return TimeControlBlitz, true
	case '3':
		return TimeControlRapid, true
	default:
		return TimeControl{}, false
	}
}
