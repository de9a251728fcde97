package model

import (
	"time"

	"github.com/google/uuid"
)

// GameState is a point-in-time copy of the clock state.
type GameState struct {
	GameID           uuid.UUID
	Player1Remaining time.Duration
	Player2Remaining time.Duration
	Active           Player
	Running          bool
	Over             bool
}

// Remaining returns the time left for the given player.
func (state GameState) Remaining(player Player) time.Duration {
	if player == Player2 {
		return state.Player2Remaining
	}
	return state.Player1Remaining
}
