package timekeeper

import (
	"chessclock/internal/core/model"

	"github.com/rs/zerolog/log"
)

// OnKey applies a turn switch key. It reports whether the key changed or confirmed the turn.
// Keys other than the two switch keys, and any key after the game ended, are ignored.
func (keeper *TimeKeeper) OnKey(key rune) bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running {
		return false
	}

	var next model.Player
	switch key {
	case keeper.config.Player1Key:
		next = model.Player1
	case keeper.config.Player2Key:
		next = model.Player2
	default:
		return false
	}

	if keeper.active != next {
		log.Debug().
			Str("game_id", keeper.gameID.String()).
			Str("from", keeper.active.String()).
			Str("to", next.String()).
			Msg("turn switched")
	}
	keeper.active = next
	keeper.emitLocked(EventTurnSwitch, key)
	return true
}
