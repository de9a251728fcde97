package timekeeper

import (
	"time"

	"chessclock/internal/core/model"

	"github.com/google/uuid"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventGameStart  EventType = "game_start"
	EventTick       EventType = "tick"
	EventTurnSwitch EventType = "turn_switch"
	EventGameOver   EventType = "game_over"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type   EventType
	GameID uuid.UUID
	State  model.GameState
	Key    rune
	At     time.Time
}
