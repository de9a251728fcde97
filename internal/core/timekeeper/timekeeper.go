package timekeeper

import (
	"context"
	"errors"
	"sync"
	"time"

	"chessclock/internal/core/model"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// ErrNotStarted is returned when ticking is armed before a time control was applied.
var ErrNotStarted = errors.New("clock not started")

// Display is the character display the clock renders to.
type Display interface {
	Clear()
	SetCursor(row model.Row, col int)
	Print(text string)
}

// Alarm is the audible output sounded at game over.
type Alarm interface {
	SetActive(active bool)
}

// TimeKeeper owns both player counters and the turn flag.
type TimeKeeper struct {
	mu        sync.Mutex
	config    model.ClockConfig
	clock     clockwork.Clock
	display   Display
	alarm     Alarm
	gameID    uuid.UUID
	remaining [2]time.Duration
	active    model.Player
	running   bool
	started   bool
	over      bool
	done      chan struct{}
	events    []chan Event
}

// New creates a TimeKeeper with the provided configuration.
func New(config model.ClockConfig, clock clockwork.Clock, display Display, alarm Alarm) *TimeKeeper {
	if config.TickInterval <= 0 {
		config.TickInterval = model.TickPeriod
	}
	if config.AlarmDuration < 0 {
		config.AlarmDuration = 0
	}
	if config.Player1Key == 0 {
		config.Player1Key = model.DefaultPlayer1Key
	}
	if config.Player2Key == 0 {
		config.Player2Key = model.DefaultPlayer2Key
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &TimeKeeper{
		config:  config,
		clock:   clock,
		display: display,
		alarm:   alarm,
		active:  model.Player1,
		done:    make(chan struct{}),
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start applies a time control to both players and begins a fresh game.
func (keeper *TimeKeeper) Start(control model.TimeControl) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.gameID = uuid.New()
	keeper.remaining[model.Player1] = control.Duration
	keeper.remaining[model.Player2] = control.Duration
	keeper.active = model.Player1
	if keeper.over {
		keeper.done = make(chan struct{})
	}
	keeper.over = false
	keeper.started = true
	keeper.running = control.Duration > 0

	log.Info().
		Str("game_id", keeper.gameID.String()).
		Str("mode", control.Name).
		Dur("duration", control.Duration).
		Msg("game started")

	keeper.renderClocksLocked()
	keeper.emitLocked(EventGameStart, 0)
	if !keeper.running {
		keeper.finishLocked()
	}
}

// Snapshot returns a copy of the current game state.
func (keeper *TimeKeeper) Snapshot() model.GameState {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// Done is closed once the running game reaches its terminal state.
func (keeper *TimeKeeper) Done() <-chan struct{} {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.done
}

// Refresh re-renders both clocks, or the game over message after timeout.
func (keeper *TimeKeeper) Refresh() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.over {
		keeper.renderGameOverLocked()
		return
	}
	keeper.renderClocksLocked()
}

// OnTick advances the active player's clock by one tick.
func (keeper *TimeKeeper) OnTick() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running {
		return
	}

	step := keeper.config.TickInterval
	if keeper.remaining[keeper.active] >= step {
		keeper.remaining[keeper.active] -= step
	} else {
		keeper.remaining[keeper.active] = 0
	}

	keeper.renderClocksLocked()
	keeper.emitLocked(EventTick, 0)

	if keeper.remaining[model.Player1] == 0 || keeper.remaining[model.Player2] == 0 {
		keeper.finishLocked()
	}
}

// Run arms the periodic tick source and blocks until the game ends or ctx is done.
func (keeper *TimeKeeper) Run(ctx context.Context) error {
	keeper.mu.Lock()
	started := keeper.started
	keeper.mu.Unlock()
	if !started {
		return ErrNotStarted
	}
	done := keeper.Done()

	ticker := keeper.clock.NewTicker(keeper.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
			return nil
		case <-ticker.Chan():
			keeper.OnTick()
		}
	}
}

// Stop closes all observer channels.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) finishLocked() {
	keeper.running = false
	keeper.over = true

	loser := model.Player1
	if keeper.remaining[model.Player2] == 0 {
		loser = model.Player2
	}
	log.Info().
		Str("game_id", keeper.gameID.String()).
		Str("flagged", loser.String()).
		Msg("game over")

	keeper.soundAlarmLocked()
	keeper.renderGameOverLocked()
	keeper.emitLocked(EventGameOver, 0)
	close(keeper.done)
}

// soundAlarmLocked holds the tick handler for the whole alarm duration.
func (keeper *TimeKeeper) soundAlarmLocked() {
	if keeper.alarm == nil {
		return
	}
	keeper.alarm.SetActive(true)
	if keeper.config.AlarmDuration > 0 {
		keeper.clock.Sleep(keeper.config.AlarmDuration)
	}
	keeper.alarm.SetActive(false)
}

func (keeper *TimeKeeper) snapshotLocked() model.GameState {
	return model.GameState{
		GameID:           keeper.gameID,
		Player1Remaining: keeper.remaining[model.Player1],
		Player2Remaining: keeper.remaining[model.Player2],
		Active:           keeper.active,
		Running:          keeper.running,
		Over:             keeper.over,
	}
}

func (keeper *TimeKeeper) emitLocked(eventType EventType, key rune) {
	event := Event{
		Type:   eventType,
		GameID: keeper.gameID,
		State:  keeper.snapshotLocked(),
		Key:    key,
		At:     keeper.clock.Now(),
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
