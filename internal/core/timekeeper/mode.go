package timekeeper

import (
	"context"
	"fmt"

	"chessclock/internal/core/model"

	"github.com/rs/zerolog/log"
)

// KeyReader blocks until one key has been pressed and released.
type KeyReader interface {
	ReadKey(ctx context.Context) (rune, error)
}

// SelectMode shows the mode menu and waits for a key mapped to a time control.
// Unmapped keys are ignored and the keypad is polled again.
func SelectMode(ctx context.Context, keys KeyReader, display Display) (model.TimeControl, error) {
	if display != nil {
		display.Clear()
		display.SetCursor(model.RowTop, 0)
		display.Print("Select Mode: 1.T")
		display.SetCursor(model.RowBottom, 0)
		display.Print("2:Blitz 3:Rapid")
	}

	for {
		key, err := keys.ReadKey(ctx)
		if err != nil {
			return model.TimeControl{}, fmt.Errorf("select mode: %w", err)
		}
		if control, ok := model.TimeControlForKey(key); ok {
			return control, nil
		}
		log.Debug().Str("key", string(key)).Msg("ignoring key outside mode menu")
	}
}
