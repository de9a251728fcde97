// Package keypad provides the 4x4 keypad drivers.
package keypad

import (
	"context"
	"errors"
	"sync"
	"unicode"

	"chessclock/internal/core/model"

	"github.com/rs/zerolog/log"
)

// ErrClosed is returned by ReadKey once the keypad has been closed.
var ErrClosed = errors.New("keypad closed")

// Queue is a keypad fed by complete press-release events, one Press call per event.
type Queue struct {
	keys      chan rune
	closed    chan struct{}
	closeOnce sync.Once
}

// NewQueue creates a keypad queue holding up to buffer pending keys.
func NewQueue(buffer int) *Queue {
	if buffer <= 0 {
		buffer = 1
	}
	return &Queue{
		keys:   make(chan rune, buffer),
		closed: make(chan struct{}),
	}
}

// Press enqueues a key. Lowercase hex letters are accepted, anything outside
// the keypad alphabet is rejected. Keys are dropped when the queue is full.
func (queue *Queue) Press(key rune) bool {
	key = unicode.ToUpper(key)
	if !model.IsKeypadKey(key) {
		return false
	}

	select {
	case <-queue.closed:
		return false
	default:
	}

	select {
	case queue.keys <- key:
		return true
	default:
		log.Warn().Str("key", string(key)).Msg("keypad: queue full, dropping key")
		return false
	}
}

// ReadKey blocks until a key is available, the queue is closed or ctx is done.
func (queue *Queue) ReadKey(ctx context.Context) (rune, error) {
	select {
	case key := <-queue.keys:
		return key, nil
	case <-queue.closed:
		return 0, ErrClosed
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Close wakes all readers with ErrClosed.
func (queue *Queue) Close() {
	queue.closeOnce.Do(func() {
		close(queue.closed)
	})
}
