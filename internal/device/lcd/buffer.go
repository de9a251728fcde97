// Package lcd models a 2x16 character display.
package lcd

import (
	"strings"
	"sync"

	"chessclock/internal/core/model"

	"github.com/rs/zerolog/log"
)

// Buffer is an in-memory character display with a write cursor.
// Writes past the last column are dropped.
type Buffer struct {
	mu       sync.Mutex
	cells    [model.DisplayRows][model.DisplayColumns]rune
	row      model.Row
	col      int
	onChange func([model.DisplayRows]string)
}

// New returns a cleared display.
func New() *Buffer {
	buffer := &Buffer{}
	buffer.clearLocked()
	return buffer
}

// OnChange registers a callback invoked with the visible lines after every write.
func (buffer *Buffer) OnChange(handler func([model.DisplayRows]string)) {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	buffer.onChange = handler
}

// Clear blanks the display and homes the cursor.
func (buffer *Buffer) Clear() {
	buffer.mu.Lock()
	buffer.clearLocked()
	handler, lines := buffer.changedLocked()
	buffer.mu.Unlock()
	notify(handler, lines)
}

// SetCursor moves the write position. Rows outside the display are rejected,
// columns are clamped to the visible range.
func (buffer *Buffer) SetCursor(row model.Row, col int) {
	if !row.Valid() {
		log.Warn().Uint8("row", uint8(row)).Msg("lcd: cursor row out of range")
		return
	}
	if col < 0 {
		col = 0
	}
	if col > model.DisplayColumns-1 {
		col = model.DisplayColumns - 1
	}

	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	buffer.row = row
	buffer.col = col
}

// Print writes text at the cursor and advances it.
func (buffer *Buffer) Print(text string) {
	buffer.mu.Lock()
	for _, char := range text {
		if buffer.col >= model.DisplayColumns {
			break
		}
		buffer.cells[buffer.row][buffer.col] = char
		buffer.col++
	}
	handler, lines := buffer.changedLocked()
	buffer.mu.Unlock()
	notify(handler, lines)
}

// Lines returns both rows with trailing blanks trimmed.
func (buffer *Buffer) Lines() [model.DisplayRows]string {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()
	return buffer.linesLocked()
}

func (buffer *Buffer) clearLocked() {
	for row := range buffer.cells {
		for col := range buffer.cells[row] {
			buffer.cells[row][col] = ' '
		}
	}
	buffer.row = model.RowTop
	buffer.col = 0
}

func (buffer *Buffer) linesLocked() [model.DisplayRows]string {
	var lines [model.DisplayRows]string
	for row := range buffer.cells {
		lines[row] = strings.TrimRight(string(buffer.cells[row][:]), " ")
	}
	return lines
}

func (buffer *Buffer) changedLocked() (func([model.DisplayRows]string), [model.DisplayRows]string) {
	if buffer.onChange == nil {
		return nil, [model.DisplayRows]string{}
	}
	return buffer.onChange, buffer.linesLocked()
}

func notify(handler func([model.DisplayRows]string), lines [model.DisplayRows]string) {
	if handler != nil {
		handler(lines)
	}
}
