package timekeeper

import (
	"context"
	"io"
	"strings"
	"sync"

	"chessclock/internal/core/model"
)

type fakeDisplay struct {
	mu      sync.Mutex
	lines   [2]string
	row     model.Row
	clears  int
	printed []string
}

func (display *fakeDisplay) Clear() {
	display.mu.Lock()
	defer display.mu.Unlock()
	display.lines = [2]string{}
	display.clears++
}

func (display *fakeDisplay) SetCursor(row model.Row, col int) {
	display.mu.Lock()
	defer display.mu.Unlock()
	display.row = row
	line := display.lines[row]
	if len(line) < col {
		line += strings.Repeat(" ", col-len(line))
	}
	display.lines[row] = line[:col]
}

func (display *fakeDisplay) Print(text string) {
	display.mu.Lock()
	defer display.mu.Unlock()
	display.lines[display.row] += text
	display.printed = append(display.printed, text)
}

func (display *fakeDisplay) Lines() [2]string {
	display.mu.Lock()
	defer display.mu.Unlock()
	return display.lines
}

type fakeAlarm struct {
	mu      sync.Mutex
	active  bool
	toggles []bool
}

func (alarm *fakeAlarm) SetActive(active bool) {
	alarm.mu.Lock()
	defer alarm.mu.Unlock()
	alarm.active = active
	alarm.toggles = append(alarm.toggles, active)
}

func (alarm *fakeAlarm) Active() bool {
	alarm.mu.Lock()
	defer alarm.mu.Unlock()
	return alarm.active
}

func (alarm *fakeAlarm) Toggles() []bool {
	alarm.mu.Lock()
	defer alarm.mu.Unlock()
	return append([]bool(nil), alarm.toggles...)
}

// scriptedKeys replays a fixed key sequence and then reports io.EOF.
type scriptedKeys struct {
	keys  []rune
	reads int
}

func (reader *scriptedKeys) ReadKey(ctx context.Context) (rune, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if reader.reads >= len(reader.keys) {
		return 0, io.EOF
	}
	key := reader.keys[reader.reads]
	reader.reads++
	return key, nil
}
