package model

import (
	"fmt"
	"time"
)

// Row addresses one of the two display lines.
type Row uint8

const (
	RowTop Row = iota
	RowBottom
)

const (
	DisplayRows    = 2
	DisplayColumns = 16
)

// Valid reports whether the row exists on the display.
func (row Row) Valid() bool {
	return row == RowTop || row == RowBottom
}

// FormatClock renders a remaining time as mm:ss.
func FormatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	ms := remaining.Milliseconds()
	return fmt.Sprintf("%02d:%02d", ms/60000, (ms/1000)%60)
}
