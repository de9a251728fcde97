package keypad

import (
	"context"
	"time"

	"chessclock/internal/core/model"

	"github.com/jonboulle/clockwork"
)

// Lines is the electrical side of the key matrix.
type Lines interface {
	// SelectRow drives one row active and all others inactive.
	SelectRow(row int)
	// ColumnActive reports whether a pressed key connects the selected row to col.
	ColumnActive(col int) bool
	// ReleaseRows returns all rows to their idle level.
	ReleaseRows()
}

// ScanConfig tunes the matrix scan timing. Zero durations disable the waits.
type ScanConfig struct {
	Settle       time.Duration
	PollInterval time.Duration
}

// DefaultScanConfig returns timings suited to a mechanical membrane keypad.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Settle:       5 * time.Microsecond,
		PollInterval: 2 * time.Millisecond,
	}
}

// Scanner reads keys by scanning a 4x4 matrix row by row.
type Scanner struct {
	lines  Lines
	clock  clockwork.Clock
	config ScanConfig
}

// NewScanner creates a matrix scanner.
func NewScanner(lines Lines, clock clockwork.Clock, config ScanConfig) *Scanner {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scanner{lines: lines, clock: clock, config: config}
}

// ReadKey blocks until a key is pressed and released again.
func (scanner *Scanner) ReadKey(ctx context.Context) (rune, error) {
	for {
		if err := ctx.Err(); err != nil {
			scanner.lines.ReleaseRows()
			return 0, err
		}

		row, col, found := scanner.scan()
		if found {
			err := scanner.awaitRelease(ctx, col)
			scanner.lines.ReleaseRows()
			if err != nil {
				return 0, err
			}
			return model.KeypadLayout[row][col], nil
		}

		scanner.lines.ReleaseRows()
		scanner.wait(scanner.config.PollInterval)
	}
}

// scan leaves the row of a detected key selected.
func (scanner *Scanner) scan() (int, int, bool) {
	for row := range model.KeypadLayout {
		scanner.lines.SelectRow(row)
		scanner.wait(scanner.config.Settle)
		for col := range model.KeypadLayout[row] {
			if scanner.lines.ColumnActive(col) {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

func (scanner *Scanner) awaitRelease(ctx context.Context, col int) error {
	for scanner.lines.ColumnActive(col) {
		if err := ctx.Err(); err != nil {
			return err
		}
		scanner.wait(scanner.config.PollInterval)
	}
	return nil
}

func (scanner *Scanner) wait(d time.Duration) {
	if d > 0 {
		scanner.clock.Sleep(d)
	}
}
