package lcd

import (
	"testing"

	"chessclock/internal/core/model"
)

func TestPrintAtCursor(t *testing.T) {
	buffer := New()
	buffer.SetCursor(model.RowTop, 0)
	buffer.Print("P1: 02:05")
	buffer.SetCursor(model.RowBottom, 4)
	buffer.Print("01:01")

	lines := buffer.Lines()
	if lines[0] != "P1: 02:05" {
		t.Fatalf("expected top line P1: 02:05 got %q", lines[0])
	}
	if lines[1] != "    01:01" {
		t.Fatalf("expected bottom line offset by 4 got %q", lines[1])
	}
}

func TestPrintDropsOverflow(t *testing.T) {
	buffer := New()
	buffer.Print("Select Mode: 1.Test")
	if got := buffer.Lines()[0]; got != "Select Mode: 1.T" {
		t.Fatalf("expected text cut at 16 columns got %q", got)
	}
	if got := buffer.Lines()[1]; got != "" {
		t.Fatalf("expected overflow not to wrap got %q", got)
	}
}

func TestClearResetsCursor(t *testing.T) {
	buffer := New()
	buffer.SetCursor(model.RowBottom, 3)
	buffer.Print("xyz")
	buffer.Clear()
	buffer.Print("Game Over!")

	lines := buffer.Lines()
	if lines[0] != "Game Over!" || lines[1] != "" {
		t.Fatalf("unexpected lines after clear %q", lines)
	}
}

func TestSetCursorRejectsInvalidRow(t *testing.T) {
	buffer := New()
	buffer.SetCursor(model.RowBottom, 0)
	buffer.SetCursor(model.Row(2), 5)
	buffer.Print("ok")

	if got := buffer.Lines()[1]; got != "ok" {
		t.Fatalf("expected invalid row to leave cursor on bottom row got %q", got)
	}
}

func TestSetCursorClampsColumn(t *testing.T) {
	buffer := New()
	buffer.SetCursor(model.RowTop, 40)
	buffer.Print("XY")
	if got := buffer.Lines()[0]; got != "               X" {
		t.Fatalf("expected clamp to last column got %q", got)
	}

	buffer.SetCursor(model.RowBottom, -3)
	buffer.Print("Z")
	if got := buffer.Lines()[1]; got != "Z" {
		t.Fatalf("expected clamp to first column got %q", got)
	}
}

func TestOnChangeReceivesLines(t *testing.T) {
	buffer := New()
	var last [model.DisplayRows]string
	calls := 0
	buffer.OnChange(func(lines [model.DisplayRows]string) {
		last = lines
		calls++
	})

	buffer.Clear()
	buffer.Print("P1: 05:00")
	if calls != 2 {
		t.Fatalf("expected 2 notifications got %d", calls)
	}
	if last[0] != "P1: 05:00" {
		t.Fatalf("unexpected notified line %q", last[0])
	}
}
