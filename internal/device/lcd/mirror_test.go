package lcd

import (
	"testing"

	"chessclock/internal/core/model"
)

func TestMirrorForwardsOnlyAttachedBuffer(t *testing.T) {
	var shown [model.DisplayRows]string
	mirror := NewMirror(func(lines [model.DisplayRows]string) {
		shown = lines
	})

	old := New()
	mirror.Attach(old)
	old.Print("P1: 00:00")
	if shown[0] != "P1: 00:00" {
		t.Fatalf("expected attached buffer to be shown got %q", shown)
	}

	fresh := New()
	mirror.Attach(fresh)
	if shown[0] != "" {
		t.Fatalf("expected attach to show the blank buffer got %q", shown)
	}
	fresh.Print("Select Mode: 1.T")
	old.Clear()
	old.Print("Game Over!")

	if shown[0] != "Select Mode: 1.T" {
		t.Fatalf("expected detached buffer to be dropped got %q", shown)
	}
	if mirror.Current(old) || !mirror.Current(fresh) {
		t.Fatalf("expected only the fresh buffer to be current")
	}
}
