package timekeeper

import (
	"context"
	"errors"
	"io"
	"testing"

	"chessclock/internal/core/model"
)

func TestSelectModeMapsKeys(t *testing.T) {
	cases := map[rune]model.TimeControl{
		'1': model.TimeControlTest,
		'2': model.TimeControlBlitz,
		'3': model.TimeControlRapid,
	}
	for key, want := range cases {
		display := &fakeDisplay{}
		control, err := SelectMode(context.Background(), &scriptedKeys{keys: []rune{key}}, display)
		if err != nil {
			t.Fatalf("key %q: unexpected error %v", key, err)
		}
		if control != want {
			t.Fatalf("key %q: expected %+v got %+v", key, want, control)
		}
	}
}

func TestSelectModeRepollsOnOtherKeys(t *testing.T) {
	keys := &scriptedKeys{keys: []rune{'9', 'C', 'F', '0', '2'}}
	display := &fakeDisplay{}
	control, err := SelectMode(context.Background(), keys, display)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if control != model.TimeControlBlitz {
		t.Fatalf("expected Blitz got %+v", control)
	}
	if keys.reads != 5 {
		t.Fatalf("expected 5 reads got %d", keys.reads)
	}
	lines := display.Lines()
	if lines[0] != "Select Mode: 1.T" || lines[1] != "2:Blitz 3:Rapid" {
		t.Fatalf("unexpected menu %q", lines)
	}
}

func TestSelectModeLeavesStateUntouched(t *testing.T) {
	keeper, _, _, _ := newTestKeeper(0)
	_, err := SelectMode(context.Background(), &scriptedKeys{keys: []rune{'7', 'A'}}, nil)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after script ran out got %v", err)
	}
	state := keeper.Snapshot()
	if state.Running || state.Player1Remaining != 0 || state.Player2Remaining != 0 {
		t.Fatalf("expected state untouched got %+v", state)
	}
}

func TestSelectModeHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := SelectMode(ctx, &scriptedKeys{keys: []rune{'1'}}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled got %v", err)
	}
}
