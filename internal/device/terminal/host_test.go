package terminal

import (
	"bytes"
	"strings"
	"testing"

	"chessclock/internal/core/model"
)

func TestTranslateKey(t *testing.T) {
	cases := map[byte]rune{
		'1': '1',
		'0': '0',
		'c': 'C',
		'F': 'F',
		'a': 'A',
		'g': 0,
		' ': 0,
		'z': 0,
	}
	for input, want := range cases {
		got, quit := TranslateKey(input)
		if quit {
			t.Fatalf("byte %q: unexpected quit", input)
		}
		if got != want {
			t.Fatalf("byte %q: expected %q got %q", input, want, got)
		}
	}
}

func TestTranslateKeyQuit(t *testing.T) {
	for _, input := range []byte{'q', 0x03} {
		if _, quit := TranslateKey(input); !quit {
			t.Fatalf("byte %#x: expected quit", input)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	frame := RenderFrame([model.DisplayRows]string{"P1: 02:05", "P2: 05:00"})
	if !strings.Contains(frame, "| P1: 02:05        |\r\n") {
		t.Fatalf("expected padded top line in %q", frame)
	}
	if !strings.Contains(frame, "| P2: 05:00        |\r\n") {
		t.Fatalf("expected padded bottom line in %q", frame)
	}
	if !strings.HasPrefix(frame, "\x1b[H\x1b[2J") {
		t.Fatalf("expected frame to home the cursor")
	}
}

func TestDrawWritesFrame(t *testing.T) {
	var out bytes.Buffer
	host := &Host{out: &out}
	lines := [model.DisplayRows]string{"Game Over!", ""}
	host.Draw(lines)
	if out.String() != RenderFrame(lines) {
		t.Fatalf("expected Draw to write the rendered frame")
	}
}

func TestWriteIsPassedThrough(t *testing.T) {
	var out bytes.Buffer
	host := &Host{out: &out}
	if _, err := host.Write([]byte("\a")); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if out.String() != "\a" {
		t.Fatalf("expected bell got %q", out.String())
	}
}
