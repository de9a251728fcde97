// Package terminal runs the clock panel inside a raw-mode terminal.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"chessclock/internal/core/model"
	"chessclock/internal/device/keypad"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

const (
	keyCtrlC = 0x03
	keyQuit  = 'q'
)

// Host reads raw stdin into a keypad queue and redraws the display on stdout.
type Host struct {
	in           *os.File
	out          io.Writer
	keys         *keypad.Queue
	onQuit       func()
	mu           sync.Mutex
	stopped      sync.Once
	oldTermState *term.State
}

// NewHost creates a host adapter bound to stdin and stdout.
func NewHost(keys *keypad.Queue, onQuit func()) *Host {
	return &Host{
		in:     os.Stdin,
		out:    os.Stdout,
		keys:   keys,
		onQuit: onQuit,
	}
}

// Start puts the terminal in raw mode and begins forwarding keystrokes.
// Call Stop to restore the terminal.
func (host *Host) Start() error {
	fd := int(host.in.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("set raw mode: %w", err)
		}
		host.oldTermState = oldState
	}

	go host.readLoop()
	return nil
}

// Stop restores the terminal state. The blocked stdin read ends with the process.
func (host *Host) Stop() {
	host.stopped.Do(func() {
		if host.oldTermState != nil {
			_ = term.Restore(int(host.in.Fd()), host.oldTermState)
		}
		host.mu.Lock()
		defer host.mu.Unlock()
		_, _ = io.WriteString(host.out, "\r\n")
	})
}

// Draw repaints the panel with the given display lines.
func (host *Host) Draw(lines [model.DisplayRows]string) {
	host.mu.Lock()
	defer host.mu.Unlock()
	if _, err := io.WriteString(host.out, RenderFrame(lines)); err != nil {
		log.Warn().Err(err).Msg("terminal: draw")
	}
}

// Write sends raw output, such as the bell, without tearing a frame.
func (host *Host) Write(p []byte) (int, error) {
	host.mu.Lock()
	defer host.mu.Unlock()
	return host.out.Write(p)
}

func (host *Host) readLoop() {
	buf := make([]byte, 1)
	for {
		n, err := host.in.Read(buf)
		if n > 0 {
			key, quit := TranslateKey(buf[0])
			if quit {
				if host.onQuit != nil {
					host.onQuit()
				}
				return
			}
			if key != 0 {
				host.keys.Press(key)
			}
		}
		if err != nil {
			if err != io.EOF {
				log.Warn().Err(err).Msg("terminal: read stdin")
			}
			return
		}
	}
}

// TranslateKey maps a raw input byte to a keypad key, or reports a quit request.
func TranslateKey(b byte) (rune, bool) {
	if b == keyCtrlC || b == keyQuit {
		return 0, true
	}
	key := rune(b)
	if key >= 'a' && key <= 'f' {
		key -= 'a' - 'A'
	}
	if !model.IsKeypadKey(key) {
		return 0, false
	}
	return key, false
}

// RenderFrame draws the display lines inside a frame, homing the cursor first.
func RenderFrame(lines [model.DisplayRows]string) string {
	border := "+" + strings.Repeat("-", model.DisplayColumns+2) + "+"
	var frame strings.Builder
	frame.WriteString("\x1b[H\x1b[2J")
	frame.WriteString(border + "\r\n")
	for _, line := range lines {
		fmt.Fprintf(&frame, "| %-*s |\r\n", model.DisplayColumns, line)
	}
	frame.WriteString(border + "\r\n")
	frame.WriteString("keys 0-9 a-f, q quits\r\n")
	return frame.String()
}
