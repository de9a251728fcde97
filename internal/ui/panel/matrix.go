package panel

import (
	"sync"

	"chessclock/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// keyMatrix tracks which panel keys are held down.
type keyMatrix struct {
	mu      sync.Mutex
	pressed [4][4]bool
}

func (matrix *keyMatrix) set(key rune, down bool) bool {
	row, col, ok := keyPosition(key)
	if !ok {
		return false
	}
	matrix.mu.Lock()
	defer matrix.mu.Unlock()
	matrix.pressed[row][col] = down
	return true
}

func (matrix *keyMatrix) held(row, col int) bool {
	matrix.mu.Lock()
	defer matrix.mu.Unlock()
	return matrix.pressed[row][col]
}

func keyPosition(key rune) (int, int, bool) {
	for row, keys := range model.KeypadLayout {
		for col, candidate := range keys {
			if candidate == key {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

// KeyLines exposes the panel keypad as row and column lines for a matrix scanner.
// Every scanner needs its own KeyLines since the selected row is per scanner.
type KeyLines struct {
	matrix *keyMatrix
	row    int
}

// SelectRow drives one row of the panel keypad.
func (lines *KeyLines) SelectRow(row int) {
	lines.row = row
}

// ColumnActive reports whether the key at the selected row and col is held.
func (lines *KeyLines) ColumnActive(col int) bool {
	if lines.row < 0 || lines.row >= len(model.KeypadLayout) || col < 0 || col >= len(model.KeypadLayout[0]) {
		return false
	}
	return lines.matrix.held(lines.row, col)
}

// ReleaseRows deselects all rows.
func (lines *KeyLines) ReleaseRows() {
	lines.row = -1
}

// keyButton reports press and release separately instead of a single tap.
type keyButton struct {
	widget.Button
	key    rune
	matrix *keyMatrix
}

func newKeyButton(key rune, matrix *keyMatrix) *keyButton {
	button := &keyButton{key: key, matrix: matrix}
	button.Text = string(key)
	button.ExtendBaseWidget(button)
	return button
}

// MouseDown holds the key.
func (button *keyButton) MouseDown(*desktop.MouseEvent) {
	button.matrix.set(button.key, true)
}

// MouseUp releases the key.
func (button *keyButton) MouseUp(*desktop.MouseEvent) {
	button.matrix.set(button.key, false)
}

// MouseOut releases the key when the pointer leaves while held.
func (button *keyButton) MouseOut() {
	button.Button.MouseOut()
	button.matrix.set(button.key, false)
}

func keyFromName(name fyne.KeyName) (rune, bool) {
	runes := []rune(string(name))
	if len(runes) != 1 || !model.IsKeypadKey(runes[0]) {
		return 0, false
	}
	return runes[0], true
}
