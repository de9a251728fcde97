// Package panel renders the simulated clock front panel.
package panel

import (
	"image/color"

	"chessclock/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var (
	lcdBackground = color.NRGBA{R: 159, G: 191, B: 59, A: 255}
	lcdForeground = color.NRGBA{R: 20, G: 32, B: 12, A: 255}
	lampOff       = color.NRGBA{R: 70, G: 30, B: 30, A: 255}
	lampOn        = color.NRGBA{R: 240, G: 60, B: 40, A: 255}
)

// Callbacks defines panel action handlers.
type Callbacks struct {
	OnReset    func()
	OnSettings func()
}

// Window shows the display, alarm lamp and keypad of the clock.
type Window struct {
	window    fyne.Window
	lines     [model.DisplayRows]*canvas.Text
	lamp      *canvas.Circle
	callbacks Callbacks
	keys      *keyMatrix
}

// New creates the panel window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("Chess Clock")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	panel := &Window{
		window:    window,
		callbacks: callbacks,
		keys:      &keyMatrix{},
	}

	rows := make([]fyne.CanvasObject, 0, model.DisplayRows)
	for row := range panel.lines {
		text := canvas.NewText(blankLine(), lcdForeground)
		text.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
		text.TextSize = 26
		panel.lines[row] = text
		rows = append(rows, text)
	}
	screen := container.NewStack(
		canvas.NewRectangle(lcdBackground),
		container.NewPadded(container.NewVBox(rows...)),
	)

	panel.lamp = canvas.NewCircle(lampOff)
	lamp := container.NewGridWrap(fyne.NewSize(18, 18), panel.lamp)

	buttons := make([]fyne.CanvasObject, 0, 16)
	for _, row := range model.KeypadLayout {
		for _, key := range row {
			buttons = append(buttons, newKeyButton(key, panel.keys))
		}
	}
	keypad := container.NewGridWithColumns(4, buttons...)

	resetButton := widget.NewButton("Reset", func() {
		if panel.callbacks.OnReset != nil {
			panel.callbacks.OnReset()
		}
	})
	settingsButton := widget.NewButton("Settings", func() {
		if panel.callbacks.OnSettings != nil {
			panel.callbacks.OnSettings()
		}
	})
	controls := container.NewHBox(lamp, widget.NewLabel("Alarm"), layout.NewSpacer(), settingsButton, resetButton)

	window.SetContent(container.NewVBox(screen, controls, keypad))
	if keyboard, ok := window.Canvas().(desktop.Canvas); ok {
		keyboard.SetOnKeyDown(func(event *fyne.KeyEvent) {
			if key, ok := keyFromName(event.Name); ok {
				panel.keys.set(key, true)
			}
		})
		keyboard.SetOnKeyUp(func(event *fyne.KeyEvent) {
			if key, ok := keyFromName(event.Name); ok {
				panel.keys.set(key, false)
			}
		})
	}
	window.Resize(fyne.NewSize(360, 420))

	return panel
}

// Show displays the panel window.
func (panel *Window) Show() {
	panel.window.Show()
	panel.window.RequestFocus()
}

// Hide hides the panel window.
func (panel *Window) Hide() {
	panel.window.Hide()
}

// SetCloseIntercept sets the handler run when the window is closed.
func (panel *Window) SetCloseIntercept(handler func()) {
	panel.window.SetCloseIntercept(handler)
}

// NewKeyLines returns a fresh set of matrix lines over the panel keypad.
func (panel *Window) NewKeyLines() *KeyLines {
	return &KeyLines{matrix: panel.keys, row: -1}
}

// SetLines updates the display text. Safe to call from any goroutine.
func (panel *Window) SetLines(lines [model.DisplayRows]string) {
	fyne.Do(func() {
		for row, text := range panel.lines {
			text.Text = padLine(lines[row])
			text.Refresh()
		}
	})
}

// SetActive lights the alarm lamp.
func (panel *Window) SetActive(active bool) {
	fyne.Do(func() {
		if active {
			panel.lamp.FillColor = lampOn
		} else {
			panel.lamp.FillColor = lampOff
		}
		panel.lamp.Refresh()
	})
}

func blankLine() string {
	return padLine("")
}

func padLine(line string) string {
	runes := []rune(line)
	if len(runes) > model.DisplayColumns {
		runes = runes[:model.DisplayColumns]
	}
	for len(runes) < model.DisplayColumns {
		runes = append(runes, ' ')
	}
	return string(runes)
}
