package preferences

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"chessclock/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the settings UI.
type Window struct {
	window     fyne.Window
	settings   model.Settings
	onSave     func(model.Settings)
	alarm      *widget.Entry
	sound      *widget.Check
	player1Key *widget.Select
	player2Key *widget.Select
	status     *widget.Label
}

// New creates a settings window.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("Chess Clock Settings")

	alarm := widget.NewEntry()
	sound := widget.NewCheck("Sound the speaker at game over", nil)
	player1Key := widget.NewSelect(keyOptions(), nil)
	player2Key := widget.NewSelect(keyOptions(), nil)
	status := widget.NewLabel("Changes apply after the next reset.")

	form := container.NewVBox(
		widget.NewLabelWithStyle("Clock", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Alarm duration"), alarm, widget.NewLabel("ms")),
		sound,
		container.NewHBox(widget.NewLabel("Key giving the turn to P1"), player1Key),
		container.NewHBox(widget.NewLabel("Key giving the turn to P2"), player2Key),
		status,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 260))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		alarm:      alarm,
		sound:      sound,
		player1Key: player1Key,
		player2Key: player2Key,
		status:     status,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.alarm.SetText(fmt.Sprintf("%d", settings.AlarmDuration.Milliseconds()))
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.player1Key.SetSelected(string(settings.Player1Key))
	prefs.player2Key.SetSelected(string(settings.Player2Key))
}

func (prefs *Window) handleSave() {
	settings, err := parseForm(prefs.settings, prefs.alarm.Text, prefs.sound.Checked, prefs.player1Key.Selected, prefs.player2Key.Selected)
	if err != nil {
		prefs.status.SetText(err.Error())
		return
	}

	prefs.settings = settings
	prefs.status.SetText("Changes apply after the next reset.")
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseForm(base model.Settings, alarmText string, sound bool, player1, player2 string) (model.Settings, error) {
	settings := base
	if millis, ok := parsePositiveInt(alarmText); ok {
		settings.AlarmDuration = min(time.Duration(millis)*time.Millisecond, model.MaxAlarmDuration)
	}
	settings.SoundEnabled = sound

	key1, key2 := firstRune(player1), firstRune(player2)
	if !model.ValidSwitchKeys(key1, key2) {
		return base, errors.New("turn keys must be two different keypad keys")
	}
	settings.Player1Key = key1
	settings.Player2Key = key2
	return settings, nil
}

func keyOptions() []string {
	options := make([]string, 0, 16)
	for _, row := range model.KeypadLayout {
		for _, key := range row {
			options = append(options, string(key))
		}
	}
	return options
}

func firstRune(value string) rune {
	for _, r := range value {
		return r
	}
	return 0
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
