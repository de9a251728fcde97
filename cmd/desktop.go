package main

import (
	"context"
	"errors"
	"sync"

	"chessclock/internal/core/firmware"
	"chessclock/internal/core/model"
	"chessclock/internal/device/buzzer"
	"chessclock/internal/device/keypad"
	"chessclock/internal/device/lcd"
	"chessclock/internal/platform"
	"chessclock/internal/storage"
	"chessclock/internal/ui/panel"
	"chessclock/internal/ui/preferences"
	"chessclock/internal/ui/tray"
	"chessclock/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

func runDesktop(settings model.Settings) {
	var clockPanel *panel.Window
	guard, err := platform.AcquireSingleInstance(appName, func() {
		fyne.Do(func() {
			if clockPanel != nil {
				clockPanel.Show()
			}
		})
	})
	if err != nil {
		log.Error().Err(err).Msg("single instance")
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.chessclock.app")
	idleIcon := resources.MustLogo(resources.LogoIdle)
	alarmIcon := resources.MustLogo(resources.LogoGameOver)
	fyneApp.SetIcon(idleIcon)

	speaker := openSpeaker(settings)
	defer func() {
		if speaker != nil {
			speaker.Close()
		}
	}()

	var (
		mu        sync.Mutex
		cancelRun context.CancelFunc
	)
	var powerOn func()

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)

	var prefsWindow *preferences.Window
	clockPanel = panel.New(fyneApp, panel.Callbacks{
		OnReset: func() {
			powerOn()
		},
		OnSettings: func() {
			prefsWindow.Show()
		},
	})
	prefsWindow = preferences.New(fyneApp, settings, func(updated model.Settings) {
		mu.Lock()
		settings = updated
		mu.Unlock()
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Error().Err(err).Msg("save settings")
		}
	})

	mirror := lcd.NewMirror(clockPanel.SetLines)

	// setStatus ignores devices replaced by a later power cycle.
	setStatus := func(display *lcd.Buffer, state model.GameState) {
		if trayManager == nil {
			return
		}
		fyne.Do(func() {
			if !mirror.Current(display) {
				return
			}
			trayManager.SetStatus(tray.Status(state))
			if state.Over {
				desktopApp.SetSystemTrayIcon(alarmIcon)
			} else {
				desktopApp.SetSystemTrayIcon(idleIcon)
			}
		})
	}

	// powerOn simulates a power cycle: the previous device is dropped and a
	// fresh one starts at the mode menu.
	powerOn = func() {
		mu.Lock()
		if cancelRun != nil {
			cancelRun()
		}
		current := settings
		ctx, cancel := context.WithCancel(context.Background())
		cancelRun = cancel
		mu.Unlock()

		display := lcd.New()
		mirror.Attach(display)
		keys := keypad.NewScanner(clockPanel.NewKeyLines(), clockwork.NewRealClock(), keypad.DefaultScanConfig())

		alarm := buzzer.Multi{clockPanel, buzzer.Logged{}}
		if speaker != nil && current.SoundEnabled {
			alarm = append(alarm, speaker)
		}
		device := firmware.New(current.ClockConfig(), clockwork.NewRealClock(), firmware.Peripherals{
			Display: display,
			Keys:    keys,
			Alarm:   alarm,
		})

		events := device.Keeper().Subscribe(8)
		go func() {
			for event := range events {
				setStatus(display, event.State)
			}
		}()
		go func() {
			defer device.Keeper().Stop()
			err := device.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("clock stopped")
			}
		}()
	}

	quit := func() {
		mu.Lock()
		if cancelRun != nil {
			cancelRun()
		}
		mu.Unlock()
		fyneApp.Quit()
	}

	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:     clockPanel.Show,
			OnSettings: prefsWindow.Show,
			OnReset:    powerOn,
			OnQuit:     quit,
		})
		desktopApp.SetSystemTrayIcon(idleIcon)
		clockPanel.SetCloseIntercept(clockPanel.Hide)
	}

	powerOn()
	clockPanel.Show()
	fyneApp.Run()
}
