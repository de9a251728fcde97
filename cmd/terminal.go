package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"chessclock/internal/core/firmware"
	"chessclock/internal/core/model"
	"chessclock/internal/device/buzzer"
	"chessclock/internal/device/keypad"
	"chessclock/internal/device/lcd"
	"chessclock/internal/device/terminal"
	"chessclock/internal/logging"
	"chessclock/internal/platform"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

func runTerminal(settings model.Settings, logLevel string) {
	// The panel owns stdout, so logs go to a file.
	if dir, err := platform.ConfigDir(appName); err == nil {
		if file, err := logging.OpenFile(dir); err == nil {
			defer file.Close()
			logging.Setup(logLevel, file)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keys := keypad.NewQueue(16)
	host := terminal.NewHost(keys, stop)
	display := lcd.New()
	display.OnChange(host.Draw)

	alarm := buzzer.Multi{buzzer.Bell{Out: host}, buzzer.Logged{}}
	if speaker := openSpeaker(settings); speaker != nil {
		defer speaker.Close()
		alarm = append(alarm, speaker)
	}

	device := firmware.New(settings.ClockConfig(), clockwork.NewRealClock(), firmware.Peripherals{
		Display: display,
		Keys:    keys,
		Alarm:   alarm,
	})

	if err := host.Start(); err != nil {
		log.Error().Err(err).Msg("terminal unavailable")
		return
	}
	defer host.Stop()

	err := device.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("clock stopped")
	}
}
