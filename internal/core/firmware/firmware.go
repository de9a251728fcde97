// Package firmware wires the clock engine to its peripherals for one power-on cycle.
package firmware

import (
	"context"
	"fmt"

	"chessclock/internal/core/model"
	"chessclock/internal/core/timekeeper"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Peripherals are the drivers the firmware talks to.
type Peripherals struct {
	Display timekeeper.Display
	Keys    timekeeper.KeyReader
	Alarm   timekeeper.Alarm
}

// Device is the clock between power-on and reset.
type Device struct {
	keeper      *timekeeper.TimeKeeper
	peripherals Peripherals
}

// New creates a device with a fresh, unstarted clock.
func New(config model.ClockConfig, clock clockwork.Clock, peripherals Peripherals) *Device {
	return &Device{
		keeper:      timekeeper.New(config, clock, peripherals.Display, peripherals.Alarm),
		peripherals: peripherals,
	}
}

// Keeper exposes the clock engine for observers.
func (device *Device) Keeper() *timekeeper.TimeKeeper {
	return device.keeper
}

// Run shows the mode menu, starts the game, arms ticking and then forwards
// keypad events to the turn controller until ctx is done or the keypad fails.
// After game over keys keep being read and ignored until reset.
func (device *Device) Run(ctx context.Context) error {
	control, err := timekeeper.SelectMode(ctx, device.peripherals.Keys, device.peripherals.Display)
	if err != nil {
		return err
	}
	log.Info().Str("mode", control.Name).Msg("mode selected")

	device.keeper.Start(control)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return device.keeper.Run(groupCtx)
	})
	group.Go(func() error {
		return device.pollKeys(groupCtx)
	})
	return group.Wait()
}

func (device *Device) pollKeys(ctx context.Context) error {
	for {
		key, err := device.peripherals.Keys.ReadKey(ctx)
		if err != nil {
			return fmt.Errorf("read keypad: %w", err)
		}
		device.keeper.OnKey(key)
	}
}
