package back

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/constants"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/internal"
)

const keyDown = 1

// ButtonConfig describes a Linux input device that carries back presses.
type ButtonConfig struct {
	DevicePath   string          // e.g. /dev/input/event1
	ButtonCodes  []evdev.EvCode  // Default: KEY_BACK and KEY_ESC
	CoolDownTime time.Duration   // Presses inside this window are dropped
	Dispatch     func(fn func()) // Runs the handler on the UI loop; nil calls it on the reader goroutine
}

func (c ButtonConfig) withDefaults() ButtonConfig {
	if len(c.ButtonCodes) == 0 {
		c.ButtonCodes = []evdev.EvCode{evdev.KEY_BACK, evdev.KEY_ESC}
	}
	if c.CoolDownTime == 0 {
		c.CoolDownTime = constants.DefaultBackCoolDown
	}
	if c.Dispatch == nil {
		c.Dispatch = func(fn func()) { fn() }
	}
	return c
}

// buttonFilter turns raw input events into back presses.
type buttonFilter struct {
	codes     map[evdev.EvCode]struct{}
	coolDown  time.Duration
	lastPress time.Time
}

func newButtonFilter(cfg ButtonConfig) *buttonFilter {
	codes := make(map[evdev.EvCode]struct{}, len(cfg.ButtonCodes))
	for _, code := range cfg.ButtonCodes {
		codes[code] = struct{}{}
	}
	return &buttonFilter{codes: codes, coolDown: cfg.CoolDownTime}
}

func (f *buttonFilter) accept(ev *evdev.InputEvent, now time.Time) bool {
	if ev == nil || ev.Type != evdev.EV_KEY || ev.Value != keyDown {
		return false
	}
	if _, ok := f.codes[ev.Code]; !ok {
		return false
	}
	if !f.lastPress.IsZero() && now.Sub(f.lastPress) < f.coolDown {
		return false
	}
	f.lastPress = now
	return true
}

// Listen opens the device and calls handle for every back press until ctx is
// done. The device is opened before Listen returns so a bad path fails fast.
// wg is marked done when the reader goroutine exits.
func Listen(ctx context.Context, wg *sync.WaitGroup, cfg ButtonConfig, handle func() bool) error {
	cfg = cfg.withDefaults()
	if cfg.DevicePath == "" {
		return errors.New("back: no input device path")
	}

	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return fmt.Errorf("back: open %s: %w", cfg.DevicePath, err)
	}

	logger := internal.GetInternalLogger()
	if name, err := dev.Name(); err == nil {
		logger.Debug("Listening for back button", "device", cfg.DevicePath, "name", name)
	}

	filter := newButtonFilter(cfg)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer dev.Close()
		// Closing the device unblocks ReadOne.
		stop := context.AfterFunc(ctx, func() { dev.Close() })
		defer stop()

		for {
			ev, err := dev.ReadOne()
			if err != nil {
				if ctx.Err() == nil {
					logger.Error("Back button device read failed", "device", cfg.DevicePath, "error", err)
				}
				return
			}
			if !filter.accept(ev, time.Now()) {
				continue
			}
			cfg.Dispatch(func() {
				handled := handle()
				logger.Debug("Back button pressed", "handled", handled)
			})
		}
	}()

	return nil
}
