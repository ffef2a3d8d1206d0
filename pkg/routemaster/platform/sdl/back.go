// Package sdl connects SDL input and drawing types to routemaster.
//
// Importing this package requires SDL2 and cgo.
package sdl

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/internal"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/route"
)

// BackFilter recognizes back presses in the SDL event stream: the Escape and
// AC Back keys, and the B button on game controllers.
type BackFilter struct {
	Handle func() bool // Usually back.Policy.Handle
}

// HandleEvent reports whether event was a back press the handler consumed.
// Call it from the host's event loop for every polled event.
func (f BackFilter) HandleEvent(event sdl.Event) bool {
	if !IsBackPress(event) {
		return false
	}
	handled := f.Handle()
	internal.GetInternalLogger().Debug("SDL back press", "handled", handled)
	return handled
}

// IsBackPress reports whether event is a key-down or button-down back press.
func IsBackPress(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return false
		}
		return e.Keysym.Sym == sdl.K_ESCAPE || e.Keysym.Sym == sdl.K_AC_BACK
	case *sdl.ControllerButtonEvent:
		return e.Type == sdl.CONTROLLERBUTTONDOWN && e.Button == uint8(sdl.CONTROLLER_BUTTON_B)
	default:
		return false
	}
}

// AccentColor converts the drawer accent to an SDL color.
func AccentColor(cfg route.Config) sdl.Color {
	return ToColor(cfg.WithDefaults().AccentColor)
}

// ToColor converts an RGBA color to an SDL color.
func ToColor(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// HexToColor converts a 0xRRGGBB value to an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return ToColor(internal.HexToColor(hex))
}
