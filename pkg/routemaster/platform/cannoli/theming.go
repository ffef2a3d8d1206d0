// Package cannoli provides drawer presets for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/constants"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/internal"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/route"
)

// AccentColor is Cannoli's default teal.
const AccentColor uint32 = 0x008080

// DrawerConfig returns a drawer config matching Cannoli's default look.
// renderNavigationView may be nil.
func DrawerConfig(renderNavigationView func(route.Props) error) route.Config {
	return route.Config{
		RenderNavigationView: renderNavigationView,
		StatusBarStyle:       constants.StatusBarStyleLightContent,
		AccentColor:          internal.HexToColor(AccentColor),
	}
}
