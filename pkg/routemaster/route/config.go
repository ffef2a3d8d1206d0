package route

import (
	"image/color"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/constants"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/internal"
)

// Config configures the drawer chrome wrapped around non-immersive routes.
type Config struct {
	RenderNavigationView func(props Props) error // Contents of the side drawer
	StatusBarStyle       constants.StatusBarStyle
	AccentColor          color.RGBA // Zero value means the default accent
}

// DefaultConfig returns the config used when the host supplies none.
func DefaultConfig() Config {
	return Config{
		RenderNavigationView: func(Props) error { return nil },
		StatusBarStyle:       constants.StatusBarStyleDefault,
		AccentColor:          internal.HexToColor(constants.DefaultAccentColor),
	}
}

// WithDefaults returns c with every unset field filled from DefaultConfig.
func (c Config) WithDefaults() Config {
	merged := DefaultConfig()
	if c.RenderNavigationView != nil {
		merged.RenderNavigationView = c.RenderNavigationView
	}
	if c.StatusBarStyle != "" {
		merged.StatusBarStyle = c.StatusBarStyle
	}
	if c.AccentColor != (color.RGBA{}) {
		merged.AccentColor = c.AccentColor
	}
	return merged
}

// AccentHex returns the accent color as "#RRGGBB".
func (c Config) AccentHex() string {
	return internal.ColorToHex(c.AccentColor)
}

func (c Config) validate() error {
	if c.StatusBarStyle != "" && !c.StatusBarStyle.Valid() {
		return newConfigurationError("config", "InvalidStatusBarStyle", map[string]any{"Value": string(c.StatusBarStyle)})
	}
	return nil
}
