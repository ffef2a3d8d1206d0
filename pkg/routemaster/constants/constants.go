// Package constants defines shared constants and configuration values
// used throughout routemaster.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by routemaster.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	LogLevelEnvVar     = "ROUTEMASTER_LOG_LEVEL"
	LogPathEnvVar      = "ROUTEMASTER_LOG_PATH"
	RoutesFileEnvVar   = "ROUTEMASTER_ROUTES_FILE"
	BackDeviceEnvVar   = "ROUTEMASTER_BACK_DEVICE"
	BackCoolDownEnvVar = "ROUTEMASTER_BACK_COOLDOWN"
	LanguageEnvVar     = "ROUTEMASTER_LANG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// StatusBarStyle is the status bar appearance requested by the drawer chrome.
type StatusBarStyle string

const (
	StatusBarStyleDefault      StatusBarStyle = "default"
	StatusBarStyleLightContent StatusBarStyle = "light-content"
)

// Valid reports whether s is one of the accepted styles.
func (s StatusBarStyle) Valid() bool {
	return s == StatusBarStyleDefault || s == StatusBarStyleLightContent
}

// DefaultAccentColor is the drawer accent used when the config sets none.
const DefaultAccentColor uint32 = 0xE0E0E0

// Default back button and drawer chrome values.
const (
	DefaultBackCoolDown   = 300 * time.Millisecond // Ignore repeated back presses inside this window
	DefaultDrawerIconSize = 24                     // Pixel size of the drawer toggle glyph
)
