package routemaster

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/back"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/route"
)

// Env holds the settings routemaster reads from the environment. Struct tags
// carry the names declared in the constants package: constants.LogLevelEnvVar,
// constants.LogPathEnvVar, constants.RoutesFileEnvVar,
// constants.BackDeviceEnvVar, constants.BackCoolDownEnvVar and
// constants.LanguageEnvVar.
type Env struct {
	LogLevel     string        `env:"ROUTEMASTER_LOG_LEVEL"`
	LogPath      string        `env:"ROUTEMASTER_LOG_PATH"`
	RoutesFile   string        `env:"ROUTEMASTER_ROUTES_FILE"`
	BackDevice   string        `env:"ROUTEMASTER_BACK_DEVICE"`
	BackCoolDown time.Duration `env:"ROUTEMASTER_BACK_COOLDOWN" envDefault:"300ms"`
	Language     string        `env:"ROUTEMASTER_LANG"`
}

// LoadEnv parses routemaster's environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Options fills unset fields of base from the environment. Fields already
// set in base win.
func (e Env) Options(base Options) Options {
	if base.LogLevel == "" {
		base.LogLevel = e.LogLevel
	}
	if base.LogPath == "" {
		base.LogPath = e.LogPath
	}
	if base.Language == "" {
		base.Language = e.Language
	}
	if base.BackButton == nil && e.BackDevice != "" {
		base.BackButton = &back.ButtonConfig{
			DevicePath:   e.BackDevice,
			CoolDownTime: e.BackCoolDown,
		}
	}
	return base
}

// LoadRoutes decodes the route table named by ROUTEMASTER_ROUTES_FILE.
// It returns nil without error when the variable is unset.
func (e Env) LoadRoutes(components route.Components) (*route.Table, error) {
	if e.RoutesFile == "" {
		return nil, nil
	}
	table, err := route.LoadFile(e.RoutesFile, components)
	if err != nil {
		return nil, err
	}
	return table, nil
}
