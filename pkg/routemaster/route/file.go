package route

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/constants"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/internal"
)

// Components resolves component names used in route table files.
type Components map[string]Component

// Table is a decoded route table, ready to be turned into a Registry.
type Table struct {
	InitialRoute string
	Config       *Config // nil when the file has no [config] table
	Children     []Child
}

// Registry validates the table and builds a Registry from it.
func (t *Table) Registry() (*Registry, error) {
	return NewRegistry(t.InitialRoute, t.Config, t.Children...)
}

type tableFile struct {
	InitialRoute string         `toml:"initial_route"`
	Config       toml.Primitive `toml:"config"`
	Routes       []tableRoute   `toml:"route"`
}

type tableConfig struct {
	StatusBarStyle string `toml:"status_bar_style"`
	AccentColor    string `toml:"accent_color"`
}

type tableRoute struct {
	Kind      string `toml:"kind"` // "route" when empty
	ID        string `toml:"id"`
	Component string `toml:"component"`
	Immersive bool   `toml:"immersive"`
}

// LoadFile reads a TOML route table from path.
func LoadFile(path string, components Components) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{
			Op:        "load",
			MessageID: "InvalidRouteTable",
			Data:      map[string]any{"Reason": path},
			Err:       err,
		}
	}
	return Decode(data, components)
}

// Decode parses a TOML route table. Component names are resolved through
// components; a route with no component name is kept without one so the
// registry reports it.
//
//	initial_route = "home"
//
//	[config]
//	status_bar_style = "light-content"
//	accent_color = "#E0E0E0"
//
//	[[route]]
//	id = "home"
//	component = "Home"
func Decode(data []byte, components Components) (*Table, error) {
	var f tableFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, &ConfigurationError{
			Op:        "decode",
			MessageID: "InvalidRouteTable",
			Data:      map[string]any{"Reason": "malformed TOML"},
			Err:       err,
		}
	}

	table := &Table{InitialRoute: f.InitialRoute}

	if md.IsDefined("config") {
		if md.Type("config") != "Hash" {
			return nil, newConfigurationError("config", "ConfigNotTable", nil)
		}

		var tc tableConfig
		if err := md.PrimitiveDecode(f.Config, &tc); err != nil {
			return nil, &ConfigurationError{Op: "config", MessageID: "ConfigNotTable", Err: err}
		}

		cfg := &Config{StatusBarStyle: constants.StatusBarStyle(tc.StatusBarStyle)}
		if tc.AccentColor != "" {
			accent, err := internal.ParseHexColor(tc.AccentColor)
			if err != nil {
				return nil, &ConfigurationError{
					Op:        "config",
					MessageID: "InvalidAccentColor",
					Data:      map[string]any{"Value": tc.AccentColor},
					Err:       err,
				}
			}
			cfg.AccentColor = accent
		}
		table.Config = cfg
	}

	for _, tr := range f.Routes {
		if tr.Kind != "" && tr.Kind != KindRoute.String() {
			table.Children = append(table.Children, Element(tr.Kind))
			continue
		}

		def := Definition{ID: tr.ID, Immersive: tr.Immersive}
		if tr.Component != "" {
			component, ok := components[tr.Component]
			if !ok {
				return nil, newConfigurationError("route", "UnknownComponent", map[string]any{
					"Name": tr.Component,
					"ID":   tr.ID,
				})
			}
			def.Component = component
		}
		table.Children = append(table.Children, Route(def))
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		internal.GetInternalLogger().Warn("Ignoring unknown route table keys", "keys", keys)
	}

	return table, nil
}
