package route

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/constants"
)

const routeTable = `
initial_route = "home"

[config]
status_bar_style = "light-content"
accent_color = "#008080"

[[route]]
id = "home"
component = "Home"

[[route]]
id = "player"
component = "Player"
immersive = true
`

func testComponents() Components {
	return Components{"Home": noop, "Player": noop}
}

func TestDecode(t *testing.T) {
	table, err := Decode([]byte(routeTable), testComponents())
	require.NoError(t, err)

	assert.Equal(t, "home", table.InitialRoute)
	require.NotNil(t, table.Config)
	assert.Equal(t, constants.StatusBarStyleLightContent, table.Config.StatusBarStyle)
	assert.Equal(t, "#008080", table.Config.AccentHex())
	require.Len(t, table.Children, 2)

	reg, err := table.Registry()
	require.NoError(t, err)
	def, ok := reg.Lookup("player")
	require.True(t, ok)
	assert.True(t, def.Immersive)
}

func TestDecodeWithoutConfig(t *testing.T) {
	table, err := Decode([]byte(`initial_route = "home"
[[route]]
id = "home"
component = "Home"
`), testComponents())
	require.NoError(t, err)
	assert.Nil(t, table.Config)

	reg, err := table.Registry()
	require.NoError(t, err)
	assert.Equal(t, constants.StatusBarStyleDefault, reg.Config().StatusBarStyle)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		messageID string
	}{
		{
			name:      "config is not a table",
			data:      "initial_route = \"home\"\nconfig = \"dark\"\n",
			messageID: "ConfigNotTable",
		},
		{
			name:      "bad accent",
			data:      "initial_route = \"home\"\n[config]\naccent_color = \"teal\"\n",
			messageID: "InvalidAccentColor",
		},
		{
			name:      "unknown component",
			data:      "initial_route = \"home\"\n[[route]]\nid = \"home\"\ncomponent = \"Nope\"\n",
			messageID: "UnknownComponent",
		},
		{
			name:      "malformed",
			data:      "initial_route = ",
			messageID: "InvalidRouteTable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), testComponents())
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.messageID, cfgErr.MessageID)
		})
	}
}

func TestDecodeSurfacesRegistryErrors(t *testing.T) {
	table, err := Decode([]byte(`initial_route = "home"
[[route]]
kind = "view"
id = "home"
[[route]]
id = "settings"
`), testComponents())
	require.NoError(t, err)

	_, err = table.Registry()
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "ChildNotRoute", cfgErr.MessageID)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.toml")
	require.NoError(t, os.WriteFile(path, []byte(routeTable), 0o644))

	table, err := LoadFile(path, testComponents())
	require.NoError(t, err)
	assert.Equal(t, "home", table.InitialRoute)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"), testComponents())
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
