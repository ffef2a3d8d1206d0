package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/constants"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/route"
)

func recorder(calls *[]string, name string) route.Component {
	return route.ComponentFunc(func(props route.Props) error {
		*calls = append(*calls, name+":"+props.RouteID)
		return nil
	})
}

func TestResolveProfileSelection(t *testing.T) {
	r := NewResolver(route.Config{})
	def := route.Definition{ID: "details", Component: route.ComponentFunc(func(route.Props) error { return nil })}

	d := r.Resolve(def, Options{Animated: false})
	assert.Same(t, NoAnimation, d.Profile)
	assert.False(t, d.Profile.GesturesEnabled())
	assert.False(t, d.Profile.Animates())

	d = r.Resolve(def, Options{Animated: true})
	assert.Same(t, DefaultProfile, d.Profile)
	assert.Equal(t, SlideFromRight, d.Profile.Direction)
	assert.False(t, d.Profile.GesturesEnabled())
	assert.True(t, d.Profile.Animates())

	custom := PushFromRight()
	d = r.Resolve(def, Options{Animated: true, SceneConfig: custom})
	assert.Same(t, custom, d.Profile)
	assert.True(t, d.Profile.GesturesEnabled(), "caller profile is used verbatim")

	// Not animated wins over a supplied profile.
	d = r.Resolve(def, Options{Animated: false, SceneConfig: custom})
	assert.Same(t, NoAnimation, d.Profile)

	assert.Same(t, d.Profile, ConfigureScene(d))
}

func TestResolveDrawerWrapping(t *testing.T) {
	var calls []string
	r := NewResolver(route.Config{
		StatusBarStyle: constants.StatusBarStyleLightContent,
		RenderNavigationView: func(props route.Props) error {
			calls = append(calls, "drawer:"+props.RouteID)
			return nil
		},
	})

	wrapped := r.Resolve(route.Definition{ID: "home", Component: recorder(&calls, "home")}, Options{})
	require.NotNil(t, wrapped.Navigation)
	assert.Equal(t, constants.StatusBarStyleLightContent, wrapped.Navigation.Config.StatusBarStyle)
	assert.Equal(t, "#E0E0E0", wrapped.Navigation.Config.AccentHex())
	assert.Equal(t, "home", wrapped.Navigation.Route.ID)

	immersive := r.Resolve(route.Definition{ID: "player", Component: recorder(&calls, "player"), Immersive: true}, Options{})
	assert.Nil(t, immersive.Navigation)

	require.NoError(t, wrapped.Render(route.Props{}))
	require.NoError(t, immersive.Render(route.Props{}))
	assert.Equal(t, []string{"drawer:home", "home:home", "player:player"}, calls)
}

func TestRenderableWrapsWithScene(t *testing.T) {
	r := NewResolver(route.Config{})
	d := r.Resolve(route.Definition{ID: "home", Component: route.ComponentFunc(func(route.Props) error { return nil })}, Options{})

	drawer, ok := d.Renderable().(Drawer)
	require.True(t, ok)
	assert.Same(t, d, drawer.Scene)
	assert.NotNil(t, drawer.Child)
}

func TestDrawerRenderStopsOnNavigationError(t *testing.T) {
	boom := errors.New("boom")
	childCalled := false
	r := NewResolver(route.Config{RenderNavigationView: func(route.Props) error { return boom }})
	d := r.Resolve(route.Definition{ID: "home", Component: route.ComponentFunc(func(route.Props) error {
		childCalled = true
		return nil
	})}, Options{})

	err := d.Render(route.Props{})
	assert.ErrorIs(t, err, boom)
	assert.False(t, childCalled)
}

func TestDescriptorRenderPassesHostProps(t *testing.T) {
	var seen []route.Props
	capture := func(props route.Props) error {
		seen = append(seen, props)
		return nil
	}
	r := NewResolver(route.Config{RenderNavigationView: capture})
	d := r.Resolve(route.Definition{ID: "home", Component: route.ComponentFunc(capture)}, Options{})

	extra := map[string]any{"actions": "store"}
	require.NoError(t, d.Render(route.Props{RouteID: "stale", Extra: extra}))

	require.Len(t, seen, 2)
	for _, props := range seen {
		assert.Equal(t, "home", props.RouteID)
		assert.Equal(t, "store", props.Extra["actions"])
	}
}
