package scene

import (
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/route"
)

// Descriptor is a resolved route handed to the stack engine. It is built
// fresh on every push or reset and owned by the engine afterwards.
type Descriptor struct {
	ID         string
	Component  route.Component
	Navigation *Drawer // nil for immersive routes
	Profile    *Profile
}

// Renderable returns what the engine should draw for this scene: the bare
// component, or the component wrapped in the drawer chrome.
func (d *Descriptor) Renderable() route.Component {
	if d.Navigation == nil {
		return d.Component
	}
	return d.Navigation.Wrap(d.Component, d)
}

// Render draws the scene with the host props, stamping the route id.
func (d *Descriptor) Render(props route.Props) error {
	props.RouteID = d.ID
	return d.Renderable().Render(props)
}

// ConfigureScene is the hook a stack engine calls to learn how a scene
// transitions.
func ConfigureScene(d *Descriptor) *Profile {
	return d.Profile
}
