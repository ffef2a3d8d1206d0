package scene

import (
	"fmt"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/route"
)

// Drawer is the side-drawer chrome wrapped around non-immersive routes.
// Slide and gesture mechanics belong to the host; Drawer only decides what
// gets rendered inside it.
type Drawer struct {
	Config route.Config
	Route  route.Definition
	Scene  *Descriptor     // set by Wrap
	Child  route.Component // set by Wrap
}

// Wrap returns a copy of the drawer holding child as its content.
func (d Drawer) Wrap(child route.Component, scene *Descriptor) Drawer {
	d.Child = child
	d.Scene = scene
	return d
}

// Render draws the navigation view and then the wrapped child.
func (d Drawer) Render(props route.Props) error {
	if d.Config.RenderNavigationView != nil {
		if err := d.Config.RenderNavigationView(props); err != nil {
			return fmt.Errorf("render navigation view for %q: %w", d.Route.ID, err)
		}
	}
	if d.Child == nil {
		return nil
	}
	return d.Child.Render(props)
}
