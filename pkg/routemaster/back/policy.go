// Package back maps hardware back presses onto navigation actions.
package back

import (
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/internal"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/router"
)

// Policy decides what a back press does, given the current route-stack state.
type Policy struct {
	State   func() router.State
	Actions router.Actions
}

// Handle reacts to a back press. It returns true when the press was consumed
// and false when the host should apply its default (usually exiting the app).
//
// An open drawer is closed first. Otherwise, with more than one route, the
// top route is popped.
func (p Policy) Handle() bool {
	state := p.State()

	if state.DrawerOpen {
		internal.GetInternalLogger().Debug("Back pressed, closing drawer")
		p.Actions.CloseDrawer()
		return true
	}

	if state.Len() > 1 {
		internal.GetInternalLogger().Debug("Back pressed, popping route", "routes", state.Len())
		p.Actions.Navigate(router.PopTarget(1), router.NavigateOptions{})
		return true
	}

	return false
}
