package router

import (
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/scene"
)

// Action tags the last transition applied by the external store.
type Action string

const (
	ActionPush  Action = "PUSH"
	ActionPop   Action = "POP"
	ActionReset Action = "RESET"
)

// State is the route-stack snapshot owned by the external store. The
// reconciler only reads it; every field is replaced on each dispatch.
type State struct {
	Routes     []string // First is the root, last is visible
	Action     Action
	Options    scene.Options // Transition settings for the pending transition
	DrawerOpen bool
}

// Top returns the visible route id, if any.
func (s State) Top() (string, bool) {
	if len(s.Routes) == 0 {
		return "", false
	}
	return s.Routes[len(s.Routes)-1], true
}

// Len returns the number of routes on the stack.
func (s State) Len() int {
	return len(s.Routes)
}

// Target is what a navigation request points at: a route id to go to, or a
// number of steps to go back.
type Target struct {
	RouteID string
	Pop     int
}

// RouteTarget targets the route registered under id.
func RouteTarget(id string) Target {
	return Target{RouteID: id}
}

// PopTarget targets n steps back.
func PopTarget(n int) Target {
	return Target{Pop: n}
}

// IsPop reports whether the target goes back instead of to a route.
func (t Target) IsPop() bool {
	return t.Pop > 0
}

// NavigateOptions accompany a navigation request.
type NavigateOptions struct {
	Reset       bool // Replace the whole stack with the target
	Animated    bool
	SceneConfig *scene.Profile
}

// SceneOptions returns the transition part of the options.
func (o NavigateOptions) SceneOptions() scene.Options {
	return scene.Options{Animated: o.Animated, SceneConfig: o.SceneConfig}
}

// Actions is the dispatch channel into the external store.
type Actions interface {
	Navigate(target Target, opts NavigateOptions)
	CloseDrawer()
}

// Scheduler defers callbacks until no animation or interaction is in flight.
type Scheduler interface {
	RunAfterInteractions(fn func())
}

// StackEngine is the scene stack that performs and animates the operations.
type StackEngine interface {
	Push(d *scene.Descriptor)
	Pop()
	ResetTo(d *scene.Descriptor)
	ImmediatelyResetRouteStack(ds []*scene.Descriptor)
	CurrentRoutes() []*scene.Descriptor
}
