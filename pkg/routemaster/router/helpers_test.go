package router

import (
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/route"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/scene"
)

type call struct {
	op      string
	ids     []string
	profile *scene.Profile
	scenes  []*scene.Descriptor
}

// recordingEngine records every engine call before applying it to a Stack.
type recordingEngine struct {
	*Stack
	calls  []call
	onPush func(d *scene.Descriptor)
}

func newRecordingEngine(opts ...StackOption) *recordingEngine {
	return &recordingEngine{Stack: NewStack(opts...)}
}

func (e *recordingEngine) Push(d *scene.Descriptor) {
	e.calls = append(e.calls, call{op: "push", ids: []string{d.ID}, profile: d.Profile, scenes: []*scene.Descriptor{d}})
	if e.onPush != nil {
		e.onPush(d)
	}
	e.Stack.Push(d)
}

func (e *recordingEngine) Pop() {
	e.calls = append(e.calls, call{op: "pop"})
	e.Stack.Pop()
}

func (e *recordingEngine) ResetTo(d *scene.Descriptor) {
	e.calls = append(e.calls, call{op: "resetTo", ids: []string{d.ID}, profile: d.Profile, scenes: []*scene.Descriptor{d}})
	e.Stack.ResetTo(d)
}

func (e *recordingEngine) ImmediatelyResetRouteStack(ds []*scene.Descriptor) {
	ids := make([]string, len(ds))
	for i, d := range ds {
		ids[i] = d.ID
	}
	e.calls = append(e.calls, call{op: "immediatelyResetRouteStack", ids: ids, scenes: ds})
	e.Stack.ImmediatelyResetRouteStack(ds)
}

func (e *recordingEngine) ops() []string {
	out := make([]string, len(e.calls))
	for i, c := range e.calls {
		out[i] = c.op
	}
	return out
}

// fakeStore is a minimal route-stack store. It never pops the root route.
type fakeStore struct {
	state            State
	listeners        []func(prev, next State)
	closeDrawerCalls int
}

func (s *fakeStore) subscribe(fn func(prev, next State)) {
	s.listeners = append(s.listeners, fn)
}

func (s *fakeStore) set(next State) {
	prev := s.state
	s.state = next
	for _, fn := range s.listeners {
		fn(prev, next)
	}
}

func (s *fakeStore) Navigate(target Target, opts NavigateOptions) {
	next := State{
		Routes:     append([]string(nil), s.state.Routes...),
		Options:    opts.SceneOptions(),
		DrawerOpen: s.state.DrawerOpen,
	}
	switch {
	case target.IsPop():
		next.Action = ActionPop
		n := min(target.Pop, len(next.Routes)-1)
		if n > 0 {
			next.Routes = next.Routes[:len(next.Routes)-n]
		}
	case opts.Reset:
		next.Action = ActionReset
		next.Routes = []string{target.RouteID}
	default:
		next.Action = ActionPush
		next.Routes = append(next.Routes, target.RouteID)
	}
	s.set(next)
}

func (s *fakeStore) CloseDrawer() {
	s.closeDrawerCalls++
	next := s.state
	next.DrawerOpen = false
	s.set(next)
}

// manualScheduler lets tests run deferred callbacks one at a time.
type manualScheduler struct {
	fns []func()
}

func (m *manualScheduler) RunAfterInteractions(fn func()) {
	m.fns = append(m.fns, fn)
}

func (m *manualScheduler) runNext() bool {
	if len(m.fns) == 0 {
		return false
	}
	fn := m.fns[0]
	m.fns = m.fns[1:]
	fn()
	return true
}

func (m *manualScheduler) drain() {
	for m.runNext() {
	}
}

func testRegistry() *route.Registry {
	noop := route.ComponentFunc(func(route.Props) error { return nil })
	reg, err := route.NewRegistry("home", nil,
		route.Route(route.Definition{ID: "home", Component: noop}),
		route.Route(route.Definition{ID: "details", Component: noop}),
		route.Route(route.Definition{ID: "settings", Component: noop}),
		route.Route(route.Definition{ID: "player", Component: noop, Immersive: true}),
	)
	if err != nil {
		panic(err)
	}
	return reg
}

func newTestReconciler(actions Actions, scheduler Scheduler) *Reconciler {
	reg := testRegistry()
	return New(reg, scene.NewResolver(reg.Config()), actions, scheduler)
}
