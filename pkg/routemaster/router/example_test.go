package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/interaction"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/route"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/router"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/scene"
)

// store is a tiny route-stack store for the examples.
type store struct {
	state    router.State
	listener func(prev, next router.State)
}

func (s *store) Navigate(target router.Target, opts router.NavigateOptions) {
	next := router.State{Routes: append([]string(nil), s.state.Routes...), Options: opts.SceneOptions()}
	switch {
	case target.IsPop():
		next.Action = router.ActionPop
		if len(next.Routes) > 1 {
			next.Routes = next.Routes[:len(next.Routes)-1]
		}
	case opts.Reset:
		next.Action = router.ActionReset
		next.Routes = []string{target.RouteID}
	default:
		next.Action = router.ActionPush
		next.Routes = append(next.Routes, target.RouteID)
	}
	prev := s.state
	s.state = next
	s.listener(prev, next)
}

func (s *store) CloseDrawer() {
	fmt.Println("drawer closed")
}

func screen(name string) route.Component {
	return route.ComponentFunc(func(props route.Props) error {
		fmt.Printf("render %s\n", props.RouteID)
		return nil
	})
}

// Example walks through the initial reset, a push and a pop.
func Example() {
	registry, err := route.NewRegistry("home", nil,
		route.Route(route.Definition{ID: "home", Component: screen("home")}),
		route.Route(route.Definition{ID: "details", Component: screen("details")}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	queue := interaction.NewQueue()
	s := &store{}
	rec := router.New(registry, scene.NewResolver(registry.Config()), s, queue)
	s.listener = rec.Listener()

	stack := router.NewStack()
	rec.Start()
	_ = rec.Mount(stack)
	queue.Drain()
	_ = stack.Render(route.Props{})

	s.Navigate(router.RouteTarget("details"), router.NavigateOptions{Animated: true})
	fmt.Println("profile:", stack.Peek().Profile.Name)
	queue.Drain()
	_ = stack.Render(route.Props{})

	s.Navigate(router.PopTarget(1), router.NavigateOptions{})
	_ = stack.Render(route.Props{})

	// Output:
	// render home
	// profile: default
	// drawer closed
	// render details
	// render home
}

// Example_reset shows a reset from a populated stack: the new root is pushed
// first and the history collapses once the transition has settled.
func Example_reset() {
	registry, _ := route.NewRegistry("home", nil,
		route.Route(route.Definition{ID: "home", Component: screen("home")}),
		route.Route(route.Definition{ID: "details", Component: screen("details")}),
		route.Route(route.Definition{ID: "login", Component: screen("login"), Immersive: true}),
	)

	queue := interaction.NewQueue()
	s := &store{}
	rec := router.New(registry, scene.NewResolver(registry.Config()), s, queue)
	s.listener = rec.Listener()

	stack := router.NewStack(router.WithInteractions(queue))
	rec.Start()
	_ = rec.Mount(stack)
	queue.Drain()

	s.Navigate(router.RouteTarget("details"), router.NavigateOptions{})
	queue.Drain()

	s.Navigate(router.RouteTarget("login"), router.NavigateOptions{Reset: true, Animated: true})
	fmt.Println("while animating:", stack.Len(), "scenes")

	queue.Drain()
	fmt.Println("after drain:", stack.Len(), "scenes")

	stack.Settle()
	queue.Drain()
	fmt.Println("after settle:", stack.Len(), "scene")
	_ = stack.Render(route.Props{})

	// Output:
	// drawer closed
	// while animating: 3 scenes
	// after drain: 3 scenes
	// drawer closed
	// after settle: 1 scene
	// render login
}
