// Package router reconciles an externally owned route stack with a scene
// stack engine.
//
// The external store owns the authoritative list of route ids and tags each
// change with the action that produced it. The Reconciler is notified with the
// previous and next snapshot and issues at most one engine call per update.
// Work that has to wait for the current transition to settle (closing the
// drawer, collapsing the stack after a reset) goes through a Scheduler.
//
// # Basic Usage
//
//	registry, err := route.NewRegistry("home", nil,
//	    route.Route(route.Definition{ID: "home", Component: home}),
//	    route.Route(route.Definition{ID: "details", Component: details}),
//	)
//	if err != nil {
//	    return err
//	}
//
//	queue := interaction.NewQueue()
//	rec := router.New(registry, scene.NewResolver(registry.Config()), store, queue)
//	rec.Start() // deferred: navigates to "home" once the host is idle
//
//	// once the scene stack exists
//	if err := rec.Mount(engine); err != nil {
//	    return err
//	}
//
//	store.Subscribe(rec.Listener())
//
// # Transitions
//
// An update whose visible route did not change is ignored whatever its
// action. Otherwise:
//
//   - PUSH resolves the next route, pushes it and, once idle, closes the drawer.
//   - POP pops if the engine has any routes.
//   - RESET on an empty stack resets the engine to the new route. With routes
//     present it pushes the new route so the transition animates, then once
//     idle closes the drawer and replaces the whole stack with that route.
//
// Unknown actions are ignored.
package router
