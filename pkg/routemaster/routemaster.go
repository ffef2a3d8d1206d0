// Package routemaster keeps a scene stack in step with an externally owned
// route stack.
//
// A host owns the authoritative list of route ids (usually a store that
// dispatches PUSH, POP and RESET actions). routemaster validates the route
// definitions once, resolves each route into a scene with its transition and
// drawer chrome, and turns every store change into the matching stack engine
// call. Hardware back presses are mapped back onto the same store actions.
package routemaster

import (
	"context"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/back"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/constants"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/interaction"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/internal"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/route"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/router"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/scene"
)

// Options configures a Router.
type Options struct {
	InitialRoute string              // Route navigated to on start (required)
	Config       *route.Config       // Drawer config; nil uses the defaults
	Actions      router.Actions      // Dispatch channel into the store (required)
	State        func() router.State // Current store state, used for back presses
	Scheduler    router.Scheduler    // Deferred work; nil creates an interaction.Queue
	BackButton   *back.ButtonConfig  // Linux input device for back presses; nil disables. Presses run via Scheduler unless Dispatch is set
	LogPath      string              // Full path for the log file; empty logs to stdout only
	LogLevel     string              // Application log level ("debug", "info", "warn", "error")
	Language     string              // Language for configuration error messages
}

// Router ties the registry, scene resolver and reconciler together.
type Router struct {
	registry   *route.Registry
	resolver   *scene.Resolver
	reconciler *router.Reconciler
	queue      *interaction.Queue
	scheduler  router.Scheduler
	policy     back.Policy

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New validates the options and route children and returns a Router whose
// initial navigation is already scheduled. The stack engine must be mounted
// before the scheduler next drains.
func New(options Options, children ...route.Child) (*Router, error) {
	setupLogging(options)

	if options.Language != "" {
		internal.SetLanguage(options.Language)
	}

	registry, err := route.NewRegistry(options.InitialRoute, options.Config, children...)
	if err != nil {
		return nil, err
	}

	if options.Actions == nil {
		return nil, &route.ConfigurationError{Op: "actions", MessageID: "MissingActions"}
	}

	r := &Router{
		registry: registry,
		resolver: scene.NewResolver(registry.Config()),
		policy:   back.Policy{State: options.State, Actions: options.Actions},
	}

	r.scheduler = options.Scheduler
	if r.scheduler == nil {
		r.queue = interaction.NewQueue()
		r.scheduler = r.queue
	}

	r.reconciler = router.New(registry, r.resolver, options.Actions, r.scheduler)

	if options.BackButton != nil {
		ctx, cancel := context.WithCancel(context.Background())
		cfg := backButtonConfig(*options.BackButton, r.scheduler)
		if err := back.Listen(ctx, &r.wg, cfg, r.HandleBack); err != nil {
			cancel()
			return nil, NewInfrastructureError("back_button", err)
		}
		r.cancel = cancel
	}

	r.reconciler.Start()

	internal.GetInternalLogger().Debug("Router created",
		"initial_route", registry.InitialRoute(),
		"routes", registry.Len(),
		"status_bar_style", registry.Config().StatusBarStyle,
	)

	return r, nil
}

// NewFromTable creates a Router from a decoded route table. Options take
// precedence over the table for the initial route and config.
func NewFromTable(options Options, table *route.Table) (*Router, error) {
	if options.InitialRoute == "" {
		options.InitialRoute = table.InitialRoute
	}
	if options.Config == nil {
		options.Config = table.Config
	}
	return New(options, table.Children...)
}

// backButtonConfig routes device presses through the scheduler unless the
// host supplied its own Dispatch. The reader goroutine must never touch the
// store or the engine directly.
func backButtonConfig(cfg back.ButtonConfig, scheduler router.Scheduler) back.ButtonConfig {
	if cfg.Dispatch == nil {
		cfg.Dispatch = scheduler.RunAfterInteractions
	}
	return cfg
}

func setupLogging(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}
	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}
}

// Mount hands the live stack engine to the router. Call it once the engine
// exists and before deferred work is drained.
func (r *Router) Mount(engine router.StackEngine) error {
	return r.reconciler.Mount(engine)
}

// Update reconciles the stack engine with a store change.
func (r *Router) Update(prev, next router.State) error {
	return r.reconciler.Update(prev, next)
}

// Listener returns a store subscription callback. It panics on programming
// errors such as an unregistered route id.
func (r *Router) Listener() func(prev, next router.State) {
	return r.reconciler.Listener()
}

// HandleBack applies the back press policy. It returns false when the host
// should fall back to its default, typically exiting. Call it from the host
// loop; input goroutines use QueueBack.
func (r *Router) HandleBack() bool {
	if r.policy.State == nil {
		return false
	}
	return r.policy.Handle()
}

// QueueBack schedules a back press to run on the goroutine that drains the
// scheduler. Safe to call from input goroutines.
func (r *Router) QueueBack() {
	r.scheduler.RunAfterInteractions(func() {
		r.HandleBack()
	})
}

// Resolve builds the scene for a registered route.
func (r *Router) Resolve(id string, opts scene.Options) (*scene.Descriptor, error) {
	def, ok := r.registry.Lookup(id)
	if !ok {
		return nil, &router.UnknownRouteError{ID: id}
	}
	return r.resolver.Resolve(def, opts), nil
}

// Registry returns the validated route registry.
func (r *Router) Registry() *route.Registry {
	return r.registry
}

// Queue returns the router's own interaction queue, or nil when the host
// supplied a Scheduler.
func (r *Router) Queue() *interaction.Queue {
	return r.queue
}

// Phase returns the reconciler's transition state.
func (r *Router) Phase() router.Phase {
	return r.reconciler.Phase()
}

// Close stops the back button listener and flushes the log file.
func (r *Router) Close() {
	if r.cancel != nil {
		r.cancel()
		r.wg.Wait()
	}
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before New to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the level of routemaster's own logging.
// It defaults to error; development mode (ENVIRONMENT=DEV) raises it to debug.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetLanguage selects the language of configuration error messages.
func SetLanguage(langs ...string) {
	internal.SetLanguage(langs...)
}
