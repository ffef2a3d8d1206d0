package router

import (
	"fmt"
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/internal"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/route"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/scene"
)

// Phase is the reconciler's transition state.
type Phase int32

const (
	// PhaseIdle means no issued transition is waiting to settle.
	PhaseIdle Phase = iota
	// PhaseTransitioning means an engine call was issued and its deferred
	// work has not run yet.
	PhaseTransitioning
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// Reconciler turns route-stack changes into stack engine calls.
type Reconciler struct {
	registry  *route.Registry
	resolver  *scene.Resolver
	actions   Actions
	scheduler Scheduler
	logger    *slog.Logger

	engine  StackEngine // assigned once by Mount
	mounted atomic.Bool

	phase      atomic.Int32
	generation atomic.Uint64
	updating   atomic.Bool
}

// New creates a Reconciler. Nothing is issued until Start and Mount are called.
func New(registry *route.Registry, resolver *scene.Resolver, actions Actions, scheduler Scheduler) *Reconciler {
	return &Reconciler{
		registry:  registry,
		resolver:  resolver,
		actions:   actions,
		scheduler: scheduler,
		logger:    internal.GetInternalLogger(),
	}
}

// Start schedules the initial navigation. It is deferred so it cannot run
// before the host has mounted the stack engine.
func (r *Reconciler) Start() {
	initial := r.registry.InitialRoute()
	r.scheduler.RunAfterInteractions(func() {
		r.logger.Debug("Navigating to initial route", "route", initial)
		r.actions.Navigate(RouteTarget(initial), NavigateOptions{Reset: true})
	})
}

// Mount hands the live stack engine to the reconciler. It may only be called
// once.
func (r *Reconciler) Mount(engine StackEngine) error {
	if engine == nil {
		return fmt.Errorf("router: mount: %w", ErrNotMounted)
	}
	if r.mounted.Load() {
		return ErrAlreadyMounted
	}
	r.engine = engine
	r.mounted.Store(true)
	return nil
}

// Mounted reports whether a stack engine has been mounted.
func (r *Reconciler) Mounted() bool {
	return r.mounted.Load()
}

// Phase returns the current transition state.
func (r *Reconciler) Phase() Phase {
	return Phase(r.phase.Load())
}

// Update reconciles the engine with the change from prev to next.
//
// Errors are programming errors: the engine is not mounted, the next route
// was never registered, or Update was called from inside an engine call.
func (r *Reconciler) Update(prev, next State) error {
	if !r.updating.CompareAndSwap(false, true) {
		return ErrReentrantUpdate
	}
	defer r.updating.Store(false)

	current, hasCurrent := prev.Top()
	target, _ := next.Top()
	if current == target {
		r.logger.Debug("Visible route unchanged, skipping", "route", target, "action", next.Action)
		return nil
	}

	switch next.Action {
	case ActionPush:
		return r.push(target, next.Options)
	case ActionPop:
		return r.pop()
	case ActionReset:
		return r.reset(target, next.Options, hasCurrent)
	default:
		r.logger.Debug("Ignoring unrecognized action", "action", next.Action)
		return nil
	}
}

// Listener adapts Update to a store subscription. Programming errors panic.
func (r *Reconciler) Listener() func(prev, next State) {
	return func(prev, next State) {
		if err := r.Update(prev, next); err != nil {
			r.logger.Error("Navigation invariant violated", "error", err)
			panic(err)
		}
	}
}

func (r *Reconciler) push(id string, opts scene.Options) error {
	d, engine, err := r.prepare(id, opts)
	if err != nil {
		return err
	}

	gen := r.begin()
	r.logger.Debug("Pushing scene", "route", id, "profile", d.Profile.Name)
	engine.Push(d)
	r.scheduler.RunAfterInteractions(r.actions.CloseDrawer)
	r.settleAfter(gen)
	return nil
}

func (r *Reconciler) pop() error {
	engine, err := r.mountedEngine()
	if err != nil {
		return err
	}

	if len(engine.CurrentRoutes()) == 0 {
		r.logger.Debug("Nothing to pop")
		return nil
	}

	gen := r.begin()
	r.logger.Debug("Popping scene")
	engine.Pop()
	r.settleAfter(gen)
	return nil
}

func (r *Reconciler) reset(id string, opts scene.Options, hasCurrent bool) error {
	d, engine, err := r.prepare(id, opts)
	if err != nil {
		return err
	}

	gen := r.begin()
	if !hasCurrent {
		r.logger.Debug("Resetting to scene", "route", id, "profile", d.Profile.Name)
		engine.ResetTo(d)
		r.settleAfter(gen)
		return nil
	}

	// The engine's stack replacement does not animate, so push first and
	// collapse the history once the push has played.
	r.logger.Debug("Pushing reset target", "route", id, "profile", d.Profile.Name)
	engine.Push(d)
	r.scheduler.RunAfterInteractions(func() {
		r.actions.CloseDrawer()
		r.logger.Debug("Collapsing stack", "route", id)
		engine.ImmediatelyResetRouteStack([]*scene.Descriptor{d})
	})
	r.settleAfter(gen)
	return nil
}

func (r *Reconciler) prepare(id string, opts scene.Options) (*scene.Descriptor, StackEngine, error) {
	def, ok := r.registry.Lookup(id)
	if !ok {
		return nil, nil, &UnknownRouteError{ID: id}
	}
	engine, err := r.mountedEngine()
	if err != nil {
		return nil, nil, err
	}
	return r.resolver.Resolve(def, opts), engine, nil
}

func (r *Reconciler) mountedEngine() (StackEngine, error) {
	if !r.mounted.Load() {
		return nil, ErrNotMounted
	}
	return r.engine, nil
}

func (r *Reconciler) begin() uint64 {
	gen := r.generation.Inc()
	r.phase.Store(int32(PhaseTransitioning))
	return gen
}

// settleAfter queues the return to idle behind the work already deferred for
// this transition. A newer transition keeps the reconciler transitioning.
func (r *Reconciler) settleAfter(gen uint64) {
	r.scheduler.RunAfterInteractions(func() {
		if r.generation.Load() == gen {
			r.phase.Store(int32(PhaseIdle))
		}
	})
}
