package scene

import (
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/route"
)

// Options carry the transition settings of a pending navigation.
type Options struct {
	Animated    bool
	SceneConfig *Profile // Optional caller-supplied profile
}

// Resolver turns route definitions into scene descriptors.
type Resolver struct {
	config route.Config
}

// NewResolver returns a Resolver wrapping non-immersive routes in a drawer
// configured with cfg merged over the defaults.
func NewResolver(cfg route.Config) *Resolver {
	return &Resolver{config: cfg.WithDefaults()}
}

// Config returns the merged drawer config.
func (r *Resolver) Config() route.Config {
	return r.config
}

// Resolve builds the descriptor for def. It has no side effects.
func (r *Resolver) Resolve(def route.Definition, opts Options) *Descriptor {
	d := &Descriptor{
		ID:        def.ID,
		Component: def.Component,
		Profile:   SelectProfile(opts),
	}
	if !def.Immersive {
		d.Navigation = &Drawer{Config: r.config, Route: def}
	}
	return d
}

// SelectProfile picks the transition profile for opts: no animation when
// not animated, the caller's profile when given, the default otherwise.
func SelectProfile(opts Options) *Profile {
	if !opts.Animated {
		return NoAnimation
	}
	if opts.SceneConfig != nil {
		return opts.SceneConfig
	}
	return DefaultProfile
}
