package route

import (
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/internal"
)

// Registry maps route ids to their definitions.
type Registry struct {
	initialRoute string
	config       Config
	routes       map[string]Definition
	order        []string
}

// NewRegistry validates the router setup and builds the id lookup.
// cfg may be nil, in which case the default drawer config is used.
//
// The initial route must be one of the children. Registering the same id
// twice keeps the last definition.
func NewRegistry(initialRoute string, cfg *Config, children ...Child) (*Registry, error) {
	if initialRoute == "" {
		return nil, newConfigurationError("initial_route", "MissingInitialRoute", nil)
	}

	var c Config
	if cfg != nil {
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		c = *cfg
	}

	r := &Registry{
		initialRoute: initialRoute,
		config:       c.WithDefaults(),
		routes:       make(map[string]Definition, len(children)),
		order:        make([]string, 0, len(children)),
	}

	for index, child := range children {
		if child.Kind != KindRoute {
			return nil, newConfigurationError("route", "ChildNotRoute", map[string]any{
				"Index": index,
				"Kind":  child.Kind.String(),
			})
		}

		def := child.Route
		if def.ID == "" {
			return nil, newConfigurationError("route", "MissingRouteID", map[string]any{"Index": index})
		}
		if def.Component == nil {
			return nil, newConfigurationError("route", "MissingRouteComponent", map[string]any{"ID": def.ID})
		}

		if _, exists := r.routes[def.ID]; exists {
			internal.GetInternalLogger().Warn("Route registered twice, keeping the last definition", "id", def.ID, "index", index)
		} else {
			r.order = append(r.order, def.ID)
		}
		r.routes[def.ID] = def
	}

	if _, ok := r.routes[initialRoute]; !ok {
		return nil, newConfigurationError("initial_route", "UnknownInitialRoute", map[string]any{"ID": initialRoute})
	}

	return r, nil
}

// Lookup returns the definition registered under id.
func (r *Registry) Lookup(id string) (Definition, bool) {
	def, ok := r.routes[id]
	return def, ok
}

// InitialRoute returns the id navigated to on start.
func (r *Registry) InitialRoute() string {
	return r.initialRoute
}

// Config returns the drawer config merged with defaults.
func (r *Registry) Config() Config {
	return r.config
}

// IDs returns the registered ids in first-registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

func (r *Registry) Len() int {
	return len(r.routes)
}
