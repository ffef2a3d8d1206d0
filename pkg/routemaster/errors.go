package routemaster

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/route"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/router"
)

// InfrastructureError represents a failure outside the routing logic itself,
// such as an input device that cannot be opened or a route table file that
// cannot be read.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "back_button", "load_routes")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("routemaster: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("routemaster: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsConfigurationError checks if an error came from validating the route
// definitions or router config.
func IsConfigurationError(err error) bool {
	return errors.Is(err, route.ErrConfiguration)
}

// IsProgrammingError checks if an error indicates misuse of the router:
// an unregistered route id, a missing or doubled mount, or a store update
// dispatched from inside a reconcile.
func IsProgrammingError(err error) bool {
	var unknown *router.UnknownRouteError
	return errors.As(err, &unknown) ||
		errors.Is(err, router.ErrNotMounted) ||
		errors.Is(err, router.ErrAlreadyMounted) ||
		errors.Is(err, router.ErrReentrantUpdate)
}
