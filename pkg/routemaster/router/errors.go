package router

import (
	"errors"
	"fmt"
)

// Programming errors. They indicate an integration bug, not a runtime
// condition to recover from.
var (
	ErrNotMounted      = errors.New("router: stack engine not mounted")
	ErrAlreadyMounted  = errors.New("router: stack engine already mounted")
	ErrReentrantUpdate = errors.New("router: update issued while another update is running")
)

// UnknownRouteError reports a route-stack entry that was never registered.
type UnknownRouteError struct {
	ID string
}

func (e *UnknownRouteError) Error() string {
	return fmt.Sprintf("router: route %q not registered", e.ID)
}
