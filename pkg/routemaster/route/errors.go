package route

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/routemaster/pkg/routemaster/internal"
)

// ErrConfiguration matches every ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("routemaster: configuration error")

// ConfigurationError reports malformed router setup: missing initial route,
// bad config, non-route children or incomplete routes. It is always returned
// before any navigation happens.
type ConfigurationError struct {
	Op        string         // What was being validated (e.g., "initial_route", "route")
	MessageID string         // Localized message identifier
	Data      map[string]any // Template data for the message
	Err       error          // Underlying error, if any
}

func (e *ConfigurationError) Error() string {
	msg := internal.Message(e.MessageID, e.Data)
	if e.Err != nil {
		return fmt.Sprintf("routemaster: %s: %s: %v", e.Op, msg, e.Err)
	}
	return fmt.Sprintf("routemaster: %s: %s", e.Op, msg)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func newConfigurationError(op, messageID string, data map[string]any) *ConfigurationError {
	return &ConfigurationError{Op: op, MessageID: messageID, Data: data}
}
