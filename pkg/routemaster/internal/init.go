// Package internal contains the shared infrastructure for routemaster.
// This includes logging, localized messages, color parsing and the icon cache.
// Types and functions in this package are not part of the public API.
package internal
