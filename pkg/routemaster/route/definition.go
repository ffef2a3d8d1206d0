// Package route holds route definitions and the registry that validates them.
//
// Routes are registered once, before any navigation happens. After
// construction the registry is read-only.
package route

// Props are handed to a component when its scene is rendered.
type Props struct {
	RouteID string
	Extra   map[string]any // passthrough props from the host
}

// Component is a caller-owned renderable unit.
type Component interface {
	Render(props Props) error
}

// ComponentFunc adapts a plain function to Component.
type ComponentFunc func(props Props) error

func (f ComponentFunc) Render(props Props) error {
	return f(props)
}

// Definition describes one screen. Immersive routes are rendered without the
// drawer chrome.
type Definition struct {
	ID        string
	Component Component
	Immersive bool
}

// Kind discriminates router children. The zero value is not a valid kind.
type Kind int

const (
	KindUnknown Kind = iota
	KindRoute
	KindElement
)

func (k Kind) String() string {
	switch k {
	case KindRoute:
		return "route"
	case KindElement:
		return "element"
	default:
		return "unknown"
	}
}

// Child is an entry handed to the registry. Only KindRoute children are
// accepted; other kinds exist so hosts can pass mixed trees and get a clear
// error instead of silent drops.
type Child struct {
	Kind  Kind
	Route Definition // set when Kind == KindRoute
	Name  string     // label for non-route children, used in errors
}

// Route wraps a definition as a registry child.
func Route(def Definition) Child {
	return Child{Kind: KindRoute, Route: def}
}

// Element wraps something that is not a route.
func Element(name string) Child {
	return Child{Kind: KindElement, Name: name}
}
