package router

import (
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/interaction"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/route"
	"github.com/BrandonKowalski/routemaster/pkg/routemaster/scene"
)

// Stack is a headless StackEngine. It keeps scenes in memory and, when given
// an interaction queue, holds an interaction open while an animated
// transition plays so deferred work waits for Settle.
type Stack struct {
	entries      []*scene.Descriptor
	interactions *interaction.Queue
	animation    *interaction.Handle
}

// StackOption configures a Stack.
type StackOption func(*Stack)

// WithInteractions makes animated transitions hold an interaction open on q
// until Settle is called.
func WithInteractions(q *interaction.Queue) StackOption {
	return func(s *Stack) {
		s.interactions = q
	}
}

// NewStack creates a new empty scene stack.
func NewStack(opts ...StackOption) *Stack {
	s := &Stack{
		entries: make([]*scene.Descriptor, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push adds a scene on top and starts its transition.
func (s *Stack) Push(d *scene.Descriptor) {
	s.entries = append(s.entries, d)
	s.animate(d)
}

// Pop removes the top scene. Does nothing on an empty stack.
func (s *Stack) Pop() {
	if len(s.entries) == 0 {
		return
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	s.animate(top)
}

// ResetTo replaces the stack with d, transitioning into it.
func (s *Stack) ResetTo(d *scene.Descriptor) {
	s.Clear()
	s.entries = append(s.entries, d)
	s.animate(d)
}

// ImmediatelyResetRouteStack replaces the stack without any transition.
func (s *Stack) ImmediatelyResetRouteStack(ds []*scene.Descriptor) {
	s.Clear()
	s.entries = append(s.entries, ds...)
}

// CurrentRoutes returns a copy of the scenes, bottom first.
func (s *Stack) CurrentRoutes() []*scene.Descriptor {
	out := make([]*scene.Descriptor, len(s.entries))
	copy(out, s.entries)
	return out
}

// Peek returns the top scene without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *scene.Descriptor {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no scenes.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of scenes in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all scenes from the stack.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Animating reports whether a transition is holding an interaction open.
func (s *Stack) Animating() bool {
	return s.animation != nil
}

// Settle finishes the running transition, if any.
func (s *Stack) Settle() {
	if s.animation != nil {
		s.animation.End()
		s.animation = nil
	}
}

// Render draws the top scene. An empty stack renders nothing.
func (s *Stack) Render(props route.Props) error {
	top := s.Peek()
	if top == nil {
		return nil
	}
	return top.Render(props)
}

func (s *Stack) animate(d *scene.Descriptor) {
	if s.interactions == nil || !scene.ConfigureScene(d).Animates() {
		return
	}
	// A new transition takes over from the one in flight.
	s.Settle()
	s.animation = s.interactions.Begin()
}
