package rafters

import (
	"fmt"
	"sync"
)

// Controller is the ambient context a component is attached to, typically
// the handler or page that built it. Components read from it through
// Component.Current without depending on the controller's concrete type.
//
// Lookup returns the value known under name and whether it exists.
type Controller interface {
	Lookup(name string) (value any, ok bool)
}

// ControllerFunc adapts a function to the Controller interface.
type ControllerFunc func(name string) (any, bool)

// Lookup calls f(name).
func (f ControllerFunc) Lookup(name string) (any, bool) {
	return f(name)
}

// Scope is a ready-made Controller with two layers: plain values and
// zero-argument accessors. Values shadow accessors of the same name.
//
//	scope := rafters.NewScope().
//	    Set("user", user).
//	    Accessor("request_id", func() any { return reqID(r) })
//	card.SetController(scope)
//
// Accessors run on every lookup; their results are not cached.
type Scope struct {
	mu        sync.RWMutex
	name      string
	values    map[string]any
	accessors map[string]func() any
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{
		values:    make(map[string]any),
		accessors: make(map[string]func() any),
	}
}

// Named sets the name reported in CurrentMissingError messages.
func (s *Scope) Named(name string) *Scope {
	s.mu.Lock()
	s.name = name
	s.mu.Unlock()
	return s
}

// Set stores a value. A nil value still counts as defined.
func (s *Scope) Set(name string, value any) *Scope {
	s.mu.Lock()
	s.values[name] = value
	s.mu.Unlock()
	return s
}

// Unset removes a value, exposing any accessor with the same name.
func (s *Scope) Unset(name string) *Scope {
	s.mu.Lock()
	delete(s.values, name)
	s.mu.Unlock()
	return s
}

// Accessor registers a zero-argument function resolved on each lookup.
func (s *Scope) Accessor(name string, fn func() any) *Scope {
	s.mu.Lock()
	s.accessors[name] = fn
	s.mu.Unlock()
	return s
}

// Lookup implements Controller.
func (s *Scope) Lookup(name string) (any, bool) {
	s.mu.RLock()
	v, ok := s.values[name]
	fn, hasFn := s.accessors[name]
	s.mu.RUnlock()

	if ok {
		return v, true
	}
	if hasFn {
		return fn(), true
	}
	return nil, false
}

// String names the scope in error messages.
func (s *Scope) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.name != "" {
		return s.name
	}
	return "rafters.Scope"
}

// controllerName identifies a controller in CurrentMissingError messages.
func controllerName(c Controller) string {
	if c == nil {
		return "<nil>"
	}
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", c)
}
