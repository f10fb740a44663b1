package statelist

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps externally named boolean flags to state ids.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]State
	byID   map[State]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]State),
		byID:   make(map[State]string),
	}
}

// DefaultRegistry returns a new registry holding the well-known view states.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, s := range []struct {
		name string
		id   State
	}{
		{"state_focused", StateFocused},
		{"state_window_focused", StateWindowFocused},
		{"state_enabled", StateEnabled},
		{"state_selected", StateSelected},
		{"state_pressed", StatePressed},
		{"state_activated", StateActivated},
		{"state_accelerated", StateAccelerated},
		{"state_hovered", StateHovered},
		{"state_drag_can_accept", StateDragCanAccept},
		{"state_drag_hovered", StateDragHovered},
	} {
		if err := r.Register(s.name, s.id); err != nil {
			panic(err)
		}
	}
	return r
}

// defaultRegistry backs parsing without WithRegistry and State.String.
// It is never modified.
var defaultRegistry = DefaultRegistry()

// Register adds a name for id. Names are unique; ids must be positive.
func (r *Registry) Register(name string, id State) error {
	name = localName(name)
	if name == "" {
		return fmt.Errorf("statelist: empty state name")
	}
	if id <= 0 {
		return fmt.Errorf("statelist: state %q must have a positive id, got %d", name, id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.byName[name]; ok {
		return fmt.Errorf("statelist: state %q already registered as %#x", name, int32(prev))
	}
	r.byName[name] = id
	if _, ok := r.byID[id]; !ok {
		r.byID[id] = name
	}
	return nil
}

// Lookup returns the id registered for name. A namespace prefix such as
// "android:" is ignored.
func (r *Registry) Lookup(name string) (State, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[localName(name)]
	return id, ok
}

// Name returns the first name registered for id.
func (r *Registry) Name(id State) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.byID[id]
	return name, ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func localName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
