package statelist

import "fmt"

// Entry pairs a spec with the value selected when the spec matches.
type Entry[V any] struct {
	Spec  Spec
	Value V
}

// Table is an ordered, immutable state list. The first entry whose spec
// matches wins.
//
// The spec list may be shared between tables derived from one another and
// is never written after construction. The value list is owned by the table.
// A nil *Table behaves as an empty table.
type Table[V any] struct {
	specs  []Spec
	values []V

	def    V
	hasDef bool
}

// New builds a table from entries in order. Specs are copied and cut at
// their first zero.
func New[V any](entries ...Entry[V]) *Table[V] {
	specs := make([]Spec, len(entries))
	values := make([]V, len(entries))
	for i, e := range entries {
		specs[i] = trim(e.Spec)
		values[i] = e.Value
	}
	return newTable(specs, values)
}

// FromSlices builds a table from parallel spec and value slices.
func FromSlices[V any](specs []Spec, values []V) (*Table[V], error) {
	if len(specs) != len(values) {
		return nil, fmt.Errorf("statelist: %d specs but %d values", len(specs), len(values))
	}
	owned := make([]Spec, len(specs))
	for i, s := range specs {
		owned[i] = trim(s)
	}
	vals := make([]V, len(values))
	copy(vals, values)
	return newTable(owned, vals), nil
}

// ValueOf returns a table holding a single value for every state.
func ValueOf[V any](v V) *Table[V] {
	return newTable([]Spec{{}}, []V{v})
}

func newTable[V any](specs []Spec, values []V) *Table[V] {
	t := &Table[V]{specs: specs, values: values}
	t.def, t.hasDef = computeDefault(specs, values)
	return t
}

// computeDefault picks the last wildcard entry after the first, falling back
// to the first entry.
func computeDefault[V any](specs []Spec, values []V) (V, bool) {
	var zero V
	n := len(specs)
	if n == 0 {
		return zero, false
	}
	for i := n - 1; i >= 1; i-- {
		if IsWildcard(specs[i]) {
			return values[i], true
		}
	}
	return values[0], true
}

// Len returns the number of entries.
func (t *Table[V]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.specs)
}

// Entry returns the i'th entry. The returned spec is a copy.
func (t *Table[V]) Entry(i int) Entry[V] {
	spec := make(Spec, len(t.specs[i]))
	copy(spec, t.specs[i])
	return Entry[V]{Spec: spec, Value: t.values[i]}
}

// Entries returns a copy of all entries in order.
func (t *Table[V]) Entries() []Entry[V] {
	out := make([]Entry[V], t.Len())
	for i := range out {
		out[i] = t.Entry(i)
	}
	return out
}

// Specs returns a copy of the spec list.
func (t *Table[V]) Specs() []Spec {
	out := make([]Spec, t.Len())
	for i := range out {
		out[i] = t.Entry(i).Spec
	}
	return out
}

// Resolve returns the value of the first entry whose spec matches active,
// or fallback when no entry matches.
func (t *Table[V]) Resolve(active []State, fallback V) V {
	if t == nil {
		return fallback
	}
	for i, spec := range t.specs {
		if Matches(spec, active) {
			return t.values[i]
		}
	}
	return fallback
}

// IsStateful reports whether the primary entry depends on state.
func (t *Table[V]) IsStateful() bool {
	return t.Len() > 0 && !IsWildcard(t.specs[0])
}

// HasState reports whether id, negated or not, appears in any spec.
func (t *Table[V]) HasState(id State) bool {
	if t == nil {
		return false
	}
	return ContainsState(t.specs, id)
}

// HasFocusStateSpecified reports whether any spec refers to the focused state.
func (t *Table[V]) HasFocusStateSpecified() bool {
	return t.HasState(StateFocused)
}

// Default returns the cached default value. ok is false for an empty table.
func (t *Table[V]) Default() (v V, ok bool) {
	if t == nil {
		return v, false
	}
	return t.def, t.hasDef
}

// WithValues returns a table with the same specs and new values, e.g. a
// themed variant of a color list. The spec list is shared.
func (t *Table[V]) WithValues(values []V) (*Table[V], error) {
	if len(values) != t.Len() {
		return nil, fmt.Errorf("statelist: %d values for %d entries", len(values), t.Len())
	}
	vals := make([]V, len(values))
	copy(vals, values)
	var specs []Spec
	if t != nil {
		specs = t.specs
	}
	return newTable(specs, vals), nil
}

// Map converts every value of t with fn. The result shares t's spec list.
// The first conversion error is returned with the entry index.
func Map[V, W any](t *Table[V], fn func(V) (W, error)) (*Table[W], error) {
	n := t.Len()
	vals := make([]W, n)
	for i := 0; i < n; i++ {
		w, err := fn(t.values[i])
		if err != nil {
			return nil, fmt.Errorf("statelist: entry %d: %w", i, err)
		}
		vals[i] = w
	}
	var specs []Spec
	if t != nil {
		specs = t.specs
	}
	return newTable(specs, vals), nil
}
