package statelist

import (
	"fmt"
	"strings"
)

// State identifies one boolean UI condition. A negative value is the
// negation of the corresponding positive id and means "must be absent".
// Zero terminates a spec or a state set.
type State int32

// Well-known state ids. The values match the platform attribute ids so that
// specs written against them stay interchangeable.
const (
	StateFocused       State = 0x0101009c
	StateWindowFocused State = 0x0101009d
	StateEnabled       State = 0x0101009e
	StateSelected      State = 0x010100a1
	StatePressed       State = 0x010100a7
	StateActivated     State = 0x010102fe
	StateAccelerated   State = 0x0101031b
	StateHovered       State = 0x01010367
	StateDragCanAccept State = 0x01010368
	StateDragHovered   State = 0x01010369
)

// Not returns the negated state, i.e. "s must be absent".
func (s State) Not() State {
	return -s
}

// Abs returns the positive id of s.
func (s State) Abs() State {
	if s < 0 {
		return -s
	}
	return s
}

// String returns the registered name of the state, prefixed with '!' when
// negated, or a hex id for unknown states.
func (s State) String() string {
	prefix := ""
	if s < 0 {
		prefix = "!"
	}
	if name, ok := defaultRegistry.Name(s.Abs()); ok {
		return prefix + name
	}
	return fmt.Sprintf("%sState(%#x)", prefix, int32(s.Abs()))
}

// Spec is a conjunction of state conditions.
type Spec []State

// String formats the spec as "[a, !b]"; a wildcard prints as "[*]".
func (s Spec) String() string {
	if IsWildcard(s) {
		return "[*]"
	}
	parts := make([]string, 0, len(s))
	for _, st := range s {
		if st == 0 {
			break
		}
		parts = append(parts, st.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// IsWildcard reports whether spec matches every state combination.
func IsWildcard(spec Spec) bool {
	return len(spec) == 0 || spec[0] == 0
}

// Matches reports whether every condition in spec holds for the active
// states. A nil or empty active set means no state is active.
func Matches(spec Spec, active []State) bool {
	for _, want := range spec {
		if want == 0 {
			break
		}
		found := contains(active, want.Abs())
		if want > 0 && !found {
			return false
		}
		if want < 0 && found {
			return false
		}
	}
	return true
}

// ContainsState reports whether id, or its negation, is referenced by any
// of the specs. Wildcards reference nothing.
func ContainsState(specs []Spec, id State) bool {
	id = id.Abs()
	for _, spec := range specs {
		for _, st := range spec {
			if st == 0 {
				break
			}
			if st == id || st == -id {
				return true
			}
		}
	}
	return false
}

func contains(set []State, s State) bool {
	for _, st := range set {
		if st == 0 {
			return false
		}
		if st == s {
			return true
		}
	}
	return false
}

// trim cuts spec at its first zero and copies it, so stored specs never
// alias caller memory and never carry padding.
func trim(spec Spec) Spec {
	n := 0
	for n < len(spec) && spec[n] != 0 {
		n++
	}
	if n == 0 {
		return Spec{}
	}
	out := make(Spec, n)
	copy(out, spec[:n])
	return out
}
