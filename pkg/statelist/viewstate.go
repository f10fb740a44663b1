package statelist

import (
	"fmt"
	"strings"
)

// ViewState is a bit mask of the states a view can be in.
type ViewState uint16

const (
	ViewWindowFocused ViewState = 1 << iota
	ViewSelected
	ViewFocused
	ViewEnabled
	ViewPressed
	ViewActivated
	ViewAccelerated
	ViewHovered
	ViewDragCanAccept
	ViewDragHovered

	viewStateBits = 10

	// ViewStateMask covers every known view state bit.
	ViewStateMask ViewState = 1<<viewStateBits - 1
)

// viewStateOrder lists each mask bit with its state id, in the order
// states appear in a resolved state set.
var viewStateOrder = [viewStateBits]struct {
	bit   ViewState
	state State
}{
	{ViewFocused, StateFocused},
	{ViewWindowFocused, StateWindowFocused},
	{ViewEnabled, StateEnabled},
	{ViewSelected, StateSelected},
	{ViewPressed, StatePressed},
	{ViewActivated, StateActivated},
	{ViewAccelerated, StateAccelerated},
	{ViewHovered, StateHovered},
	{ViewDragCanAccept, StateDragCanAccept},
	{ViewDragHovered, StateDragHovered},
}

var viewStateSets = buildViewStateSets()

func buildViewStateSets() [][]State {
	sets := make([][]State, 1<<viewStateBits)
	for mask := range sets {
		set := make([]State, 0, viewStateBits)
		for _, o := range viewStateOrder {
			if ViewState(mask)&o.bit != 0 {
				set = append(set, o.state)
			}
		}
		sets[mask] = set
	}
	return sets
}

// StateSetFor returns the active state set for a view state mask.
func StateSetFor(mask ViewState) ([]State, error) {
	if int(mask) >= len(viewStateSets) {
		return nil, fmt.Errorf("invalid view state mask %#x", uint16(mask))
	}
	set := viewStateSets[mask]
	out := make([]State, len(set))
	copy(out, set)
	return out, nil
}

// Has reports whether all bits in flag are set.
func (m ViewState) Has(flag ViewState) bool {
	return m&flag == flag
}

// With returns m with flag set or cleared.
func (m ViewState) With(flag ViewState, on bool) ViewState {
	if on {
		return m | flag
	}
	return m &^ flag
}

// String lists the set states, e.g. "enabled|selected".
func (m ViewState) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, o := range viewStateOrder {
		if m&o.bit != 0 {
			name, _ := defaultRegistry.Name(o.state)
			parts = append(parts, strings.TrimPrefix(name, "state_"))
		}
	}
	if extra := m &^ ViewStateMask; extra != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint16(extra)))
	}
	return strings.Join(parts, "|")
}
