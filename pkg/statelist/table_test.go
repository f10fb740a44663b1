package statelist

import (
	"fmt"
	"testing"
)

func TestResolve_SelectedWithOutlineDefault(t *testing.T) {
	table := New(
		Entry[string]{Spec: Spec{StateSelected}, Value: "star_filled"},
		Entry[string]{Spec: Spec{}, Value: "star_outline"},
	)

	if got := table.Resolve([]State{StateSelected}, "?"); got != "star_filled" {
		t.Errorf("Resolve(selected) = %q, want %q", got, "star_filled")
	}
	if got := table.Resolve(nil, "?"); got != "star_outline" {
		t.Errorf("Resolve(none) = %q, want %q", got, "star_outline")
	}
	def, ok := table.Default()
	if !ok || def != "star_outline" {
		t.Errorf("Default() = %q, %v, want %q, true", def, ok, "star_outline")
	}
	if !table.IsStateful() {
		t.Error("expected table to be stateful")
	}
}

func TestResolve_SingleValue(t *testing.T) {
	table := ValueOf("A")

	if table.IsStateful() {
		t.Error("single value table should not be stateful")
	}
	for _, active := range [][]State{nil, {StatePressed}, {StateEnabled, StateSelected, State(12345)}} {
		if got := table.Resolve(active, "?"); got != "A" {
			t.Errorf("Resolve(%v) = %q, want %q", active, got, "A")
		}
	}
	if table.Len() != 1 || !IsWildcard(table.Entry(0).Spec) {
		t.Errorf("ValueOf should hold exactly one wildcard entry, got %v", table.Entries())
	}
}

func TestResolve_NegatedStates(t *testing.T) {
	table := New(
		Entry[string]{Spec: Spec{StateEnabled, StatePressed.Not()}, Value: "v1"},
		Entry[string]{Spec: Spec{StateEnabled.Not()}, Value: "v2"},
		Entry[string]{Spec: Spec{}, Value: "v3"},
	)

	tests := []struct {
		name   string
		active []State
		want   string
	}{
		{"enabled", []State{StateEnabled}, "v1"},
		{"nothing active", nil, "v2"},
		{"pressed only", []State{StatePressed}, "v2"},
		{"enabled and pressed", []State{StateEnabled, StatePressed}, "v3"},
		{"enabled, selected", []State{StateSelected, StateEnabled}, "v1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Resolve(tt.active, "?"); got != tt.want {
				t.Errorf("Resolve(%v) = %q, want %q", tt.active, got, tt.want)
			}
		})
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	table := New(
		Entry[int]{Spec: Spec{StateFocused}, Value: 1},
		Entry[int]{Spec: Spec{StateFocused, StateSelected}, Value: 2},
		Entry[int]{Spec: Spec{StateSelected}, Value: 3},
	)
	if got := table.Resolve([]State{StateSelected, StateFocused}, -1); got != 1 {
		t.Errorf("Resolve = %d, want 1 (lowest matching index)", got)
	}
	if got := table.Resolve([]State{StateSelected}, -1); got != 3 {
		t.Errorf("Resolve = %d, want 3", got)
	}
}

func TestResolve_Fallback(t *testing.T) {
	table := New(Entry[string]{Spec: Spec{StateSelected}, Value: "sel"})
	if got := table.Resolve([]State{StateEnabled}, "fallback"); got != "fallback" {
		t.Errorf("Resolve = %q, want fallback", got)
	}

	empty := New[string]()
	if got := empty.Resolve(nil, "fallback"); got != "fallback" {
		t.Errorf("empty Resolve = %q, want fallback", got)
	}

	var nilTable *Table[string]
	if got := nilTable.Resolve([]State{StateSelected}, "fallback"); got != "fallback" {
		t.Errorf("nil Resolve = %q, want fallback", got)
	}
}

func TestResolve_ZeroTerminatedSpec(t *testing.T) {
	table := New(
		Entry[string]{Spec: Spec{StateSelected, 0, StatePressed}, Value: "sel"},
		Entry[string]{Spec: Spec{0}, Value: "any"},
	)
	if got := table.Resolve([]State{StateSelected}, "?"); got != "sel" {
		t.Errorf("Resolve = %q, want %q", got, "sel")
	}
	if got := table.Entry(0).Spec; len(got) != 1 {
		t.Errorf("spec should be trimmed at zero, got %v", got)
	}
	if def, _ := table.Default(); def != "any" {
		t.Errorf("Default() = %q, want %q", def, "any")
	}
}

func TestDefault(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry[string]
		want    string
		ok      bool
	}{
		{
			name: "wildcard only at index 0",
			entries: []Entry[string]{
				{Spec: Spec{}, Value: "first"},
				{Spec: Spec{StateSelected}, Value: "sel"},
			},
			want: "first", ok: true,
		},
		{
			name: "last wildcard wins",
			entries: []Entry[string]{
				{Spec: Spec{}, Value: "first"},
				{Spec: Spec{}, Value: "middle"},
				{Spec: Spec{StateSelected}, Value: "sel"},
				{Spec: Spec{}, Value: "last"},
			},
			want: "last", ok: true,
		},
		{
			name: "no wildcard falls back to first",
			entries: []Entry[string]{
				{Spec: Spec{StatePressed}, Value: "pressed"},
				{Spec: Spec{StateSelected}, Value: "sel"},
			},
			want: "pressed", ok: true,
		},
		{
			name:    "empty",
			entries: nil,
			want:    "", ok: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := New(tt.entries...).Default()
			if got != tt.want || ok != tt.ok {
				t.Errorf("Default() = %q, %v, want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsStateful(t *testing.T) {
	tests := []struct {
		table *Table[string]
		want  bool
	}{
		{New[string](), false},
		{ValueOf("x"), false},
		{New(Entry[string]{Value: "x"}, Entry[string]{Spec: Spec{StateSelected}, Value: "y"}), false},
		{New(Entry[string]{Spec: Spec{StateSelected}, Value: "y"}), true},
		{New(Entry[string]{Spec: Spec{StateEnabled.Not()}, Value: "y"}), true},
		{nil, false},
	}
	for i, tt := range tests {
		if got := tt.table.IsStateful(); got != tt.want {
			t.Errorf("case %d: IsStateful() = %v, want %v", i, got, tt.want)
		}
	}
}

func TestHasState(t *testing.T) {
	table := New(
		Entry[string]{Spec: Spec{StateEnabled, StatePressed.Not()}, Value: "a"},
		Entry[string]{Spec: Spec{}, Value: "b"},
	)
	tests := []struct {
		id   State
		want bool
	}{
		{StateEnabled, true},
		{StatePressed, true},
		{StatePressed.Not(), true},
		{StateSelected, false},
		{StateFocused, false},
	}
	for _, tt := range tests {
		if got := table.HasState(tt.id); got != tt.want {
			t.Errorf("HasState(%v) = %v, want %v", tt.id, got, tt.want)
		}
	}
	if table.HasFocusStateSpecified() {
		t.Error("HasFocusStateSpecified() = true, want false")
	}
	focus := New(Entry[string]{Spec: Spec{StateFocused.Not()}, Value: "x"})
	if !focus.HasFocusStateSpecified() {
		t.Error("HasFocusStateSpecified() = false, want true")
	}
}

func TestFromSlices(t *testing.T) {
	specs := []Spec{{StateSelected}, {}}
	values := []string{"on", "off"}
	table, err := FromSlices(specs, values)
	if err != nil {
		t.Fatalf("FromSlices error: %v", err)
	}
	specs[0][0] = StatePressed
	values[0] = "changed"
	if got := table.Resolve([]State{StateSelected}, "?"); got != "on" {
		t.Errorf("table should not alias caller slices, Resolve = %q", got)
	}

	if _, err := FromSlices([]Spec{{}}, []string{"a", "b"}); err == nil {
		t.Error("expected length mismatch error")
	}
}

func TestWithValues_SharesSpecs(t *testing.T) {
	base := New(
		Entry[string]{Spec: Spec{StateSelected}, Value: "a"},
		Entry[string]{Spec: Spec{}, Value: "b"},
	)
	themed, err := base.WithValues([]string{"A", "B"})
	if err != nil {
		t.Fatalf("WithValues error: %v", err)
	}
	if &themed.specs[0] != &base.specs[0] {
		t.Error("themed table should share the spec list")
	}
	if got := themed.Resolve([]State{StateSelected}, "?"); got != "A" {
		t.Errorf("themed Resolve = %q, want %q", got, "A")
	}
	if got := base.Resolve([]State{StateSelected}, "?"); got != "a" {
		t.Errorf("base Resolve = %q, want %q", got, "a")
	}
	if def, _ := themed.Default(); def != "B" {
		t.Errorf("themed Default() = %q, want %q", def, "B")
	}
	if _, err := base.WithValues([]string{"only one"}); err == nil {
		t.Error("expected length mismatch error")
	}
}

func TestMap(t *testing.T) {
	base := New(
		Entry[string]{Spec: Spec{StateSelected}, Value: "2"},
		Entry[string]{Spec: Spec{}, Value: "1"},
	)
	ints, err := Map(base, func(s string) (int, error) {
		var n int
		_, err := fmt.Sscanf(s, "%d", &n)
		return n, err
	})
	if err != nil {
		t.Fatalf("Map error: %v", err)
	}
	if got := ints.Resolve([]State{StateSelected}, 0); got != 2 {
		t.Errorf("Resolve = %d, want 2", got)
	}
	if def, _ := ints.Default(); def != 1 {
		t.Errorf("Default() = %d, want 1", def)
	}

	bad := New(Entry[string]{Value: "x"})
	if _, err := Map(bad, func(s string) (int, error) {
		return 0, fmt.Errorf("not a number: %s", s)
	}); err == nil {
		t.Error("expected Map to propagate conversion error")
	}
}

func TestEntries_AreCopies(t *testing.T) {
	table := New(Entry[string]{Spec: Spec{StateSelected}, Value: "a"})
	entries := table.Entries()
	entries[0].Spec[0] = StatePressed
	if !table.HasState(StateSelected) || table.HasState(StatePressed) {
		t.Error("mutating Entries() result should not affect the table")
	}
}
