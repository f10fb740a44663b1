// Package statelist resolves values from state-dependent tables.
//
// A [Table] is an ordered list of entries, each pairing a [Spec] with a
// value. A spec is a conjunction of state conditions: a positive [State]
// must be active, a negated one must be absent, and an empty spec is a
// wildcard that matches anything. Resolution walks the entries in order and
// returns the value of the first entry whose spec matches the active states:
//
//	codes := statelist.New(
//	    statelist.Entry[string]{Spec: statelist.Spec{statelist.StateSelected}, Value: "\ue001"},
//	    statelist.Entry[string]{Value: "\ue002"},
//	)
//	glyph := codes.Resolve([]statelist.State{statelist.StateSelected}, "")
//
// Tables are immutable once built. [Table.WithValues] and [Map] produce new
// tables that share the spec list of the original and own their values.
//
// # Selector documents
//
// Tables can be declared in XML:
//
//	<selector xmlns:android="http://schemas.android.com/apk/res/android">
//	    <item android:state_selected="true" value="&#xe001;"/>
//	    <item value="&#xe002;"/>
//	</selector>
//
// or in YAML:
//
//	selector:
//	  - state_selected: true
//	    value: "\ue001"
//	  - value: "\ue002"
//
// Attribute names are mapped to state ids through a [Registry]. Malformed
// documents fail with [errors.MalformedTableError]; resolution itself never
// fails.
package statelist
