package statelist_test

import (
	"fmt"
	"strings"

	"github.com/go-drift/iconfont/pkg/statelist"
)

// This example shows a glyph that switches between outline and filled when
// the view is selected.
func ExampleTable_Resolve() {
	codes := statelist.New(
		statelist.Entry[string]{Spec: statelist.Spec{statelist.StateSelected}, Value: "filled"},
		statelist.Entry[string]{Value: "outline"},
	)

	enabled := []statelist.State{statelist.StateEnabled}
	fmt.Println(codes.Resolve(enabled, ""))
	fmt.Println(codes.Resolve(append(enabled, statelist.StateSelected), ""))
	// Output:
	// outline
	// filled
}

// This example parses a selector document with a custom value attribute.
func ExampleParseXML() {
	doc := `<selector xmlns:android="http://schemas.android.com/apk/res/android">
    <item android:state_enabled="false" android:color="#888888"/>
    <item android:color="#000000"/>
</selector>`

	colors, err := statelist.ParseXML(strings.NewReader(doc), statelist.WithValueAttr("color"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range colors.Entries() {
		fmt.Println(e.Spec, e.Value)
	}
	// Output:
	// [!state_enabled] #888888
	// [*] #000000
}

// This example maps view flags to the state set used for resolution.
func ExampleStateSetFor() {
	states, err := statelist.StateSetFor(statelist.ViewEnabled | statelist.ViewSelected)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(statelist.Spec(states))
	// Output:
	// [state_enabled, state_selected]
}
