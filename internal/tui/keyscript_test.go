package tui

import (
	"reflect"
	"testing"
)

func TestSplitKeyScript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []ScriptToken
	}{
		{"", nil},
		{"tab", []ScriptToken{{Word: "tab"}}},
		{"1 2  tab", []ScriptToken{{Word: "1"}, {Word: "2"}, {Word: "tab"}}},
		{"'12/25/2024' up", []ScriptToken{{Word: "12/25/2024", Quoted: true}, {Word: "up"}}},
		{`"12 25"`, []ScriptToken{{Word: "12 25", Quoted: true}}},
		{`''`, []ScriptToken{{Word: "", Quoted: true}}},
		{`a\ b`, []ScriptToken{{Word: "a b"}}},
	}

	for _, tt := range tests {
		if got := SplitKeyScript(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("SplitKeyScript(%q)=%+v, want %+v", tt.in, got, tt.want)
		}
	}
}
