package main

import (
	"reflect"
	"testing"
)

func TestRewriteSeedValueArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"datefield"},
			want: []string{"datefield"},
		},
		{
			name: "date first token",
			in:   []string{"datefield", "2024-12-25"},
			want: []string{"datefield", "pick", "--value", "2024-12-25"},
		},
		{
			name: "time only",
			in:   []string{"datefield", "09:30"},
			want: []string{"datefield", "pick", "--value", "09:30"},
		},
		{
			name: "after value flag",
			in:   []string{"datefield", "--tz", "UTC", "2024-12-25T10:00"},
			want: []string{"datefield", "--tz", "UTC", "pick", "--value", "2024-12-25T10:00"},
		},
		{
			name: "after equals flag",
			in:   []string{"datefield", "--format=edn", "2024-12-25"},
			want: []string{"datefield", "--format=edn", "pick", "--value", "2024-12-25"},
		},
		{
			name: "after bool flag",
			in:   []string{"datefield", "--pretty", "2024-12-25"},
			want: []string{"datefield", "--pretty", "pick", "--value", "2024-12-25"},
		},
		{
			name: "subcommand not rewritten",
			in:   []string{"datefield", "pick", "--value", "2024-12-25"},
			want: []string{"datefield", "pick", "--value", "2024-12-25"},
		},
		{
			name: "after double dash not rewritten",
			in:   []string{"datefield", "--", "2024-12-25"},
			want: []string{"datefield", "--", "2024-12-25"},
		},
		{
			name: "not a value",
			in:   []string{"datefield", "2024-1-1"},
			want: []string{"datefield", "2024-1-1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteSeedValueArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteSeedValueArgs(%v) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}
