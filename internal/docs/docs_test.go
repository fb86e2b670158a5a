package docs

import (
	"slices"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	got := Topics()
	for _, want := range []string{"config", "keys", "locales"} {
		if !slices.Contains(got, want) {
			t.Fatalf("expected topic %q in %v", want, got)
		}
	}
	if !slices.IsSorted(got) {
		t.Fatalf("expected sorted topics; got %v", got)
	}
}

func TestGet(t *testing.T) {
	md, ok := Get(" KEYS ")
	if !ok || !strings.Contains(md, "Backspace") {
		t.Fatalf("expected keys guide; ok=%v", ok)
	}
	for _, bad := range []string{"", "nope", "../docs", "content/keys"} {
		if _, ok := Get(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title("keys"); got != "Keyboard" {
		t.Fatalf("Title(keys) = %q", got)
	}
	if got := Title("missing"); got != "missing" {
		t.Fatalf("Title(missing) = %q", got)
	}
}
