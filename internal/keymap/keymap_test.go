package keymap

import (
	"strings"
	"testing"
)

func TestAll_NoDuplicateKeysPerContext(t *testing.T) {
	seen := make(map[string]map[string]bool)
	for _, kb := range All {
		if kb.Action == "" || kb.Description == "" || len(kb.Keys) == 0 {
			t.Errorf("incomplete binding: %+v", kb)
		}
		if seen[kb.Context] == nil {
			seen[kb.Context] = make(map[string]bool)
		}
		for _, k := range kb.Keys {
			if seen[kb.Context][k] {
				t.Errorf("key %q bound twice in context %q", k, kb.Context)
			}
			seen[kb.Context][k] = true
		}
	}
}

func TestByContext(t *testing.T) {
	queue := ByContext("queue")
	if len(queue) == 0 {
		t.Fatal("ByContext(queue) returned nothing")
	}
	for _, kb := range queue {
		if kb.Context != "queue" {
			t.Errorf("ByContext(queue) returned %+v", kb)
		}
	}
	if got := ByContext("nope"); got != nil {
		t.Errorf("ByContext(nope) = %v, want nil", got)
	}
}

func TestResolver(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"n", ActionNext},
		{"s", ActionShuffle},
		{"S", ActionStop},
		{"J", ActionMoveDown},
		{"z", ""},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{Keys: []string{"x"}, Action: ActionClear},
		{Keys: []string{"x"}, Action: ActionStop},
	})
	if got := r.Resolve("x"); got != ActionStop {
		t.Errorf("Resolve(x) = %q, want %q", got, ActionStop)
	}
}

func TestHints(t *testing.T) {
	got := Hints("playback", "global")
	for _, want := range []string{"space play/pause", "n next", "q quit"} {
		if !strings.Contains(got, want) {
			t.Errorf("Hints() = %q, should contain %q", got, want)
		}
	}
	if strings.Contains(got, "remove all") {
		t.Errorf("Hints() = %q, should not include queue bindings", got)
	}
}
