//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name           string
		context        string
		expectedLength int
	}{
		{"menu context", ContextMenu, 7},
		{"view context", ContextView, 12},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if len(result) != tt.expectedLength {
				t.Errorf("ByContext(%q) returned %d items, want %d", tt.context, len(result), tt.expectedLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestMenuBindings_Order(t *testing.T) {
	expected := []string{"F", "N", "P", "A", "E", "S", "Q"}

	menu := ByContext(ContextMenu)

	for i, b := range menu {
		if len(b.Keys) != 1 {
			t.Errorf("menu binding %q has %d keys, want exactly 1", b.Action, len(b.Keys))
			continue
		}
		if b.Keys[0] != expected[i] {
			t.Errorf("menu binding %d key = %q, want %q", i, b.Keys[0], expected[i])
		}
		if b.Description == "" {
			t.Errorf("menu binding %q has no description", b.Action)
		}
	}
}

func TestMenuAndViewCoverSameSongActions(t *testing.T) {
	view := NewResolver(ByContext(ContextView))

	for _, b := range ByContext(ContextMenu) {
		if b.Action == ActionShow {
			continue // the view always shows the playlist
		}
		if len(view.KeysFor(b.Action)) == 0 {
			t.Errorf("action %q has no view binding", b.Action)
		}
	}
}
