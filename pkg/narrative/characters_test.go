package narrative

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractionRequest(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		_, err := ExtractionRequest("Alice met Bob.")
		var inputErr *InputError
		if !errors.As(err, &inputErr) {
			t.Fatalf("expected InputError, got %v", err)
		}
	})

	t.Run("free text contract", func(t *testing.T) {
		req, err := ExtractionRequest(strings.Repeat("Alice met Bob by the river. ", 3))
		if err != nil {
			t.Fatal(err)
		}
		if req.Schema != nil || req.Search {
			t.Fatal("extraction must use the free-text contract")
		}
		if req.System != "" {
			t.Fatal("extraction carries its instruction in the user turn")
		}
		if len(req.Turns) != 1 {
			t.Fatalf("expected a single turn, got %d", len(req.Turns))
		}
	})
}

func TestParseCharacters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty tokens dropped, no dedup", "Alice, Bob, , Alice", []string{"Alice", "Bob", "Alice"}},
		{"whitespace trimmed", "  Mara ,Tomas ,  ", []string{"Mara", "Tomas"}},
		{"empty line", "", nil},
		{"only commas", ", ,,", nil},
		{"single name", "Ishmael", []string{"Ishmael"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCharacters(tt.in)
			if got == nil {
				t.Fatal("result must never be nil")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}
