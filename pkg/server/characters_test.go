package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"arclight/pkg/inference"
)

func TestExtractCharactersTooShort(t *testing.T) {
	stub := &stubGenerator{}
	s := newTestServer(stub)

	rec := postJSON(t, s, "/extract_characters", `{"text":"Alice met Bob."}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if stub.calls != 0 {
		t.Fatal("gateway must not be invoked for short input")
	}
}

func TestExtractCharactersSuccess(t *testing.T) {
	stub := &stubGenerator{result: &inference.Result{Text: "Alice, Bob, , Alice"}}
	s := newTestServer(stub)

	text := strings.Repeat("Alice met Bob by the river at dawn. ", 2)
	body, _ := json.Marshal(map[string]string{"text": text})
	rec := postJSON(t, s, "/extract_characters", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Characters []string `json:"characters"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	want := []string{"Alice", "Bob", "Alice"}
	if len(resp.Characters) != len(want) {
		t.Fatalf("got %v, want %v", resp.Characters, want)
	}
	for i := range want {
		if resp.Characters[i] != want[i] {
			t.Fatalf("got %v, want %v", resp.Characters, want)
		}
	}
}

func TestExtractCharactersGatewayError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	s := newTestServer(stub)

	text := strings.Repeat("Alice met Bob by the river at dawn. ", 2)
	body, _ := json.Marshal(map[string]string{"text": text})
	rec := postJSON(t, s, "/extract_characters", string(body))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
