package narrative

import (
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestExcerptRequest(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		_, err := ExcerptRequest("  ab  ")
		var inputErr *InputError
		if !errors.As(err, &inputErr) {
			t.Fatalf("expected InputError, got %v", err)
		}
	})

	t.Run("grounded contract", func(t *testing.T) {
		req, err := ExcerptRequest("Moby Dick chapter 1")
		if err != nil {
			t.Fatal(err)
		}
		if !req.Search {
			t.Fatal("excerpt retrieval must request grounding")
		}
		if req.Schema != nil {
			t.Fatal("excerpt retrieval must not set a response schema")
		}
	})
}

func TestSources(t *testing.T) {
	t.Run("nil metadata", func(t *testing.T) {
		sources := Sources(nil)
		if sources == nil || len(sources) != 0 {
			t.Fatalf("expected empty non-nil list, got %v", sources)
		}
	})

	t.Run("web chunks", func(t *testing.T) {
		md := &genai.GroundingMetadata{
			GroundingChunks: []*genai.GroundingChunk{
				{Web: &genai.GroundingChunkWeb{URI: "https://example.org/moby", Title: "Moby Dick"}},
				{Web: &genai.GroundingChunkWeb{URI: "https://example.org/untitled"}},
				{Web: &genai.GroundingChunkWeb{Title: "no uri, skipped"}},
				nil,
				{},
			},
		}
		sources := Sources(md)
		if len(sources) != 2 {
			t.Fatalf("expected 2 sources, got %+v", sources)
		}
		if sources[0].URI == nil || *sources[0].URI != "https://example.org/moby" || sources[0].Title != "Moby Dick" {
			t.Fatalf("unexpected first source: %+v", sources[0])
		}
		if sources[1].Title != "Unknown Source" {
			t.Fatalf("expected placeholder title, got %q", sources[1].Title)
		}
	})

	t.Run("retrieved context keeps missing uri", func(t *testing.T) {
		md := &genai.GroundingMetadata{
			GroundingChunks: []*genai.GroundingChunk{
				{RetrievedContext: &genai.GroundingChunkRetrievedContext{Title: "Archive copy"}},
			},
		}
		sources := Sources(md)
		if len(sources) != 1 {
			t.Fatalf("expected 1 source, got %+v", sources)
		}
		if sources[0].URI != nil {
			t.Fatalf("expected null uri, got %v", *sources[0].URI)
		}
		if sources[0].Title != "Archive copy" {
			t.Fatalf("unexpected title: %q", sources[0].Title)
		}
	})
}
