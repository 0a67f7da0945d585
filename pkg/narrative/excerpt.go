package narrative

import (
	"cmp"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"arclight/pkg/inference"
)

const (
	excerptMinChars    = 5
	defaultSourceTitle = "Unknown Source"
)

const excerptSystemPrompt = `Act as an expert literary researcher. Use Google Search to find and extract the full, detailed text of the specified chapter, section, or passage from the user's request. Prioritize public domain text sources. Extract the text and strip away ALL headers, footers, summaries, and commentary. Return the result as a single, cohesive passage suitable for deep structural analysis.`

// Source is one external document that contributed to a grounded excerpt.
// URI is carried as-is from the metadata and may be null for degraded
// shapes; Title falls back to a placeholder when the metadata omits it.
type Source struct {
	URI   *string `json:"uri"`
	Title string  `json:"title"`
}

// ExcerptRequest builds the search-grounded model call for verbatim
// passage retrieval. The query must be at least 5 characters once trimmed.
func ExcerptRequest(query string) (inference.Request, error) {
	query = strings.TrimSpace(query)
	if len(query) < excerptMinChars {
		return inference.Request{}, &InputError{"Query too short (minimum 5 characters)"}
	}

	user := fmt.Sprintf("Find and return the text for the specific passage: %q.", query)
	return inference.Request{
		System: excerptSystemPrompt,
		Turns:  []inference.Turn{{Role: inference.RoleUser, Text: user}},
		Search: true,
	}, nil
}

// Sources extracts citations from grounding metadata. Web chunks and
// retrieved-context chunks each get their own extraction branch; any other
// shape contributes nothing. The excerpt text is the primary payload, so
// this never fails: missing or unrecognized metadata yields an empty,
// non-nil list.
func Sources(md *genai.GroundingMetadata) []Source {
	sources := make([]Source, 0)
	if md == nil {
		return sources
	}
	for _, chunk := range md.GroundingChunks {
		switch {
		case chunk == nil:
		case chunk.Web != nil:
			if chunk.Web.URI == "" {
				continue
			}
			uri := chunk.Web.URI
			sources = append(sources, Source{
				URI:   &uri,
				Title: cmp.Or(chunk.Web.Title, defaultSourceTitle),
			})
		case chunk.RetrievedContext != nil:
			var uri *string
			if chunk.RetrievedContext.URI != "" {
				u := chunk.RetrievedContext.URI
				uri = &u
			}
			sources = append(sources, Source{
				URI:   uri,
				Title: cmp.Or(chunk.RetrievedContext.Title, defaultSourceTitle),
			})
		}
	}
	return sources
}
