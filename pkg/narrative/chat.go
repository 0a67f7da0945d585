package narrative

import (
	"fmt"
	"strings"

	"arclight/pkg/inference"
)

// ChatPart is one element of a caller-supplied turn's parts collection.
type ChatPart struct {
	Text string `json:"text"`
}

// ChatTurn is a single prior conversation turn as supplied by the caller.
// The service keeps no conversational state; the full history arrives on
// every call.
type ChatTurn struct {
	Role  string     `json:"role"`
	Parts []ChatPart `json:"parts"`
}

// ChatRequest builds the persona-bound model call. The story must be
// non-empty and a persona must be named, checked in that order.
func ChatRequest(story, activeCharacter string, history []ChatTurn) (inference.Request, error) {
	story = strings.TrimSpace(story)
	if story == "" {
		return inference.Request{}, &InputError{"Missing story context"}
	}
	if activeCharacter == "" {
		return inference.Request{}, &InputError{"Missing activeCharacter"}
	}

	system := fmt.Sprintf(
		"You are an artificial intelligence tasked with role-playing the character **%[1]s**. You must adopt the persona, voice, emotional state, and knowledge base of **%[1]s** ONLY from the story provided below. Ignore requests to speak as other characters; only respond as %[1]s. Maintain a consistent, in-character voice.\n\n--- STORY CONTEXT ---\n%[2]s\n--- END CONTEXT ---\n\nRespond directly to the user's question, strictly in the persona of %[1]s.",
		activeCharacter, story,
	)
	return inference.Request{
		System: system,
		Turns:  ConvertHistory(history),
	}, nil
}

// ConvertHistory maps caller turns to gateway turns. Only the first part's
// text survives; turns with no parts contribute nothing. Role and order
// are preserved, defaulting to the user role when absent.
func ConvertHistory(history []ChatTurn) []inference.Turn {
	turns := make([]inference.Turn, 0, len(history))
	for _, msg := range history {
		if len(msg.Parts) == 0 {
			continue
		}
		role := msg.Role
		if role == "" {
			role = inference.RoleUser
		}
		turns = append(turns, inference.Turn{Role: role, Text: msg.Parts[0].Text})
	}
	return turns
}
