package narrative

import (
	"fmt"
	"strings"

	"arclight/pkg/inference"
)

const extractionMinChars = 50

// ExtractionRequest builds the free-text model call that asks for a single
// comma-separated line of character names. No response schema is available
// here; correctness rests on the prompt and on ParseCharacters.
func ExtractionRequest(text string) (inference.Request, error) {
	text = strings.TrimSpace(text)
	if len(text) < extractionMinChars {
		return inference.Request{}, &InputError{"Text too short for character extraction"}
	}

	prompt := fmt.Sprintf(
		"Analyze the following story excerpt and identify ALL unique, named characters that appear or are mentioned. Do not include locations, objects, or vague roles (e.g., 'the man').\n\nOutput the result as a simple, comma-separated string of names, exactly as they appear in the text, with no extra text, numbering, or quotes.\n\nStory Excerpt:\n---\n%s\n---",
		text,
	)
	return inference.Request{
		Turns: []inference.Turn{{Role: inference.RoleUser, Text: prompt}},
	}, nil
}

// ParseCharacters splits the model's comma-separated line into names,
// trimming whitespace and dropping empty tokens. Order follows the model's
// output; duplicates survive.
func ParseCharacters(line string) []string {
	names := make([]string, 0)
	for _, name := range strings.Split(line, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
