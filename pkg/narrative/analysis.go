package narrative

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	"arclight/pkg/inference"
	"arclight/pkg/utils"
)

const (
	analysisPointCount = 7
	analysisMinChars   = 100
)

const analysisSystemPrompt = `You are a world-class literary analyst specializing in narrative structure. Your task is to read the provided story and, based on its progression, determine four distinct analytical scores at 7 equally spaced points throughout the text. Scores must range from 1 (low) to 100 (high). The four required scores are: Tension (dramatic stakes), Pacing (flow/speed), Agency (protagonist's influence), and Resonance (reader connection). Your response MUST be a JSON array containing exactly 7 objects with all required fields.`

// AnalysisPoint is one of the 7 equally spaced samples taken across a
// story. All fields are required in the response schema.
type AnalysisPoint struct {
	TensionScore     int    `json:"TensionScore" jsonschema:"minimum=1,maximum=100,description=The emotional tension score at this point (1-100)."`
	TensionSummary   string `json:"TensionSummary" jsonschema:"description=A concise 1-2 sentence explanation for the assigned TensionScore."`
	PacingScore      int    `json:"PacingScore" jsonschema:"minimum=1,maximum=100,description=The score for the speed and information flow (1-100)."`
	PacingSummary    string `json:"PacingSummary" jsonschema:"description=A concise 1-2 sentence explanation for the assigned PacingScore."`
	AgencyScore      int    `json:"AgencyScore" jsonschema:"minimum=1,maximum=100,description=The score for the protagonist's active influence on the plot (1-100)."`
	AgencySummary    string `json:"AgencySummary" jsonschema:"description=A concise 1-2 sentence explanation for the assigned AgencyScore."`
	ResonanceScore   int    `json:"ResonanceScore" jsonschema:"minimum=1,maximum=100,description=The score for the depth of emotional connection a reader would feel (1-100)."`
	ResonanceSummary string `json:"ResonanceSummary" jsonschema:"description=A concise 1-2 sentence explanation for the assigned ResonanceScore."`
	KeyEvent         string `json:"keyEvent" jsonschema:"description=The single most important plot event or conflict happening at this point."`
	CharacterFocus   string `json:"characterFocus" jsonschema:"description=The name of the character carrying the primary conflict at this point."`
}

func generateSchema[T any]() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

// AnalysisSchema constrains the response to an array of exactly 7 points.
var AnalysisSchema = func() *jsonschema.Schema {
	count := uint64(analysisPointCount)
	return &jsonschema.Schema{
		Type:        "array",
		Description: "An array of 7 analysis points for 4 dimensions of the story.",
		Items:       generateSchema[AnalysisPoint](),
		MinItems:    &count,
		MaxItems:    &count,
	}
}()

// AnalysisRequest builds the structured-output model call for the 7-point
// narrative analysis. The text must be at least 100 characters once trimmed.
func AnalysisRequest(text string) (inference.Request, error) {
	text = strings.TrimSpace(text)
	if len(text) < analysisMinChars {
		return inference.Request{}, &InputError{"Text too short for analysis (minimum 100 characters)"}
	}

	user := fmt.Sprintf(
		"Analyze the following narrative and provide the required 7-point scores for Tension, Pacing, Character Agency, and Emotional Resonance:\n\n--- STORY START ---\n%s\n--- STORY END ---",
		text,
	)
	return inference.Request{
		System:     analysisSystemPrompt,
		Turns:      []inference.Turn{{Role: inference.RoleUser, Text: user}},
		Schema:     AnalysisSchema,
		SchemaName: "narrative_analysis",
	}, nil
}

// ValidateAnalysis re-checks the model's structured output and returns the
// cleaned JSON array text to pass through to the client.
func ValidateAnalysis(raw string) (string, error) {
	cleaned := utils.CleanJSON(raw)

	var points []AnalysisPoint
	if err := json.Unmarshal([]byte(cleaned), &points); err != nil {
		return "", &SchemaError{fmt.Sprintf("analysis response is not a valid JSON array: %v", err)}
	}
	if len(points) != analysisPointCount {
		return "", &SchemaError{fmt.Sprintf("Expected %d analysis points, got %d", analysisPointCount, len(points))}
	}
	for i, point := range points {
		if err := point.validate(); err != nil {
			return "", &SchemaError{fmt.Sprintf("analysis point %d: %v", i+1, err)}
		}
	}
	return cleaned, nil
}

func (p AnalysisPoint) validate() error {
	scores := []struct {
		name  string
		value int
	}{
		{"TensionScore", p.TensionScore},
		{"PacingScore", p.PacingScore},
		{"AgencyScore", p.AgencyScore},
		{"ResonanceScore", p.ResonanceScore},
	}
	for _, s := range scores {
		if s.value < 1 || s.value > 100 {
			return fmt.Errorf("%s %d is outside 1-100", s.name, s.value)
		}
	}

	texts := []struct {
		name  string
		value string
	}{
		{"TensionSummary", p.TensionSummary},
		{"PacingSummary", p.PacingSummary},
		{"AgencySummary", p.AgencySummary},
		{"ResonanceSummary", p.ResonanceSummary},
		{"keyEvent", p.KeyEvent},
		{"characterFocus", p.CharacterFocus},
	}
	for _, t := range texts {
		if strings.TrimSpace(t.value) == "" {
			return fmt.Errorf("missing %s", t.name)
		}
	}
	return nil
}
