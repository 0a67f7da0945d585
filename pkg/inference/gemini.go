package inference

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type GeminiGenerator struct {
	client *genai.Client
	apiKey string
	model  string
}

// NewGeminiGenerator creates a generator backed by the Gemini API.
func NewGeminiGenerator(ctx context.Context, apiKey string, model string) (*GeminiGenerator, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{
		client: client,
		apiKey: apiKey,
		model:  model,
	}, nil
}

func (g *GeminiGenerator) ChangeConfig(config *genai.ClientConfig) {
	client, err := genai.NewClient(context.Background(), config)
	if err != nil {
		return
	}
	g.client = client
}

// Generate runs a single GenerateContent call and returns the trimmed text
// plus any grounding metadata from the first candidate.
func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	config := &genai.GenerateContentConfig{}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseJsonSchema = req.Schema
	}
	if req.Search {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	result, err := g.client.Models.GenerateContent(
		ctx,
		cmp.Or(req.Model, g.model),
		geminiContents(req.Turns),
		config,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	out := &Result{Text: strings.TrimSpace(result.Text())}
	if len(result.Candidates) > 0 && result.Candidates[0] != nil {
		out.Grounding = result.Candidates[0].GroundingMetadata
	}
	// A grounded call may legitimately carry sources but no text.
	if out.Text == "" && !req.Search {
		return nil, errors.New("empty response from model")
	}
	return out, nil
}

func geminiContents(turns []Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		contents = append(contents, &genai.Content{
			Role:  t.Role,
			Parts: []*genai.Part{{Text: t.Text}},
		})
	}
	return contents
}
