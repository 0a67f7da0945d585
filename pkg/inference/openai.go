package inference

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
)

// OpenAIGenerator implements Generator against any OpenAI-compatible chat
// completion endpoint. It has no search-grounding capability.
type OpenAIGenerator struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewOpenAIGenerator creates a generator using OpenAI's official Go SDK.
func NewOpenAIGenerator(apiKey string, model string) *OpenAIGenerator {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIGenerator{
		client: &client,
		apiKey: apiKey,
		model:  model,
	}
}

func (o *OpenAIGenerator) ChangeBaseURL(baseURL string) {
	client := openai.NewClient(
		option.WithAPIKey(o.apiKey),
		option.WithBaseURL(baseURL),
	)
	o.client = &client
}

func (o *OpenAIGenerator) SetModel(model string) {
	o.model = model
}

// Generate sends the turns to the chat completion endpoint. Structured
// requests are mapped to a strict json_schema response format; grounded
// requests fail with ErrGroundingUnsupported.
func (o *OpenAIGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	if req.Search {
		return nil, ErrGroundingUnsupported
	}

	params := openai.ChatCompletionNewParams{
		Model:               cmp.Or(req.Model, o.model),
		Messages:            make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Turns)+1),
		MaxCompletionTokens: openai.Int(4096 * 4),
		Temperature:         openai.Float(0.3),
		TopP:                openai.Float(1.0),
	}

	if req.System != "" {
		params.Messages = append(params.Messages, openai.ChatCompletionMessageParamUnion{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Role: "system",
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: param.Opt[string]{Value: req.System},
				},
			},
		})
	}
	for _, t := range req.Turns {
		params.Messages = append(params.Messages, openAIMessage(t))
	}

	if req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   cmp.Or(req.SchemaName, "structured_output"),
					Schema: req.Schema,
					Strict: openai.Bool(true),
				},
			},
		}
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai inference error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices returned")
	}
	if resp.Choices[0].Message.Content == "" {
		return nil, errors.New("empty completion content")
	}

	return &Result{Text: strings.TrimSpace(resp.Choices[0].Message.Content)}, nil
}

func openAIMessage(t Turn) openai.ChatCompletionMessageParamUnion {
	if t.Role == RoleModel {
		return openai.ChatCompletionMessageParamUnion{
			OfAssistant: &openai.ChatCompletionAssistantMessageParam{
				Role: "assistant",
				Content: openai.ChatCompletionAssistantMessageParamContentUnion{
					OfString: param.Opt[string]{Value: t.Text},
				},
			},
		}
	}
	return openai.ChatCompletionMessageParamUnion{
		OfUser: &openai.ChatCompletionUserMessageParam{
			Role: "user",
			Content: openai.ChatCompletionUserMessageParamContentUnion{
				OfString: param.Opt[string]{Value: t.Text},
			},
		},
	}
}
