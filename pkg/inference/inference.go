package inference

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// Roles accepted on a Turn. They mirror the Gemini content roles; the
// OpenAI backend translates RoleModel to the assistant role.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ErrGroundingUnsupported is returned by backends that cannot perform
// search-grounded generation.
var ErrGroundingUnsupported = errors.New("search grounding is not supported by this backend")

// Turn is a single role-tagged text message sent to the model.
type Turn struct {
	Role string
	Text string
}

// Request describes one outbound model call. Schema, when non-nil, is a
// JSON schema constraining the response to structured JSON; Search enables
// search grounding. Builders never set both.
type Request struct {
	Model      string
	System     string
	Turns      []Turn
	Schema     any
	SchemaName string
	Search     bool
}

// Result is the raw model output. Grounding is only populated when the
// request asked for search grounding and the backend returned metadata.
type Result struct {
	Text      string
	Grounding *genai.GroundingMetadata
}

// Generator runs a single model call. Implementations hold no per-request
// state and are safe for concurrent use; construct one at startup and
// share it across handlers. No retries are performed at this layer.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}
