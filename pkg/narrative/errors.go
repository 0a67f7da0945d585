package narrative

// InputError reports caller input that fails a capability's precondition.
// Handlers map it to a 400 response; the gateway is never invoked.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return e.Reason }

// SchemaError reports model output that failed post-parse structural
// validation. The declared response schema nominally enforces shape, but
// generative output can still violate it, so validators re-check.
// Handlers map it to a 500 response.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string { return e.Reason }
