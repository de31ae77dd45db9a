package providers

// CompletionRequest is the body sent to the legacy completions endpoint.
type CompletionRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

// APIError is the logical error payload the provider may return in place
// of choices. Its fields are owned by the remote API contract.
type APIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Choice is one candidate completion.
type Choice struct {
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
}

// CompletionResponse is the structured result of one completion call:
// either an error payload or a list of choices.
type CompletionResponse struct {
	Error   *APIError `json:"error,omitempty"`
	Choices []Choice  `json:"choices,omitempty"`
}

// HasError reports whether the provider answered with an error payload.
func (r *CompletionResponse) HasError() bool {
	return r.Error != nil
}

// IsValid reports whether the model signaled a clean stop. Truncated
// ("length") and other terminations still render, they just lose the
// validity indicator.
func (c Choice) IsValid() bool {
	return c.FinishReason == "stop"
}
