package providers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"codecomment/internal/common"

	"github.com/google/uuid"
)

// ContextTokenBudget is the total context window shared between the prompt
// and the requested completion for the models this tool targets.
const ContextTokenBudget = 4097

const defaultCompletionsURL = "https://api.openai.com/v1/completions"

// OpenAIClient calls the OpenAI text-completion endpoint. The credential
// and endpoint are injected at construction; there is no retry and no
// timeout, a single-shot CLI blocks on the one call it makes.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	verbose bool
}

// NewOpenAIClient creates a completion client. An empty API key is a
// construction-time error.
func NewOpenAIClient(apiKey, baseURL string, verbose bool) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: common.GetStringWithDefault(baseURL, defaultCompletionsURL),
		verbose: verbose,
	}, nil
}

// Complete sends one synchronous completion request. Provider error
// payloads are returned as data (even on non-200 statuses) so the caller
// can format them; transport failures and unparseable bodies are returned
// as errors.
func (c *OpenAIClient) Complete(model, prompt string, maxTokens int) (*CompletionResponse, error) {
	if maxTokens <= 0 {
		return nil, fmt.Errorf("prompt of %d characters leaves no room in the %d token context budget", len(prompt), ContextTokenBudget)
	}

	reqBody := CompletionRequest{
		Model:     model,
		Prompt:    prompt,
		MaxTokens: maxTokens,
	}

	if c.verbose {
		logRequest(reqBody)
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Request-Id", uuid.NewString())

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var completion CompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && !completion.HasError() {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	if c.verbose {
		logResponse(&completion)
	}

	return &completion, nil
}

func logRequest(reqBody CompletionRequest) {
	preview := reqBody
	preview.Prompt = common.TruncateString(reqBody.Prompt, 1000)

	previewJSON, _ := json.Marshal(preview)
	fmt.Printf("[http] OpenAI POST /completions model=%s body=%s\n", reqBody.Model, string(previewJSON))
}

func logResponse(completion *CompletionResponse) {
	if len(completion.Choices) == 0 {
		return
	}

	text := completion.Choices[0].Text
	out := common.TruncateString(text, 2000)
	if len(text) > 2000 {
		out += "…"
	}
	fmt.Printf("[http] OpenAI <- %s\n", out)
}
