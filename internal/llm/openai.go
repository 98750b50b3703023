package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fhuszti/transcripts-ms-go/internal/logger"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

// openAIClient talks to the chat-completions endpoint.
type openAIClient struct {
	httpc        *http.Client
	apiKey       string
	apiBase      string
	defaultModel string
}

// compile-time check: *openAIClient must satisfy port.LLMClient
var _ port.LLMClient = (*openAIClient)(nil)

func newOpenAIClient(httpc *http.Client, apiKey, apiBase, defaultModel string) *openAIClient {
	return &openAIClient{httpc: httpc, apiKey: apiKey, apiBase: apiBase, defaultModel: defaultModel}
}

func (c *openAIClient) Provider() string { return ProviderOpenAI }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize never returns an error; remote failures come back as an output
// whose Failed() is true, carrying the reason as its summary text.
func (c *openAIClient) Summarize(ctx context.Context, in port.SummarizeInput) port.SummarizeOutput {
	model := resolveModel(ctx, ProviderOpenAI, in.Model, c.defaultModel)
	prompt := BuildPrompt(in.Type, in.ContextInfo, in.Text)

	raw, content, err := c.complete(ctx, model, prompt)
	if err != nil {
		logger.Errorf(ctx, "❌ openai summarisation with model %q failed: %v", model, err)
		return port.SummarizeOutput{Summary: failureSummary(err.Error()), ModelUsed: model}
	}

	return port.SummarizeOutput{Summary: content, RawResponse: raw, ModelUsed: model}
}

// Complete sends one raw prompt without any summary template.
func (c *openAIClient) Complete(ctx context.Context, prompt, model string) port.SummarizeOutput {
	resolved := resolveModel(ctx, ProviderOpenAI, model, c.defaultModel)

	raw, content, err := c.complete(ctx, resolved, prompt)
	if err != nil {
		logger.Errorf(ctx, "❌ openai completion with model %q failed: %v", resolved, err)
		return port.SummarizeOutput{Summary: failureSummary(err.Error()), ModelUsed: resolved}
	}

	return port.SummarizeOutput{Summary: content, RawResponse: raw, ModelUsed: resolved}
}

func (c *openAIClient) HealthCheck(ctx context.Context) (bool, string) {
	_, content, err := c.complete(ctx, c.defaultModel, healthProbePrompt)
	if err != nil {
		return false, err.Error()
	}
	if content == "" {
		return false, "empty reply from provider"
	}
	return true, content
}

// complete runs one chat-completion call and returns the raw response body
// alongside the extracted assistant message.
func (c *openAIClient) complete(ctx context.Context, model, prompt string) (json.RawMessage, string, error) {
	payload := chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, "", err
	}
	if res.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("status %d: %s", res.StatusCode, body)
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, "", fmt.Errorf("invalid response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, "", fmt.Errorf("no choices in response")
	}

	return body, resp.Choices[0].Message.Content, nil
}
