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

// dashScopeClient talks to the text-generation endpoint.
type dashScopeClient struct {
	httpc        *http.Client
	apiKey       string
	apiBase      string
	defaultModel string
}

// compile-time check: *dashScopeClient must satisfy port.LLMClient
var _ port.LLMClient = (*dashScopeClient)(nil)

func newDashScopeClient(httpc *http.Client, apiKey, apiBase, defaultModel string) *dashScopeClient {
	return &dashScopeClient{httpc: httpc, apiKey: apiKey, apiBase: apiBase, defaultModel: defaultModel}
}

func (c *dashScopeClient) Provider() string { return ProviderDashScope }

type generationRequest struct {
	Model string `json:"model"`
	Input struct {
		Messages []chatMessage `json:"messages"`
	} `json:"input"`
	Parameters struct {
		Temperature float64 `json:"temperature"`
	} `json:"parameters"`
}

// generationResponse covers both shapes the endpoint is known to return:
// output.text, or output.choices[0].message.content.
type generationResponse struct {
	Output struct {
		Text    string `json:"text"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	} `json:"output"`
}

func (r generationResponse) content() string {
	if r.Output.Text != "" {
		return r.Output.Text
	}
	if len(r.Output.Choices) > 0 {
		return r.Output.Choices[0].Message.Content
	}
	return ""
}

// Summarize never returns an error; remote failures come back as an output
// whose Failed() is true, carrying the reason as its summary text.
func (c *dashScopeClient) Summarize(ctx context.Context, in port.SummarizeInput) port.SummarizeOutput {
	model := resolveModel(ctx, ProviderDashScope, in.Model, c.defaultModel)
	prompt := BuildPrompt(in.Type, in.ContextInfo, in.Text)

	raw, content, err := c.generate(ctx, model, prompt)
	if err != nil {
		logger.Errorf(ctx, "❌ dashscope summarisation with model %q failed: %v", model, err)
		return port.SummarizeOutput{Summary: failureSummary(err.Error()), ModelUsed: model}
	}

	return port.SummarizeOutput{Summary: content, RawResponse: raw, ModelUsed: model}
}

// Complete sends one raw prompt without any summary template.
func (c *dashScopeClient) Complete(ctx context.Context, prompt, model string) port.SummarizeOutput {
	resolved := resolveModel(ctx, ProviderDashScope, model, c.defaultModel)

	raw, content, err := c.generate(ctx, resolved, prompt)
	if err != nil {
		logger.Errorf(ctx, "❌ dashscope completion with model %q failed: %v", resolved, err)
		return port.SummarizeOutput{Summary: failureSummary(err.Error()), ModelUsed: resolved}
	}

	return port.SummarizeOutput{Summary: content, RawResponse: raw, ModelUsed: resolved}
}

func (c *dashScopeClient) HealthCheck(ctx context.Context) (bool, string) {
	_, content, err := c.generate(ctx, c.defaultModel, healthProbePrompt)
	if err != nil {
		return false, err.Error()
	}
	if content == "" {
		return false, "empty reply from provider"
	}
	return true, content
}

func (c *dashScopeClient) generate(ctx context.Context, model, prompt string) (json.RawMessage, string, error) {
	var payload generationRequest
	payload.Model = model
	payload.Input.Messages = []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	}
	payload.Parameters.Temperature = temperature

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/services/aigc/text-generation/generation", bytes.NewReader(data))
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

	var resp generationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, "", fmt.Errorf("invalid response: %w", err)
	}
	content := resp.content()
	if content == "" {
		return nil, "", fmt.Errorf("no content in response")
	}

	return body, content, nil
}
