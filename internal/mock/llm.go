package mock

import (
	"context"

	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

// LLMClient implements summarisation for tests.
type LLMClient struct {
	ProviderName string

	SummarizeOut port.SummarizeOutput
	CompleteOut  port.SummarizeOutput
	HealthOK     bool
	HealthDetail string

	SummarizeCalled bool
	SummarizeIn     port.SummarizeInput
	CompleteCalled  bool
	CompletePrompt  string
	CompleteModel   string
	HealthCalled    bool
}

func (m *LLMClient) Provider() string {
	if m.ProviderName != "" {
		return m.ProviderName
	}
	return "mock"
}

func (m *LLMClient) Summarize(ctx context.Context, in port.SummarizeInput) port.SummarizeOutput {
	m.SummarizeCalled = true
	m.SummarizeIn = in
	return m.SummarizeOut
}

func (m *LLMClient) Complete(ctx context.Context, prompt, model string) port.SummarizeOutput {
	m.CompleteCalled = true
	m.CompletePrompt = prompt
	m.CompleteModel = model
	return m.CompleteOut
}

func (m *LLMClient) HealthCheck(ctx context.Context) (bool, string) {
	m.HealthCalled = true
	return m.HealthOK, m.HealthDetail
}

// ClientGetter returns a port.LLMClientGetter resolving every provider name
// to the given client, or failing with err.
func ClientGetter(client port.LLMClient, err error) port.LLMClientGetter {
	return func(provider string) (port.LLMClient, error) {
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}
