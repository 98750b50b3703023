package llm

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

const (
	ProviderOpenAI    = "openai"
	ProviderDashScope = "dashscope"
)

// temperature applied to every summarisation call
const temperature = 0.3

// healthProbePrompt is the fixed prompt sent by HealthCheck.
const healthProbePrompt = "Reply with the single word: ok"

// failureSummary is the text carried by a SummarizeOutput when the provider
// call did not produce a summary. It is never persisted.
func failureSummary(reason string) string {
	return "Summary generation failed: " + reason
}

// Config carries the settings for both providers.
type Config struct {
	OpenAIAPIKey  string
	OpenAIAPIBase string
	OpenAIModel   string

	DashScopeAPIKey  string
	DashScopeAPIBase string
	DashScopeModel   string

	// HTTPClient overrides the default client; used by tests.
	HTTPClient *http.Client
}

// NewClientGetter builds the provider resolver. Resolution fails for unknown
// provider names and for providers whose API key is not configured.
func NewClientGetter(cfg Config) port.LLMClientGetter {
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: 120 * time.Second}
	}

	return func(provider string) (port.LLMClient, error) {
		switch provider {
		case ProviderOpenAI:
			if cfg.OpenAIAPIKey == "" {
				return nil, fmt.Errorf("llm: provider %q has no API key configured", provider)
			}
			return newOpenAIClient(httpc, cfg.OpenAIAPIKey, strings.TrimSuffix(cfg.OpenAIAPIBase, "/"), cfg.OpenAIModel), nil
		case ProviderDashScope:
			if cfg.DashScopeAPIKey == "" {
				return nil, fmt.Errorf("llm: provider %q has no API key configured", provider)
			}
			return newDashScopeClient(httpc, cfg.DashScopeAPIKey, strings.TrimSuffix(cfg.DashScopeAPIBase, "/"), cfg.DashScopeModel), nil
		default:
			return nil, fmt.Errorf("llm: unknown provider %q", provider)
		}
	}
}
