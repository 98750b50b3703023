package llm

import (
	"context"

	"github.com/fhuszti/transcripts-ms-go/internal/logger"
)

// SupportedModels is the per-provider allow-list. A requested model outside
// the list is replaced by the provider's configured default, with a warning.
var SupportedModels = map[string][]string{
	ProviderOpenAI: {
		"gpt-4.1-2025-04-14",
		"gpt-4o",
		"gpt-4o-mini",
		"gpt-4-turbo",
		"o3-mini",
	},
	ProviderDashScope: {
		"qwen-max",
		"qwen-plus",
		"qwen-turbo",
		"qwen-long",
	},
}

// IsValidModel reports whether model is in the provider's allow-list.
func IsValidModel(provider, model string) bool {
	for _, m := range SupportedModels[provider] {
		if m == model {
			return true
		}
	}
	return false
}

// resolveModel picks the requested model when it is allowed, otherwise the
// provider default. An unsupported request downgrades, it never errors.
func resolveModel(ctx context.Context, provider, requested, fallback string) string {
	if requested == "" {
		return fallback
	}
	if IsValidModel(provider, requested) {
		return requested
	}
	logger.Warnf(ctx, "⚠️ model %q is not supported by %s, falling back to %q", requested, provider, fallback)
	return fallback
}
