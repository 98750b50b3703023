package api

import (
	"log"
	"net/http"

	"github.com/fhuszti/transcripts-ms-go/internal/port"
	"github.com/go-chi/chi/v5"
)

type LLMHealthResponse struct {
	Provider string `json:"provider"`
	OK       bool   `json:"ok"`
	Detail   string `json:"detail"`
}

// LLMHealthHandler probes one provider with a fixed prompt and reports
// whether a usable reply came back.
func LLMHealthHandler(getClient port.LLMClientGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		if provider == "" {
			WriteError(w, http.StatusBadRequest, "provider is required", nil)
			return
		}

		client, err := getClient(provider)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "unknown or unconfigured provider", err)
			return
		}

		ok, detail := client.HealthCheck(r.Context())
		status := http.StatusOK
		if !ok {
			status = http.StatusBadGateway
		}

		RespondJSON(w, status, LLMHealthResponse{Provider: provider, OK: ok, Detail: detail})
		log.Printf("✅  Health check for provider %q: ok=%v", provider, ok)
	}
}
