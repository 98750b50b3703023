package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fhuszti/transcripts-ms-go/internal/api_context"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
	"github.com/fhuszti/transcripts-ms-go/internal/usecase/media"
	"github.com/fhuszti/transcripts-ms-go/internal/validation"
)

type GenerateSummaryRequest struct {
	SummaryType string `json:"summary_type" validate:"omitempty,oneof=GENERAL GENERAL_DETAIL KEY_POINTS MEETING_MINUTES INTERVIEW QA"`
	Provider    string `json:"provider" validate:"omitempty,oneof=openai dashscope"`
	Model       string `json:"model" validate:"omitempty,max=64"`
}

// GenerateSummaryHandler summarises one media synchronously.
func GenerateSummaryHandler(svc port.SummaryGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		var req GenerateSummaryRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				WriteError(w, http.StatusBadRequest, "invalid request payload", err)
				return
			}
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		in := port.GenerateSummaryInput{
			ID:          id,
			SummaryType: port.SummaryType(req.SummaryType),
			Provider:    req.Provider,
			Model:       req.Model,
		}
		if err := svc.GenerateSummary(r.Context(), in); err != nil {
			switch {
			case errors.Is(err, media.ErrObjectNotFound):
				WriteError(w, http.StatusNotFound, "Media not found", nil)
			case errors.Is(err, media.ErrNoTranscript):
				WriteError(w, http.StatusConflict, "Media has no transcript yet", nil)
			case errors.Is(err, media.ErrSummaryFailed):
				WriteError(w, http.StatusBadGateway, "Summary generation failed", err)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not generate summary", err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully generated summary for media #%s", id)
	}
}
