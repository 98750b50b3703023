package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
	"github.com/fhuszti/transcripts-ms-go/internal/validation"
	"github.com/google/uuid"
)

type ProcessMediaRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=100,dive,uuid"`
}

type ProcessMediaResponse struct {
	Started  int               `json:"started"`
	Rejected map[string]string `json:"rejected"`
}

// ProcessMediaHandler enqueues the full pipeline for a batch of medias. The
// batch is best-effort: each id succeeds or fails on its own and the response
// aggregates the outcome.
func ProcessMediaHandler(tasks port.TaskDispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProcessMediaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
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

		resp := ProcessMediaResponse{Rejected: map[string]string{}}
		for _, rawID := range req.IDs {
			parsedID, err := uuid.Parse(rawID)
			if err != nil {
				resp.Rejected[rawID] = "not a valid UUID"
				continue
			}
			if err := tasks.EnqueueProcessMedia(r.Context(), db.UUID(parsedID)); err != nil {
				log.Printf("❌  Failed to enqueue pipeline for media #%s: %v", rawID, err)
				resp.Rejected[rawID] = "could not enqueue task"
				continue
			}
			resp.Started++
		}

		RespondJSON(w, http.StatusAccepted, resp)
		log.Printf("✅  Enqueued pipeline for %d media(s), rejected %d", resp.Started, len(resp.Rejected))
	}
}
