package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fhuszti/transcripts-ms-go/internal/converter"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
	"github.com/fhuszti/transcripts-ms-go/internal/usecase/media"
	"github.com/fhuszti/transcripts-ms-go/internal/validation"
)

type RegisterMediaRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
	Source      string `json:"source" validate:"max=255"`
	IsPrivate   bool   `json:"is_private"`
	OriginalKey string `json:"original_key" validate:"required,max=512"`
}

// RegisterMediaHandler creates a media record for an already-uploaded file.
func RegisterMediaHandler(svc port.MediaRegisterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterMediaRequest
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

		out, err := svc.RegisterMedia(r.Context(), port.RegisterMediaInput{
			Title:       req.Title,
			Description: req.Description,
			Source:      req.Source,
			IsPrivate:   req.IsPrivate,
			OriginalKey: req.OriginalKey,
		})
		if err != nil {
			switch {
			case errors.Is(err, converter.ErrUnsupportedFormat):
				WriteError(w, http.StatusBadRequest, "unsupported file format", err)
			case errors.Is(err, media.ErrObjectNotFound):
				WriteError(w, http.StatusBadRequest, "file has not been uploaded", err)
			default:
				WriteError(w, http.StatusInternalServerError, "could not register media", err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		log.Printf("✅  Successfully registered media #%s", out.ID)
	}
}
