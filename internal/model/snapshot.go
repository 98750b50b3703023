package model

import (
	"time"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
)

// SummarySnapshot archives one successful summarisation result. Rows are
// append-only: the pipeline never mutates or deletes them. Deleting the
// owning media cascades.
type SummarySnapshot struct {
	ID      db.UUID `json:"id"`
	MediaID db.UUID `json:"media_id"`

	SummaryType string `json:"summary_type"`
	Summary     string `json:"summary"`

	LLMProvider string `json:"llm_provider"`
	LLMModel    string `json:"llm_model"`

	RawResponse RawResponse `json:"raw_response"`

	CreatedAt time.Time `json:"created_at"`
}
