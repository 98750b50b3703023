package model

import (
	"fmt"
	"time"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
)

// Media is one row per uploaded audio/video asset. The original object key is
// set at registration; every other field is filled in by the pipeline stages.
type Media struct {
	ID          db.UUID `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Source      string  `json:"source"`
	Subtitle    string  `json:"subtitle"`
	IsPrivate   bool    `json:"is_private"`

	OriginalKey  string  `json:"original_key"`
	ProcessedKey *string `json:"processed_key"`

	ProcessingStatus StageStatus `json:"processing_status"`
	ProcessingDate   *time.Time  `json:"processing_date"`

	TranscriptionStatus    StageStatus `json:"transcription_status"`
	TranscriptionStartDate *time.Time  `json:"transcription_start_date"`
	TranscriptionEndDate   *time.Time  `json:"transcription_end_date"`

	RawTranscript       RawTranscript `json:"raw_transcript"`
	FormattedTranscript string        `json:"formatted_transcript"`

	// denormalised view of the latest summarisation only; history lives in
	// summary_snapshots
	Summary       string     `json:"summary"`
	SummaryType   string     `json:"summary_type"`
	SummaryDate   *time.Time `json:"summary_date"`
	SelectedModel string     `json:"selected_model"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetProcessingStatus moves the processing stage to next, rejecting illegal
// transitions.
func (m *Media) SetProcessingStatus(next StageStatus) error {
	if !m.ProcessingStatus.CanTransitionTo(next) {
		return fmt.Errorf("illegal processing status transition %q -> %q", m.ProcessingStatus, next)
	}
	m.ProcessingStatus = next
	return nil
}

// SetTranscriptionStatus moves the transcription stage to next, rejecting
// illegal transitions.
func (m *Media) SetTranscriptionStatus(next StageStatus) error {
	if !m.TranscriptionStatus.CanTransitionTo(next) {
		return fmt.Errorf("illegal transcription status transition %q -> %q", m.TranscriptionStatus, next)
	}
	m.TranscriptionStatus = next
	return nil
}
