package port

import (
	"context"
	"time"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
)

type UUIDGen func() db.UUID

// MediaRegisterer creates the media record for an asset already uploaded to
// storage.
type MediaRegisterer interface {
	RegisterMedia(ctx context.Context, in RegisterMediaInput) (RegisterMediaOutput, error)
}
type RegisterMediaInput struct {
	Title       string
	Description string
	Source      string
	IsPrivate   bool
	OriginalKey string
}
type RegisterMediaOutput struct {
	ID db.UUID `json:"id"`
}

// MediaGetter retrieves media details from the repository and storage.
type MediaGetter interface {
	GetMedia(ctx context.Context, id db.UUID) (*GetMediaOutput, error)
}
type SnapshotOutput struct {
	ID          db.UUID   `json:"id"`
	SummaryType string    `json:"summary_type"`
	Summary     string    `json:"summary"`
	LLMProvider string    `json:"llm_provider"`
	LLMModel    string    `json:"llm_model"`
	CreatedAt   time.Time `json:"created_at"`
}
type GetMediaOutput struct {
	ValidUntil   time.Time        `json:"valid_until"`
	Media        model.Media      `json:"media"`
	OriginalURL  string           `json:"original_url"`
	ProcessedURL string           `json:"processed_url,omitempty"`
	Snapshots    []SnapshotOutput `json:"snapshots"`
}

// MediaDeleter deletes a media record and its files. Snapshots cascade.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, id db.UUID) error
}

// MediaConverter normalises the original asset and stores the processed file.
type MediaConverter interface {
	ConvertMedia(ctx context.Context, id db.UUID) error
}

// MediaTranscriber runs the remote transcription for the processed asset and
// persists the raw and formatted transcripts.
type MediaTranscriber interface {
	TranscribeMedia(ctx context.Context, id db.UUID) error
}

// SummaryGenerator produces a summary of the formatted transcript, updates
// the denormalised summary fields and archives a snapshot.
type SummaryGenerator interface {
	GenerateSummary(ctx context.Context, in GenerateSummaryInput) error
}
type GenerateSummaryInput struct {
	ID          db.UUID
	SummaryType SummaryType
	Provider    string
	Model       string
}

// SubtitleGenerator produces the short subtitle line for a record.
type SubtitleGenerator interface {
	GenerateSubtitle(ctx context.Context, in GenerateSubtitleInput) error
}
type GenerateSubtitleInput struct {
	ID       db.UUID
	Provider string
	Model    string
}

// MediaProcessor runs the full pipeline for one record:
// convert -> transcribe -> subtitle -> detailed summary.
type MediaProcessor interface {
	ProcessMedia(ctx context.Context, id db.UUID) error
}

// BacklogProcessor enqueues full pipelines for stale unprocessed records.
type BacklogProcessor interface {
	ProcessBacklog(ctx context.Context) error
}
