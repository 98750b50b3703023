package port

import (
	"context"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
)

// SnapshotRepository defines persistence for summary snapshots. Snapshots are
// append-only: there is no update or single-row delete, rows only disappear
// when the owning media is deleted (FK cascade).
type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *model.SummarySnapshot) error
	ListByMediaID(ctx context.Context, mediaID db.UUID) ([]model.SummarySnapshot, error)
}
