package port

import (
	"context"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
)

// TaskDispatcher enqueues asynchronous pipeline tasks.
type TaskDispatcher interface {
	EnqueueProcessMedia(ctx context.Context, id db.UUID) error
	EnqueueGenerateSummary(ctx context.Context, id db.UUID, summaryType SummaryType, provider, model string) error
}
