package task

import (
	"context"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueProcessMedia(ctx context.Context, id db.UUID) error {
	return nil
}

func (d *NoopDispatcher) EnqueueGenerateSummary(ctx context.Context, id db.UUID, summaryType port.SummaryType, provider, model string) error {
	return nil
}
