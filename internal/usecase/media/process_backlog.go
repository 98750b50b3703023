package media

import (
	"context"
	"time"

	"github.com/fhuszti/transcripts-ms-go/internal/logger"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

type backlogProcessorSrv struct {
	repo  port.MediaRepository
	tasks port.TaskDispatcher
}

// compile-time check: *backlogProcessorSrv must satisfy port.BacklogProcessor
var _ port.BacklogProcessor = (*backlogProcessorSrv)(nil)

// NewBacklogProcessor constructs a BacklogProcessor implementation.
func NewBacklogProcessor(repo port.MediaRepository, tasks port.TaskDispatcher) port.BacklogProcessor {
	return &backlogProcessorSrv{repo, tasks}
}

// ProcessBacklog looks for records older than one hour whose processing never
// started and enqueues full pipelines for them.
func (s *backlogProcessorSrv) ProcessBacklog(ctx context.Context) error {
	cutoff := time.Now().Add(-BacklogCutoff)
	ids, err := s.repo.ListUnprocessedCreatedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		logger.Info(ctx, "no medias found to process")
	}

	for _, id := range ids {
		logger.Infof(ctx, "starting pipeline for media #%s", id)
		if err := s.tasks.EnqueueProcessMedia(ctx, id); err != nil {
			logger.Warnf(ctx, "failed to enqueue process task for media #%s: %v", id, err)
		}
	}
	return nil
}
