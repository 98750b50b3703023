package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/transcripts-ms-go/internal/logger"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

type summaryGeneratorSrv struct {
	repo            port.MediaRepository
	snapshots       port.SnapshotRepository
	getClient       port.LLMClientGetter
	cache           port.Cache
	genUUID         port.UUIDGen
	defaultProvider string
	background      string
}

// compile-time check: *summaryGeneratorSrv must satisfy port.SummaryGenerator
var _ port.SummaryGenerator = (*summaryGeneratorSrv)(nil)

// NewSummaryGenerator constructs a SummaryGenerator implementation.
func NewSummaryGenerator(
	repo port.MediaRepository,
	snapshots port.SnapshotRepository,
	getClient port.LLMClientGetter,
	cache port.Cache,
	genUUID port.UUIDGen,
	defaultProvider string,
	background string,
) port.SummaryGenerator {
	return &summaryGeneratorSrv{repo, snapshots, getClient, cache, genUUID, defaultProvider, background}
}

// GenerateSummary summarises the formatted transcript, updates the record's
// denormalised summary fields and archives an immutable snapshot. A failed
// provider call persists nothing.
func (s *summaryGeneratorSrv) GenerateSummary(ctx context.Context, in port.GenerateSummaryInput) error {
	media, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrObjectNotFound
		}
		return err
	}
	if media.FormattedTranscript == "" {
		return ErrNoTranscript
	}

	summaryType := in.SummaryType
	if !summaryType.IsValid() {
		summaryType = port.SummaryGeneral
	}

	provider := in.Provider
	if provider == "" {
		provider = s.defaultProvider
	}
	client, err := s.getClient(provider)
	if err != nil {
		return err
	}

	out := client.Summarize(ctx, port.SummarizeInput{
		Text:        media.FormattedTranscript,
		Type:        summaryType,
		ContextInfo: buildContextInfo(media, s.background),
		Model:       in.Model,
	})
	if out.Failed() {
		return fmt.Errorf("%w: %s", ErrSummaryFailed, out.Summary)
	}

	now := time.Now()
	media.Summary = out.Summary
	media.SummaryType = string(summaryType)
	media.SummaryDate = &now
	media.SelectedModel = out.ModelUsed
	if err := s.repo.Update(ctx, media); err != nil {
		return fmt.Errorf("failed updating media: %w", err)
	}

	snapshot := &model.SummarySnapshot{
		ID:          s.genUUID(),
		MediaID:     media.ID,
		SummaryType: string(summaryType),
		Summary:     out.Summary,
		LLMProvider: client.Provider(),
		LLMModel:    out.ModelUsed,
		RawResponse: model.RawResponse(out.RawResponse),
	}
	if err := s.snapshots.Create(ctx, snapshot); err != nil {
		return fmt.Errorf("failed archiving summary snapshot: %w", err)
	}

	s.invalidateCache(ctx, media)

	logger.Infof(ctx, "✅ generated %q summary for media #%s with %s/%s", summaryType, media.ID, client.Provider(), out.ModelUsed)
	return nil
}

func (s *summaryGeneratorSrv) invalidateCache(ctx context.Context, media *model.Media) {
	if err := s.cache.DeleteMediaDetails(ctx, media.ID); err != nil {
		logger.Warnf(ctx, "⚠️ failed deleting cache for media #%s: %v", media.ID, err)
	}
	if err := s.cache.DeleteEtagMediaDetails(ctx, media.ID); err != nil {
		logger.Warnf(ctx, "⚠️ failed deleting etag cache for media #%s: %v", media.ID, err)
	}
}
