package media

import (
	"context"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/logger"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

type mediaProcessorSrv struct {
	converter   port.MediaConverter
	transcriber port.MediaTranscriber
	subtitler   port.SubtitleGenerator
	summarizer  port.SummaryGenerator
}

// compile-time check: *mediaProcessorSrv must satisfy port.MediaProcessor
var _ port.MediaProcessor = (*mediaProcessorSrv)(nil)

// NewMediaProcessor constructs a MediaProcessor implementation.
func NewMediaProcessor(
	converter port.MediaConverter,
	transcriber port.MediaTranscriber,
	subtitler port.SubtitleGenerator,
	summarizer port.SummaryGenerator,
) port.MediaProcessor {
	return &mediaProcessorSrv{converter, transcriber, subtitler, summarizer}
}

// ProcessMedia runs the full pipeline for one record. Conversion and
// transcription are load-bearing: a failure there aborts the run. The
// subtitle and summary steps only log their failures so one flaky provider
// call does not lose the transcript.
func (s *mediaProcessorSrv) ProcessMedia(ctx context.Context, id db.UUID) error {
	logger.Infof(ctx, "🚀 starting pipeline for media #%s", id)

	if err := s.converter.ConvertMedia(ctx, id); err != nil {
		logger.Errorf(ctx, "❌ conversion failed for media #%s: %v", id, err)
		return err
	}

	if err := s.transcriber.TranscribeMedia(ctx, id); err != nil {
		logger.Errorf(ctx, "❌ transcription failed for media #%s: %v", id, err)
		return err
	}

	if err := s.subtitler.GenerateSubtitle(ctx, port.GenerateSubtitleInput{ID: id}); err != nil {
		logger.Warnf(ctx, "⚠️ subtitle generation failed for media #%s: %v", id, err)
	}

	if err := s.summarizer.GenerateSummary(ctx, port.GenerateSummaryInput{
		ID:          id,
		SummaryType: port.SummaryGeneralDetail,
	}); err != nil {
		logger.Warnf(ctx, "⚠️ summary generation failed for media #%s: %v", id, err)
	}

	logger.Infof(ctx, "✅ pipeline finished for media #%s", id)
	return nil
}
