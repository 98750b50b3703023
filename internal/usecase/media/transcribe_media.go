package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/logger"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
	"github.com/fhuszti/transcripts-ms-go/internal/transcript"
)

type mediaTranscriberSrv struct {
	repo   port.MediaRepository
	strg   port.Storage
	trans  port.Transcriber
	bucket string
}

// compile-time check: *mediaTranscriberSrv must satisfy port.MediaTranscriber
var _ port.MediaTranscriber = (*mediaTranscriberSrv)(nil)

// NewMediaTranscriber constructs a MediaTranscriber implementation.
func NewMediaTranscriber(repo port.MediaRepository, strg port.Storage, trans port.Transcriber, bucket string) port.MediaTranscriber {
	return &mediaTranscriberSrv{repo, strg, trans, bucket}
}

// TranscribeMedia runs the remote ASR job on the processed asset, then stores
// both the raw payload and the speaker-labeled text. The transcription stage
// moves to in_progress first and ends at completed or failed.
func (s *mediaTranscriberSrv) TranscribeMedia(ctx context.Context, id db.UUID) error {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrObjectNotFound
		}
		return err
	}
	if media.OriginalKey == "" {
		return ErrNoAudioFile
	}
	if media.ProcessedKey == nil || media.ProcessingStatus != model.StatusCompleted {
		return ErrNeedsConversion
	}

	now := time.Now()
	media.TranscriptionStartDate = &now
	if err := media.SetTranscriptionStatus(model.StatusInProgress); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, media); err != nil {
		return fmt.Errorf("failed updating media: %w", err)
	}

	// the remote service downloads the asset itself, so the link must
	// outlive the whole polling budget
	assetURL, err := s.strg.GeneratePresignedDownloadURL(ctx, s.bucket, *media.ProcessedKey, DownloadURLTTL)
	if err != nil {
		s.markTranscriptionFailed(ctx, media)
		return err
	}

	raw, err := s.trans.Transcribe(ctx, assetURL)
	if err != nil {
		s.markTranscriptionFailed(ctx, media)
		return err
	}

	formatted := transcript.Format(raw)

	end := time.Now()
	media.RawTranscript = model.RawTranscript(raw)
	media.FormattedTranscript = formatted
	media.TranscriptionEndDate = &end
	if err := media.SetTranscriptionStatus(model.StatusCompleted); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, media); err != nil {
		return fmt.Errorf("failed updating media: %w", err)
	}

	logger.Infof(ctx, "✅ transcribed media #%s (%d chars)", media.ID, len(formatted))
	return nil
}

func (s *mediaTranscriberSrv) markTranscriptionFailed(ctx context.Context, media *model.Media) {
	if err := media.SetTranscriptionStatus(model.StatusFailed); err != nil {
		logger.Warnf(ctx, "⚠️ could not mark media #%s transcription as failed: %v", media.ID, err)
		return
	}
	if err := s.repo.Update(ctx, media); err != nil {
		logger.Warnf(ctx, "⚠️ could not persist failed transcription status for media #%s: %v", media.ID, err)
	}
}
