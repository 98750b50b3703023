package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

type mediaGetterSrv struct {
	repo      port.MediaRepository
	snapshots port.SnapshotRepository
	strg      port.Storage
	bucket    string
}

// compile-time check: *mediaGetterSrv must satisfy port.MediaGetter
var _ port.MediaGetter = (*mediaGetterSrv)(nil)

// NewMediaGetter constructs a MediaGetter implementation.
func NewMediaGetter(repo port.MediaRepository, snapshots port.SnapshotRepository, strg port.Storage, bucket string) port.MediaGetter {
	return &mediaGetterSrv{repo, snapshots, strg, bucket}
}

// GetMedia returns the record together with presigned download links and the
// snapshot history, newest snapshot first. ValidUntil matches the link expiry
// so cached copies die with their URLs.
func (s *mediaGetterSrv) GetMedia(ctx context.Context, id db.UUID) (*port.GetMediaOutput, error) {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}

	out := &port.GetMediaOutput{
		ValidUntil: time.Now().Add(DownloadURLTTL),
		Media:      *media,
		Snapshots:  []port.SnapshotOutput{},
	}

	out.OriginalURL, err = s.strg.GeneratePresignedDownloadURL(ctx, s.bucket, media.OriginalKey, DownloadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("error generating download link for file %q: %w", media.OriginalKey, err)
	}

	if media.ProcessedKey != nil {
		out.ProcessedURL, err = s.strg.GeneratePresignedDownloadURL(ctx, s.bucket, *media.ProcessedKey, DownloadURLTTL)
		if err != nil {
			return nil, fmt.Errorf("error generating download link for file %q: %w", *media.ProcessedKey, err)
		}
	}

	snapshots, err := s.snapshots.ListByMediaID(ctx, media.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing snapshots for media #%s: %w", media.ID, err)
	}
	for _, snap := range snapshots {
		out.Snapshots = append(out.Snapshots, port.SnapshotOutput{
			ID:          snap.ID,
			SummaryType: snap.SummaryType,
			Summary:     snap.Summary,
			LLMProvider: snap.LLMProvider,
			LLMModel:    snap.LLMModel,
			CreatedAt:   snap.CreatedAt,
		})
	}

	return out, nil
}
