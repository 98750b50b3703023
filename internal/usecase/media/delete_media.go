package media

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/logger"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

type mediaDeleterSrv struct {
	repo   port.MediaRepository
	cache  port.Cache
	strg   port.Storage
	bucket string
}

// compile-time check: *mediaDeleterSrv must satisfy port.MediaDeleter
var _ port.MediaDeleter = (*mediaDeleterSrv)(nil)

// NewMediaDeleter constructs a MediaDeleter implementation.
func NewMediaDeleter(repo port.MediaRepository, cache port.Cache, strg port.Storage, bucket string) port.MediaDeleter {
	return &mediaDeleterSrv{repo: repo, cache: cache, strg: strg, bucket: bucket}
}

// DeleteMedia removes both stored files, deletes the DB record (snapshots
// cascade) and clears the cache.
func (s *mediaDeleterSrv) DeleteMedia(ctx context.Context, id db.UUID) error {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrObjectNotFound
		}
		return err
	}

	if media.ProcessedKey != nil {
		if err := s.strg.RemoveFile(ctx, s.bucket, *media.ProcessedKey); err != nil {
			logger.Warnf(ctx, "failed to remove processed file %q: %v", *media.ProcessedKey, err)
		}
	}

	if err := s.strg.RemoveFile(ctx, s.bucket, media.OriginalKey); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, media.ID); err != nil {
		return err
	}

	if err := s.cache.DeleteMediaDetails(ctx, media.ID); err != nil {
		logger.Warnf(ctx, "failed deleting cache for media #%s: %v", media.ID, err)
	}
	if err := s.cache.DeleteEtagMediaDetails(ctx, media.ID); err != nil {
		logger.Warnf(ctx, "failed deleting etag cache for media #%s: %v", media.ID, err)
	}

	return nil
}
