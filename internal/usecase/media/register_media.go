package media

import (
	"context"
	"fmt"

	"github.com/fhuszti/transcripts-ms-go/internal/converter"
	"github.com/fhuszti/transcripts-ms-go/internal/logger"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

type mediaRegistererSrv struct {
	repo    port.MediaRepository
	strg    port.Storage
	genUUID port.UUIDGen
	bucket  string
}

// compile-time check: *mediaRegistererSrv must satisfy port.MediaRegisterer
var _ port.MediaRegisterer = (*mediaRegistererSrv)(nil)

// NewMediaRegisterer constructs a MediaRegisterer implementation.
func NewMediaRegisterer(repo port.MediaRepository, strg port.Storage, genUUID port.UUIDGen, bucket string) port.MediaRegisterer {
	return &mediaRegistererSrv{repo, strg, genUUID, bucket}
}

// RegisterMedia creates the database record for an asset already uploaded to
// storage. The original key must carry a supported extension and the object
// must exist; both stages start at not_started.
func (s *mediaRegistererSrv) RegisterMedia(ctx context.Context, in port.RegisterMediaInput) (port.RegisterMediaOutput, error) {
	if !converter.IsSupportedFormat(in.OriginalKey) {
		return port.RegisterMediaOutput{}, fmt.Errorf("%w: %q", converter.ErrUnsupportedFormat, in.OriginalKey)
	}

	exists, err := s.strg.FileExists(ctx, s.bucket, in.OriginalKey)
	if err != nil {
		return port.RegisterMediaOutput{}, fmt.Errorf("error checking if file %q exists: %w", in.OriginalKey, err)
	}
	if !exists {
		return port.RegisterMediaOutput{}, fmt.Errorf("%w: %q", ErrObjectNotFound, in.OriginalKey)
	}

	m := &model.Media{
		ID:                  s.genUUID(),
		Title:               in.Title,
		Description:         in.Description,
		Source:              in.Source,
		IsPrivate:           in.IsPrivate,
		OriginalKey:         in.OriginalKey,
		ProcessingStatus:    model.StatusNotStarted,
		TranscriptionStatus: model.StatusNotStarted,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return port.RegisterMediaOutput{}, fmt.Errorf("failed creating media: %w", err)
	}

	logger.Infof(ctx, "✅ registered media #%s for file %q", m.ID, in.OriginalKey)
	return port.RegisterMediaOutput{ID: m.ID}, nil
}
