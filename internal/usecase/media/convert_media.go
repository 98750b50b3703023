package media

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/net/context"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/logger"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

type mediaConverterSrv struct {
	repo    port.MediaRepository
	strg    port.Storage
	conv    port.AudioConverter
	bucket  string
	workDir string
}

// compile-time check: *mediaConverterSrv must satisfy port.MediaConverter
var _ port.MediaConverter = (*mediaConverterSrv)(nil)

// NewMediaConverter constructs a MediaConverter implementation.
func NewMediaConverter(repo port.MediaRepository, strg port.Storage, conv port.AudioConverter, bucket, workDir string) port.MediaConverter {
	return &mediaConverterSrv{repo, strg, conv, bucket, workDir}
}

// ConvertMedia downloads the original asset, normalises it to mono AAC and
// stores the processed file under processed/<id>.aac. The processing stage
// moves to in_progress first and ends at completed or failed.
func (s *mediaConverterSrv) ConvertMedia(ctx context.Context, id db.UUID) error {
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

	if err := media.SetProcessingStatus(model.StatusInProgress); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, media); err != nil {
		return fmt.Errorf("failed updating media: %w", err)
	}

	processedKey, err := s.convert(ctx, media)
	if err != nil {
		s.markProcessingFailed(ctx, media)
		return err
	}

	now := time.Now()
	media.ProcessedKey = &processedKey
	media.ProcessingDate = &now
	if err := media.SetProcessingStatus(model.StatusCompleted); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, media); err != nil {
		return fmt.Errorf("failed updating media: %w", err)
	}

	logger.Infof(ctx, "✅ converted media #%s to %q", media.ID, processedKey)
	return nil
}

func (s *mediaConverterSrv) convert(ctx context.Context, media *model.Media) (string, error) {
	localPath, err := s.download(ctx, media)
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(localPath) }()

	outPath, err := s.conv.Convert(ctx, localPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(outPath) }()

	return s.upload(ctx, media, outPath)
}

// download copies the original object to the working directory, keeping its
// extension so the converter's format check still applies.
func (s *mediaConverterSrv) download(ctx context.Context, media *model.Media) (string, error) {
	reader, err := s.strg.GetFile(ctx, s.bucket, media.OriginalKey)
	if err != nil {
		return "", err
	}
	defer func(reader io.ReadSeekCloser) {
		_ = reader.Close()
	}(reader)

	if err := os.MkdirAll(s.workDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create work dir %q: %w", s.workDir, err)
	}

	localPath := filepath.Join(s.workDir, fmt.Sprintf("original_%s%s", media.ID, filepath.Ext(media.OriginalKey)))
	out, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("could not create local file %q: %w", localPath, err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, reader); err != nil {
		_ = os.Remove(localPath)
		return "", fmt.Errorf("could not download file %q: %w", media.OriginalKey, err)
	}
	return localPath, nil
}

func (s *mediaConverterSrv) upload(ctx context.Context, media *model.Media, outPath string) (string, error) {
	f, err := os.Open(outPath)
	if err != nil {
		return "", fmt.Errorf("could not open converted file %q: %w", outPath, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("could not stat converted file %q: %w", outPath, err)
	}

	processedKey := fmt.Sprintf("processed/%s.aac", media.ID)
	if err := s.strg.SaveFile(
		ctx,
		s.bucket,
		processedKey,
		f,
		info.Size(),
		map[string]string{
			"Content-Type": "audio/aac",
		},
	); err != nil {
		return "", fmt.Errorf("failed to save file %q inside bucket %q: %w", processedKey, s.bucket, err)
	}
	return processedKey, nil
}

func (s *mediaConverterSrv) markProcessingFailed(ctx context.Context, media *model.Media) {
	if err := media.SetProcessingStatus(model.StatusFailed); err != nil {
		logger.Warnf(ctx, "⚠️ could not mark media #%s processing as failed: %v", media.ID, err)
		return
	}
	if err := s.repo.Update(ctx, media); err != nil {
		logger.Warnf(ctx, "⚠️ could not persist failed processing status for media #%s: %v", media.ID, err)
	}
}
