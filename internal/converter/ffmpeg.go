package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/logger"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

var (
	ErrUnsupportedFormat  = errors.New("converter: unsupported file format")
	ErrEncoderUnavailable = errors.New("converter: encoder binary not available")
	ErrSourceNotFound     = errors.New("converter: source file not found")
)

// SupportedFormats is the allow-list of input container formats.
var SupportedFormats = map[string]bool{
	".mp3":  true,
	".mp4":  true,
	".aac":  true,
	".wav":  true,
	".m4a":  true,
	".flac": true,
}

// IsSupportedFormat reports whether the file extension of name is in the
// input allow-list.
func IsSupportedFormat(name string) bool {
	return SupportedFormats[strings.ToLower(filepath.Ext(name))]
}

// FFmpegConverter normalises assets to mono AAC with a fixed bitrate and
// sample rate. Video and image streams are dropped.
type FFmpegConverter struct {
	runner     CommandRunner
	binary     string
	bitrate    string
	sampleRate int
	workDir    string
}

// compile-time check: *FFmpegConverter must satisfy port.AudioConverter
var _ port.AudioConverter = (*FFmpegConverter)(nil)

func NewFFmpegConverter(runner CommandRunner, binary, bitrate string, sampleRate int, workDir string) *FFmpegConverter {
	return &FFmpegConverter{
		runner:     runner,
		binary:     binary,
		bitrate:    bitrate,
		sampleRate: sampleRate,
		workDir:    workDir,
	}
}

// Convert transcodes sourcePath to mono AAC inside the working directory and
// returns the output path. The format allow-list is checked before the
// encoder is ever invoked.
func (c *FFmpegConverter) Convert(ctx context.Context, sourcePath string) (string, error) {
	if !IsSupportedFormat(sourcePath) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(sourcePath))
	}

	if _, err := os.Stat(sourcePath); err != nil {
		return "", fmt.Errorf("%w: %q", ErrSourceNotFound, sourcePath)
	}

	if _, err := c.runner.Run(ctx, c.binary, "-version"); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoderUnavailable, err)
	}

	if err := os.MkdirAll(c.workDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create work dir %q: %w", c.workDir, err)
	}

	outPath := filepath.Join(c.workDir, fmt.Sprintf("processed_%s.aac", db.NewUUID()))

	args := []string{
		"-y", // overwrite output file if it exists
		"-i", sourcePath,
		"-vn",      // drop video/image streams
		"-ac", "1", // mono
		"-c:a", "aac",
		"-b:a", c.bitrate,
		"-ar", strconv.Itoa(c.sampleRate),
		outPath,
	}

	logger.Debugf(ctx, "running %s %s", c.binary, strings.Join(args, " "))
	if _, err := c.runner.Run(ctx, c.binary, args...); err != nil {
		return "", fmt.Errorf("conversion of %q failed: %w", sourcePath, err)
	}

	logger.Infof(ctx, "converted %q to mono AAC at %q", sourcePath, outPath)
	return outPath, nil
}
