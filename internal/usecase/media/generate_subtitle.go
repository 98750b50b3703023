package media

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fhuszti/transcripts-ms-go/internal/llm"
	"github.com/fhuszti/transcripts-ms-go/internal/logger"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

type subtitleGeneratorSrv struct {
	repo            port.MediaRepository
	getClient       port.LLMClientGetter
	defaultProvider string
	background      string
}

// compile-time check: *subtitleGeneratorSrv must satisfy port.SubtitleGenerator
var _ port.SubtitleGenerator = (*subtitleGeneratorSrv)(nil)

// NewSubtitleGenerator constructs a SubtitleGenerator implementation.
func NewSubtitleGenerator(repo port.MediaRepository, getClient port.LLMClientGetter, defaultProvider, background string) port.SubtitleGenerator {
	return &subtitleGeneratorSrv{repo, getClient, defaultProvider, background}
}

// GenerateSubtitle asks the provider for a one-line teaser built from the
// start of the transcript. Replies longer than the display limit are cut.
func (s *subtitleGeneratorSrv) GenerateSubtitle(ctx context.Context, in port.GenerateSubtitleInput) error {
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

	text := truncateRunes(media.FormattedTranscript, MaxTranscriptCharsForSubtitle)

	provider := in.Provider
	if provider == "" {
		provider = s.defaultProvider
	}
	client, err := s.getClient(provider)
	if err != nil {
		return err
	}

	out := client.Complete(ctx, llm.BuildSubtitlePrompt(buildContextInfo(media, s.background), text), in.Model)
	if out.Failed() {
		return fmt.Errorf("%w: %s", ErrSummaryFailed, out.Summary)
	}

	subtitle := strings.TrimSpace(out.Summary)
	if utf8.RuneCountInString(subtitle) > MaxSubtitleLen {
		subtitle = truncateRunes(subtitle, MaxSubtitleLen) + "..."
	}

	media.Subtitle = subtitle
	if err := s.repo.Update(ctx, media); err != nil {
		return fmt.Errorf("failed updating media: %w", err)
	}

	logger.Infof(ctx, "✅ generated subtitle for media #%s", media.ID)
	return nil
}

// truncateRunes cuts s after max runes. Cutting on byte offsets would split
// multi-byte characters and produce invalid UTF-8.
func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
