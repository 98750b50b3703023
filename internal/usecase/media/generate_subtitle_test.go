package media

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fhuszti/transcripts-ms-go/internal/mock"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

func TestGenerateSubtitle_NoTranscript(t *testing.T) {
	m := transcribedMedia()
	m.FormattedTranscript = ""
	repo := &mock.MockMediaRepo{MediaRecord: m}
	srv := NewSubtitleGenerator(repo, mock.ClientGetter(&mock.LLMClient{}, nil), "openai", "")

	err := srv.GenerateSubtitle(context.Background(), port.GenerateSubtitleInput{ID: m.ID})
	if !errors.Is(err, ErrNoTranscript) {
		t.Fatalf("expected ErrNoTranscript, got %v", err)
	}
}

func TestGenerateSubtitle_TruncatesLongTranscript(t *testing.T) {
	m := transcribedMedia()
	m.FormattedTranscript = strings.Repeat("a", MaxTranscriptCharsForSubtitle+500)
	repo := &mock.MockMediaRepo{MediaRecord: m}
	client := &mock.LLMClient{CompleteOut: okSummarizeOut()}
	srv := NewSubtitleGenerator(repo, mock.ClientGetter(client, nil), "openai", "")

	if err := srv.GenerateSubtitle(context.Background(), port.GenerateSubtitleInput{ID: m.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !client.CompleteCalled {
		t.Fatal("provider should be called")
	}
	// the prompt must embed at most the transcript budget
	if !strings.Contains(client.CompletePrompt, strings.Repeat("a", MaxTranscriptCharsForSubtitle)) {
		t.Error("prompt should embed the truncated transcript")
	}
	if strings.Contains(client.CompletePrompt, strings.Repeat("a", MaxTranscriptCharsForSubtitle+1)) {
		t.Error("prompt carries more transcript chars than the budget")
	}
}

func TestGenerateSubtitle_TruncatesLongReply(t *testing.T) {
	m := transcribedMedia()
	repo := &mock.MockMediaRepo{MediaRecord: m}
	out := okSummarizeOut()
	out.Summary = strings.Repeat("x", MaxSubtitleLen+50)
	client := &mock.LLMClient{CompleteOut: out}
	srv := NewSubtitleGenerator(repo, mock.ClientGetter(client, nil), "openai", "")

	if err := srv.GenerateSubtitle(context.Background(), port.GenerateSubtitleInput{ID: m.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Repeat("x", MaxSubtitleLen) + "..."
	if m.Subtitle != want {
		t.Errorf("subtitle length = %d; want %d chars plus ellipsis", len(m.Subtitle), MaxSubtitleLen)
	}
}

func TestGenerateSubtitle_TruncatesMultiByteReplyOnRuneBoundary(t *testing.T) {
	m := transcribedMedia()
	repo := &mock.MockMediaRepo{MediaRecord: m}
	out := okSummarizeOut()
	out.Summary = "a" + strings.Repeat("音", MaxSubtitleLen)
	client := &mock.LLMClient{CompleteOut: out}
	srv := NewSubtitleGenerator(repo, mock.ClientGetter(client, nil), "openai", "")

	if err := srv.GenerateSubtitle(context.Background(), port.GenerateSubtitleInput{ID: m.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !utf8.ValidString(m.Subtitle) {
		t.Fatalf("subtitle is not valid UTF-8: %q", m.Subtitle)
	}
	want := "a" + strings.Repeat("音", MaxSubtitleLen-1) + "..."
	if m.Subtitle != want {
		t.Errorf("subtitle = %q; want %d runes plus ellipsis", m.Subtitle, MaxSubtitleLen)
	}
}

func TestGenerateSubtitle_TruncatesMultiByteTranscriptOnRuneBoundary(t *testing.T) {
	m := transcribedMedia()
	m.FormattedTranscript = strings.Repeat("音", MaxTranscriptCharsForSubtitle+500)
	repo := &mock.MockMediaRepo{MediaRecord: m}
	client := &mock.LLMClient{CompleteOut: okSummarizeOut()}
	srv := NewSubtitleGenerator(repo, mock.ClientGetter(client, nil), "openai", "")

	if err := srv.GenerateSubtitle(context.Background(), port.GenerateSubtitleInput{ID: m.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !utf8.ValidString(client.CompletePrompt) {
		t.Fatal("prompt is not valid UTF-8")
	}
	if !strings.Contains(client.CompletePrompt, strings.Repeat("音", MaxTranscriptCharsForSubtitle)) {
		t.Error("prompt should embed the rune-budget transcript")
	}
	if strings.Contains(client.CompletePrompt, strings.Repeat("音", MaxTranscriptCharsForSubtitle+1)) {
		t.Error("prompt carries more transcript runes than the budget")
	}
}

func TestGenerateSubtitle_Success(t *testing.T) {
	m := transcribedMedia()
	repo := &mock.MockMediaRepo{MediaRecord: m}
	out := okSummarizeOut()
	out.Summary = "  A punchy one-liner.  "
	client := &mock.LLMClient{CompleteOut: out}
	srv := NewSubtitleGenerator(repo, mock.ClientGetter(client, nil), "openai", "")

	if err := srv.GenerateSubtitle(context.Background(), port.GenerateSubtitleInput{ID: m.ID, Model: "gpt-4o"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Subtitle != "A punchy one-liner." {
		t.Errorf("subtitle = %q", m.Subtitle)
	}
	if client.CompleteModel != "gpt-4o" {
		t.Errorf("model = %q", client.CompleteModel)
	}
	if repo.UpdateCount != 1 {
		t.Errorf("update count = %d; want 1", repo.UpdateCount)
	}
}

func TestGenerateSubtitle_ProviderFailure(t *testing.T) {
	m := transcribedMedia()
	repo := &mock.MockMediaRepo{MediaRecord: m}
	client := &mock.LLMClient{CompleteOut: port.SummarizeOutput{Summary: "Summary generation failed: 500"}}
	srv := NewSubtitleGenerator(repo, mock.ClientGetter(client, nil), "openai", "")

	err := srv.GenerateSubtitle(context.Background(), port.GenerateSubtitleInput{ID: m.ID})
	if !errors.Is(err, ErrSummaryFailed) {
		t.Fatalf("expected ErrSummaryFailed, got %v", err)
	}
	if m.Subtitle != "" {
		t.Errorf("subtitle leaked onto the record: %q", m.Subtitle)
	}
	if repo.UpdateCount != 0 {
		t.Error("record must not be updated on failure")
	}
}
