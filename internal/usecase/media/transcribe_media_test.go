package media

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/mock"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
)

func processedMedia() *model.Media {
	key := "processed/abc.aac"
	return &model.Media{
		ID:                  db.NewUUID(),
		OriginalKey:         "uploads/file.mp3",
		ProcessedKey:        &key,
		ProcessingStatus:    model.StatusCompleted,
		TranscriptionStatus: model.StatusNotStarted,
	}
}

func TestTranscribeMedia_NotFound(t *testing.T) {
	repo := &mock.MockMediaRepo{GetErr: sql.ErrNoRows}
	srv := NewMediaTranscriber(repo, &mock.Storage{}, &mock.Transcriber{}, "medias")

	err := srv.TranscribeMedia(context.Background(), db.NewUUID())
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestTranscribeMedia_NoAudioFile(t *testing.T) {
	repo := &mock.MockMediaRepo{MediaRecord: &model.Media{ID: db.NewUUID()}}
	srv := NewMediaTranscriber(repo, &mock.Storage{}, &mock.Transcriber{}, "medias")

	err := srv.TranscribeMedia(context.Background(), db.NewUUID())
	if !errors.Is(err, ErrNoAudioFile) {
		t.Fatalf("expected ErrNoAudioFile, got %v", err)
	}
}

func TestTranscribeMedia_NeedsConversion(t *testing.T) {
	cases := []struct {
		name  string
		media *model.Media
	}{
		{
			"no processed key",
			&model.Media{
				ID:               db.NewUUID(),
				OriginalKey:      "uploads/file.mp3",
				ProcessingStatus: model.StatusCompleted,
			},
		},
		{
			"processing not completed",
			func() *model.Media {
				m := processedMedia()
				m.ProcessingStatus = model.StatusInProgress
				return m
			}(),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			repo := &mock.MockMediaRepo{MediaRecord: c.media}
			trans := &mock.Transcriber{}
			srv := NewMediaTranscriber(repo, &mock.Storage{}, trans, "medias")

			err := srv.TranscribeMedia(context.Background(), c.media.ID)
			if !errors.Is(err, ErrNeedsConversion) {
				t.Fatalf("expected ErrNeedsConversion, got %v", err)
			}
			if trans.Called {
				t.Error("remote service must not be hit before conversion")
			}
		})
	}
}

func TestTranscribeMedia_Success(t *testing.T) {
	m := processedMedia()
	raw := json.RawMessage(`{"transcripts":[{"sentences":[{"speaker_id":"A","text":"hello"},{"speaker_id":"B","text":"hi"}]}]}`)

	repo := &mock.MockMediaRepo{MediaRecord: m}
	strg := &mock.Storage{DownloadURL: "https://assets.example.com/signed"}
	trans := &mock.Transcriber{Out: raw}
	srv := NewMediaTranscriber(repo, strg, trans, "medias")

	if err := srv.TranscribeMedia(context.Background(), m.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if trans.AssetURL != "https://assets.example.com/signed" {
		t.Errorf("asset url = %q", trans.AssetURL)
	}
	if strg.ObjectKey != *m.ProcessedKey {
		t.Errorf("presigned key = %q; want %q", strg.ObjectKey, *m.ProcessedKey)
	}
	if strg.TTL != DownloadURLTTL {
		t.Errorf("presigned ttl = %v; want %v", strg.TTL, DownloadURLTTL)
	}

	if string(m.RawTranscript) != string(raw) {
		t.Errorf("raw transcript = %s", m.RawTranscript)
	}
	want := "speaker 1: hello\nspeaker 2: hi"
	if m.FormattedTranscript != want {
		t.Errorf("formatted transcript = %q; want %q", m.FormattedTranscript, want)
	}
	if m.TranscriptionStatus != model.StatusCompleted {
		t.Errorf("transcription status = %q; want completed", m.TranscriptionStatus)
	}
	if m.TranscriptionStartDate == nil || m.TranscriptionEndDate == nil {
		t.Error("both transcription dates should be set")
	}
}

func TestTranscribeMedia_RemoteFailureMarksFailed(t *testing.T) {
	m := processedMedia()
	repo := &mock.MockMediaRepo{MediaRecord: m}
	trans := &mock.Transcriber{Err: errors.New("poll timeout")}
	srv := NewMediaTranscriber(repo, &mock.Storage{}, trans, "medias")

	err := srv.TranscribeMedia(context.Background(), m.ID)
	if err == nil {
		t.Fatal("expected error from transcriber")
	}
	if m.TranscriptionStatus != model.StatusFailed {
		t.Errorf("transcription status = %q; want failed", m.TranscriptionStatus)
	}
	if len(m.RawTranscript) != 0 {
		t.Error("no transcript should be stored on failure")
	}
}

func TestTranscribeMedia_PresignFailureMarksFailed(t *testing.T) {
	m := processedMedia()
	repo := &mock.MockMediaRepo{MediaRecord: m}
	strg := &mock.Storage{GenerateDownloadLinkErr: errors.New("access denied")}
	trans := &mock.Transcriber{}
	srv := NewMediaTranscriber(repo, strg, trans, "medias")

	err := srv.TranscribeMedia(context.Background(), m.ID)
	if err == nil {
		t.Fatal("expected error from storage")
	}
	if trans.Called {
		t.Error("remote service must not be hit without a link")
	}
	if m.TranscriptionStatus != model.StatusFailed {
		t.Errorf("transcription status = %q; want failed", m.TranscriptionStatus)
	}
}
