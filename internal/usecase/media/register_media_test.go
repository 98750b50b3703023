package media

import (
	"context"
	"errors"
	"testing"

	"github.com/fhuszti/transcripts-ms-go/internal/converter"
	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/mock"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

func staticUUIDGen(id db.UUID) port.UUIDGen {
	return func() db.UUID { return id }
}

func TestRegisterMedia_UnsupportedFormat(t *testing.T) {
	repo := &mock.MockMediaRepo{}
	strg := &mock.Storage{ExistsOut: true}
	srv := NewMediaRegisterer(repo, strg, staticUUIDGen(db.NewUUID()), "medias")

	_, err := srv.RegisterMedia(context.Background(), port.RegisterMediaInput{
		Title:       "demo",
		OriginalKey: "uploads/file.ogg",
	})
	if !errors.Is(err, converter.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if strg.FileExistsCalled {
		t.Error("storage should not be hit for a rejected extension")
	}
	if repo.Created != nil {
		t.Error("no record should be created")
	}
}

func TestRegisterMedia_FileMissing(t *testing.T) {
	repo := &mock.MockMediaRepo{}
	strg := &mock.Storage{ExistsOut: false}
	srv := NewMediaRegisterer(repo, strg, staticUUIDGen(db.NewUUID()), "medias")

	_, err := srv.RegisterMedia(context.Background(), port.RegisterMediaInput{
		Title:       "demo",
		OriginalKey: "uploads/file.mp3",
	})
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
	if repo.Created != nil {
		t.Error("no record should be created")
	}
}

func TestRegisterMedia_Success(t *testing.T) {
	id := db.NewUUID()
	repo := &mock.MockMediaRepo{}
	strg := &mock.Storage{ExistsOut: true}
	srv := NewMediaRegisterer(repo, strg, staticUUIDGen(id), "medias")

	out, err := srv.RegisterMedia(context.Background(), port.RegisterMediaInput{
		Title:       "interview with the founder",
		Description: "raw cut",
		Source:      "studio",
		IsPrivate:   true,
		OriginalKey: "uploads/file.m4a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != id {
		t.Errorf("output id = %s; want %s", out.ID, id)
	}

	if repo.Created == nil {
		t.Fatal("record should be created")
	}
	m := repo.Created
	if m.Title != "interview with the founder" || !m.IsPrivate || m.OriginalKey != "uploads/file.m4a" {
		t.Errorf("record fields not carried over: %+v", m)
	}
	if m.ProcessingStatus != model.StatusNotStarted || m.TranscriptionStatus != model.StatusNotStarted {
		t.Errorf("both stages must start at not_started, got %q/%q", m.ProcessingStatus, m.TranscriptionStatus)
	}
}

func TestRegisterMedia_CreateFails(t *testing.T) {
	repo := &mock.MockMediaRepo{CreateErr: errors.New("duplicate entry")}
	strg := &mock.Storage{ExistsOut: true}
	srv := NewMediaRegisterer(repo, strg, staticUUIDGen(db.NewUUID()), "medias")

	_, err := srv.RegisterMedia(context.Background(), port.RegisterMediaInput{
		Title:       "demo",
		OriginalKey: "uploads/file.wav",
	})
	if err == nil {
		t.Fatal("expected error from repository")
	}
}
