package media

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/mock"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
)

func TestDeleteMedia_NotFound(t *testing.T) {
	repo := &mock.MockMediaRepo{GetErr: sql.ErrNoRows}
	srv := NewMediaDeleter(repo, &mock.Cache{}, &mock.Storage{}, "medias")

	err := srv.DeleteMedia(context.Background(), db.NewUUID())
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestDeleteMedia_RemovesBothFiles(t *testing.T) {
	key := "processed/abc.aac"
	m := &model.Media{ID: db.NewUUID(), OriginalKey: "uploads/file.mp3", ProcessedKey: &key}
	repo := &mock.MockMediaRepo{MediaRecord: m}
	strg := &mock.Storage{}
	cache := &mock.Cache{}
	srv := NewMediaDeleter(repo, cache, strg, "medias")

	if err := srv.DeleteMedia(context.Background(), m.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(strg.RemovedKeys) != 2 || strg.RemovedKeys[0] != key || strg.RemovedKeys[1] != "uploads/file.mp3" {
		t.Errorf("removed keys = %v", strg.RemovedKeys)
	}
	if !repo.DeleteCalled || repo.DeletedID != m.ID {
		t.Error("record should be deleted")
	}
	if !cache.DelMediaCalled || !cache.DelEtagMediaCalled {
		t.Error("both cache entries should be cleared")
	}
}

func TestDeleteMedia_ProcessedRemovalFailureIsTolerated(t *testing.T) {
	key := "processed/abc.aac"
	m := &model.Media{ID: db.NewUUID(), OriginalKey: "uploads/file.mp3", ProcessedKey: &key}
	repo := &mock.MockMediaRepo{MediaRecord: m}
	// first removal fails, but RemoveErr applies to every call; the original
	// removal failing must abort instead
	strg := &mock.Storage{RemoveErr: errors.New("gone already")}
	srv := NewMediaDeleter(repo, &mock.Cache{}, strg, "medias")

	if err := srv.DeleteMedia(context.Background(), m.ID); err == nil {
		t.Fatal("expected error when the original cannot be removed")
	}
	if repo.DeleteCalled {
		t.Error("record must survive when the original file removal fails")
	}
}

func TestDeleteMedia_WithoutProcessedFile(t *testing.T) {
	m := &model.Media{ID: db.NewUUID(), OriginalKey: "uploads/file.mp3"}
	repo := &mock.MockMediaRepo{MediaRecord: m}
	strg := &mock.Storage{}
	srv := NewMediaDeleter(repo, &mock.Cache{}, strg, "medias")

	if err := srv.DeleteMedia(context.Background(), m.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(strg.RemovedKeys) != 1 || strg.RemovedKeys[0] != "uploads/file.mp3" {
		t.Errorf("removed keys = %v", strg.RemovedKeys)
	}
}
