package mariadb

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
)

func TestSnapshotRepository_Create_Success(t *testing.T) {
	sqlDB, mock := newMockDB(t)
	repo := NewSnapshotRepository(sqlDB)

	s := &model.SummarySnapshot{
		ID:          db.NewUUID(),
		MediaID:     db.NewUUID(),
		SummaryType: "KEY_POINTS",
		Summary:     "a short summary",
		LLMProvider: "openai",
		LLMModel:    "gpt-4o",
		RawResponse: model.RawResponse(`{"choices":[]}`),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO summary_snapshots")).
		WithArgs(
			s.ID,
			s.MediaID,
			s.SummaryType,
			s.Summary,
			s.LLMProvider,
			s.LLMModel,
			sqlmock.AnyArg(), // RawResponse
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), s); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestSnapshotRepository_Create_ExecError(t *testing.T) {
	sqlDB, mock := newMockDB(t)
	repo := NewSnapshotRepository(sqlDB)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO summary_snapshots")).
		WillReturnError(errors.New("fk violation"))

	err := repo.Create(context.Background(), &model.SummarySnapshot{ID: db.NewUUID(), MediaID: db.NewUUID()})
	if err == nil {
		t.Error("Create() expected error, got nil")
	}
}

func TestSnapshotRepository_ListByMediaID(t *testing.T) {
	sqlDB, mock := newMockDB(t)
	repo := NewSnapshotRepository(sqlDB)

	mediaID := db.NewUUID()
	newest, older := db.NewUUID(), db.NewUUID()
	now := time.Now()
	cols := []string{"id", "media_id", "summary_type", "summary", "llm_provider", "llm_model", "raw_response", "created_at"}

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs(mediaID).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(uuidBytes(t, newest), uuidBytes(t, mediaID), "KEY_POINTS", "newest", "openai", "gpt-4o", []byte(`{}`), now).
			AddRow(uuidBytes(t, older), uuidBytes(t, mediaID), "GENERAL", "older", "dashscope", "qwen-max", nil, now.Add(-time.Hour)))

	snapshots, err := repo.ListByMediaID(context.Background(), mediaID)
	if err != nil {
		t.Fatalf("ListByMediaID() returned unexpected error: %v", err)
	}
	if len(snapshots) != 2 {
		t.Fatalf("snapshot count = %d; want 2", len(snapshots))
	}
	if snapshots[0].ID != newest || snapshots[0].Summary != "newest" {
		t.Errorf("first snapshot = %+v", snapshots[0])
	}
	if snapshots[1].LLMProvider != "dashscope" || snapshots[1].RawResponse != nil {
		t.Errorf("second snapshot = %+v", snapshots[1])
	}
}

func TestSnapshotRepository_ListByMediaID_Empty(t *testing.T) {
	sqlDB, mock := newMockDB(t)
	repo := NewSnapshotRepository(sqlDB)

	mediaID := db.NewUUID()
	cols := []string{"id", "media_id", "summary_type", "summary", "llm_provider", "llm_model", "raw_response", "created_at"}
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs(mediaID).
		WillReturnRows(sqlmock.NewRows(cols))

	snapshots, err := repo.ListByMediaID(context.Background(), mediaID)
	if err != nil {
		t.Fatalf("ListByMediaID() returned unexpected error: %v", err)
	}
	if len(snapshots) != 0 {
		t.Errorf("snapshot count = %d; want 0", len(snapshots))
	}
}
