package mock

import (
	"context"
	"time"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
)

// MockMediaRepo implements repository operations for tests.
type MockMediaRepo struct {
	MediaRecord *model.Media

	GetErr     error
	CreateErr  error
	UpdateErr  error
	DeleteErr  error
	ListErr    error
	ListOut    []db.UUID
	ListBefore time.Time

	GetCalled    bool
	Created      *model.Media
	Updated      *model.Media
	UpdateCount  int
	DeleteCalled bool
	DeletedID    db.UUID
	ListCalled   bool
}

func (m *MockMediaRepo) GetByID(ctx context.Context, id db.UUID) (*model.Media, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.MediaRecord, nil
}

func (m *MockMediaRepo) Update(ctx context.Context, media *model.Media) error {
	m.Updated = media
	m.UpdateCount++
	return m.UpdateErr
}

func (m *MockMediaRepo) Create(ctx context.Context, media *model.Media) error {
	m.Created = media
	return m.CreateErr
}

func (m *MockMediaRepo) Delete(ctx context.Context, id db.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}

func (m *MockMediaRepo) ListUnprocessedCreatedBefore(ctx context.Context, before time.Time) ([]db.UUID, error) {
	m.ListCalled = true
	m.ListBefore = before
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}
