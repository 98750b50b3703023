package mock

import (
	"context"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
)

// MockSnapshotRepo implements snapshot persistence for tests.
type MockSnapshotRepo struct {
	Snapshots []model.SummarySnapshot

	CreateErr error
	ListErr   error
	ListOut   []model.SummarySnapshot

	CreateCalled bool
	ListCalled   bool
}

func (m *MockSnapshotRepo) Create(ctx context.Context, snapshot *model.SummarySnapshot) error {
	m.CreateCalled = true
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Snapshots = append(m.Snapshots, *snapshot)
	return nil
}

func (m *MockSnapshotRepo) ListByMediaID(ctx context.Context, mediaID db.UUID) ([]model.SummarySnapshot, error) {
	m.ListCalled = true
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.ListOut != nil {
		return m.ListOut, nil
	}
	return m.Snapshots, nil
}
