package mock

import (
	"context"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	ProcessCalled bool
	ProcessIDs    []db.UUID
	ProcessErr    error

	SummaryCalled bool
	SummaryIDs    []db.UUID
	SummaryTypes  []port.SummaryType
	SummaryErr    error
}

func (m *MockDispatcher) EnqueueProcessMedia(ctx context.Context, id db.UUID) error {
	m.ProcessCalled = true
	m.ProcessIDs = append(m.ProcessIDs, id)
	return m.ProcessErr
}

func (m *MockDispatcher) EnqueueGenerateSummary(ctx context.Context, id db.UUID, summaryType port.SummaryType, provider, model string) error {
	m.SummaryCalled = true
	m.SummaryIDs = append(m.SummaryIDs, id)
	m.SummaryTypes = append(m.SummaryTypes, summaryType)
	return m.SummaryErr
}
