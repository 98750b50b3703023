package mock

import (
	"context"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

// MockMediaRegisterer implements port.MediaRegisterer for tests.
type MockMediaRegisterer struct {
	Out    port.RegisterMediaOutput
	Err    error
	Called bool
	In     port.RegisterMediaInput
}

func (m *MockMediaRegisterer) RegisterMedia(ctx context.Context, in port.RegisterMediaInput) (port.RegisterMediaOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockMediaGetter implements port.MediaGetter for tests.
type MockMediaGetter struct {
	Out    *port.GetMediaOutput
	Err    error
	Called bool
}

func (m *MockMediaGetter) GetMedia(ctx context.Context, id db.UUID) (*port.GetMediaOutput, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockMediaDeleter implements port.MediaDeleter for tests.
type MockMediaDeleter struct {
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockMediaDeleter) DeleteMedia(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// MockMediaConverter implements port.MediaConverter for tests.
type MockMediaConverter struct {
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockMediaConverter) ConvertMedia(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// MockMediaTranscriber implements port.MediaTranscriber for tests.
type MockMediaTranscriber struct {
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockMediaTranscriber) TranscribeMedia(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// MockSummaryGenerator implements port.SummaryGenerator for tests.
type MockSummaryGenerator struct {
	Err    error
	Called bool
	In     port.GenerateSummaryInput
}

func (m *MockSummaryGenerator) GenerateSummary(ctx context.Context, in port.GenerateSummaryInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockSubtitleGenerator implements port.SubtitleGenerator for tests.
type MockSubtitleGenerator struct {
	Err    error
	Called bool
	In     port.GenerateSubtitleInput
}

func (m *MockSubtitleGenerator) GenerateSubtitle(ctx context.Context, in port.GenerateSubtitleInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockMediaProcessor implements port.MediaProcessor for tests.
type MockMediaProcessor struct {
	Err    error
	Called bool
	ID     db.UUID
}

func (m *MockMediaProcessor) ProcessMedia(ctx context.Context, id db.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}
