package mock

import (
	"context"
	"encoding/json"
)

// Transcriber implements remote transcription for tests.
type Transcriber struct {
	Out json.RawMessage
	Err error

	Called   bool
	AssetURL string
}

func (m *Transcriber) Transcribe(ctx context.Context, assetURL string) (json.RawMessage, error) {
	m.Called = true
	m.AssetURL = assetURL
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Out, nil
}
