package port

import (
	"context"
	"encoding/json"
)

// Transcriber runs the remote ASR job for one asset: submit, poll until a
// terminal state or the attempt budget runs out, then fetch the transcript
// payload. The asset must be reachable at an absolute http(s) URL.
type Transcriber interface {
	Transcribe(ctx context.Context, assetURL string) (json.RawMessage, error)
}
