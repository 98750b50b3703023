package media

import "errors"

var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)

var (
	// ErrNoAudioFile means the record has no original asset to work on.
	ErrNoAudioFile = errors.New("media has no audio file")
	// ErrNeedsConversion means a stage requiring the processed asset ran
	// before conversion completed.
	ErrNeedsConversion = errors.New("media must be converted first")
	// ErrNoTranscript means summarisation ran before a usable transcript
	// existed.
	ErrNoTranscript = errors.New("media has no formatted transcript")
	// ErrSummaryFailed wraps the provider-reported reason when a
	// summarisation produced nothing persistable.
	ErrSummaryFailed = errors.New("summary generation failed")
)
