package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StageStatus tracks one pipeline stage (processing or transcription) on a
// media record.
type StageStatus string

const (
	StatusNotStarted StageStatus = "not_started"
	StatusInProgress StageStatus = "in_progress"
	StatusCompleted  StageStatus = "completed"
	StatusFailed     StageStatus = "failed"
)

// legalTransitions lists the states each status may move to. Completed and
// failed stages may re-enter in_progress on retry.
var legalTransitions = map[StageStatus][]StageStatus{
	StatusNotStarted: {StatusInProgress},
	StatusInProgress: {StatusCompleted, StatusFailed},
	StatusCompleted:  {StatusInProgress},
	StatusFailed:     {StatusInProgress},
}

// CanTransitionTo reports whether moving from s to next is a legal stage
// transition.
func (s StageStatus) CanTransitionTo(next StageStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s StageStatus) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// RawTranscript holds the opaque JSON payload returned by the ASR service.
type RawTranscript json.RawMessage

func (t RawTranscript) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	return []byte(t), nil
}

func (t *RawTranscript) Scan(src interface{}) error {
	if src == nil {
		*t = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("RawTranscript.Scan: expected []byte, got %T", src)
	}
	*t = append(RawTranscript(nil), data...)
	return nil
}

func (t RawTranscript) MarshalJSON() ([]byte, error) {
	if len(t) == 0 {
		return []byte("null"), nil
	}
	return []byte(t), nil
}

func (t *RawTranscript) UnmarshalJSON(data []byte) error {
	*t = append(RawTranscript(nil), data...)
	return nil
}

// RawResponse holds the opaque JSON body returned by an LLM provider.
type RawResponse json.RawMessage

func (r RawResponse) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}
	return []byte(r), nil
}

func (r *RawResponse) Scan(src interface{}) error {
	if src == nil {
		*r = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("RawResponse.Scan: expected []byte, got %T", src)
	}
	*r = append(RawResponse(nil), data...)
	return nil
}

func (r RawResponse) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return []byte(r), nil
}

func (r *RawResponse) UnmarshalJSON(data []byte) error {
	*r = append(RawResponse(nil), data...)
	return nil
}
