package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	TypeProcessMedia    = "media:process"
	TypeGenerateSummary = "media:generate_summary"
)

type ProcessMediaPayload struct {
	MediaID string `json:"media_id"`
}

type GenerateSummaryPayload struct {
	MediaID     string `json:"media_id"`
	SummaryType string `json:"summary_type"`
	Provider    string `json:"provider"`
	Model       string `json:"model"`
}

// NewProcessMediaTask creates an Asynq task running the full pipeline for a
// media by ID.
func NewProcessMediaTask(mediaID string) (*asynq.Task, error) {
	p := ProcessMediaPayload{MediaID: mediaID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal process-media payload: %w", err)
	}
	return asynq.NewTask(TypeProcessMedia, data), nil
}

// ParseProcessMediaPayload parses the task payload to ProcessMediaPayload.
func ParseProcessMediaPayload(t *asynq.Task) (ProcessMediaPayload, error) {
	var p ProcessMediaPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return ProcessMediaPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}

// NewGenerateSummaryTask creates an Asynq task summarising a media by ID.
func NewGenerateSummaryTask(mediaID, summaryType, provider, model string) (*asynq.Task, error) {
	p := GenerateSummaryPayload{
		MediaID:     mediaID,
		SummaryType: summaryType,
		Provider:    provider,
		Model:       model,
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal generate-summary payload: %w", err)
	}
	return asynq.NewTask(TypeGenerateSummary, data), nil
}

// ParseGenerateSummaryPayload parses the task payload to GenerateSummaryPayload.
func ParseGenerateSummaryPayload(t *asynq.Task) (GenerateSummaryPayload, error) {
	var p GenerateSummaryPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return GenerateSummaryPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
