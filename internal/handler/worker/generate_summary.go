package worker

import (
	"context"
	"log"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
	"github.com/fhuszti/transcripts-ms-go/internal/task"
	"github.com/google/uuid"
)

// GenerateSummaryHandler handles a generate-summary task.
// It converts the incoming task payload to the input expected by
// the port.SummaryGenerator service and delegates the call.
func GenerateSummaryHandler(ctx context.Context, p task.GenerateSummaryPayload, svc port.SummaryGenerator) error {
	id, err := uuid.Parse(p.MediaID)
	if err != nil {
		log.Printf("❌  Invalid media ID %q: %v", p.MediaID, err)
		return err
	}

	in := port.GenerateSummaryInput{
		ID:          db.UUID(id),
		SummaryType: port.SummaryType(p.SummaryType),
		Provider:    p.Provider,
		Model:       p.Model,
	}
	if err := svc.GenerateSummary(ctx, in); err != nil {
		log.Printf("❌  Failed to generate summary for media #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully generated summary for media #%s", id)
	return nil
}
