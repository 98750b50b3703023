package worker

import (
	"context"
	"log"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
	"github.com/fhuszti/transcripts-ms-go/internal/task"
	"github.com/google/uuid"
)

// ProcessMediaHandler handles a process-media task.
// It converts the incoming task payload to the input expected by
// the port.MediaProcessor service and delegates the call.
func ProcessMediaHandler(ctx context.Context, p task.ProcessMediaPayload, svc port.MediaProcessor) error {
	id, err := uuid.Parse(p.MediaID)
	if err != nil {
		log.Printf("❌  Invalid media ID %q: %v", p.MediaID, err)
		return err
	}

	if err := svc.ProcessMedia(ctx, db.UUID(id)); err != nil {
		log.Printf("❌  Failed to process media #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully processed media #%s", id)
	return nil
}
