package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

type SnapshotRepository struct {
	db *sql.DB
}

// compile-time check: *SnapshotRepository must satisfy port.SnapshotRepository
var _ port.SnapshotRepository = (*SnapshotRepository)(nil)

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Create(ctx context.Context, snapshot *model.SummarySnapshot) error {
	log.Printf("archiving summary snapshot #%s for media #%s...", snapshot.ID, snapshot.MediaID)

	const query = `
      INSERT INTO summary_snapshots
        (id, media_id, summary_type, summary, llm_provider, llm_model, raw_response)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		snapshot.ID, snapshot.MediaID,
		snapshot.SummaryType, snapshot.Summary,
		snapshot.LLMProvider, snapshot.LLMModel,
		snapshot.RawResponse,
	)
	if err != nil {
		return err
	}

	return nil
}

// ListByMediaID returns the snapshots of a media record, newest first.
func (r *SnapshotRepository) ListByMediaID(ctx context.Context, mediaID db.UUID) ([]model.SummarySnapshot, error) {
	log.Printf("listing summary snapshots for media #%s...", mediaID)

	const query = `
      SELECT id, media_id, summary_type, summary, llm_provider, llm_model, raw_response, created_at
      FROM summary_snapshots
      WHERE media_id = ?
      ORDER BY created_at DESC
    `
	rows, err := r.db.QueryContext(ctx, query, mediaID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snapshots []model.SummarySnapshot
	for rows.Next() {
		var s model.SummarySnapshot
		if err := rows.Scan(
			&s.ID, &s.MediaID,
			&s.SummaryType, &s.Summary,
			&s.LLMProvider, &s.LLMModel,
			&s.RawResponse,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
