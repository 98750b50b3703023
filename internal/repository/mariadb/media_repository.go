package mariadb

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/fhuszti/transcripts-ms-go/internal/db"
	"github.com/fhuszti/transcripts-ms-go/internal/model"
	"github.com/fhuszti/transcripts-ms-go/internal/port"
)

type MediaRepository struct {
	db *sql.DB
}

// compile-time check: *MediaRepository must satisfy port.MediaRepository
var _ port.MediaRepository = (*MediaRepository)(nil)

func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, media *model.Media) error {
	log.Printf("creating database record for media #%s...", media.ID)

	const query = `
      INSERT INTO medias
        (id, title, description, source, subtitle, is_private,
         original_key, processed_key,
         processing_status, processing_date,
         transcription_status, transcription_start_date, transcription_end_date,
         raw_transcript, formatted_transcript,
         summary, summary_type, summary_date, selected_model)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		media.ID, media.Title, media.Description, media.Source,
		media.Subtitle, media.IsPrivate,
		media.OriginalKey, media.ProcessedKey,
		media.ProcessingStatus, media.ProcessingDate,
		media.TranscriptionStatus, media.TranscriptionStartDate, media.TranscriptionEndDate,
		media.RawTranscript, media.FormattedTranscript,
		media.Summary, media.SummaryType, media.SummaryDate, media.SelectedModel,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *MediaRepository) Update(ctx context.Context, media *model.Media) error {
	log.Printf("updating database record for media #%s, processing %q, transcription %q...",
		media.ID, media.ProcessingStatus, media.TranscriptionStatus)

	const query = `
      UPDATE medias
      SET
        title                    = ?,
        description              = ?,
        source                   = ?,
        subtitle                 = ?,
        is_private               = ?,
        original_key             = ?,
        processed_key            = ?,
        processing_status        = ?,
        processing_date          = ?,
        transcription_status     = ?,
        transcription_start_date = ?,
        transcription_end_date   = ?,
        raw_transcript           = ?,
        formatted_transcript     = ?,
        summary                  = ?,
        summary_type             = ?,
        summary_date             = ?,
        selected_model           = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		media.Title,
		media.Description,
		media.Source,
		media.Subtitle,
		media.IsPrivate,
		media.OriginalKey,
		media.ProcessedKey,
		media.ProcessingStatus,
		media.ProcessingDate,
		media.TranscriptionStatus,
		media.TranscriptionStartDate,
		media.TranscriptionEndDate,
		media.RawTranscript,
		media.FormattedTranscript,
		media.Summary,
		media.SummaryType,
		media.SummaryDate,
		media.SelectedModel,
		media.ID, // WHERE clause
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *MediaRepository) GetByID(ctx context.Context, ID db.UUID) (*model.Media, error) {
	log.Printf("fetching media #%s from the database...", ID)

	const query = `
      SELECT id, title, description, source, subtitle, is_private,
             original_key, processed_key,
             processing_status, processing_date,
             transcription_status, transcription_start_date, transcription_end_date,
             raw_transcript, formatted_transcript,
             summary, summary_type, summary_date, selected_model,
             created_at, updated_at
      FROM medias
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, ID)
	var media model.Media
	if err := row.Scan(
		&media.ID, &media.Title, &media.Description, &media.Source,
		&media.Subtitle, &media.IsPrivate,
		&media.OriginalKey, &media.ProcessedKey,
		&media.ProcessingStatus, &media.ProcessingDate,
		&media.TranscriptionStatus, &media.TranscriptionStartDate, &media.TranscriptionEndDate,
		&media.RawTranscript, &media.FormattedTranscript,
		&media.Summary, &media.SummaryType, &media.SummaryDate, &media.SelectedModel,
		&media.CreatedAt, &media.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &media, nil
}

func (r *MediaRepository) Delete(ctx context.Context, ID db.UUID) error {
	log.Printf("deleting media #%s from the database...", ID)

	const query = `DELETE FROM medias WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, ID)
	return err
}

// ListUnprocessedCreatedBefore returns the ids of records whose processing
// never started and that were created before the cutoff.
func (r *MediaRepository) ListUnprocessedCreatedBefore(ctx context.Context, before time.Time) ([]db.UUID, error) {
	log.Printf("listing unprocessed medias created before %s...", before.Format(time.RFC3339))

	const query = `
      SELECT id
      FROM medias
      WHERE processing_status = ?
        AND created_at < ?
      ORDER BY created_at ASC
    `
	rows, err := r.db.QueryContext(ctx, query, model.StatusNotStarted, before)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []db.UUID
	for rows.Next() {
		var id db.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
