package db

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"topiclens/internal/models"
)

// CreateExtraction stores a completed extraction in the history table.
func (d *DB) CreateExtraction(ctx context.Context, e *models.Extraction) error {
	topics, err := json.Marshal(e.Topics)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO extractions (session_id, user_id, input_text, topics, topic_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return d.Pool.QueryRow(ctx, query,
		e.SessionID,
		e.UserID,
		e.InputText,
		topics,
		len(e.Topics),
	).Scan(&e.ID, &e.CreatedAt)
}

// GetExtractionByID retrieves a single extraction.
func (d *DB) GetExtractionByID(ctx context.Context, id uuid.UUID) (*models.Extraction, error) {
	query := `
		SELECT id, session_id, user_id, input_text, topics, topic_count, created_at
		FROM extractions WHERE id = $1
	`

	row := d.Pool.QueryRow(ctx, query, id)
	e, err := scanExtraction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExtractionNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// GetRecentExtractionsForUser returns the newest extractions for a user.
func (d *DB) GetRecentExtractionsForUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Extraction, error) {
	query := `
		SELECT id, session_id, user_id, input_text, topics, topic_count, created_at
		FROM extractions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return d.queryExtractions(ctx, query, userID, limit)
}

// GetRecentExtractionsForSession returns the newest extractions for an
// anonymous browser session.
func (d *DB) GetRecentExtractionsForSession(ctx context.Context, sessionID string, limit int) ([]models.Extraction, error) {
	query := `
		SELECT id, session_id, user_id, input_text, topics, topic_count, created_at
		FROM extractions
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return d.queryExtractions(ctx, query, sessionID, limit)
}

func (d *DB) queryExtractions(ctx context.Context, query string, args ...any) ([]models.Extraction, error) {
	rows, err := d.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []models.Extraction
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, *e)
	}
	return extractions, rows.Err()
}

func scanExtraction(row pgx.Row) (*models.Extraction, error) {
	var e models.Extraction
	var topics []byte
	if err := row.Scan(&e.ID, &e.SessionID, &e.UserID, &e.InputText, &topics, &e.TopicCount, &e.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(topics, &e.Topics); err != nil {
		return nil, err
	}
	return &e, nil
}
