package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"campaign_syncer/internal/domain"
)

// JobLogStore writes the queues_jobs_log audit table.
type JobLogStore struct {
	db *sqlx.DB
}

func NewJobLogStore(db *sqlx.DB) *JobLogStore {
	return &JobLogStore{db: db}
}

func (s *JobLogStore) Create(ctx context.Context, entry *domain.JobLogEntry) error {
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = entry.CreatedAt

	query := s.db.Rebind(`
		INSERT INTO queues_jobs_log (uuid, type, action, payload, status, code, message, queue, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := s.db.ExecContext(ctx, query,
		entry.UUID,
		entry.Type,
		entry.Action,
		entry.Payload,
		entry.Status,
		entry.Code,
		entry.Message,
		entry.Queue,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	return err
}

// Update sets the outcome of every row carrying uuid. Updating an unknown
// uuid is not an error.
func (s *JobLogStore) Update(ctx context.Context, uuid, code, message, status string) error {
	query := s.db.Rebind(`
		UPDATE queues_jobs_log SET
			status = ?,
			code = ?,
			message = ?,
			updated_at = ?
		WHERE uuid = ?`)

	_, err := s.db.ExecContext(ctx, query, status, code, message, time.Now().UTC(), uuid)
	return err
}

// Get returns the newest row for uuid.
func (s *JobLogStore) Get(ctx context.Context, uuid string) (*domain.JobLogEntry, error) {
	query := s.db.Rebind(`
		SELECT id, uuid, type, action, payload, status, code, message, queue, created_at, updated_at
		FROM queues_jobs_log
		WHERE uuid = ?
		ORDER BY id DESC
		LIMIT 1`)

	var entry domain.JobLogEntry
	err := sqlx.GetContext(ctx, s.db, &entry, query, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
