package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"campaign_syncer/internal/domain"
)

const userColumns = `users.id, users.company_name, users.email, users.phone_number,
	users.address, users.city, users.state_or_province, users.country, users.zip_postal_code,
	users.app_nexus_advertiser_id, users.last_synced_with_app_nexus`

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Get(ctx context.Context, id int64) (*domain.User, error) {
	query := s.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE users.id = ?`)

	return s.getOne(ctx, query, id)
}

// GetByAdvertiser returns the user owning a local advertiser.
func (s *UserStore) GetByAdvertiser(ctx context.Context, advertiserID int64) (*domain.User, error) {
	query := s.db.Rebind(`
		SELECT ` + userColumns + `
		FROM users
		JOIN advertisers ON advertisers.user_id = users.id
		WHERE advertisers.id = ?`)

	return s.getOne(ctx, query, advertiserID)
}

func (s *UserStore) getOne(ctx context.Context, query string, arg int64) (*domain.User, error) {
	var user domain.User
	err := sqlx.GetContext(ctx, s.db, &user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// MarkSynced stamps the user as synced, storing advertiserID when non-nil.
func (s *UserStore) MarkSynced(ctx context.Context, id int64, advertiserID *int64, at time.Time) error {
	query := s.db.Rebind(`
		UPDATE users SET
			app_nexus_advertiser_id = COALESCE(?, app_nexus_advertiser_id),
			last_synced_with_app_nexus = ?
		WHERE id = ?`)

	_, err := s.db.ExecContext(ctx, query, advertiserID, at, id)
	return err
}

// ClearAdvertiser forgets the user's AppNexus advertiser.
func (s *UserStore) ClearAdvertiser(ctx context.Context, id int64, at time.Time) error {
	query := s.db.Rebind(`
		UPDATE users SET
			app_nexus_advertiser_id = NULL,
			last_synced_with_app_nexus = ?
		WHERE id = ?`)

	_, err := s.db.ExecContext(ctx, query, at, id)
	return err
}
