package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"campaign_syncer/internal/domain"
)

type FrequencyStore struct {
	db *sqlx.DB
}

func NewFrequencyStore(db *sqlx.DB) *FrequencyStore {
	return &FrequencyStore{db: db}
}

// GetByCampaign returns the campaign's frequency settings, or nil when the
// campaign has none.
func (s *FrequencyStore) GetByCampaign(ctx context.Context, campaignID int64) (*domain.Frequency, error) {
	query := s.db.Rebind(`
		SELECT id, campaign_id, apply_state, lifetime_state, lifetime_impressions,
			per_user_state, per_user_per_day_impressions,
			per_user_per_time_state, per_user_per_time_amount, per_user_per_time_type
		FROM frequencies
		WHERE campaign_id = ?
		ORDER BY id
		LIMIT 1`)

	var freq domain.Frequency
	err := sqlx.GetContext(ctx, s.db, &freq, query, campaignID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &freq, nil
}
