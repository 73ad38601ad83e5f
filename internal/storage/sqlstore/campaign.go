package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"campaign_syncer/internal/domain"
)

type CampaignStore struct {
	db *sqlx.DB
}

func NewCampaignStore(db *sqlx.DB) *CampaignStore {
	return &CampaignStore{db: db}
}

func (s *CampaignStore) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	query := s.db.Rebind(`
		SELECT id, advertiser_id, name, status, comments,
			start_date, start_time, end_date, end_time,
			countries, states, demographic_market_areas, cities, zip_codes,
			include_inventory_urls, exclude_inventory_urls, inventory_targeting_type,
			app_nexus_include_domain_list_id, app_nexus_exclude_domain_list_id,
			last_synced_with_app_nexus
		FROM campaigns
		WHERE id = ?`)

	var campaign domain.Campaign
	err := sqlx.GetContext(ctx, s.db, &campaign, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// MarkSynced stamps the campaign as synced. Domain list ids are written only
// when non-nil, so an update never clears a previously captured id.
func (s *CampaignStore) MarkSynced(ctx context.Context, id int64, includeListID, excludeListID *int64, at time.Time) error {
	query := s.db.Rebind(`
		UPDATE campaigns SET
			app_nexus_include_domain_list_id = COALESCE(?, app_nexus_include_domain_list_id),
			app_nexus_exclude_domain_list_id = COALESCE(?, app_nexus_exclude_domain_list_id),
			last_synced_with_app_nexus = ?
		WHERE id = ?`)

	_, err := s.db.ExecContext(ctx, query, includeListID, excludeListID, at, id)
	return err
}
