package sqlstore

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"campaign_syncer/internal/domain"
)

type InventoryStore struct {
	db *sqlx.DB
}

func NewInventoryStore(db *sqlx.DB) *InventoryStore {
	return &InventoryStore{db: db}
}

func (s *InventoryStore) ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Inventory, error) {
	query := s.db.Rebind(`
		SELECT id, campaign_id, type, cost, cpm, daily_budget, daily_pace, filter,
			categories, segments, goal_type, conversion_pixel_id,
			post_click_goal, post_view_goal, cpc_goal, ctr_goal,
			app_nexus_profile_id, app_nexus_line_item_id, app_nexus_campaign_id,
			last_synced_with_app_nexus
		FROM inventories
		WHERE campaign_id = ?
		ORDER BY id`)

	var inventories []domain.Inventory
	if err := sqlx.SelectContext(ctx, s.db, &inventories, query, campaignID); err != nil {
		return nil, err
	}
	return inventories, nil
}

// MarkSynced stamps the inventory line as synced and stores the non-nil
// remote ids.
func (s *InventoryStore) MarkSynced(ctx context.Context, id int64, ids domain.RemoteIDs, at time.Time) error {
	query := s.db.Rebind(`
		UPDATE inventories SET
			app_nexus_profile_id = COALESCE(?, app_nexus_profile_id),
			app_nexus_line_item_id = COALESCE(?, app_nexus_line_item_id),
			app_nexus_campaign_id = COALESCE(?, app_nexus_campaign_id),
			last_synced_with_app_nexus = ?
		WHERE id = ?`)

	_, err := s.db.ExecContext(ctx, query, ids.ProfileID, ids.LineItemID, ids.RemoteCampaignID, at, id)
	return err
}
