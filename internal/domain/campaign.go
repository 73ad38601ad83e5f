package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

const (
	CampaignStatusActive   = "active"
	CampaignStatusInactive = "inactive"
)

type Campaign struct {
	ID                     int64      `db:"id"`
	AdvertiserID           int64      `db:"advertiser_id"`
	Name                   string     `db:"name"`
	Status                 string     `db:"status"`
	Comments               *string    `db:"comments"`
	StartDate              *string    `db:"start_date"`
	StartTime              *string    `db:"start_time"`
	EndDate                *string    `db:"end_date"`
	EndTime                *string    `db:"end_time"`
	Countries              *string    `db:"countries"`
	States                 *string    `db:"states"`
	DemographicMarketAreas *string    `db:"demographic_market_areas"`
	Cities                 *string    `db:"cities"`
	ZipCodes               *string    `db:"zip_codes"`
	IncludeInventoryURLs   *string    `db:"include_inventory_urls"`
	ExcludeInventoryURLs   *string    `db:"exclude_inventory_urls"`
	InventoryTargetingType string     `db:"inventory_targeting_type"` // cpm or cpc
	IncludeDomainListID    *int64     `db:"app_nexus_include_domain_list_id"`
	ExcludeDomainListID    *int64     `db:"app_nexus_exclude_domain_list_id"`
	LastSyncedAt           *time.Time `db:"last_synced_with_app_nexus"`
}

// StartAt composes StartDate and StartTime. Nil when the date is unset.
func (c *Campaign) StartAt() *time.Time {
	return composeTimestamp(c.StartDate, c.StartTime)
}

// EndAt composes EndDate and EndTime. Nil when the date is unset.
func (c *Campaign) EndAt() *time.Time {
	return composeTimestamp(c.EndDate, c.EndTime)
}

func composeTimestamp(date, clock *string) *time.Time {
	if date == nil {
		return nil
	}
	d := strings.TrimSpace(*date)
	if len(d) > 10 {
		d = d[:10]
	}
	if d == "" || d == "0000-00-00" {
		return nil
	}

	c := "00:00:00"
	if clock != nil && strings.TrimSpace(*clock) != "" {
		c = strings.TrimSpace(*clock)
	}

	t, err := time.Parse("2006-01-02 15:04:05", d+" "+c)
	if err != nil {
		t, err = time.Parse("2006-01-02", d)
		if err != nil {
			return nil
		}
	}
	return &t
}

type Inventory struct {
	ID                int64           `db:"id"`
	CampaignID        int64           `db:"campaign_id"`
	Type              string          `db:"type"`
	Cost              decimal.Decimal `db:"cost"`
	CPM               decimal.Decimal `db:"cpm"`
	DailyBudget       decimal.Decimal `db:"daily_budget"`
	DailyPace         bool            `db:"daily_pace"`
	Filter            string          `db:"filter"` // include or exclude
	Categories        *string         `db:"categories"`
	Segments          *string         `db:"segments"`
	GoalType          *string         `db:"goal_type"`
	ConversionPixelID *int64          `db:"conversion_pixel_id"`
	PostClickGoal     decimal.Decimal `db:"post_click_goal"`
	PostViewGoal      decimal.Decimal `db:"post_view_goal"`
	CPCGoal           decimal.Decimal `db:"cpc_goal"`
	CTRGoal           decimal.Decimal `db:"ctr_goal"`
	ProfileID         *int64          `db:"app_nexus_profile_id"`
	LineItemID        *int64          `db:"app_nexus_line_item_id"`
	RemoteCampaignID  *int64          `db:"app_nexus_campaign_id"`
	LastSyncedAt      *time.Time      `db:"last_synced_with_app_nexus"`
}

// RemoteIDs are the AppNexus ids captured for an inventory line. Nil ids
// leave the stored value unchanged.
type RemoteIDs struct {
	ProfileID        *int64
	LineItemID       *int64
	RemoteCampaignID *int64
}

const (
	InventoryTypeDisplay         = "display"
	InventoryTypeDomainInclusion = "domain_inclusion"
	InventoryTypeRetargeting     = "retargeting"
	InventoryTypeMobile          = "mobile"
	InventoryTypeFacebook        = "facebook"
)

// Paid reports whether the inventory line carries a positive cost.
func (i *Inventory) Paid() bool {
	return i.Cost.IsPositive()
}

const StateEnabled = "enabled"

type Frequency struct {
	ID                       int64  `db:"id"`
	CampaignID               int64  `db:"campaign_id"`
	ApplyState               string `db:"apply_state"`
	LifetimeState            string `db:"lifetime_state"`
	LifetimeImpressions      int    `db:"lifetime_impressions"`
	PerUserState             string `db:"per_user_state"`
	PerUserPerDayImpressions int    `db:"per_user_per_day_impressions"`
	PerUserPerTimeState      string `db:"per_user_per_time_state"`
	PerUserPerTimeAmount     int    `db:"per_user_per_time_amount"`
	PerUserPerTimeType       string `db:"per_user_per_time_type"` // minutes, hours or days
}

type User struct {
	ID              int64      `db:"id"`
	CompanyName     string     `db:"company_name"`
	Email           string     `db:"email"`
	PhoneNumber     string     `db:"phone_number"`
	Address         string     `db:"address"`
	City            string     `db:"city"`
	StateOrProvince string     `db:"state_or_province"`
	Country         string     `db:"country"`
	ZipPostalCode   string     `db:"zip_postal_code"`
	AdvertiserID    *int64     `db:"app_nexus_advertiser_id"`
	LastSyncedAt    *time.Time `db:"last_synced_with_app_nexus"`
}

// HasRemoteAdvertiser reports whether the user already exists on AppNexus.
func (u *User) HasRemoteAdvertiser() bool {
	return u != nil && u.AdvertiserID != nil && *u.AdvertiserID != 0
}
