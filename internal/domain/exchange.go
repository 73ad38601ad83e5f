package domain

// Payloads sent to the AppNexus API. Field names follow the AppNexus schema.

type IDTarget struct {
	ID int64 `json:"id"`
}

type DMATarget struct {
	DMA int64 `json:"dma"`
}

type ZipTarget struct {
	FromZip string `json:"from_zip"`
	ToZip   string `json:"to_zip"`
}

type ActionTarget struct {
	ID     int64  `json:"id"`
	Action string `json:"action"`
}

type ContentCategoryTargets struct {
	AllowUnknown      bool           `json:"allow_unknown"`
	ContentCategories []ActionTarget `json:"content_categories"`
}

// Profile is the targeting document attached to an inventory line. Optional
// fields stay nil until a builder step sets them.
type Profile struct {
	Trust                        string     `json:"trust,omitempty"`
	CertifiedSupply              *bool      `json:"certified_supply,omitempty"`
	AllowUnaudited               *bool      `json:"allow_unaudited,omitempty"`
	IntendedAudienceTargets      []string   `json:"intended_audience_targets,omitempty"`
	UseInventoryAttributeTargets *bool      `json:"use_inventory_attribute_targets,omitempty"`
	InventoryAttributeTargets    []IDTarget `json:"inventory_attribute_targets,omitempty"`

	MaxLifetimeImps  *int `json:"max_lifetime_imps,omitempty"`
	MaxDayImps       *int `json:"max_day_imps,omitempty"`
	MinMinutesPerImp *int `json:"min_minutes_per_imp,omitempty"`

	CountryAction  string      `json:"country_action,omitempty"`
	CountryTargets []IDTarget  `json:"country_targets,omitempty"`
	RegionAction   string      `json:"region_action,omitempty"`
	RegionTargets  []IDTarget  `json:"region_targets,omitempty"`
	DMAAction      string      `json:"dma_action,omitempty"`
	DMATargets     []DMATarget `json:"dma_targets,omitempty"`
	CityAction     string      `json:"city_action,omitempty"`
	CityTargets    []IDTarget  `json:"city_targets,omitempty"`
	ZipTargets     []ZipTarget `json:"zip_targets,omitempty"`

	ContentCategoryTargets *ContentCategoryTargets `json:"content_category_targets,omitempty"`

	SegmentBooleanOperator string         `json:"segment_boolean_operator,omitempty"`
	SegmentTargets         []ActionTarget `json:"segment_targets,omitempty"`
}

type GoalPixel struct {
	ID                  int64   `json:"id"`
	State               string  `json:"state"`
	PostClickGoalTarget float64 `json:"post_click_goal_target"`
	PostViewGoalTarget  float64 `json:"post_view_goal_target"`
}

type Valuation struct {
	GoalTarget float64 `json:"goal_target"`
}

// LineItem is the AppNexus line item built for a paid inventory line. Pacing
// and goal fields are always serialized so that cleared values reach the
// remote side as nulls.
type LineItem struct {
	Name             string   `json:"name"`
	State            string   `json:"state"`
	StartDate        *string  `json:"start_date"`
	EndDate          *string  `json:"end_date"`
	Comments         *string  `json:"comments,omitempty"`
	ManageCreative   bool     `json:"manage_creative"`
	PerformanceOffer bool     `json:"performance_offer"`
	RevenueType      string   `json:"revenue_type,omitempty"`
	RevenueValue     *float64 `json:"revenue_value,omitempty"`
	ProfileID        *int64   `json:"profile_id,omitempty"`

	LifetimeBudget       *float64 `json:"lifetime_budget"`
	DailyBudget          *float64 `json:"daily_budget"`
	EnablePacing         bool     `json:"enable_pacing"`
	LifetimePacing       bool     `json:"lifetime_pacing"`
	LifetimePacingByDate bool     `json:"lifetime_pacing_by_date"`

	GoalType   *string     `json:"goal_type"`
	GoalPixels []GoalPixel `json:"goal_pixels"`
	Valuation  *Valuation  `json:"valuation"`
}

// RemoteCampaign is the AppNexus campaign entity bound to one inventory line.
type RemoteCampaign struct {
	Name          string  `json:"name"`
	State         string  `json:"state"`
	InventoryType string  `json:"inventory_type"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	LineItemID    *int64  `json:"line_item_id,omitempty"`
	ProfileID     *int64  `json:"profile_id,omitempty"`
}

type DomainList struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"` // white or black
	Domains     []string `json:"domains"`
}

type AdvertiserData struct {
	Name            string `json:"name"`
	BillingName     string `json:"billing_name"`
	BillingPhone    string `json:"billing_phone"`
	BillingAddress1 string `json:"billing_address1"`
	BillingCity     string `json:"billing_city"`
	BillingState    string `json:"billing_state"`
	BillingCountry  string `json:"billing_country"`
	BillingZip      string `json:"billing_zip"`
}

// StateUpdate changes only the state of a line item or campaign.
type StateUpdate struct {
	State string `json:"state"`
}
