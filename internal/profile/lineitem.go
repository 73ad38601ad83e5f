package profile

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"campaign_syncer/internal/domain"
)

var ErrUnresolvedConversionPixel = errors.New("conversion pixel not resolved")

const (
	GoalCPA     = "cpa"
	GoalCPC     = "cpc"
	GoalCTR     = "ctr"
	GoalDefault = "default"
)

// DateLayout is the timestamp format AppNexus expects.
const DateLayout = "2006-01-02 15:04:05"

const revenueTypeCPC = "cpc"

// FormatDate renders t in DateLayout, or nil when t is nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// Name is the remote name of an inventory line.
func Name(inv *domain.Inventory, campaign *domain.Campaign) string {
	label := inv.Type
	switch inv.Type {
	case domain.InventoryTypeDisplay:
		label = "categories"
	case domain.InventoryTypeDomainInclusion:
		label = "domain_targeting"
	}
	return campaign.Name + " + " + label
}

// NewLineItem returns the line item base for a paid inventory line, before
// pacing and goals are applied.
func NewLineItem(inv *domain.Inventory, campaign *domain.Campaign) *domain.LineItem {
	if inv == nil || campaign == nil {
		return nil
	}

	li := &domain.LineItem{
		Name:         Name(inv, campaign),
		State:        campaign.Status,
		StartDate:    FormatDate(campaign.StartAt()),
		EndDate:      FormatDate(campaign.EndAt()),
		Comments:     campaign.Comments,
		RevenueType:  campaign.InventoryTargetingType,
		RevenueValue: ptr(inv.CPM.InexactFloat64()),
		ProfileID:    inv.ProfileID,
	}
	if campaign.InventoryTargetingType == revenueTypeCPC {
		li.PerformanceOffer = true
		li.ManageCreative = true
	}
	return li
}

// BuildPacing sets budget and pacing. Everything stays disabled unless the
// inventory line has a positive cost.
func BuildPacing(inv *domain.Inventory, li *domain.LineItem, endAt *time.Time) *domain.LineItem {
	if inv == nil {
		return nil
	}
	if li == nil {
		li = &domain.LineItem{}
	}

	li.LifetimeBudget = nil
	li.DailyBudget = nil
	li.EnablePacing = false
	li.LifetimePacing = false
	li.LifetimePacingByDate = false

	if !inv.Cost.IsPositive() {
		return li
	}

	li.LifetimeBudget = ptr(inv.Cost.InexactFloat64())
	if inv.DailyBudget.IsPositive() {
		li.DailyBudget = ptr(inv.DailyBudget.InexactFloat64())
		li.EnablePacing = inv.DailyPace
	} else {
		li.LifetimePacing = true
		li.LifetimePacingByDate = endAt != nil
	}

	return li
}

// BuildPerformanceGoals applies the goal selected by goalType. A cpa goal
// needs the AppNexus id of the conversion pixel. A ctr goal that works out to
// zero leaves the goal fields as they were.
func BuildPerformanceGoals(inv *domain.Inventory, li *domain.LineItem, goalType string, pixelID *int64) (*domain.LineItem, error) {
	if inv == nil {
		return nil, nil
	}
	if li == nil {
		li = &domain.LineItem{}
	}

	switch goalType {
	case GoalCPA:
		if pixelID == nil {
			return li, ErrUnresolvedConversionPixel
		}
		li.GoalType = ptr(GoalCPA)
		li.GoalPixels = []domain.GoalPixel{{
			ID:                  *pixelID,
			State:               "active",
			PostClickGoalTarget: inv.PostClickGoal.InexactFloat64(),
			PostViewGoalTarget:  inv.PostViewGoal.InexactFloat64(),
		}}
		li.Valuation = nil
	case GoalCPC:
		li.GoalType = ptr(GoalCPC)
		li.GoalPixels = nil
		li.Valuation = &domain.Valuation{GoalTarget: inv.CPCGoal.InexactFloat64()}
	case GoalCTR:
		target := inv.CTRGoal.Div(decimal.NewFromInt(100))
		if target.IsZero() {
			return li, nil
		}
		li.GoalType = ptr(GoalCTR)
		li.GoalPixels = nil
		li.Valuation = &domain.Valuation{GoalTarget: target.InexactFloat64()}
	default:
		li.GoalType = nil
		li.GoalPixels = nil
		li.Valuation = nil
	}

	return li, nil
}

// GoalTypeOf returns the inventory's goal type, or GoalDefault when unset.
func GoalTypeOf(inv *domain.Inventory) string {
	if inv == nil || inv.GoalType == nil || *inv.GoalType == "" {
		return GoalDefault
	}
	return *inv.GoalType
}

// NewRemoteCampaign returns the AppNexus campaign for a paid inventory line.
func NewRemoteCampaign(inv *domain.Inventory, campaign *domain.Campaign) *domain.RemoteCampaign {
	if inv == nil || campaign == nil {
		return nil
	}
	return &domain.RemoteCampaign{
		Name:          Name(inv, campaign),
		State:         campaign.Status,
		InventoryType: "real_time",
		StartDate:     FormatDate(campaign.StartAt()),
		EndDate:       FormatDate(campaign.EndAt()),
		LineItemID:    inv.LineItemID,
		ProfileID:     inv.ProfileID,
	}
}
