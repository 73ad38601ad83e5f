package profile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign_syncer/internal/domain"
)

func TestBuildPacing_NilInventory(t *testing.T) {
	assert.Nil(t, BuildPacing(nil, &domain.LineItem{}, nil))
}

func TestBuildPacing_ZeroCostDisablesEverything(t *testing.T) {
	li := &domain.LineItem{LifetimeBudget: ptr(10.0), EnablePacing: true, LifetimePacing: true}

	li = BuildPacing(&domain.Inventory{Cost: decimal.Zero}, li, nil)

	assert.Nil(t, li.LifetimeBudget)
	assert.Nil(t, li.DailyBudget)
	assert.False(t, li.EnablePacing)
	assert.False(t, li.LifetimePacing)
	assert.False(t, li.LifetimePacingByDate)
}

func TestBuildPacing_DailyBudget(t *testing.T) {
	inv := &domain.Inventory{
		Cost:        decimal.NewFromInt(500),
		DailyBudget: decimal.NewFromInt(50),
		DailyPace:   true,
	}

	li := BuildPacing(inv, nil, nil)

	assert.Equal(t, 500.0, *li.LifetimeBudget)
	assert.Equal(t, 50.0, *li.DailyBudget)
	assert.True(t, li.EnablePacing)
	assert.False(t, li.LifetimePacing)

	inv.DailyPace = false
	li = BuildPacing(inv, nil, nil)
	assert.False(t, li.EnablePacing)
}

func TestBuildPacing_LifetimePacing(t *testing.T) {
	inv := &domain.Inventory{Cost: decimal.RequireFromString("99.5")}

	li := BuildPacing(inv, nil, nil)
	assert.Equal(t, 99.5, *li.LifetimeBudget)
	assert.Nil(t, li.DailyBudget)
	assert.True(t, li.LifetimePacing)
	assert.False(t, li.LifetimePacingByDate)

	end := time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)
	li = BuildPacing(inv, nil, &end)
	assert.True(t, li.LifetimePacingByDate)
}

func TestBuildPerformanceGoals_CPA(t *testing.T) {
	inv := &domain.Inventory{PostClickGoal: decimal.NewFromInt(4), PostViewGoal: decimal.NewFromInt(2)}
	li := &domain.LineItem{Valuation: &domain.Valuation{GoalTarget: 1}}

	li, err := BuildPerformanceGoals(inv, li, GoalCPA, ptr(int64(77)))

	require.NoError(t, err)
	assert.Equal(t, GoalCPA, *li.GoalType)
	assert.Equal(t, []domain.GoalPixel{{ID: 77, State: "active", PostClickGoalTarget: 4, PostViewGoalTarget: 2}}, li.GoalPixels)
	assert.Nil(t, li.Valuation)
}

func TestBuildPerformanceGoals_CPAWithoutPixel(t *testing.T) {
	_, err := BuildPerformanceGoals(&domain.Inventory{}, nil, GoalCPA, nil)

	assert.ErrorIs(t, err, ErrUnresolvedConversionPixel)
}

func TestBuildPerformanceGoals_CPC(t *testing.T) {
	li := &domain.LineItem{GoalPixels: []domain.GoalPixel{{ID: 1}}}

	li, err := BuildPerformanceGoals(&domain.Inventory{CPCGoal: decimal.RequireFromString("1.25")}, li, GoalCPC, nil)

	require.NoError(t, err)
	assert.Equal(t, GoalCPC, *li.GoalType)
	assert.Nil(t, li.GoalPixels)
	assert.Equal(t, 1.25, li.Valuation.GoalTarget)
}

func TestBuildPerformanceGoals_CTR(t *testing.T) {
	li, err := BuildPerformanceGoals(&domain.Inventory{CTRGoal: decimal.NewFromInt(5)}, nil, GoalCTR, nil)

	require.NoError(t, err)
	assert.Equal(t, GoalCTR, *li.GoalType)
	assert.Equal(t, 0.05, li.Valuation.GoalTarget)
}

func TestBuildPerformanceGoals_CTRZeroKeepsPriorState(t *testing.T) {
	prior := &domain.LineItem{GoalType: ptr(GoalCPC), Valuation: &domain.Valuation{GoalTarget: 2}}

	li, err := BuildPerformanceGoals(&domain.Inventory{CTRGoal: decimal.Zero}, prior, GoalCTR, nil)

	require.NoError(t, err)
	assert.Equal(t, GoalCPC, *li.GoalType)
	assert.Equal(t, 2.0, li.Valuation.GoalTarget)
}

func TestBuildPerformanceGoals_DefaultClears(t *testing.T) {
	prior := &domain.LineItem{
		GoalType:   ptr(GoalCPA),
		GoalPixels: []domain.GoalPixel{{ID: 1}},
		Valuation:  &domain.Valuation{GoalTarget: 2},
	}

	li, err := BuildPerformanceGoals(&domain.Inventory{}, prior, GoalDefault, nil)

	require.NoError(t, err)
	assert.Nil(t, li.GoalType)
	assert.Nil(t, li.GoalPixels)
	assert.Nil(t, li.Valuation)
}

func TestNewLineItem(t *testing.T) {
	campaign := &domain.Campaign{
		Name:                   "Spring",
		Status:                 domain.CampaignStatusActive,
		StartDate:              strPtr("2026-03-01"),
		StartTime:              strPtr("08:30:00"),
		EndDate:                strPtr("0000-00-00"),
		InventoryTargetingType: "cpc",
	}
	inv := &domain.Inventory{Type: domain.InventoryTypeDisplay, CPM: decimal.RequireFromString("2.5"), ProfileID: ptr(int64(9))}

	li := NewLineItem(inv, campaign)

	assert.Equal(t, "Spring + categories", li.Name)
	assert.Equal(t, "active", li.State)
	assert.Equal(t, "2026-03-01 08:30:00", *li.StartDate)
	assert.Nil(t, li.EndDate)
	assert.True(t, li.PerformanceOffer)
	assert.True(t, li.ManageCreative)
	assert.Equal(t, "cpc", li.RevenueType)
	assert.Equal(t, 2.5, *li.RevenueValue)
	assert.Equal(t, int64(9), *li.ProfileID)
}

func TestGoalTypeOf(t *testing.T) {
	assert.Equal(t, GoalDefault, GoalTypeOf(&domain.Inventory{}))
	assert.Equal(t, GoalCPC, GoalTypeOf(&domain.Inventory{GoalType: strPtr("cpc")}))
}
