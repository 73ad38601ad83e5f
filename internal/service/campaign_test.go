package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"campaign_syncer/internal/appnexus"
	"campaign_syncer/internal/domain"
	"campaign_syncer/testdata/utils"
)

const (
	testCampaignID   = int64(42)
	testAdvertiserID = int64(300)
)

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:                     testCampaignID,
		AdvertiserID:           testAdvertiserID,
		Name:                   "Spring",
		Status:                 domain.CampaignStatusActive,
		InventoryTargetingType: "cpm",
	}
}

func testUser() *domain.User {
	return &domain.User{ID: 7, CompanyName: "Acme", AdvertiserID: utils.Ptr(testAdvertiserID)}
}

func (s *OrchestratorTestSuite) campaignMessage(action string) []byte {
	return s.message(action, map[string]any{"campaignId": testCampaignID})
}

func (s *OrchestratorTestSuite) expectValidCampaign(campaign *domain.Campaign, inventories []domain.Inventory) {
	s.expectRunning()
	s.campaigns.EXPECT().Get(gomock.Any(), campaign.ID).Return(campaign, nil)
	s.users.EXPECT().GetByAdvertiser(gomock.Any(), campaign.AdvertiserID).Return(testUser(), nil)
	s.inventories.EXPECT().ListByCampaign(gomock.Any(), campaign.ID).Return(inventories, nil)
}

func (s *OrchestratorTestSuite) TestCampaignJob_MissingCampaignID() {
	s.expectRunning()
	s.expectFailed(CodeMissingParameter, "Missing campaign ID parameter")

	_, err := s.orchestrator.Handle(context.Background(), s.message(domain.ActionSyncProfile, map[string]any{"userId": 7}))

	s.requireJobError(err, CodeMissingParameter)
}

func (s *OrchestratorTestSuite) TestCampaignJob_CampaignNotFound() {
	s.expectRunning()
	s.campaigns.EXPECT().Get(gomock.Any(), testCampaignID).Return(nil, domain.ErrNotFound)
	s.expectFailed(CodeCampaignNotFound, "Campaign 42 not found")

	_, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncProfile))

	s.requireJobError(err, CodeCampaignNotFound)
}

func (s *OrchestratorTestSuite) TestCampaignJob_InvalidStatusNeverReachesAppNexus() {
	campaign := testCampaign()
	campaign.Status = "pending"

	s.expectValidCampaign(campaign, []domain.Inventory{{ID: 5, Type: domain.InventoryTypeDisplay, Cost: decimal.NewFromInt(50)}})
	s.expectFailed(CodeInvalidCampaignStatusSync, "Invalid Campaign Status: pending")

	resp, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncProfile))

	s.Nil(resp)
	s.requireJobError(err, CodeInvalidCampaignStatusSync)
}

func (s *OrchestratorTestSuite) TestCampaignJob_ValidationStorageError() {
	s.expectRunning()
	s.campaigns.EXPECT().Get(gomock.Any(), testCampaignID).Return(testCampaign(), nil)
	s.users.EXPECT().GetByAdvertiser(gomock.Any(), testAdvertiserID).Return(nil, errors.New("db down"))
	s.expectFailed(CodeStorageError, "validate campaign: get advertiser user: db down")

	_, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncProfile))

	s.requireJobError(err, CodeStorageError)
}

func (s *OrchestratorTestSuite) TestSyncProfile_CreatesDefaultProfile() {
	inv := domain.Inventory{
		ID:         5,
		CampaignID: testCampaignID,
		Type:       domain.InventoryTypeDisplay,
		Cost:       decimal.NewFromInt(50),
		Filter:     "include",
	}

	var sent *domain.Profile
	s.expectValidCampaign(testCampaign(), []domain.Inventory{inv})
	s.frequencies.EXPECT().GetByCampaign(gomock.Any(), testCampaignID).Return(nil, nil)
	s.remote.EXPECT().AddProfile(gomock.Any(), testAdvertiserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, p *domain.Profile) (int64, error) {
			sent = p
			return 900, nil
		},
	)
	s.inventories.EXPECT().MarkSynced(gomock.Any(), int64(5), domain.RemoteIDs{ProfileID: utils.Ptr(int64(900))}, s.now).Return(nil)
	s.expectCompleted("AppNexus campaign profile synced")

	resp, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncProfile))

	s.Require().NoError(err)
	s.Equal(domain.JobStatusComplete, resp.Status)
	s.Equal(CodeJobCompleted, resp.Code)

	s.Require().NotNil(sent)
	s.Equal([]domain.IDTarget{{ID: 233}}, sent.CountryTargets)
	s.Nil(sent.MaxLifetimeImps)
	s.Nil(sent.MaxDayImps)
	s.Nil(sent.MinMinutesPerImp)
	s.Require().NotNil(sent.ContentCategoryTargets)
	s.Empty(sent.ContentCategoryTargets.ContentCategories)

	s.Equal([]domain.InventoryResult{{
		InventoryID: 5,
		Type:        domain.InventoryTypeDisplay,
		Operation:   domain.OperationCreated,
		ProfileID:   utils.Ptr(int64(900)),
	}}, resp.Data)
}

func (s *OrchestratorTestSuite) TestSyncProfile_UpdatesExistingProfile() {
	campaign := testCampaign()
	campaign.Countries = utils.Ptr("1, 2")
	campaign.States = utils.Ptr("5")
	campaign.Cities = utils.Ptr("")
	campaign.ZipCodes = utils.Ptr("10001\n10002")

	inv := domain.Inventory{
		ID:        6,
		Type:      domain.InventoryTypeRetargeting,
		Cost:      decimal.NewFromInt(20),
		Filter:    "exclude",
		Segments:  utils.Ptr("11,12"),
		ProfileID: utils.Ptr(int64(900)),
	}
	freq := &domain.Frequency{
		ApplyState:           domain.StateEnabled,
		LifetimeState:        domain.StateEnabled,
		LifetimeImpressions:  1000,
		PerUserPerTimeState:  domain.StateEnabled,
		PerUserPerTimeAmount: 2,
		PerUserPerTimeType:   "hours",
	}

	var sent *domain.Profile
	s.expectValidCampaign(campaign, []domain.Inventory{inv})
	s.frequencies.EXPECT().GetByCampaign(gomock.Any(), testCampaignID).Return(freq, nil)
	s.lookups.EXPECT().CountryIDs(gomock.Any(), []int64{1, 2}).Return([]int64{840, 124}, nil)
	s.lookups.EXPECT().RegionIDs(gomock.Any(), []int64{5}).Return([]int64{3901}, nil)
	s.lookups.EXPECT().SegmentCodes(gomock.Any(), []int64{11, 12}).Return(map[int64]int64{11: 5011}, nil)
	s.remote.EXPECT().UpdateProfile(gomock.Any(), int64(900), testAdvertiserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ int64, p *domain.Profile) error {
			sent = p
			return nil
		},
	)
	s.inventories.EXPECT().MarkSynced(gomock.Any(), int64(6), domain.RemoteIDs{}, s.now).Return(nil)
	s.expectCompleted("AppNexus campaign profile synced")

	resp, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncProfile))

	s.Require().NoError(err)
	s.Require().NotNil(sent)
	s.Equal(utils.Ptr(1000), sent.MaxLifetimeImps)
	s.Equal(utils.Ptr(120), sent.MinMinutesPerImp)
	s.Nil(sent.MaxDayImps)
	s.Equal([]domain.IDTarget{{ID: 840}, {ID: 124}}, sent.CountryTargets)
	s.Equal("include", sent.RegionAction)
	s.Equal([]domain.IDTarget{{ID: 3901}}, sent.RegionTargets)
	s.Empty(sent.CityTargets)
	s.Equal([]domain.ZipTarget{{FromZip: "10001", ToZip: "10001"}, {FromZip: "10002", ToZip: "10002"}}, sent.ZipTargets)
	s.Equal([]domain.ActionTarget{{ID: 5011, Action: "exclude"}}, sent.SegmentTargets)

	results := resp.Data.([]domain.InventoryResult)
	s.Require().Len(results, 1)
	s.Equal(domain.OperationUpdated, results[0].Operation)
}

func (s *OrchestratorTestSuite) TestSyncProfile_UnsupportedTypeIsNotice() {
	inv := domain.Inventory{ID: 8, Type: domain.InventoryTypeMobile, Cost: decimal.NewFromInt(10)}

	s.expectValidCampaign(testCampaign(), []domain.Inventory{inv})
	s.frequencies.EXPECT().GetByCampaign(gomock.Any(), testCampaignID).Return(nil, nil)
	s.remote.EXPECT().AddProfile(gomock.Any(), testAdvertiserID, gomock.Any()).Return(int64(901), nil)
	s.inventories.EXPECT().MarkSynced(gomock.Any(), int64(8), domain.RemoteIDs{ProfileID: utils.Ptr(int64(901))}, s.now).Return(nil)
	s.expectCompleted("AppNexus campaign profile synced")

	resp, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncProfile))

	s.Require().NoError(err)
	results := resp.Data.([]domain.InventoryResult)
	s.Require().Len(results, 1)
	s.Equal(CodeUnsupportedInventoryType, results[0].Notice)
}

func (s *OrchestratorTestSuite) TestSyncProfile_UnpaidInventoryIsDeactivated() {
	inventories := []domain.Inventory{
		{ID: 5, Type: domain.InventoryTypeDisplay, Cost: decimal.Zero, LineItemID: utils.Ptr(int64(77))},
		{ID: 6, Type: domain.InventoryTypeDisplay, Cost: decimal.NewFromInt(-1)},
	}

	s.expectValidCampaign(testCampaign(), inventories)
	s.frequencies.EXPECT().GetByCampaign(gomock.Any(), testCampaignID).Return(nil, nil)
	s.remote.EXPECT().SetLineItemState(gomock.Any(), int64(77), testAdvertiserID, domain.CampaignStatusInactive).Return(nil)
	s.inventories.EXPECT().MarkSynced(gomock.Any(), int64(5), domain.RemoteIDs{}, s.now).Return(nil)
	s.expectCompleted("AppNexus campaign profile synced")

	resp, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncProfile))

	s.Require().NoError(err)
	results := resp.Data.([]domain.InventoryResult)
	s.Require().Len(results, 1)
	s.Equal(int64(5), results[0].InventoryID)
	s.Equal(domain.OperationDeactivated, results[0].Operation)
}

func (s *OrchestratorTestSuite) TestSyncProfile_UnpaidInventoryOfInactiveCampaignIsSkipped() {
	campaign := testCampaign()
	campaign.Status = domain.CampaignStatusInactive

	s.expectValidCampaign(campaign, []domain.Inventory{
		{ID: 5, Type: domain.InventoryTypeDisplay, Cost: decimal.Zero, LineItemID: utils.Ptr(int64(77))},
	})
	s.frequencies.EXPECT().GetByCampaign(gomock.Any(), testCampaignID).Return(nil, nil)
	s.expectCompleted("AppNexus campaign profile synced")

	resp, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncProfile))

	s.Require().NoError(err)
	s.Empty(resp.Data)
}

func (s *OrchestratorTestSuite) TestSyncProfile_RemoteErrorFailsFast() {
	inventories := []domain.Inventory{
		{ID: 5, Type: domain.InventoryTypeDisplay, Cost: decimal.NewFromInt(50)},
		{ID: 6, Type: domain.InventoryTypeDisplay, Cost: decimal.NewFromInt(50)},
	}

	s.expectValidCampaign(testCampaign(), inventories)
	s.frequencies.EXPECT().GetByCampaign(gomock.Any(), testCampaignID).Return(nil, nil)
	s.remote.EXPECT().AddProfile(gomock.Any(), testAdvertiserID, gomock.Any()).Return(int64(0), &appnexus.Error{
		StatusCode: 400,
		ID:         "SYNTAX",
		Message:    "invalid field",
	})
	s.expectFailed(CodeAppNexusRequestFailed, "invalid field")

	_, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncProfile))

	s.requireJobError(err, CodeAppNexusRequestFailed)
}

func (s *OrchestratorTestSuite) TestSyncProfile_LookupFailure() {
	campaign := testCampaign()
	campaign.Countries = utils.Ptr("1")

	s.expectValidCampaign(campaign, []domain.Inventory{{ID: 5, Type: domain.InventoryTypeDisplay, Cost: decimal.NewFromInt(50)}})
	s.frequencies.EXPECT().GetByCampaign(gomock.Any(), testCampaignID).Return(nil, nil)
	s.lookups.EXPECT().CountryIDs(gomock.Any(), []int64{1}).Return(nil, errors.New("timeout"))
	s.expectFailed(CodeStorageError, "resolve geography: countries: timeout")

	_, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncProfile))

	s.requireJobError(err, CodeStorageError)
}

func (s *OrchestratorTestSuite) TestSyncProfile_PersistenceFailureAfterCreate() {
	s.expectValidCampaign(testCampaign(), []domain.Inventory{{ID: 5, Type: domain.InventoryTypeDisplay, Cost: decimal.NewFromInt(50)}})
	s.frequencies.EXPECT().GetByCampaign(gomock.Any(), testCampaignID).Return(nil, nil)
	s.remote.EXPECT().AddProfile(gomock.Any(), testAdvertiserID, gomock.Any()).Return(int64(900), nil)
	s.inventories.EXPECT().MarkSynced(gomock.Any(), int64(5), gomock.Any(), s.now).Return(errors.New("lock wait timeout"))
	s.expectFailed(CodePersistenceFailed, "store profile id: lock wait timeout")

	_, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncProfile))

	s.requireJobError(err, CodePersistenceFailed)
}

func (s *OrchestratorTestSuite) TestSyncLineItem_CreatesWithPacingAndGoal() {
	campaign := testCampaign()
	campaign.InventoryTargetingType = "cpc"
	campaign.StartDate = utils.Ptr("2024-03-01")
	campaign.StartTime = utils.Ptr("08:00:00")

	inv := domain.Inventory{
		ID:          5,
		Type:        domain.InventoryTypeDisplay,
		Cost:        decimal.NewFromInt(100),
		CPM:         decimal.NewFromInt(3),
		DailyBudget: decimal.NewFromInt(10),
		DailyPace:   true,
		GoalType:    utils.Ptr("cpc"),
		CPCGoal:     decimal.RequireFromString("1.5"),
		ProfileID:   utils.Ptr(int64(900)),
	}

	var sent *domain.LineItem
	s.expectValidCampaign(campaign, []domain.Inventory{inv})
	s.remote.EXPECT().AddLineItem(gomock.Any(), testAdvertiserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, li *domain.LineItem) (int64, error) {
			sent = li
			return 1200, nil
		},
	)
	s.inventories.EXPECT().MarkSynced(gomock.Any(), int64(5), domain.RemoteIDs{LineItemID: utils.Ptr(int64(1200))}, s.now).Return(nil)
	s.expectCompleted("AppNexus line items synced")

	resp, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncLineItem))

	s.Require().NoError(err)
	s.Require().NotNil(sent)
	s.Equal("Spring + categories", sent.Name)
	s.Equal(domain.CampaignStatusActive, sent.State)
	s.Equal(utils.Ptr("2024-03-01 08:00:00"), sent.StartDate)
	s.Nil(sent.EndDate)
	s.Equal("cpc", sent.RevenueType)
	s.Equal(utils.Ptr(3.0), sent.RevenueValue)
	s.True(sent.PerformanceOffer)
	s.Equal(utils.Ptr(int64(900)), sent.ProfileID)
	s.Equal(utils.Ptr(100.0), sent.LifetimeBudget)
	s.Equal(utils.Ptr(10.0), sent.DailyBudget)
	s.True(sent.EnablePacing)
	s.Equal(utils.Ptr("cpc"), sent.GoalType)
	s.Equal(&domain.Valuation{GoalTarget: 1.5}, sent.Valuation)

	results := resp.Data.([]domain.InventoryResult)
	s.Require().Len(results, 1)
	s.Equal(utils.Ptr(int64(1200)), results[0].LineItemID)
	s.Equal(domain.OperationCreated, results[0].Operation)
}

func (s *OrchestratorTestSuite) TestSyncLineItem_UpdatesWithConversionPixel() {
	inv := domain.Inventory{
		ID:                5,
		Type:              domain.InventoryTypeDisplay,
		Cost:              decimal.NewFromInt(100),
		GoalType:          utils.Ptr("cpa"),
		ConversionPixelID: utils.Ptr(int64(3)),
		PostClickGoal:     decimal.NewFromInt(4),
		PostViewGoal:      decimal.NewFromInt(2),
		LineItemID:        utils.Ptr(int64(1200)),
	}

	var sent *domain.LineItem
	s.expectValidCampaign(testCampaign(), []domain.Inventory{inv})
	s.lookups.EXPECT().ConversionPixel(gomock.Any(), int64(3)).Return(utils.Ptr(int64(6001)), nil)
	s.remote.EXPECT().UpdateLineItem(gomock.Any(), int64(1200), testAdvertiserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ int64, li *domain.LineItem) error {
			sent = li
			return nil
		},
	)
	s.inventories.EXPECT().MarkSynced(gomock.Any(), int64(5), domain.RemoteIDs{}, s.now).Return(nil)
	s.expectCompleted("AppNexus line items synced")

	_, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncLineItem))

	s.Require().NoError(err)
	s.Require().NotNil(sent)
	s.Equal([]domain.GoalPixel{{ID: 6001, State: "active", PostClickGoalTarget: 4, PostViewGoalTarget: 2}}, sent.GoalPixels)
	s.True(sent.LifetimePacing)
}

func (s *OrchestratorTestSuite) TestSyncLineItem_UnresolvedConversionPixel() {
	inv := domain.Inventory{
		ID:                5,
		Type:              domain.InventoryTypeDisplay,
		Cost:              decimal.NewFromInt(100),
		GoalType:          utils.Ptr("cpa"),
		ConversionPixelID: utils.Ptr(int64(3)),
	}

	s.expectValidCampaign(testCampaign(), []domain.Inventory{inv})
	s.lookups.EXPECT().ConversionPixel(gomock.Any(), int64(3)).Return(nil, nil)
	s.expectFailed(CodeUnresolvedConversionPixel, "Conversion pixel of inventory 5 has no AppNexus id")

	_, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncLineItem))

	s.requireJobError(err, CodeUnresolvedConversionPixel)
}

func (s *OrchestratorTestSuite) TestSyncLineItem_UnpaidNeverCreated() {
	s.expectValidCampaign(testCampaign(), []domain.Inventory{
		{ID: 5, Type: domain.InventoryTypeDisplay, Cost: decimal.Zero},
	})
	s.expectCompleted("AppNexus line items synced")

	resp, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncLineItem))

	s.Require().NoError(err)
	s.Empty(resp.Data)
}

func (s *OrchestratorTestSuite) TestSyncCampaign_CreatesLinkedCampaign() {
	inv := domain.Inventory{
		ID:         5,
		Type:       domain.InventoryTypeRetargeting,
		Cost:       decimal.NewFromInt(100),
		ProfileID:  utils.Ptr(int64(900)),
		LineItemID: utils.Ptr(int64(1200)),
	}

	s.expectValidCampaign(testCampaign(), []domain.Inventory{inv})
	s.remote.EXPECT().AddCampaign(gomock.Any(), testAdvertiserID, &domain.RemoteCampaign{
		Name:          "Spring + retargeting",
		State:         domain.CampaignStatusActive,
		InventoryType: "real_time",
		LineItemID:    utils.Ptr(int64(1200)),
		ProfileID:     utils.Ptr(int64(900)),
	}).Return(int64(1500), nil)
	s.inventories.EXPECT().MarkSynced(gomock.Any(), int64(5), domain.RemoteIDs{RemoteCampaignID: utils.Ptr(int64(1500))}, s.now).Return(nil)
	s.expectCompleted("AppNexus campaigns synced")

	resp, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncCampaign))

	s.Require().NoError(err)
	results := resp.Data.([]domain.InventoryResult)
	s.Require().Len(results, 1)
	s.Equal(utils.Ptr(int64(1500)), results[0].RemoteCampaignID)
}

func (s *OrchestratorTestSuite) TestSyncStatus() {
	inventories := []domain.Inventory{
		{ID: 5, Type: domain.InventoryTypeDisplay, Cost: decimal.NewFromInt(10), LineItemID: utils.Ptr(int64(1200)), RemoteCampaignID: utils.Ptr(int64(1500))},
		{ID: 6, Type: domain.InventoryTypeDisplay, Cost: decimal.Zero, LineItemID: utils.Ptr(int64(1300))},
		{ID: 7, Type: domain.InventoryTypeDisplay, Cost: decimal.NewFromInt(10)},
	}

	s.expectValidCampaign(testCampaign(), inventories)
	s.remote.EXPECT().SetLineItemState(gomock.Any(), int64(1200), testAdvertiserID, domain.CampaignStatusActive).Return(nil)
	s.remote.EXPECT().SetCampaignState(gomock.Any(), int64(1500), testAdvertiserID, domain.CampaignStatusActive).Return(nil)
	s.remote.EXPECT().SetLineItemState(gomock.Any(), int64(1300), testAdvertiserID, domain.CampaignStatusInactive).Return(nil)
	s.inventories.EXPECT().MarkSynced(gomock.Any(), int64(5), domain.RemoteIDs{}, s.now).Return(nil)
	s.inventories.EXPECT().MarkSynced(gomock.Any(), int64(6), domain.RemoteIDs{}, s.now).Return(nil)
	s.expectCompleted("AppNexus campaign status synced")

	resp, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncStatus))

	s.Require().NoError(err)
	results := resp.Data.([]domain.InventoryResult)
	s.Require().Len(results, 2)
	s.Equal(domain.OperationUpdated, results[0].Operation)
	s.Equal(domain.OperationDeactivated, results[1].Operation)
}

func (s *OrchestratorTestSuite) TestSyncDomains() {
	campaign := testCampaign()
	campaign.IncludeInventoryURLs = utils.Ptr("example.com\nhttps://news.example.org\n\n")
	campaign.ExcludeInventoryURLs = utils.Ptr("bad.example")
	campaign.ExcludeDomainListID = utils.Ptr(int64(88))

	s.expectValidCampaign(campaign, []domain.Inventory{{ID: 5, Type: domain.InventoryTypeDisplay, Cost: decimal.NewFromInt(10)}})
	s.remote.EXPECT().AddDomainList(gomock.Any(), &domain.DomainList{
		Name:        "Spring include list",
		Description: "Domains to include from campaign Spring",
		Type:        "white",
		Domains:     []string{"example.com", "httpsnews.example.org"},
	}).Return(int64(77), nil)
	s.campaigns.EXPECT().MarkSynced(gomock.Any(), testCampaignID, utils.Ptr(int64(77)), nil, s.now).Return(nil)
	s.remote.EXPECT().UpdateDomainList(gomock.Any(), int64(88), gomock.Any()).Return(nil)
	s.campaigns.EXPECT().MarkSynced(gomock.Any(), testCampaignID, nil, nil, s.now).Return(nil)
	s.expectCompleted("AppNexus campaign domains synced")

	resp, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncDomains))

	s.Require().NoError(err)
	s.Equal([]domain.DomainListResult{
		{Direction: "include", DomainListID: 77, Operation: domain.OperationCreated, Domains: 2},
		{Direction: "exclude", DomainListID: 88, Operation: domain.OperationUpdated, Domains: 1},
	}, resp.Data)
}

func (s *OrchestratorTestSuite) TestSyncDomains_NothingToSync() {
	campaign := testCampaign()
	campaign.IncludeInventoryURLs = utils.Ptr("  \n ")

	s.expectValidCampaign(campaign, []domain.Inventory{{ID: 5, Type: domain.InventoryTypeDisplay, Cost: decimal.NewFromInt(10)}})
	s.expectCompleted("AppNexus campaign domains synced")

	resp, err := s.orchestrator.Handle(context.Background(), s.campaignMessage(domain.ActionSyncDomains))

	s.Require().NoError(err)
	s.Empty(resp.Data)
}
