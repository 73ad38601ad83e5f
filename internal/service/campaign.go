package service

import (
	"context"
	"errors"
	"fmt"

	"campaign_syncer/internal/domain"
	"campaign_syncer/internal/profile"
)

// campaignScope is a campaign that passed validation, with everything the
// sync actions need from it.
type campaignScope struct {
	campaign    *domain.Campaign
	user        *domain.User
	inventories []domain.Inventory
}

func (s *campaignScope) advertiserID() int64 {
	return *s.user.AdvertiserID
}

func (o *Orchestrator) loadCampaign(ctx context.Context, j *job) (*campaignScope, error) {
	campaignID, ok := intParam(j.msg.Body.Data, "campaignId")
	if !ok {
		return nil, o.fail(ctx, j, CodeMissingParameter, "Missing campaign ID parameter")
	}

	campaign, err := o.campaigns.Get(ctx, campaignID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, o.fail(ctx, j, CodeCampaignNotFound, fmt.Sprintf("Campaign %d not found", campaignID))
	}
	if err != nil {
		return nil, o.storageFailed(ctx, j, "get campaign", err)
	}

	j.logger = j.logger.With("campaign_id", campaignID)

	result, err := o.validator.Validate(ctx, campaign)
	if err != nil {
		return nil, o.storageFailed(ctx, j, "validate campaign", err)
	}
	if !result.OK {
		return nil, o.fail(ctx, j, result.Code, result.Message)
	}

	return &campaignScope{
		campaign:    campaign,
		user:        result.User,
		inventories: result.Inventories,
	}, nil
}

// upsert creates the remote entity when id is unset and updates it otherwise.
// It returns the entity id and whether it was created.
func upsert(ctx context.Context, id *int64, create func(context.Context) (int64, error), update func(context.Context, int64) error) (int64, bool, error) {
	if id == nil || *id == 0 {
		newID, err := create(ctx)
		return newID, true, err
	}
	return *id, false, update(ctx, *id)
}

func operation(created bool) string {
	if created {
		return domain.OperationCreated
	}
	return domain.OperationUpdated
}

func (o *Orchestrator) syncDomains(ctx context.Context, j *job) (*domain.JobResponse, error) {
	scope, err := o.loadCampaign(ctx, j)
	if err != nil {
		return nil, err
	}
	c := scope.campaign

	results := []domain.DomainListResult{}
	for _, direction := range profile.DomainDirections {
		list := profile.NewDomainList(c, direction)
		if list == nil {
			j.logger.Debug("no domains to sync", "direction", direction)
			continue
		}

		current := c.IncludeDomainListID
		if direction == profile.DirectionExclude {
			current = c.ExcludeDomainListID
		}

		id, created, err := upsert(ctx, current,
			func(ctx context.Context) (int64, error) { return o.remote.AddDomainList(ctx, list) },
			func(ctx context.Context, id int64) error { return o.remote.UpdateDomainList(ctx, id, list) },
		)
		if err != nil {
			return nil, o.remoteFailed(ctx, j, direction+" domain list", err)
		}

		var include, exclude *int64
		if created && direction == profile.DirectionInclude {
			include = &id
		} else if created {
			exclude = &id
		}
		if err := o.campaigns.MarkSynced(ctx, c.ID, include, exclude, o.now()); err != nil {
			return nil, o.persistFailed(ctx, j, "store domain list id", err)
		}

		results = append(results, domain.DomainListResult{
			Direction:    direction,
			DomainListID: id,
			Operation:    operation(created),
			Domains:      len(list.Domains),
		})
	}

	j.logger.Info("domain lists synced", "count", len(results))

	return &domain.JobResponse{
		Message: "AppNexus campaign domains synced",
		Data:    results,
	}, nil
}

func (o *Orchestrator) syncProfile(ctx context.Context, j *job) (*domain.JobResponse, error) {
	scope, err := o.loadCampaign(ctx, j)
	if err != nil {
		return nil, err
	}
	c := scope.campaign

	freq, err := o.frequencies.GetByCampaign(ctx, c.ID)
	if err != nil {
		return nil, o.storageFailed(ctx, j, "get frequency", err)
	}
	geo, err := o.geography(ctx, c)
	if err != nil {
		return nil, o.storageFailed(ctx, j, "resolve geography", err)
	}

	results := []domain.InventoryResult{}
	for i := range scope.inventories {
		inv := &scope.inventories[i]
		if !inv.Paid() {
			result, err := o.deactivate(ctx, j, scope, inv)
			if err != nil {
				return nil, err
			}
			if result != nil {
				results = append(results, *result)
			}
			continue
		}

		codes, err := o.targetingCodes(ctx, inv)
		if err != nil {
			return nil, o.storageFailed(ctx, j, "resolve targeting codes", err)
		}

		result := domain.InventoryResult{InventoryID: inv.ID, Type: inv.Type}

		p := profile.NewProfile()
		p = profile.BuildFrequency(inv, p, freq)
		p = profile.BuildGeography(p, geo)
		p, err = profile.ApplyInventoryTargeting(inv, p, codes)
		if errors.Is(err, profile.ErrUnsupportedInventoryType) {
			j.logger.Warn("inventory type has no targeting builder", "inventory_id", inv.ID, "type", inv.Type)
			result.Notice = CodeUnsupportedInventoryType
		}

		id, created, err := upsert(ctx, inv.ProfileID,
			func(ctx context.Context) (int64, error) { return o.remote.AddProfile(ctx, scope.advertiserID(), p) },
			func(ctx context.Context, id int64) error { return o.remote.UpdateProfile(ctx, id, scope.advertiserID(), p) },
		)
		if err != nil {
			return nil, o.remoteFailed(ctx, j, "profile", err)
		}

		var ids domain.RemoteIDs
		if created {
			ids.ProfileID = &id
		}
		if err := o.inventories.MarkSynced(ctx, inv.ID, ids, o.now()); err != nil {
			return nil, o.persistFailed(ctx, j, "store profile id", err)
		}

		result.Operation = operation(created)
		result.ProfileID = &id
		results = append(results, result)
	}

	j.logger.Info("profiles synced", "inventories", len(results))

	return &domain.JobResponse{
		Message: "AppNexus campaign profile synced",
		Data:    results,
	}, nil
}

func (o *Orchestrator) syncLineItem(ctx context.Context, j *job) (*domain.JobResponse, error) {
	scope, err := o.loadCampaign(ctx, j)
	if err != nil {
		return nil, err
	}
	c := scope.campaign

	results := []domain.InventoryResult{}
	for i := range scope.inventories {
		inv := &scope.inventories[i]
		if !inv.Paid() {
			result, err := o.deactivate(ctx, j, scope, inv)
			if err != nil {
				return nil, err
			}
			if result != nil {
				results = append(results, *result)
			}
			continue
		}

		li := profile.NewLineItem(inv, c)
		li = profile.BuildPacing(inv, li, c.EndAt())

		goal := profile.GoalTypeOf(inv)
		var pixelID *int64
		if goal == profile.GoalCPA && inv.ConversionPixelID != nil {
			pixelID, err = o.lookups.ConversionPixel(ctx, *inv.ConversionPixelID)
			if err != nil {
				return nil, o.storageFailed(ctx, j, "resolve conversion pixel", err)
			}
		}
		li, err = profile.BuildPerformanceGoals(inv, li, goal, pixelID)
		if errors.Is(err, profile.ErrUnresolvedConversionPixel) {
			return nil, o.fail(ctx, j, CodeUnresolvedConversionPixel,
				fmt.Sprintf("Conversion pixel of inventory %d has no AppNexus id", inv.ID))
		}

		id, created, err := upsert(ctx, inv.LineItemID,
			func(ctx context.Context) (int64, error) { return o.remote.AddLineItem(ctx, scope.advertiserID(), li) },
			func(ctx context.Context, id int64) error {
				return o.remote.UpdateLineItem(ctx, id, scope.advertiserID(), li)
			},
		)
		if err != nil {
			return nil, o.remoteFailed(ctx, j, "line item", err)
		}

		var ids domain.RemoteIDs
		if created {
			ids.LineItemID = &id
		}
		if err := o.inventories.MarkSynced(ctx, inv.ID, ids, o.now()); err != nil {
			return nil, o.persistFailed(ctx, j, "store line item id", err)
		}

		results = append(results, domain.InventoryResult{
			InventoryID: inv.ID,
			Type:        inv.Type,
			Operation:   operation(created),
			ProfileID:   inv.ProfileID,
			LineItemID:  &id,
		})
	}

	j.logger.Info("line items synced", "inventories", len(results))

	return &domain.JobResponse{
		Message: "AppNexus line items synced",
		Data:    results,
	}, nil
}

func (o *Orchestrator) syncCampaign(ctx context.Context, j *job) (*domain.JobResponse, error) {
	scope, err := o.loadCampaign(ctx, j)
	if err != nil {
		return nil, err
	}
	c := scope.campaign

	results := []domain.InventoryResult{}
	for i := range scope.inventories {
		inv := &scope.inventories[i]
		if !inv.Paid() {
			result, err := o.deactivate(ctx, j, scope, inv)
			if err != nil {
				return nil, err
			}
			if result != nil {
				results = append(results, *result)
			}
			continue
		}

		rc := profile.NewRemoteCampaign(inv, c)
		id, created, err := upsert(ctx, inv.RemoteCampaignID,
			func(ctx context.Context) (int64, error) { return o.remote.AddCampaign(ctx, scope.advertiserID(), rc) },
			func(ctx context.Context, id int64) error {
				return o.remote.UpdateCampaign(ctx, id, scope.advertiserID(), rc)
			},
		)
		if err != nil {
			return nil, o.remoteFailed(ctx, j, "campaign", err)
		}

		var ids domain.RemoteIDs
		if created {
			ids.RemoteCampaignID = &id
		}
		if err := o.inventories.MarkSynced(ctx, inv.ID, ids, o.now()); err != nil {
			return nil, o.persistFailed(ctx, j, "store campaign id", err)
		}

		results = append(results, domain.InventoryResult{
			InventoryID:      inv.ID,
			Type:             inv.Type,
			Operation:        operation(created),
			ProfileID:        inv.ProfileID,
			LineItemID:       inv.LineItemID,
			RemoteCampaignID: &id,
		})
	}

	j.logger.Info("campaigns synced", "inventories", len(results))

	return &domain.JobResponse{
		Message: "AppNexus campaigns synced",
		Data:    results,
	}, nil
}

// syncStatus pushes the campaign status to the remote line items and
// campaigns that already exist. Unpaid lines are always pushed as inactive.
func (o *Orchestrator) syncStatus(ctx context.Context, j *job) (*domain.JobResponse, error) {
	scope, err := o.loadCampaign(ctx, j)
	if err != nil {
		return nil, err
	}

	results := []domain.InventoryResult{}
	for i := range scope.inventories {
		inv := &scope.inventories[i]
		if !hasID(inv.LineItemID) && !hasID(inv.RemoteCampaignID) {
			continue
		}

		state, op := scope.campaign.Status, domain.OperationUpdated
		if !inv.Paid() {
			state, op = domain.CampaignStatusInactive, domain.OperationDeactivated
		}
		if err := o.pushState(ctx, j, scope, inv, state); err != nil {
			return nil, err
		}

		results = append(results, domain.InventoryResult{
			InventoryID:      inv.ID,
			Type:             inv.Type,
			Operation:        op,
			ProfileID:        inv.ProfileID,
			LineItemID:       inv.LineItemID,
			RemoteCampaignID: inv.RemoteCampaignID,
		})
	}

	j.logger.Info("status synced", "status", scope.campaign.Status, "inventories", len(results))

	return &domain.JobResponse{
		Message: "AppNexus campaign status synced",
		Data:    results,
	}, nil
}

// deactivate handles an unpaid inventory line. Remote entities of an active
// campaign are forced inactive; nothing is ever created. It returns nil when
// there was nothing to do.
func (o *Orchestrator) deactivate(ctx context.Context, j *job, scope *campaignScope, inv *domain.Inventory) (*domain.InventoryResult, error) {
	if scope.campaign.Status != domain.CampaignStatusActive {
		j.logger.Debug("skipping unpaid inventory", "inventory_id", inv.ID)
		return nil, nil
	}
	if !hasID(inv.LineItemID) && !hasID(inv.RemoteCampaignID) {
		j.logger.Debug("skipping unpaid inventory without remote entities", "inventory_id", inv.ID)
		return nil, nil
	}

	if err := o.pushState(ctx, j, scope, inv, domain.CampaignStatusInactive); err != nil {
		return nil, err
	}

	j.logger.Info("unpaid inventory deactivated", "inventory_id", inv.ID)

	return &domain.InventoryResult{
		InventoryID:      inv.ID,
		Type:             inv.Type,
		Operation:        domain.OperationDeactivated,
		ProfileID:        inv.ProfileID,
		LineItemID:       inv.LineItemID,
		RemoteCampaignID: inv.RemoteCampaignID,
	}, nil
}

func (o *Orchestrator) pushState(ctx context.Context, j *job, scope *campaignScope, inv *domain.Inventory, state string) error {
	if hasID(inv.LineItemID) {
		if err := o.remote.SetLineItemState(ctx, *inv.LineItemID, scope.advertiserID(), state); err != nil {
			return o.remoteFailed(ctx, j, "line item state", err)
		}
	}
	if hasID(inv.RemoteCampaignID) {
		if err := o.remote.SetCampaignState(ctx, *inv.RemoteCampaignID, scope.advertiserID(), state); err != nil {
			return o.remoteFailed(ctx, j, "campaign state", err)
		}
	}
	if err := o.inventories.MarkSynced(ctx, inv.ID, domain.RemoteIDs{}, o.now()); err != nil {
		return o.persistFailed(ctx, j, "mark inventory synced", err)
	}
	return nil
}

func hasID(id *int64) bool {
	return id != nil && *id != 0
}

// geography resolves the campaign's geographic selectors. Empty selectors
// are not looked up.
func (o *Orchestrator) geography(ctx context.Context, c *domain.Campaign) (profile.Geography, error) {
	var (
		geo profile.Geography
		err error
	)

	if ids := profile.ParseIDList(c.Countries); len(ids) > 0 {
		if geo.Countries, err = o.lookups.CountryIDs(ctx, ids); err != nil {
			return geo, fmt.Errorf("countries: %w", err)
		}
	}
	if ids := profile.ParseIDList(c.States); len(ids) > 0 {
		if geo.Regions, err = o.lookups.RegionIDs(ctx, ids); err != nil {
			return geo, fmt.Errorf("regions: %w", err)
		}
	}
	if ids := profile.ParseIDList(c.DemographicMarketAreas); len(ids) > 0 {
		if geo.DMAs, err = o.lookups.DMAIDs(ctx, ids); err != nil {
			return geo, fmt.Errorf("dmas: %w", err)
		}
	}
	if ids := profile.ParseIDList(c.Cities); len(ids) > 0 {
		if geo.Cities, err = o.lookups.CityIDs(ctx, ids); err != nil {
			return geo, fmt.Errorf("cities: %w", err)
		}
	}
	if c.ZipCodes != nil {
		geo.ZipCodes = profile.ParseZipCodes(*c.ZipCodes)
	}

	return geo, nil
}

func (o *Orchestrator) targetingCodes(ctx context.Context, inv *domain.Inventory) (profile.Codes, error) {
	var (
		codes profile.Codes
		err   error
	)

	switch inv.Type {
	case domain.InventoryTypeDisplay:
		if ids := profile.ParseIDList(inv.Categories); len(ids) > 0 {
			if codes.Categories, err = o.lookups.CategoryCodes(ctx, ids); err != nil {
				return codes, fmt.Errorf("categories: %w", err)
			}
		}
	case domain.InventoryTypeRetargeting:
		if ids := profile.ParseIDList(inv.Segments); len(ids) > 0 {
			if codes.Segments, err = o.lookups.SegmentCodes(ctx, ids); err != nil {
				return codes, fmt.Errorf("segments: %w", err)
			}
		}
	}

	return codes, nil
}
