package service

import (
	"context"
	"errors"
	"fmt"

	"campaign_syncer/internal/domain"
)

// Eligibility is the outcome of the pre-sync checks for one campaign.
type Eligibility struct {
	OK          bool
	User        *domain.User
	Inventories []domain.Inventory
	Code        string
	Message     string
}

func (e *Eligibility) reject(code, message string) {
	e.OK = false
	e.Code = code
	e.Message = message
}

// Validator runs the checks a campaign must pass before anything is sent to
// AppNexus.
type Validator struct {
	users       UserStore
	inventories InventoryStore
}

func NewValidator(users UserStore, inventories InventoryStore) *Validator {
	return &Validator{users: users, inventories: inventories}
}

// Validate evaluates every check, so when several fail the reported code is
// that of the last one. Only storage failures are returned as errors.
func (v *Validator) Validate(ctx context.Context, campaign *domain.Campaign) (*Eligibility, error) {
	result := &Eligibility{OK: true}

	user, err := v.users.GetByAdvertiser(ctx, campaign.AdvertiserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		result.reject(CodeUserAdvertiserNotFound,
			fmt.Sprintf("User related to advertiser %d not found", campaign.AdvertiserID))
	case err != nil:
		return nil, fmt.Errorf("get advertiser user: %w", err)
	default:
		result.User = user
		if !user.HasRemoteAdvertiser() {
			result.reject(CodeInvalidAppNexusAdvertiser,
				fmt.Sprintf("Invalid AppNexus Advertiser: %d", campaign.AdvertiserID))
		}
	}

	if !syncableStatus(campaign.Status) {
		result.reject(CodeInvalidCampaignStatusSync,
			fmt.Sprintf("Invalid Campaign Status: %s", campaign.Status))
	}

	inventories, err := v.inventories.ListByCampaign(ctx, campaign.ID)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	if len(inventories) == 0 {
		result.reject(CodeEmptyInventories, "Empty inventories")
	}
	result.Inventories = inventories

	return result, nil
}

func syncableStatus(status string) bool {
	return status == domain.CampaignStatusActive || status == domain.CampaignStatusInactive
}
