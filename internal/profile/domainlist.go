package profile

import (
	"fmt"

	"campaign_syncer/internal/domain"
)

const (
	DirectionInclude = "include"
	DirectionExclude = "exclude"
)

// DomainDirections is the order in which domain lists are synced.
var DomainDirections = []string{DirectionInclude, DirectionExclude}

// NewDomainList builds the remote domain list for one direction of a
// campaign. It returns nil when the campaign lists no usable domain.
func NewDomainList(campaign *domain.Campaign, direction string) *domain.DomainList {
	raw := campaign.IncludeInventoryURLs
	listType := "white"
	if direction == DirectionExclude {
		raw = campaign.ExcludeInventoryURLs
		listType = "black"
	}
	if raw == nil {
		return nil
	}

	domains := SanitizeDomains(*raw)
	if len(domains) == 0 {
		return nil
	}

	return &domain.DomainList{
		Name:        fmt.Sprintf("%s %s list", campaign.Name, direction),
		Description: fmt.Sprintf("Domains to %s from campaign %s", direction, campaign.Name),
		Type:        listType,
		Domains:     domains,
	}
}

// NewAdvertiser maps a user's billing identity onto the AppNexus advertiser.
func NewAdvertiser(user *domain.User) *domain.AdvertiserData {
	return &domain.AdvertiserData{
		Name:            user.CompanyName,
		BillingName:     user.Email,
		BillingPhone:    user.PhoneNumber,
		BillingAddress1: user.Address,
		BillingCity:     user.City,
		BillingState:    user.StateOrProvince,
		BillingCountry:  user.Country,
		BillingZip:      user.ZipPostalCode,
	}
}
