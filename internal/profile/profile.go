// Package profile turns campaign and inventory records into AppNexus
// payloads. Builders never perform I/O: every lookup result they need is
// passed in by the caller. Each builder augments the accumulator it receives
// and leaves unrelated fields untouched, so the steps compose in a fixed order:
// frequency, geography, then the inventory type specific targeting.
package profile

import "campaign_syncer/internal/domain"

// USCountryID is the AppNexus country id targeted when a campaign names no
// country.
const USCountryID int64 = 233

const actionInclude = "include"

var inventoryAttributeTargets = []int64{2, 4, 6, 8, 10, 16}

// NewProfile returns a profile carrying the settings shared by every
// inventory line.
func NewProfile() *domain.Profile {
	p := &domain.Profile{
		Trust:                        "appnexus",
		CertifiedSupply:              ptr(false),
		AllowUnaudited:               ptr(false),
		IntendedAudienceTargets:      []string{"general", "children", "young_adult", "mature"},
		UseInventoryAttributeTargets: ptr(true),
	}
	for _, id := range inventoryAttributeTargets {
		p.InventoryAttributeTargets = append(p.InventoryAttributeTargets, domain.IDTarget{ID: id})
	}
	return p
}

var minutesPerUnit = map[string]int{
	"minutes": 1,
	"hours":   60,
	"days":    1440,
}

// MinutesFor converts a per-user-per-time amount into minutes. Unknown units
// yield 0.
func MinutesFor(amount int, unit string) int {
	return amount * minutesPerUnit[unit]
}

// BuildFrequency applies the campaign frequency caps. It returns nil when
// there is no inventory line to build for.
func BuildFrequency(inv *domain.Inventory, p *domain.Profile, freq *domain.Frequency) *domain.Profile {
	if inv == nil {
		return nil
	}
	if p == nil {
		p = &domain.Profile{}
	}
	if freq == nil || freq.ApplyState != domain.StateEnabled {
		return p
	}

	if freq.LifetimeState == domain.StateEnabled && freq.LifetimeImpressions > 0 {
		p.MaxLifetimeImps = ptr(freq.LifetimeImpressions)
	}
	if freq.PerUserState == domain.StateEnabled && freq.PerUserPerDayImpressions > 0 {
		p.MaxDayImps = ptr(freq.PerUserPerDayImpressions)
	}
	if freq.PerUserPerTimeState == domain.StateEnabled && freq.PerUserPerTimeAmount > 0 {
		p.MinMinutesPerImp = ptr(MinutesFor(freq.PerUserPerTimeAmount, freq.PerUserPerTimeType))
	}

	return p
}

// Geography holds the resolved AppNexus ids of a campaign's geography
// selectors.
type Geography struct {
	Countries []int64
	Regions   []int64
	DMAs      []int64
	Cities    []int64
	ZipCodes  []string
}

// BuildGeography applies geographic targeting. Countries default to the
// United States; empty region, DMA, city and zip sets leave that dimension
// unconstrained.
func BuildGeography(p *domain.Profile, geo Geography) *domain.Profile {
	if p == nil {
		p = &domain.Profile{}
	}

	p.CountryAction = actionInclude
	if len(geo.Countries) > 0 {
		p.CountryTargets = make([]domain.IDTarget, 0, len(geo.Countries))
		for _, id := range geo.Countries {
			p.CountryTargets = append(p.CountryTargets, domain.IDTarget{ID: id})
		}
	} else {
		p.CountryTargets = []domain.IDTarget{{ID: USCountryID}}
	}

	if len(geo.Regions) > 0 {
		p.RegionAction = actionInclude
		p.RegionTargets = make([]domain.IDTarget, 0, len(geo.Regions))
		for _, id := range geo.Regions {
			p.RegionTargets = append(p.RegionTargets, domain.IDTarget{ID: id})
		}
	}

	if len(geo.DMAs) > 0 {
		p.DMAAction = actionInclude
		p.DMATargets = make([]domain.DMATarget, 0, len(geo.DMAs))
		for _, id := range geo.DMAs {
			p.DMATargets = append(p.DMATargets, domain.DMATarget{DMA: id})
		}
	}

	if len(geo.Cities) > 0 {
		p.CityAction = actionInclude
		p.CityTargets = make([]domain.IDTarget, 0, len(geo.Cities))
		for _, id := range geo.Cities {
			p.CityTargets = append(p.CityTargets, domain.IDTarget{ID: id})
		}
	}

	if len(geo.ZipCodes) > 0 {
		p.ZipTargets = make([]domain.ZipTarget, 0, len(geo.ZipCodes))
		for _, zip := range geo.ZipCodes {
			p.ZipTargets = append(p.ZipTargets, domain.ZipTarget{FromZip: zip, ToZip: zip})
		}
	}

	return p
}

func ptr[T any](v T) *T {
	return &v
}
