package profile

import (
	"errors"

	"campaign_syncer/internal/domain"
)

var ErrUnsupportedInventoryType = errors.New("unsupported inventory type")

// Codes maps local category and segment ids to their AppNexus ids.
type Codes struct {
	Categories map[int64]int64
	Segments   map[int64]int64
}

// BuildCategory applies content category targeting. An inventory without
// categories still gets an empty, closed category list.
func BuildCategory(inv *domain.Inventory, p *domain.Profile, codes map[int64]int64) *domain.Profile {
	if inv == nil {
		return nil
	}
	if p == nil {
		p = &domain.Profile{}
	}

	p.ContentCategoryTargets = &domain.ContentCategoryTargets{
		AllowUnknown:      false,
		ContentCategories: []domain.ActionTarget{},
	}

	ids := ParseIDList(inv.Categories)
	if len(ids) == 0 {
		return p
	}

	for _, id := range ids {
		code, ok := codes[id]
		if !ok {
			continue
		}
		p.ContentCategoryTargets.ContentCategories = append(p.ContentCategoryTargets.ContentCategories,
			domain.ActionTarget{ID: code, Action: inv.Filter})
	}

	return p
}

// BuildRetargeting applies segment targeting from the inventory's segments.
func BuildRetargeting(inv *domain.Inventory, p *domain.Profile, codes map[int64]int64) *domain.Profile {
	if inv == nil {
		return nil
	}
	if p == nil {
		p = &domain.Profile{}
	}

	p.SegmentBooleanOperator = "or"
	p.SegmentTargets = []domain.ActionTarget{}

	for _, id := range ParseIDList(inv.Segments) {
		code, ok := codes[id]
		if !ok {
			continue
		}
		p.SegmentTargets = append(p.SegmentTargets, domain.ActionTarget{ID: code, Action: inv.Filter})
	}

	return p
}

// ApplyInventoryTargeting adds the targeting specific to the inventory type.
// Types without a targeting builder return ErrUnsupportedInventoryType along
// with the unchanged profile.
func ApplyInventoryTargeting(inv *domain.Inventory, p *domain.Profile, codes Codes) (*domain.Profile, error) {
	if inv == nil {
		return nil, nil
	}

	switch inv.Type {
	case domain.InventoryTypeDisplay:
		return BuildCategory(inv, p, codes.Categories), nil
	case domain.InventoryTypeRetargeting:
		return BuildRetargeting(inv, p, codes.Segments), nil
	default:
		// mobile, facebook and domain_inclusion have no builder yet
		return p, ErrUnsupportedInventoryType
	}
}
