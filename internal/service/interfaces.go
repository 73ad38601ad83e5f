package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"campaign_syncer/internal/domain"
)

type CampaignStore interface {
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	MarkSynced(ctx context.Context, id int64, includeListID, excludeListID *int64, at time.Time) error
}

type InventoryStore interface {
	ListByCampaign(ctx context.Context, campaignID int64) ([]domain.Inventory, error)
	MarkSynced(ctx context.Context, id int64, ids domain.RemoteIDs, at time.Time) error
}

type FrequencyStore interface {
	GetByCampaign(ctx context.Context, campaignID int64) (*domain.Frequency, error)
}

type UserStore interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
	GetByAdvertiser(ctx context.Context, advertiserID int64) (*domain.User, error)
	MarkSynced(ctx context.Context, id int64, advertiserID *int64, at time.Time) error
	ClearAdvertiser(ctx context.Context, id int64, at time.Time) error
}

type LookupStore interface {
	CountryIDs(ctx context.Context, ids []int64) ([]int64, error)
	RegionIDs(ctx context.Context, ids []int64) ([]int64, error)
	DMAIDs(ctx context.Context, ids []int64) ([]int64, error)
	CityIDs(ctx context.Context, ids []int64) ([]int64, error)
	CategoryCodes(ctx context.Context, ids []int64) (map[int64]int64, error)
	SegmentCodes(ctx context.Context, ids []int64) (map[int64]int64, error)
	ConversionPixel(ctx context.Context, id int64) (*int64, error)
}

type JobLogStore interface {
	Create(ctx context.Context, entry *domain.JobLogEntry) error
	Update(ctx context.Context, uuid, code, message, status string) error
}

type AppNexus interface {
	AddAdvertiser(ctx context.Context, data *domain.AdvertiserData) (int64, error)
	UpdateAdvertiser(ctx context.Context, id int64, data *domain.AdvertiserData) error
	DeleteAdvertiser(ctx context.Context, id int64) error

	AddDomainList(ctx context.Context, list *domain.DomainList) (int64, error)
	UpdateDomainList(ctx context.Context, id int64, list *domain.DomainList) error

	AddProfile(ctx context.Context, advertiserID int64, p *domain.Profile) (int64, error)
	UpdateProfile(ctx context.Context, id, advertiserID int64, p *domain.Profile) error

	AddLineItem(ctx context.Context, advertiserID int64, li *domain.LineItem) (int64, error)
	UpdateLineItem(ctx context.Context, id, advertiserID int64, li *domain.LineItem) error
	SetLineItemState(ctx context.Context, id, advertiserID int64, state string) error

	AddCampaign(ctx context.Context, advertiserID int64, rc *domain.RemoteCampaign) (int64, error)
	UpdateCampaign(ctx context.Context, id, advertiserID int64, rc *domain.RemoteCampaign) error
	SetCampaignState(ctx context.Context, id, advertiserID int64, state string) error
}

type Publisher interface {
	Publish(ctx context.Context, msg *domain.JobMessage) error
	Close() error
}
