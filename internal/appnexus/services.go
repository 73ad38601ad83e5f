package appnexus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"campaign_syncer/internal/domain"
)

const (
	pathAdvertiser = "/advertiser"
	pathDomainList = "/domain-list"
	pathProfile    = "/profile"
	pathLineItem   = "/line-item"
	pathCampaign   = "/campaign"
)

func idQuery(id, advertiserID int64) url.Values {
	q := url.Values{}
	if id != 0 {
		q.Set("id", strconv.FormatInt(id, 10))
	}
	if advertiserID != 0 {
		q.Set("advertiser_id", strconv.FormatInt(advertiserID, 10))
	}
	return q
}

func (c *Client) create(ctx context.Context, path, key string, query url.Values, data any) (int64, error) {
	resp, err := c.do(ctx, http.MethodPost, path, query, map[string]any{key: data})
	if err != nil {
		return 0, err
	}
	if resp.ID == 0 {
		return 0, fmt.Errorf("create %s: response carries no id", key)
	}
	return resp.ID, nil
}

func (c *Client) update(ctx context.Context, path, key string, query url.Values, data any) error {
	_, err := c.do(ctx, http.MethodPut, path, query, map[string]any{key: data})
	return err
}

// AddAdvertiser creates an advertiser and returns its id.
func (c *Client) AddAdvertiser(ctx context.Context, data *domain.AdvertiserData) (int64, error) {
	return c.create(ctx, pathAdvertiser, "advertiser", nil, data)
}

func (c *Client) UpdateAdvertiser(ctx context.Context, id int64, data *domain.AdvertiserData) error {
	return c.update(ctx, pathAdvertiser, "advertiser", idQuery(id, 0), data)
}

func (c *Client) DeleteAdvertiser(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, pathAdvertiser, idQuery(id, 0), nil)
	return err
}

// AddDomainList creates a domain list and returns its id.
func (c *Client) AddDomainList(ctx context.Context, list *domain.DomainList) (int64, error) {
	return c.create(ctx, pathDomainList, "domain-list", nil, list)
}

func (c *Client) UpdateDomainList(ctx context.Context, id int64, list *domain.DomainList) error {
	return c.update(ctx, pathDomainList, "domain-list", idQuery(id, 0), list)
}

// AddProfile creates a targeting profile under the advertiser and returns its id.
func (c *Client) AddProfile(ctx context.Context, advertiserID int64, p *domain.Profile) (int64, error) {
	return c.create(ctx, pathProfile, "profile", idQuery(0, advertiserID), p)
}

func (c *Client) UpdateProfile(ctx context.Context, id, advertiserID int64, p *domain.Profile) error {
	return c.update(ctx, pathProfile, "profile", idQuery(id, advertiserID), p)
}

// AddLineItem creates a line item under the advertiser and returns its id.
func (c *Client) AddLineItem(ctx context.Context, advertiserID int64, li *domain.LineItem) (int64, error) {
	return c.create(ctx, pathLineItem, "line-item", idQuery(0, advertiserID), li)
}

func (c *Client) UpdateLineItem(ctx context.Context, id, advertiserID int64, li *domain.LineItem) error {
	return c.update(ctx, pathLineItem, "line-item", idQuery(id, advertiserID), li)
}

// SetLineItemState changes only the state of a line item.
func (c *Client) SetLineItemState(ctx context.Context, id, advertiserID int64, state string) error {
	return c.update(ctx, pathLineItem, "line-item", idQuery(id, advertiserID), domain.StateUpdate{State: state})
}

// AddCampaign creates a campaign under the advertiser and returns its id.
func (c *Client) AddCampaign(ctx context.Context, advertiserID int64, rc *domain.RemoteCampaign) (int64, error) {
	return c.create(ctx, pathCampaign, "campaign", idQuery(0, advertiserID), rc)
}

func (c *Client) UpdateCampaign(ctx context.Context, id, advertiserID int64, rc *domain.RemoteCampaign) error {
	return c.update(ctx, pathCampaign, "campaign", idQuery(id, advertiserID), rc)
}

// SetCampaignState changes only the state of a campaign.
func (c *Client) SetCampaignState(ctx context.Context, id, advertiserID int64, state string) error {
	return c.update(ctx, pathCampaign, "campaign", idQuery(id, advertiserID), domain.StateUpdate{State: state})
}
