package client

import (
	"context"
	"net/http"

	"github.com/vibast-solutions/abacatepay-go/app/codec"
	"github.com/vibast-solutions/abacatepay-go/app/entity"
	"github.com/vibast-solutions/abacatepay-go/app/hydrator"
	"github.com/vibast-solutions/abacatepay-go/app/mapper"
)

const billingResource = "billing"

type BillingClient struct {
	client *Client
}

func (c *BillingClient) List(ctx context.Context) ([]*entity.Billing, error) {
	data, err := c.client.do(ctx, http.MethodGet, billingResource, "list", nil)
	if err != nil {
		return nil, err
	}
	return hydrator.HydrateList(hydrator.BillingSchema, data)
}

func (c *BillingClient) Create(ctx context.Context, billing *entity.Billing) (*entity.Billing, error) {
	req, err := mapper.BillingToCreateRequest(billing)
	if err != nil {
		return nil, err
	}

	data, err := c.client.do(ctx, http.MethodPost, billingResource, "create", req)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Map(data)
	if err != nil {
		return nil, err
	}
	return hydrator.Hydrate(hydrator.BillingSchema, raw)
}
