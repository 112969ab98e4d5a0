package client

import (
	"context"
	"net/http"

	"github.com/vibast-solutions/abacatepay-go/app/codec"
	"github.com/vibast-solutions/abacatepay-go/app/entity"
	"github.com/vibast-solutions/abacatepay-go/app/hydrator"
	"github.com/vibast-solutions/abacatepay-go/app/mapper"
)

const customerResource = "customer"

type CustomerClient struct {
	client *Client
}

func (c *CustomerClient) List(ctx context.Context) ([]*entity.Customer, error) {
	data, err := c.client.do(ctx, http.MethodGet, customerResource, "list", nil)
	if err != nil {
		return nil, err
	}
	return hydrator.HydrateList(hydrator.CustomerSchema, data)
}

func (c *CustomerClient) Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	req, err := mapper.CustomerToCreateRequest(customer)
	if err != nil {
		return nil, err
	}

	data, err := c.client.do(ctx, http.MethodPost, customerResource, "create", req)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Map(data)
	if err != nil {
		return nil, err
	}
	return hydrator.Hydrate(hydrator.CustomerSchema, raw)
}
