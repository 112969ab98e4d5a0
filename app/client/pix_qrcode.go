package client

import (
	"context"
	"net/http"

	"github.com/vibast-solutions/abacatepay-go/app/codec"
	"github.com/vibast-solutions/abacatepay-go/app/entity"
	"github.com/vibast-solutions/abacatepay-go/app/hydrator"
	"github.com/vibast-solutions/abacatepay-go/app/mapper"
)

const pixQrCodeResource = "pixQrCode"

type PixQrCodeClient struct {
	client *Client
}

func (c *PixQrCodeClient) Create(ctx context.Context, pix *entity.PixQrCode) (*entity.PixQrCode, error) {
	req, err := mapper.PixQrCodeToCreateRequest(pix)
	if err != nil {
		return nil, err
	}

	data, err := c.client.do(ctx, http.MethodPost, pixQrCodeResource, "create", req)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Map(data)
	if err != nil {
		return nil, err
	}
	return hydrator.Hydrate(hydrator.PixQrCodeSchema, raw)
}
