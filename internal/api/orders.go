package api

import (
	"context"

	"github.com/mr-fahad-03/grace-tailor/internal/domain"
)

type OrdersClient struct {
	Client *Client
}

func (c OrdersClient) List(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.Client.get(ctx, "/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c OrdersClient) Get(ctx context.Context, id string) (*domain.Order, error) {
	var out domain.Order
	if err := c.Client.get(ctx, "/orders/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c OrdersClient) Create(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	var out domain.Order
	if err := c.Client.post(ctx, "/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c OrdersClient) Update(ctx context.Context, id string, in domain.OrderInput) (*domain.Order, error) {
	var out domain.Order
	if err := c.Client.put(ctx, "/orders/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c OrdersClient) Delete(ctx context.Context, id string) error {
	return c.Client.delete(ctx, "/orders/"+id)
}

// Recent returns the server-picked set of newest orders for the dashboard.
func (c OrdersClient) Recent(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.Client.get(ctx, "/orders/stats/recent", &out); err != nil {
		return nil, err
	}
	return out, nil
}
