package api

import (
	"context"

	"github.com/mr-fahad-03/grace-tailor/internal/domain"
)

type CustomersClient struct {
	Client *Client
}

func (c CustomersClient) List(ctx context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	if err := c.Client.get(ctx, "/customers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c CustomersClient) Get(ctx context.Context, id string) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.Client.get(ctx, "/customers/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c CustomersClient) Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.Client.post(ctx, "/customers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c CustomersClient) Update(ctx context.Context, id string, in domain.CustomerInput) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.Client.put(ctx, "/customers/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c CustomersClient) Delete(ctx context.Context, id string) error {
	return c.Client.delete(ctx, "/customers/"+id)
}

// AddMeasurement appends one detailed measurement record to a customer and
// returns the updated customer. Records are append-only: no single-record
// update or delete exists.
func (c CustomersClient) AddMeasurement(ctx context.Context, id string, in domain.MeasurementInput) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.Client.post(ctx, "/customers/"+id+"/measurements", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
