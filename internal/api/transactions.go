package api

import (
	"context"

	"github.com/mr-fahad-03/grace-tailor/internal/domain"
)

type TransactionsClient struct {
	Client *Client
}

func (c TransactionsClient) List(ctx context.Context) ([]domain.Transaction, error) {
	var out []domain.Transaction
	if err := c.Client.get(ctx, "/transactions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c TransactionsClient) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	var out domain.Transaction
	if err := c.Client.get(ctx, "/transactions/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c TransactionsClient) Create(ctx context.Context, in domain.TransactionInput) (*domain.Transaction, error) {
	var out domain.Transaction
	if err := c.Client.post(ctx, "/transactions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c TransactionsClient) Update(ctx context.Context, id string, in domain.TransactionInput) (*domain.Transaction, error) {
	var out domain.Transaction
	if err := c.Client.put(ctx, "/transactions/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c TransactionsClient) Delete(ctx context.Context, id string) error {
	return c.Client.delete(ctx, "/transactions/"+id)
}

// Summary fetches the server-computed financial summary. Screens showing
// totals use this, not a local recomputation, so both ends agree.
func (c TransactionsClient) Summary(ctx context.Context) (*domain.FinancialSummary, error) {
	var out domain.FinancialSummary
	if err := c.Client.get(ctx, "/transactions/stats/summary", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
