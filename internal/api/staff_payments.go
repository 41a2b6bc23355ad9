package api

import (
	"context"

	"github.com/mr-fahad-03/grace-tailor/internal/domain"
)

// StaffPaymentsClient covers the two operations the backend exposes for
// payments: list by staff member and create. Payments are immutable after
// creation.
type StaffPaymentsClient struct {
	Client *Client
}

func (c StaffPaymentsClient) ListByStaff(ctx context.Context, staffID string) ([]domain.StaffPayment, error) {
	var out []domain.StaffPayment
	if err := c.Client.get(ctx, "/staff-payments/staff/"+staffID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c StaffPaymentsClient) Create(ctx context.Context, in domain.StaffPaymentInput) (*domain.StaffPayment, error) {
	var out domain.StaffPayment
	if err := c.Client.post(ctx, "/staff-payments", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
