package api

import (
	"context"

	"github.com/mr-fahad-03/grace-tailor/internal/domain"
)

type StaffClient struct {
	Client *Client
}

func (c StaffClient) List(ctx context.Context) ([]domain.StaffMember, error) {
	var out []domain.StaffMember
	if err := c.Client.get(ctx, "/staff", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c StaffClient) Get(ctx context.Context, id string) (*domain.StaffMember, error) {
	var out domain.StaffMember
	if err := c.Client.get(ctx, "/staff/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c StaffClient) Create(ctx context.Context, in domain.StaffInput) (*domain.StaffMember, error) {
	var out domain.StaffMember
	if err := c.Client.post(ctx, "/staff", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c StaffClient) Update(ctx context.Context, id string, in domain.StaffInput) (*domain.StaffMember, error) {
	var out domain.StaffMember
	if err := c.Client.put(ctx, "/staff/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a staff member only. Payments recorded against the member
// stay on the server untouched.
func (c StaffClient) Delete(ctx context.Context, id string) error {
	return c.Client.delete(ctx, "/staff/"+id)
}
