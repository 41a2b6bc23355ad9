package api

import (
	"context"
	"net/http"

	"github.com/mr-fahad-03/grace-tailor/internal/domain"
)

// AuthClient talks to the auth endpoints. Both calls bypass the global 401
// hook: a rejected login or verify is reported to the caller, which decides
// what to clear.
type AuthClient struct {
	Client *Client
}

type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (a AuthClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := a.Client.do(ctx, http.MethodPost, "/auth/login", body, &out, requestOptions{skipAuthHook: true}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a AuthClient) Verify(ctx context.Context) (*domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	if err := a.Client.do(ctx, http.MethodGet, "/auth/verify", nil, &out, requestOptions{skipAuthHook: true}); err != nil {
		return nil, err
	}
	return &out.User, nil
}
