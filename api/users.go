package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"pixelarium/domain"
)

// Users fetches every registered user.
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	return request[[]domain.User](ctx, c, http.MethodGet, "/users", nil)
}

// User fetches a user by id.
func (c *Client) User(ctx context.Context, id int64) (domain.User, error) {
	return request[domain.User](ctx, c, http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
}

// UserByEmail fetches a user by email address.
func (c *Client) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return request[domain.User](ctx, c, http.MethodGet, "/users/email/"+url.PathEscape(email), nil)
}

// CreateUser registers a new user and returns the created record.
func (c *Client) CreateUser(ctx context.Context, u domain.CreateUser) (domain.User, error) {
	return request[domain.User](ctx, c, http.MethodPost, "/users", u)
}

// Login authenticates by email and password. A wrong password surfaces as
// an APIError with status 401.
func (c *Client) Login(ctx context.Context, email, password string) (domain.User, error) {
	body := domain.Credentials{Email: email, Password: password}
	return request[domain.User](ctx, c, http.MethodPost, "/users/login", body)
}

// UpdateUser replaces a user's profile.
func (c *Client) UpdateUser(ctx context.Context, id int64, u domain.CreateUser) (domain.User, error) {
	return request[domain.User](ctx, c, http.MethodPut, fmt.Sprintf("/users/%d", id), u)
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return requestNoContent(ctx, c, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
}
