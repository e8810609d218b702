package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"pixelarium/domain"
)

// Orders fetches every order.
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	return request[[]domain.Order](ctx, c, http.MethodGet, "/orders", nil)
}

// Order fetches an order by id.
func (c *Client) Order(ctx context.Context, id int64) (domain.Order, error) {
	return request[domain.Order](ctx, c, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil)
}

// CreateOrder places an order and returns the server's view of it,
// including the assigned id, date, status and total.
func (c *Client) CreateOrder(ctx context.Context, o domain.CreateOrder) (domain.Order, error) {
	return request[domain.Order](ctx, c, http.MethodPost, "/orders", o)
}

// UpdateOrder replaces an order's line items.
func (c *Client) UpdateOrder(ctx context.Context, id int64, o domain.CreateOrder) (domain.Order, error) {
	return request[domain.Order](ctx, c, http.MethodPut, fmt.Sprintf("/orders/%d", id), o)
}

// DeleteOrder removes an order.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return requestNoContent(ctx, c, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil)
}

// OrdersByUser fetches the orders belonging to one user.
func (c *Client) OrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return request[[]domain.Order](ctx, c, http.MethodGet, fmt.Sprintf("/orders/user/%d", userID), nil)
}

// OrdersByStatus fetches all orders in the given status.
func (c *Client) OrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	return request[[]domain.Order](ctx, c, http.MethodGet, "/orders/status/"+string(status), nil)
}

// OrdersByDate fetches the orders placed on the given date (YYYY-MM-DD,
// passed through verbatim).
func (c *Client) OrdersByDate(ctx context.Context, date string) ([]domain.Order, error) {
	return request[[]domain.Order](ctx, c, http.MethodGet, "/orders/date/"+url.PathEscape(date), nil)
}

// ChangeOrderStatus moves an order to the given status.
func (c *Client) ChangeOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (domain.Order, error) {
	return request[domain.Order](ctx, c, http.MethodPut, fmt.Sprintf("/orders/%d/status/%s", id, status), nil)
}

// CancelOrder cancels an order.
func (c *Client) CancelOrder(ctx context.Context, id int64) (domain.Order, error) {
	return request[domain.Order](ctx, c, http.MethodPost, fmt.Sprintf("/orders/%d/cancel", id), nil)
}
