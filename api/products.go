package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"pixelarium/domain"
)

// Products fetches the full catalog.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	return request[[]domain.Product](ctx, c, http.MethodGet, "/products", nil)
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id int64) (domain.Product, error) {
	return request[domain.Product](ctx, c, http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
}

// CreateProduct adds a product to the catalog.
func (c *Client) CreateProduct(ctx context.Context, p domain.CreateProduct) (domain.Product, error) {
	return request[domain.Product](ctx, c, http.MethodPost, "/products", p)
}

// UpdateProduct replaces a catalog product.
func (c *Client) UpdateProduct(ctx context.Context, id int64, p domain.CreateProduct) (domain.Product, error) {
	return request[domain.Product](ctx, c, http.MethodPut, fmt.Sprintf("/products/%d", id), p)
}

// DeleteProduct removes a catalog product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return requestNoContent(ctx, c, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil)
}

// ProductsByCategory fetches the products of one catalog section.
func (c *Client) ProductsByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	return request[[]domain.Product](ctx, c, http.MethodGet, "/products/category/"+string(category), nil)
}

// ProductsByPriceRange fetches products whose price falls within [min, max].
// The filtering happens server-side; the result is not narrowed again by
// the catalog view model.
func (c *Client) ProductsByPriceRange(ctx context.Context, min, max float64) ([]domain.Product, error) {
	q := url.Values{}
	q.Set("min", fmt.Sprintf("%g", min))
	q.Set("max", fmt.Sprintf("%g", max))
	return request[[]domain.Product](ctx, c, http.MethodGet, "/products/price-range?"+q.Encode(), nil)
}

// SaleOffers fetches the products currently discounted server-side.
func (c *Client) SaleOffers(ctx context.Context) ([]domain.Product, error) {
	return request[[]domain.Product](ctx, c, http.MethodGet, "/products/sale-offers", nil)
}
