package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pixelarium/domain"
)

func TestProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/products" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("missing content type, got %q", ct)
		}
		io.WriteString(w, `[{"id":1,"name":"Mario Kart","price":59.99,"stock":3,"category":"NINTENDO_SWITCH"}]`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	products, err := c.Products(context.Background())
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Mario Kart" {
		t.Fatalf("unexpected result: %+v", products)
	}
	if products[0].SalePrice != nil {
		t.Fatal("absent salePrice should decode to nil")
	}
}

func TestErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "ignored body", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	_, err := c.Product(context.Background(), 42)
	if err == nil {
		t.Fatal("expected an error")
	}
	var ae *domain.APIError
	if !errors.As(err, &ae) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if ae.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", ae.StatusCode)
	}
	if ae.Status != "Not Found" {
		t.Errorf("expected status text, got %q", ae.Status)
	}
}

func TestLoginBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var creds domain.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if creds.Email != "ana@example.com" || creds.Password != "secret" {
			t.Errorf("unexpected credentials: %+v", creds)
		}
		io.WriteString(w, `{"id":7,"userName":"ana","email":"ana@example.com","registerTime":"2026-01-01T00:00:00"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	u, err := c.Login(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if u.ID != 7 || u.UserName != "ana" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestLoginUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	_, err := c.Login(context.Background(), "ana@example.com", "wrong")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestProductsByPriceRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/price-range" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("min") != "10" || q.Get("max") != "50.5" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	products, err := c.ProductsByPriceRange(context.Background(), 10, 50.5)
	if err != nil {
		t.Fatalf("ProductsByPriceRange failed: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty list, got %+v", products)
	}
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var co domain.CreateOrder
		if err := json.NewDecoder(r.Body).Decode(&co); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if co.UserID != 7 || len(co.OrderItems) != 1 || co.OrderItems[0].ProductID != 1 {
			t.Errorf("unexpected order: %+v", co)
		}
		io.WriteString(w, `{"id":100,"userId":7,"orderDate":"2026-08-30","totalPrice":20,"status":"PENDING","orderItems":[{"productId":1,"quantity":2,"price":10}]}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	o, err := c.CreateOrder(context.Background(), domain.CreateOrder{
		UserID:     7,
		OrderItems: []domain.OrderItem{{ProductID: 1, Quantity: 2, Price: 10}},
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	if o.ID != 100 || o.Status != domain.OrderStatusPending {
		t.Fatalf("unexpected order: %+v", o)
	}
}

func TestDeleteProductNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/products/3" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	if err := c.DeleteProduct(context.Background(), 3); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := New(srv.URL+"/", nil, nil)
	if _, err := c.Products(context.Background()); err != nil {
		t.Fatalf("Products failed: %v", err)
	}
}
