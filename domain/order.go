package domain

// OrderStatus enumerates the lifecycle states an order moves through
// server-side. The client only reads and displays them.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "DRAFT"
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusSent      OrderStatus = "SENT"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

// Order is a placed order as reported by the remote API. Orders are never
// constructed or mutated client-side; creation goes through CreateOrder.
type Order struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"userId"`
	OrderDate  string      `json:"orderDate"`
	TotalPrice float64     `json:"totalPrice"`
	Status     OrderStatus `json:"status"`
	OrderItems []OrderItem `json:"orderItems"`
}

// OrderItem is one line of an order: the unit price is the effective price
// at time of purchase, not a live catalog lookup.
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateOrder is the order placement payload.
type CreateOrder struct {
	UserID     int64       `json:"userId"`
	OrderItems []OrderItem `json:"orderItems"`
}
