// Package domain defines the core types shared by the storefront client.
package domain

import "strings"

// Category identifies a catalog section. Values match the remote API's
// enumerated names.
type Category string

const (
	CategoryNintendoSwitch  Category = "NINTENDO_SWITCH"
	CategoryNintendoSwitch2 Category = "NINTENDO_SWITCH_2"
	CategoryPC              Category = "PC"
	CategoryApple           Category = "APPLE"
	CategoryAccessories     Category = "ACCESSORIES"
)

// Categories returns every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryNintendoSwitch,
		CategoryNintendoSwitch2,
		CategoryPC,
		CategoryApple,
		CategoryAccessories,
	}
}

// ParseCategory normalizes user input ("pc", "Apple") to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", NewInvalidCategoryError(s)
}

// Product is a read-only snapshot of a catalog product. The authoritative
// copy lives server-side; the client never mutates one.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	SalePrice   *float64 `json:"salePrice,omitempty"`
	ImagePath   string   `json:"imagePath,omitempty"`
	Stock       int      `json:"stock"`
	Category    Category `json:"category"`
}

// OnSale reports whether the product has a meaningful discount: a sale
// price that is present and strictly below the base price. A sale price at
// or above the base price is tolerated and treated as no discount.
func (p Product) OnSale() bool {
	return p.SalePrice != nil && *p.SalePrice < p.Price
}

// EffectivePrice returns the sale price when OnSale, else the base price.
func (p Product) EffectivePrice() float64 {
	if p.OnSale() {
		return *p.SalePrice
	}
	return p.Price
}

// CreateProduct is the payload for creating or replacing a catalog product.
type CreateProduct struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	SalePrice   *float64 `json:"salePrice,omitempty"`
	ImagePath   string   `json:"imagePath,omitempty"`
	Stock       int      `json:"stock"`
	Category    Category `json:"category"`
}

// CartLine pairs a product snapshot with a quantity. The cart holds at most
// one line per product id.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
