package store

import (
	"log/slog"
	"os"

	"pixelarium/domain"
)

// CartStore holds the shopping cart: an ordered collection of lines, one
// per product id, persisted to a JSON file after every mutation.
//
// The store trusts its callers: quantities are stored verbatim, without
// clamping to stock or to a minimum. Input validation belongs to the
// presentation layer.
type CartStore struct {
	path   string
	logger *slog.Logger
	lines  []domain.CartLine
}

// NewCartStore constructs the store and restores any persisted cart. A
// corrupt record is deleted and the cart starts empty; restoration never
// fails outward.
func NewCartStore(path string, logger *slog.Logger) *CartStore {
	if logger == nil {
		logger = slog.Default()
	}
	c := &CartStore{path: path, logger: logger}

	var lines []domain.CartLine
	found, err := loadJSON(path, &lines)
	switch {
	case err != nil:
		c.logger.Warn("discarding unreadable cart record",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		_ = os.Remove(path)
	case found:
		c.lines = lines
	}
	return c
}

// Add merges quantity into the existing line for the product, or appends a
// new line at the end. Existing lines keep their relative order.
func (c *CartStore) Add(product domain.Product, quantity int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += quantity
			c.persist()
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{Product: product, Quantity: quantity})
	c.persist()
}

// Remove deletes the line for the product id. An absent id is a no-op.
func (c *CartStore) Remove(productID int64) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist()
			return
		}
	}
}

// UpdateQuantity replaces the quantity of the matching line verbatim. An
// absent id is a no-op.
func (c *CartStore) UpdateQuantity(productID int64, quantity int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// Clear empties the cart.
func (c *CartStore) Clear() {
	c.lines = nil
	c.persist()
}

// Lines returns a copy of the cart in insertion order.
func (c *CartStore) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalPrice sums effective price times quantity over all lines.
func (c *CartStore) TotalPrice() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Product.EffectivePrice() * float64(l.Quantity)
	}
	return total
}

// TotalItems sums the quantities of all lines.
func (c *CartStore) TotalItems() int {
	var total int
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

func (c *CartStore) persist() {
	// Persist the empty cart as [] rather than null so a restore
	// distinguishes "saved empty" from "never saved".
	lines := c.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	if err := saveJSON(c.path, lines); err != nil {
		// Mutations are total: a failed write costs durability, not state.
		c.logger.Warn("persisting cart failed",
			slog.String("path", c.path),
			slog.String("error", err.Error()),
		)
	}
}
