package store

import (
	"os"
	"path/filepath"
	"testing"

	"pixelarium/domain"
)

func cartPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "cart.json")
}

func sale(v float64) *float64 { return &v }

func TestCartAddMergesByProductID(t *testing.T) {
	c := NewCartStore(cartPath(t), nil)
	p := domain.Product{ID: 1, Name: "Zelda", Price: 10}

	c.Add(p, 2)
	c.Add(p, 3)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", lines[0].Quantity)
	}
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	c := NewCartStore(cartPath(t), nil)
	c.Add(domain.Product{ID: 3, Name: "c"}, 1)
	c.Add(domain.Product{ID: 1, Name: "a"}, 1)
	c.Add(domain.Product{ID: 2, Name: "b"}, 1)
	c.Add(domain.Product{ID: 3, Name: "c"}, 1) // merge must not reshuffle

	var ids []int64
	for _, l := range c.Lines() {
		ids = append(ids, l.Product.ID)
	}
	want := []int64{3, 1, 2}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("order changed: got %v, want %v", ids, want)
		}
	}
}

func TestCartRemoveAbsentIsNoOp(t *testing.T) {
	c := NewCartStore(cartPath(t), nil)
	c.Add(domain.Product{ID: 1}, 1)

	c.Remove(99)

	if len(c.Lines()) != 1 {
		t.Fatal("remove of absent id changed the cart")
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	c := NewCartStore(cartPath(t), nil)
	c.Add(domain.Product{ID: 1, Stock: 2}, 1)

	// verbatim, even beyond stock: validation is the caller's job
	c.UpdateQuantity(1, 50)
	if got := c.Lines()[0].Quantity; got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}

	c.UpdateQuantity(99, 3) // absent id: no-op
	if len(c.Lines()) != 1 {
		t.Fatal("update of absent id changed the cart")
	}
}

func TestCartTotals(t *testing.T) {
	c := NewCartStore(cartPath(t), nil)
	c.Add(domain.Product{ID: 1, Price: 100}, 2)
	c.Add(domain.Product{ID: 2, Price: 50, SalePrice: sale(40)}, 3)

	if got := c.TotalItems(); got != 5 {
		t.Errorf("TotalItems = %d, want 5", got)
	}
	// 2*100 + 3*40
	if got := c.TotalPrice(); got != 320 {
		t.Errorf("TotalPrice = %v, want 320", got)
	}
}

// The full lifecycle from the product page: add, add again, set quantity,
// remove.
func TestCartLifecycle(t *testing.T) {
	c := NewCartStore(cartPath(t), nil)
	p := domain.Product{ID: 1, Price: 10}

	c.Add(p, 2)
	if c.TotalItems() != 2 || c.TotalPrice() != 20 {
		t.Fatalf("after add: items=%d price=%v", c.TotalItems(), c.TotalPrice())
	}

	c.Add(p, 3)
	if c.TotalItems() != 5 {
		t.Fatalf("after second add: items=%d", c.TotalItems())
	}

	c.UpdateQuantity(1, 1)
	if c.TotalItems() != 1 {
		t.Fatalf("after update: items=%d", c.TotalItems())
	}

	c.Remove(1)
	if len(c.Lines()) != 0 {
		t.Fatalf("cart not empty: %+v", c.Lines())
	}
}

func TestCartPersistsAcrossRestarts(t *testing.T) {
	path := cartPath(t)

	c := NewCartStore(path, nil)
	c.Add(domain.Product{ID: 1, Name: "Zelda", Price: 59.99}, 2)
	c.Add(domain.Product{ID: 2, Name: "Mouse", Price: 25}, 1)

	restored := NewCartStore(path, nil)
	if restored.TotalItems() != 3 {
		t.Fatalf("restored TotalItems = %d, want 3", restored.TotalItems())
	}
	if restored.Lines()[0].Product.Name != "Zelda" {
		t.Fatalf("restored order wrong: %+v", restored.Lines())
	}
}

func TestCartClearPersists(t *testing.T) {
	path := cartPath(t)

	c := NewCartStore(path, nil)
	c.Add(domain.Product{ID: 1}, 4)
	c.Clear()

	restored := NewCartStore(path, nil)
	if len(restored.Lines()) != 0 {
		t.Fatalf("expected empty restored cart, got %+v", restored.Lines())
	}
}

func TestCartCorruptFileStartsEmpty(t *testing.T) {
	path := cartPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewCartStore(path, nil)
	if len(c.Lines()) != 0 {
		t.Fatalf("expected empty cart, got %+v", c.Lines())
	}
	// the corrupt record is discarded, not kept around
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt cart file should have been removed")
	}
}

func TestCartMissingFileStartsEmpty(t *testing.T) {
	c := NewCartStore(cartPath(t), nil)
	if len(c.Lines()) != 0 {
		t.Fatalf("expected empty cart, got %+v", c.Lines())
	}
}
