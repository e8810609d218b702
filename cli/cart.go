package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"pixelarium/domain"
	"pixelarium/util"
)

// cartQuantity returns the quantity already in the cart for a product id,
// zero when absent.
func cartQuantity(productID int64) int {
	for _, l := range cartStore.Lines() {
		if l.Product.ID == productID {
			return l.Quantity
		}
	}
	return 0
}

func init() {
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}
	rootCmd.AddCommand(cartCmd)

	// cart add
	var addQty int
	addCmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if addQty < 1 {
				return errors.New("quantity must be at least 1")
			}
			p, err := apiClient.Product(context.Background(), id)
			if err != nil {
				return err
			}
			// Stock is enforced here, not in the store.
			if cartQuantity(id)+addQty > p.Stock {
				return fmt.Errorf("only %d of %q in stock", p.Stock, p.Name)
			}
			cartStore.Add(p, addQty)
			slog.Info("added to cart", "product_id", id, "quantity", addQty)
			fmt.Printf("added %d x %s (%d items in cart)\n", addQty, p.Name, cartStore.TotalItems())
			return nil
		},
	}
	addCmd.Flags().IntVar(&addQty, "quantity", 1, "quantity")
	cartCmd.AddCommand(addCmd)

	// cart remove
	removeCmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cartStore.Remove(id)
			fmt.Printf("removed (%d items in cart)\n", cartStore.TotalItems())
			return nil
		},
	}
	cartCmd.AddCommand(removeCmd)

	// cart update
	var updateQty int
	updateCmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Set the quantity of a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("quantity") {
				return errors.New("--quantity required")
			}
			if updateQty < 0 {
				return errors.New("quantity cannot be negative")
			}
			current := cartQuantity(id)
			if current == 0 {
				return fmt.Errorf("product %d is not in the cart", id)
			}
			if updateQty == 0 {
				cartStore.Remove(id)
				fmt.Printf("removed (%d items in cart)\n", cartStore.TotalItems())
				return nil
			}
			for _, l := range cartStore.Lines() {
				if l.Product.ID == id && updateQty > l.Product.Stock {
					return fmt.Errorf("only %d of %q in stock", l.Product.Stock, l.Product.Name)
				}
			}
			cartStore.UpdateQuantity(id, updateQty)
			fmt.Printf("updated (%d items in cart)\n", cartStore.TotalItems())
			return nil
		},
	}
	updateCmd.Flags().IntVar(&updateQty, "quantity", 0, "new quantity (0 removes the line)")
	cartCmd.AddCommand(updateCmd)

	// cart clear
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cartStore.Clear()
			fmt.Println("cart cleared")
			return nil
		},
	}
	cartCmd.AddCommand(clearCmd)

	// cart show
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the cart contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := cartStore.Lines()
			if len(lines) == 0 {
				fmt.Println("cart is empty")
				return nil
			}
			for _, l := range lines {
				fmt.Printf("%d | %s | %d x %s = %s\n",
					l.Product.ID, l.Product.Name, l.Quantity,
					util.FormatPrice(l.Product.EffectivePrice()),
					util.FormatPrice(l.Product.EffectivePrice()*float64(l.Quantity)))
			}
			fmt.Printf("%d items, total %s\n", cartStore.TotalItems(), util.FormatPrice(cartStore.TotalPrice()))
			return nil
		},
	}
	cartCmd.AddCommand(showCmd)

	// checkout
	checkoutCmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order with the cart contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := sessionStore.Current()
			if user == nil {
				return errors.New("login required")
			}
			lines := cartStore.Lines()
			if len(lines) == 0 {
				return errors.New("cart is empty")
			}

			order := domain.CreateOrder{UserID: user.ID}
			for _, l := range lines {
				order.OrderItems = append(order.OrderItems, domain.OrderItem{
					ProductID: l.Product.ID,
					Quantity:  l.Quantity,
					Price:     l.Product.EffectivePrice(),
				})
			}

			start := time.Now()
			placed, err := apiClient.CreateOrder(context.Background(), order)
			if err != nil {
				slog.Error("checkout failed", "user_id", user.ID, "error", err)
				return err
			}
			// The cart survives a failed checkout; only success clears it.
			cartStore.Clear()
			slog.Info("order placed",
				"order_id", placed.ID,
				"user_id", user.ID,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			printJSON(placed)
			return nil
		},
	}
	rootCmd.AddCommand(checkoutCmd)
}
