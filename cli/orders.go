package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pixelarium/domain"
	"pixelarium/util"
)

func init() {
	// orders
	var status, date string
	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "List your orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := sessionStore.Current()
			if user == nil {
				return errors.New("login required")
			}

			var (
				list []domain.Order
				err  error
			)
			switch {
			case status != "" && date != "":
				return errors.New("--status and --date are mutually exclusive")
			case status != "":
				list, err = apiClient.OrdersByStatus(context.Background(),
					domain.OrderStatus(strings.ToUpper(status)))
			case date != "":
				list, err = apiClient.OrdersByDate(context.Background(), date)
			default:
				list, err = apiClient.OrdersByUser(context.Background(), user.ID)
			}
			if err != nil {
				return err
			}

			for _, o := range list {
				if o.UserID != user.ID {
					continue
				}
				fmt.Printf("%d | %s | %s | %s\n",
					o.ID, o.OrderDate, o.Status, util.FormatPrice(o.TotalPrice))
			}
			return nil
		},
	}
	ordersCmd.Flags().StringVar(&status, "status", "", "filter by status (DRAFT|PENDING|SENT|DELIVERED)")
	ordersCmd.Flags().StringVar(&date, "date", "", "filter by date (YYYY-MM-DD)")
	rootCmd.AddCommand(ordersCmd)

	// order
	orderCmd := &cobra.Command{
		Use:   "order <id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			o, err := apiClient.Order(context.Background(), id)
			if err != nil {
				if domain.IsNotFound(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			printJSON(o)
			return nil
		},
	}
	rootCmd.AddCommand(orderCmd)

	// order cancel
	cancelCmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			o, err := apiClient.CancelOrder(context.Background(), id)
			if err != nil {
				return err
			}
			fmt.Printf("order %d is now %s\n", o.ID, o.Status)
			return nil
		},
	}
	orderCmd.AddCommand(cancelCmd)
}
