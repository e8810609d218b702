// Package cli provides the Cobra-based terminal storefront for Pixelarium.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pixelarium/api"
	"pixelarium/catalog"
	"pixelarium/domain"
	"pixelarium/store"
	"pixelarium/util"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pixelarium",
		Short: "Terminal storefront for the Pixelarium game shop",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject the client and stores
			if apiClient != nil && sessionStore != nil && cartStore != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			httpClient := &http.Client{Timeout: viper.GetDuration("timeout")}
			apiClient = api.New(viper.GetString("api-url"), httpClient, slog.Default())

			dataDir := viper.GetString("data-dir")
			sessionStore = store.NewSessionStore(filepath.Join(dataDir, "user.json"), apiClient, slog.Default())
			cartStore = store.NewCartStore(filepath.Join(dataDir, "cart.json"), slog.Default())
			return nil
		},
	}

	apiClient    *api.Client
	sessionStore *store.SessionStore
	cartStore    *store.CartStore
)

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("pixelarium> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("api-url", "http://localhost:8080/api", "commerce API base URL")
	rootCmd.PersistentFlags().String("data-dir", "data", "directory for the session and cart files")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP timeout (0 = none)")

	viper.BindPFlag("api-url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.SetEnvPrefix("PIXELARIUM")
	viper.AutomaticEnv()

	// products
	var (
		pCategory, pSort, pOutput string
		pOnSale                   bool
		pPage, pPageSize          int
		pMin, pMax                float64
	)
	productsCmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			state := catalog.NewFilterState()
			if pCategory != "" && !strings.EqualFold(pCategory, string(catalog.CategoryAll)) {
				cat, err := domain.ParseCategory(pCategory)
				if err != nil {
					return err
				}
				state = state.WithCategory(cat)
			}
			if pOnSale {
				state = state.WithOnlyOnSale(true)
			}
			if pSort != "" {
				so, ok := catalog.ParseSortOrder(pSort)
				if !ok {
					return fmt.Errorf("unknown sort order: %s", pSort)
				}
				state = state.WithSort(so)
			}
			if cmd.Flags().Changed("page-size") {
				state.PageSize = pPageSize
			}
			state = state.WithPage(pPage)

			minSet := cmd.Flags().Changed("min-price")
			maxSet := cmd.Flags().Changed("max-price")

			// A price range is a separate server-side query; the fetched
			// list is not narrowed by price again client-side.
			var (
				list []domain.Product
				err  error
			)
			switch {
			case minSet && maxSet:
				list, err = apiClient.ProductsByPriceRange(context.Background(), pMin, pMax)
			case minSet || maxSet:
				return errors.New("--min-price and --max-price must be given together")
			default:
				list, err = apiClient.Products(context.Background())
			}
			if err != nil {
				return err
			}

			page := catalog.View(list, state)
			if pOutput == "json" {
				printJSON(page.Items)
				return nil
			}
			for _, p := range page.Items {
				printProductRow(p)
			}
			fmt.Printf("page %d of %d (%d products)\n", state.Page, page.TotalPages, page.TotalItems)
			return nil
		},
	}
	productsCmd.Flags().StringVar(&pCategory, "category", "", "category (NINTENDO_SWITCH|NINTENDO_SWITCH_2|PC|APPLE|ACCESSORIES|ALL)")
	productsCmd.Flags().BoolVar(&pOnSale, "on-sale", false, "only discounted products")
	productsCmd.Flags().StringVar(&pSort, "sort", "", "sort order (price-asc|price-desc|name-asc)")
	productsCmd.Flags().IntVar(&pPage, "page", 1, "page number")
	productsCmd.Flags().IntVar(&pPageSize, "page-size", catalog.DefaultPageSize, "products per page")
	productsCmd.Flags().Float64Var(&pMin, "min-price", 0, "minimum price (server-side filter)")
	productsCmd.Flags().Float64Var(&pMax, "max-price", 0, "maximum price (server-side filter)")
	productsCmd.Flags().StringVar(&pOutput, "output", "", "output format")
	rootCmd.AddCommand(productsCmd)

	// product
	productCmd := &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := apiClient.Product(context.Background(), id)
			if err != nil {
				if domain.IsNotFound(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			printJSON(p)
			return nil
		},
	}
	rootCmd.AddCommand(productCmd)

	// sale-offers
	saleOffersCmd := &cobra.Command{
		Use:   "sale-offers",
		Short: "List the current discounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := apiClient.SaleOffers(context.Background())
			if err != nil {
				return err
			}
			for _, p := range list {
				printProductRow(p)
			}
			return nil
		},
	}
	rootCmd.AddCommand(saleOffersCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func printProductRow(p domain.Product) {
	price := util.FormatPrice(p.EffectivePrice())
	if p.OnSale() {
		price += " (was " + util.FormatPrice(p.Price) + ")"
	}
	fmt.Printf("%d | %s | %s | %s | stock %d\n", p.ID, p.Name, p.Category, price, p.Stock)
}
