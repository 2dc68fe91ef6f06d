package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/apis/backend/failure"
	"shopadmin/internal/apis/backend/responses"
	"shopadmin/internal/apis/backend/usecases"
	"shopadmin/internal/repository"
	jsonfile "shopadmin/internal/repository/json"
)

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage products",
	}
	cmd.AddCommand(
		newProductsListCmd(a),
		newProductsGetCmd(a),
		newProductsCreateCmd(a),
		newProductsEditCmd(a),
		newProductsDeleteCmd(a),
		newProductsExportCmd(a),
	)
	return cmd
}

func newProductsListCmd(a *app) *cobra.Command {
	var (
		page       int
		shopID     int64
		categoryID int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of products, optionally of one shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := zeroBased(page)
			if err != nil {
				return err
			}

			var out responses.Page[backend.Product]
			if shopID > 0 {
				var category *backend.Category
				if categoryID > 0 {
					category = &backend.Category{ID: categoryID}
				}
				out, err = usecases.NewShopProducts(a.svcs.Products, a.log).
					List(cmd.Context(), shopID, category, p, a.cfg.Backend.ShopProductsPageSize)
			} else {
				if categoryID > 0 {
					return fmt.Errorf("--category needs --shop")
				}
				out, err = a.svcs.Products.List(cmd.Context(), p, a.cfg.Backend.PageSize)
			}
			if err != nil {
				return fmt.Errorf("list products: %w", err)
			}
			return printPage(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().Int64Var(&shopID, "shop", 0, "list the products of this shop")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "with --shop, keep one category (0 means all)")
	return cmd
}

func newProductsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := a.svcs.Products.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get product %d: %w", id, err)
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
}

func newProductsCreateCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product from a JSON file",
		Long:  "Create a product from a JSON file. The price is given in major units, e.g. 19.99.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readPayload[backend.MinimalProduct](file)
			if err != nil {
				return err
			}
			in.ID = 0
			p, err := a.svcs.Products.Create(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("create product: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON payload")
	return cmd
}

func newProductsEditCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Replace a product from a JSON file carrying its id",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readPayload[backend.MinimalProduct](file)
			if err != nil {
				return err
			}
			p, err := a.svcs.Products.Edit(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("edit product: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON payload")
	return cmd
}

func newProductsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.svcs.Products.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete product %d: %w", id, err)
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"id": id, "deleted": true})
		},
	}
}

func newProductsExportCmd(a *app) *cobra.Command {
	var (
		out     string
		shopID  int64
		all     bool
		workers int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save the products of one shop, or of every shop, to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			if (shopID > 0) == all {
				return fmt.Errorf("exactly one of --shop and --all is required")
			}

			ctx := cmd.Context()
			shopIDs := []int64{shopID}
			if all {
				shops, err := usecases.Collect(ctx, func(ctx context.Context, page int) (responses.Page[backend.Shop], error) {
					return a.svcs.Shops.List(ctx, page, a.cfg.Backend.PageSize)
				}, a.cfg.Export.MaxPages)
				if err != nil {
					return fmt.Errorf("export products: %w", err)
				}
				shopIDs = shopIDs[:0]
				for _, s := range shops {
					shopIDs = append(shopIDs, s.ID)
				}
			}
			if workers <= 0 {
				workers = a.cfg.Export.Workers
			}

			scan := &usecases.ProductsScan{
				Products: a.svcs.Products,
				Log:      a.log,
				Workers:  workers,
				PageSize: a.cfg.Backend.ShopProductsPageSize,
				MaxPages: a.cfg.Export.MaxPages,
				Progress: 2 * time.Second,
			}
			results := scan.Run(ctx, shopIDs)
			if !all && results[0].Err != nil {
				return fmt.Errorf("export products: %w", results[0].Err)
			}
			if err := usecases.Unavailable(results); err != nil {
				return fmt.Errorf("export products: %w", err)
			}
			if a.mode.Active() {
				return fmt.Errorf("export products: %w", failure.ErrUnavailable)
			}

			products := usecases.Flatten(results)
			res := repository.ProductsResult{
				FetchedAt: time.Now().UTC().Format(time.RFC3339),
				Backend:   a.cfg.Backend.BaseURL,
				ShopID:    shopID,
				Products:  products,
				Count:     len(products),
			}
			if err := jsonfile.New(out, a.log).SaveProducts(ctx, res); err != nil {
				return fmt.Errorf("save products: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %d products to %s\n", res.Count, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file")
	cmd.Flags().Int64Var(&shopID, "shop", 0, "shop id")
	cmd.Flags().BoolVar(&all, "all", false, "export the products of every shop")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent shops with --all (defaults to export.workers)")
	return cmd
}
