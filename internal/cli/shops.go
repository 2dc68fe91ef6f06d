package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/apis/backend/responses"
	"shopadmin/internal/apis/backend/usecases"
	"shopadmin/internal/repository"
	jsonfile "shopadmin/internal/repository/json"
)

func newShopsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shops",
		Short: "Manage shops",
	}
	cmd.AddCommand(
		newShopsListCmd(a),
		newShopsGetCmd(a),
		newShopsCreateCmd(a),
		newShopsEditCmd(a),
		newShopsDeleteCmd(a),
		newShopsExportCmd(a),
	)
	return cmd
}

func newShopsListCmd(a *app) *cobra.Command {
	var (
		page          int
		search        string
		sort          string
		inVacations   string
		createdAfter  string
		createdBefore string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of shops",
		Long: "List one page of shops. Only one of --search, --sort and the filters applies, " +
			"in that order of precedence.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := zeroBased(page)
			if err != nil {
				return err
			}
			q := usecases.ShopQuery{Page: p, Size: a.cfg.Backend.PageSize, Search: search}

			if sort != "" {
				if q.Sort, err = backend.ParseSortKey(sort); err != nil {
					return err
				}
			}
			if inVacations != "" {
				v, err := parseBoolFlag("in-vacations", inVacations)
				if err != nil {
					return err
				}
				q.Filters.InVacations = &v
			}
			if createdAfter != "" {
				t, err := usecases.ParseFilterDate(createdAfter)
				if err != nil {
					return err
				}
				q.Filters.CreatedAfter = &t
			}
			if createdBefore != "" {
				t, err := usecases.ParseFilterDate(createdBefore)
				if err != nil {
					return err
				}
				q.Filters.CreatedBefore = &t
			}

			out, err := usecases.NewShopListing(a.svcs.Shops, a.log).List(cmd.Context(), q)
			if err != nil {
				return fmt.Errorf("list shops: %w", err)
			}
			return printPage(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().StringVar(&search, "search", "", "filter by shop name")
	cmd.Flags().StringVar(&sort, "sort", "", "sort key (name, createdAt, nbProducts)")
	cmd.Flags().StringVar(&inVacations, "in-vacations", "", "true or false")
	cmd.Flags().StringVar(&createdAfter, "created-after", "", "YYYY-MM-DD")
	cmd.Flags().StringVar(&createdBefore, "created-before", "", "YYYY-MM-DD")
	return cmd
}

func newShopsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one shop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			shop, err := a.svcs.Shops.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get shop %d: %w", id, err)
			}
			return printJSON(cmd.OutOrStdout(), shop)
		},
	}
}

func newShopsCreateCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a shop from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readPayload[backend.MinimalShop](file)
			if err != nil {
				return err
			}
			in.ID = 0
			shop, err := a.svcs.Shops.Create(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("create shop: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), shop)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON payload")
	return cmd
}

func newShopsEditCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Replace a shop from a JSON file carrying its id",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readPayload[backend.MinimalShop](file)
			if err != nil {
				return err
			}
			shop, err := a.svcs.Shops.Edit(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("edit shop: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), shop)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON payload")
	return cmd
}

func newShopsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a shop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.svcs.Shops.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete shop %d: %w", id, err)
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"id": id, "deleted": true})
		},
	}
}

func newShopsExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save every shop to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = a.cfg.Export.OutputFile
			}
			size := a.cfg.Backend.PageSize
			shops, err := usecases.Collect(cmd.Context(), func(ctx context.Context, page int) (responses.Page[backend.Shop], error) {
				return a.svcs.Shops.List(ctx, page, size)
			}, a.cfg.Export.MaxPages)
			if err != nil {
				return fmt.Errorf("export shops: %w", err)
			}

			res := repository.ShopsResult{
				FetchedAt: time.Now().UTC().Format(time.RFC3339),
				Backend:   a.cfg.Backend.BaseURL,
				Shops:     shops,
				Count:     len(shops),
			}
			if err := jsonfile.New(out, a.log).SaveShops(cmd.Context(), res); err != nil {
				return fmt.Errorf("save shops: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %d shops to %s\n", res.Count, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (defaults to export.output_file)")
	return cmd
}
