package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopadmin/internal/apis/backend"
)

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
	}
	cmd.AddCommand(
		newCategoriesListCmd(a),
		newCategoriesGetCmd(a),
		newCategoriesCreateCmd(a),
		newCategoriesEditCmd(a),
		newCategoriesDeleteCmd(a),
	)
	return cmd
}

func newCategoriesListCmd(a *app) *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := zeroBased(page)
			if err != nil {
				return err
			}
			out, err := a.svcs.Categories.List(cmd.Context(), p, a.cfg.Backend.PageSize)
			if err != nil {
				return fmt.Errorf("list categories: %w", err)
			}
			return printPage(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	return cmd
}

func newCategoriesGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.svcs.Categories.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get category %d: %w", id, err)
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
}

func newCategoriesCreateCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readPayload[backend.MinimalCategory](file)
			if err != nil {
				return err
			}
			in.ID = 0
			c, err := a.svcs.Categories.Create(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("create category: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON payload")
	return cmd
}

func newCategoriesEditCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Rename a category from a JSON file carrying its id",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readPayload[backend.MinimalCategory](file)
			if err != nil {
				return err
			}
			c, err := a.svcs.Categories.Edit(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("edit category: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON payload")
	return cmd
}

func newCategoriesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.svcs.Categories.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete category %d: %w", id, err)
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"id": id, "deleted": true})
		},
	}
}
