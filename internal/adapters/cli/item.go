package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/eveindustry-go/internal/application/market/commands"
	"github.com/andrescamacho/eveindustry-go/internal/application/market/queries"
)

// NewItemCommand creates the item command with subcommands
func NewItemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage known items",
		Long: `Manage the items tasks can reference. Materials whose item is unknown
are skipped when a task is loaded.

Examples:
  eveindustry item add 34 Tritanium --group 18
  eveindustry item list`,
	}

	cmd.AddCommand(newItemAddCommand())
	cmd.AddCommand(newItemListCommand())

	return cmd
}

func newItemAddCommand() *cobra.Command {
	var groupID int

	cmd := &cobra.Command{
		Use:   "add <id> <name...>",
		Short: "Add or rename an item",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid item id %q: %w", args[0], err)
			}

			app, ctx, err := openApplication(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := send[*commands.AddItemResponse](ctx, app, &commands.AddItemCommand{
				ID:      id,
				Name:    strings.Join(args[1:], " "),
				GroupID: groupID,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved item %s\n", resp.Item)
			return nil
		},
	}

	cmd.Flags().IntVar(&groupID, "group", 0, "Item group ID")

	return cmd
}

func newItemListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ctx, err := openApplication(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := send[*queries.ListItemsResponse](ctx, app, &queries.ListItemsQuery{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s  %-8s  %s\n", "ID", "GROUP", "NAME")
			for _, item := range resp.Items {
				fmt.Fprintf(out, "%-10d  %-8d  %s\n", item.ID, item.GroupID, item.Name)
			}
			return nil
		},
	}
}
