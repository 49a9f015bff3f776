package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/eveindustry-go/internal/application/market/commands"
	"github.com/andrescamacho/eveindustry-go/internal/application/market/queries"
)

// NewPriceCommand creates the price command with subcommands
func NewPriceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Manage order book prices",
		Long: `Manage the sell and buy prices materials are valued at when their market
uses sell or buy orders.

Examples:
  eveindustry price set 34 --sell 5.12 --buy 4.98
  eveindustry price set 34 --system 30002187 --sell 5.40
  eveindustry price list 34`,
	}

	cmd.AddCommand(newPriceSetCommand())
	cmd.AddCommand(newPriceListCommand())

	return cmd
}

func newPriceSetCommand() *cobra.Command {
	var (
		system int
		sell   string
		buy    string
	)

	cmd := &cobra.Command{
		Use:   "set <item-id>",
		Short: "Set the price of an item in a solar system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid item id %q: %w", args[0], err)
			}
			sellPrice, err := decimal.NewFromString(sell)
			if err != nil {
				return fmt.Errorf("invalid sell price %q: %w", sell, err)
			}
			buyPrice, err := decimal.NewFromString(buy)
			if err != nil {
				return fmt.Errorf("invalid buy price %q: %w", buy, err)
			}

			app, ctx, err := openApplication(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if system == 0 {
				system = app.cfg.Market.DefaultSystem
			}
			resp, err := send[*commands.SetPriceResponse](ctx, app, &commands.SetPriceCommand{
				ItemID: itemID,
				System: system,
				Sell:   sellPrice,
				Buy:    buyPrice,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved price of %d in %d: sell %s, buy %s\n",
				resp.Price.ItemID(), resp.Price.System(), resp.Price.Sell(), resp.Price.Buy())
			return nil
		},
	}

	cmd.Flags().IntVar(&system, "system", 0, "Solar system ID (default: configured market system)")
	cmd.Flags().StringVar(&sell, "sell", "0", "Lowest sell order price")
	cmd.Flags().StringVar(&buy, "buy", "0", "Highest buy order price")

	return cmd
}

func newPriceListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [item-id]",
		Short: "List stored prices",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := &queries.ListPricesQuery{}
			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid item id %q: %w", args[0], err)
				}
				query.ItemID = id
			}

			app, ctx, err := openApplication(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			resp, err := send[*queries.ListPricesResponse](ctx, app, query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s  %-10s  %16s  %16s  %s\n", "ITEM", "SYSTEM", "SELL", "BUY", "UPDATED")
			for _, p := range resp.Prices {
				fmt.Fprintf(out, "%-10d  %-10d  %16s  %16s  %s\n",
					p.ItemID(), p.System(), p.Sell().StringFixed(2), p.Buy().StringFixed(2),
					p.UpdatedAt().Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}
