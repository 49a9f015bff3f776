package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "eveindustry",
		Short: "EVE industry planner - net and price production chains",
		Long: `eveindustry loads industry tasks (manufacturing, refining, reactions,
planetary production and groups of those), nets their materials and prices
them against the configured markets.

Examples:
  eveindustry task show rifters.yaml
  eveindustry task store rifters.yaml --name rifters
  eveindustry task list
  eveindustry task export <task-id> out.yaml
  eveindustry item add 34 Tritanium --group 18
  eveindustry price set 34 --system 30000142 --sell 5.12 --buy 4.98`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	// Add command groups
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewTaskCommand())
	rootCmd.AddCommand(NewItemCommand())
	rootCmd.AddCommand(NewPriceCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
