package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/eveindustry-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect eveindustry configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (EVE_* prefix, plus DATABASE_URL)
2. Config file (config.yaml)
3. Default values

Example:
  eveindustry config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			fmt.Fprintln(out, "eveindustry Configuration")
			fmt.Fprintln(out, "=========================")

			fmt.Fprintln(out, "\nDatabase:")
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
			default:
				fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
				fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
			}
			fmt.Fprintf(out, "  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)

			fmt.Fprintln(out, "\nMarket:")
			fmt.Fprintf(out, "  Default System:   %d\n", cfg.Market.DefaultSystem)
			fmt.Fprintf(out, "  Produced:         %s\n", cfg.Market.ProducedMarket())
			fmt.Fprintf(out, "  Required:         %s\n", cfg.Market.RequiredMarket())

			fmt.Fprintln(out, "\nCatalog:")
			if cfg.Catalog.ArchivePath == "" {
				fmt.Fprintln(out, "  Archive:          (not set)")
			} else {
				fmt.Fprintf(out, "  Archive:          %s\n", cfg.Catalog.ArchivePath)
			}

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled:          %v\n", cfg.Metrics.Enabled)
			fmt.Fprintf(out, "  Namespace:        %s\n", cfg.Metrics.Namespace)
			if cfg.Metrics.TextfilePath != "" {
				fmt.Fprintf(out, "  Textfile:         %s\n", cfg.Metrics.TextfilePath)
			}

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)
			return nil
		},
	}
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), "****")
	return u.String()
}
