package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/projectinsights/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration (file, environment and --config overlay).

This includes:
- A non-empty source URL and a non-negative timeout
- Page size options that are positive and strictly ascending
- A default page size that is one of the page size options
- At least one visible page button
- A supported default output format`,
		Example: `  # Validate current configuration
  projectinsights config validate

  # Validate and show detailed information
  projectinsights config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Source URL: %s\n", cfg.Source.URL)
	cmd.Printf("  Source timeout: %s\n", cfg.Source.Timeout)
	cmd.Printf("  Page size: %d (options: %s)\n", cfg.Table.PageSize, cfg.Table.PageSizeOptions)
	cmd.Printf("  Max visible pages: %d\n", cfg.Table.MaxVisiblePages)
	cmd.Printf("  Show pagination: %t\n", cfg.Table.ShowPagination)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
}
