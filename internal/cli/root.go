package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/projectinsights/internal/config"
	"github.com/rshade/projectinsights/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the projectinsights CLI.
// It wires up configuration, logging and tracing, and the projects and
// config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configFile string
	)

	cmd := &cobra.Command{
		Use:           "projectinsights",
		Short:         "Browse crowdfunding projects in a paginated table",
		Long:          "projectinsights fetches a list of Kickstarter projects and shows them in a paginated table.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				cfg := config.New()
				if err := config.ShallowMergeYAML(cfg, configFile); err != nil {
					return fmt.Errorf("loading --config: %w", err)
				}
				// Overlay sections replace whole defaults, so check the result.
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("invalid --config %s: %w", configFile, err)
				}
				config.SetGlobalConfig(cfg)
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configFile, "config", "",
		"YAML file whose top-level sections replace those of the configuration file")
	cmd.AddCommand(NewProjectsCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Browse projects interactively
  projectinsights projects

  # Show the third page of ten projects as JSON
  projectinsights projects --page 3 --page-size 10 --output json

  # Sort by amount pledged, highest first
  projectinsights projects --sort pledged:desc

  # Read from another endpoint
  projectinsights projects --url https://example.com/projects.json

  # Initialize configuration
  projectinsights config init

  # Set configuration values
  projectinsights config set table.page_size 10`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
