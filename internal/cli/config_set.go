package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/projectinsights/internal/config"
)

// NewConfigSetCmd creates the config set command.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one value in the configuration file",
		Long: `Sets a dotted configuration key in the configuration file. The result is
validated before it is written; environment overrides are not persisted.`,
		Example: `  projectinsights config set table.page_size 10
  projectinsights config set table.page_size_options 10,25,50
  projectinsights config set source.timeout 10s`,
		Args:      cobra.ExactArgs(2), //nolint:mnd // key and value
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, args[0], args[1])
		},
	}
}

func runConfigSet(cmd *cobra.Command, key, value string) error {
	path, err := config.DefaultConfigPath()
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if loadErr := cfg.Load(); loadErr != nil && !errors.Is(loadErr, os.ErrNotExist) {
		return fmt.Errorf("failed to load configuration: %w", loadErr)
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid configuration: %w", err)
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Debug().Ctx(cmd.Context()).Str("key", key).Msg("configuration updated")
	cmd.Printf("%s = %s\n", key, value)
	return nil
}
