package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/projectinsights/internal/config"
)

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every configuration value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			for _, key := range config.Keys() {
				value, err := cfg.Get(key)
				if err != nil {
					return err
				}
				cmd.Printf("%s = %s\n", key, value)
			}
			return nil
		},
	}
}
