package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/projectinsights/internal/config"
)

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Long:  "Prints the effective value of a dotted configuration key such as table.page_size.",
		Example: `  projectinsights config get source.url
  projectinsights config get table.page_size_options`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		},
	}
}
