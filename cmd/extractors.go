package cmd

import (
	"github.com/spf13/cobra"

	"appledev/internal/provider"
)

var extractorsCmd = &cobra.Command{
	Use:   "extractors",
	Short: "List the URL shapes appledev recognizes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		newRenderer(cmd.OutOrStdout()).patterns(provider.Patterns())
		return nil
	},
}
