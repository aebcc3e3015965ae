package cli

import (
	"github.com/spf13/cobra"
)

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "List built-in markets and monitored combinations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().ListMarkets(cmd.OutOrStdout())
	},
}
