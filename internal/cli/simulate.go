package cli

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"polymarket-exit-monitor/internal/app"
)

var (
	simulateBidA   float64
	simulateBidB   float64
	simulateCombo  int
	simulateDryRun bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate-alert",
	Short: "Evaluate one combination with fixed bids and send the resulting alert",
	RunE: func(cmd *cobra.Command, args []string) error {
		if simulateBidA < 0 || simulateBidB < 0 {
			return errors.New("--bid-a and --bid-b cannot be negative")
		}

		opts := app.SimulateOptions{
			Combination: simulateCombo,
			BidA:        decimal.NewFromFloat(simulateBidA),
			BidB:        decimal.NewFromFloat(simulateBidB),
			DryRun:      simulateDryRun,
		}
		return getApp().SimulateAlert(cmd.Context(), opts)
	},
}

func init() {
	simulateCmd.Flags().Float64Var(&simulateBidA, "bid-a", 0.52, "Best bid of the first leg")
	simulateCmd.Flags().Float64Var(&simulateBidB, "bid-b", 0.50, "Best bid of the second leg")
	simulateCmd.Flags().IntVar(&simulateCombo, "combo", 0, "Index of the monitored combination (see exitmon markets)")
	simulateCmd.Flags().BoolVar(&simulateDryRun, "dry-run", false, "Log the evaluation without sending to Telegram")
}
