package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"polymarket-exit-monitor/internal/alerting"
	"polymarket-exit-monitor/internal/markets"
	"polymarket-exit-monitor/internal/orderbook"
)

// SimulateOptions pick the combination and the bids to pretend were quoted.
type SimulateOptions struct {
	Combination int
	BidA        decimal.Decimal
	BidB        decimal.Decimal
	// DryRun evaluates without requiring Telegram credentials.
	DryRun bool
}

// SimulateAlert runs the scanner against static books so the threshold and
// Telegram delivery path can be checked without live markets.
func (a *App) SimulateAlert(ctx context.Context, opts SimulateOptions) error {
	if opts.Combination < 0 || opts.Combination >= len(a.Combinations) {
		return fmt.Errorf("combination index %d out of range [0,%d)", opts.Combination, len(a.Combinations))
	}

	notifier := a.newNotifier()
	if !opts.DryRun && !notifier.Configured() {
		return errors.New("telegram credentials not configured")
	}

	combo := a.Combinations[opts.Combination]
	tokenA, err := a.Catalog.Resolve(combo.MarketA, combo.LegA)
	if err != nil {
		return err
	}
	tokenB, err := a.Catalog.Resolve(combo.MarketB, combo.LegB)
	if err != nil {
		return err
	}

	books := staticBooks{
		tokenA: singleBidBook(tokenA, opts.BidA),
		tokenB: singleBidBook(tokenB, opts.BidB),
	}

	var sink alerting.Notifier = notifier
	if opts.DryRun {
		sink = nil
	}

	report, err := a.newScanner(books, sink, []markets.Combination{combo}).Run(ctx)
	if err != nil {
		return err
	}
	if report.Alerts() == 0 {
		a.Logger.Info().Str("pair", combo.String()).Msg("simulated bids below threshold; nothing sent")
	}
	return nil
}

type staticBooks map[string]*orderbook.Book

func (s staticBooks) FetchBook(ctx context.Context, tokenID string) (*orderbook.Book, error) {
	book, ok := s[tokenID]
	if !ok {
		return nil, fmt.Errorf("no simulated book for token %s", tokenID)
	}
	return book, nil
}

func singleBidBook(tokenID string, price decimal.Decimal) *orderbook.Book {
	return &orderbook.Book{
		AssetID: tokenID,
		Bids:    []orderbook.Level{{Price: price.String(), Size: "1"}},
	}
}

var _ orderbook.Fetcher = staticBooks(nil)
