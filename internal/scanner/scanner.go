package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"polymarket-exit-monitor/internal/alerting"
	"polymarket-exit-monitor/internal/markets"
	"polymarket-exit-monitor/internal/orderbook"
)

// Options configure which legs are summed and when to alert.
type Options struct {
	Catalog      *markets.Catalog
	Combinations []markets.Combination
	Threshold    decimal.Decimal
}

// Evaluation is the outcome of one combination in one scan.
type Evaluation struct {
	Combination markets.Combination
	BidA        decimal.Decimal
	BidB        decimal.Decimal
	Total       decimal.Decimal
	// Complete is false when either leg had no usable bid.
	Complete bool
	// Alerted is true when the total reached the threshold.
	Alerted bool
}

// Report collects the evaluations of one scan, in combination order.
type Report struct {
	Evaluations []Evaluation
}

// Alerts counts evaluations that triggered a notification.
func (r Report) Alerts() int {
	n := 0
	for _, e := range r.Evaluations {
		if e.Alerted {
			n++
		}
	}
	return n
}

// Scanner sums the best bids of paired held legs and alerts on exit opportunities.
type Scanner struct {
	catalog   *markets.Catalog
	combos    []markets.Combination
	threshold decimal.Decimal
	books     orderbook.Fetcher
	notifier  alerting.Notifier
	logger    zerolog.Logger
}

// New constructs a scanner. A nil notifier disables alert delivery.
func New(opts Options, books orderbook.Fetcher, notifier alerting.Notifier, logger zerolog.Logger) *Scanner {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = markets.Default()
	}
	combos := make([]markets.Combination, len(opts.Combinations))
	copy(combos, opts.Combinations)

	return &Scanner{
		catalog:   catalog,
		combos:    combos,
		threshold: opts.Threshold,
		books:     books,
		notifier:  notifier,
		logger:    logger.With().Str("component", "scanner").Logger(),
	}
}

// Run performs one guarded scan. The combination list is checked against the
// catalog first; any error or panic sends a single crash report before being
// returned.
func (s *Scanner) Run(ctx context.Context) (report Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scan panicked: %v", r)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			s.reportCrash(ctx, err)
		}
	}()

	if err := s.catalog.Validate(s.combos); err != nil {
		return Report{}, fmt.Errorf("validate combinations: %w", err)
	}
	return s.Scan(ctx)
}

// Tick adapts Run to the scheduler.
func (s *Scanner) Tick(ctx context.Context, bucket time.Time) error {
	report, err := s.Run(ctx)
	if err != nil {
		return err
	}
	s.logger.Info().Time("bucket", bucket).
		Int("evaluated", len(report.Evaluations)).
		Int("alerts", report.Alerts()).
		Msg("scan complete")
	return nil
}

// Scan evaluates every combination in order. It fails on an unresolvable
// market or leg and on a book with an unexpected shape; other fetch and
// delivery problems are logged and absorbed.
func (s *Scanner) Scan(ctx context.Context) (Report, error) {
	s.logger.Info().
		Int("combinations", len(s.combos)).
		Str("threshold", s.threshold.StringFixed(2)).
		Msg("polymarket exit monitor (using bids)")

	report := Report{Evaluations: make([]Evaluation, 0, len(s.combos))}
	for _, combo := range s.combos {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		eval, err := s.evaluate(ctx, combo)
		if err != nil {
			return report, err
		}
		report.Evaluations = append(report.Evaluations, eval)
	}
	return report, nil
}

func (s *Scanner) evaluate(ctx context.Context, combo markets.Combination) (Evaluation, error) {
	tokenA, err := s.catalog.Resolve(combo.MarketA, combo.LegA)
	if err != nil {
		return Evaluation{}, fmt.Errorf("resolve %s: %w", combo, err)
	}
	tokenB, err := s.catalog.Resolve(combo.MarketB, combo.LegB)
	if err != nil {
		return Evaluation{}, fmt.Errorf("resolve %s: %w", combo, err)
	}

	eval := Evaluation{Combination: combo}
	logger := s.logger.With().Str("pair", combo.String()).Logger()

	bidA, okA, err := s.bestBid(ctx, tokenA, combo.LabelA())
	if err != nil {
		return Evaluation{}, err
	}
	bidB, okB, err := s.bestBid(ctx, tokenB, combo.LabelB())
	if err != nil {
		return Evaluation{}, err
	}
	if !okA || !okB {
		logger.Info().Bool("bid_a_present", okA).Bool("bid_b_present", okB).Msg("missing bids")
		return eval, nil
	}

	total := bidA.Add(bidB)
	eval.BidA, eval.BidB, eval.Total = bidA, bidB, total
	eval.Complete = true

	logger.Info().
		Str("bid_a", bidA.StringFixed(4)).
		Str("bid_b", bidB.StringFixed(4)).
		Str("total", total.StringFixed(4)).
		Msgf("%s + %s -> %s + %s = %s", combo.LabelA(), combo.LabelB(), bidA.StringFixed(4), bidB.StringFixed(4), total.StringFixed(4))

	if total.GreaterThanOrEqual(s.threshold) {
		eval.Alerted = true
		s.alert(ctx, combo, total)
		logger.Info().Str("total", total.StringFixed(4)).Msg("alert sent")
	}
	return eval, nil
}

// bestBid degrades fetch failures to a missing bid. A book that parsed with an
// unexpected shape is returned as an error and ends the scan.
func (s *Scanner) bestBid(ctx context.Context, tokenID, label string) (decimal.Decimal, bool, error) {
	book, err := s.books.FetchBook(ctx, tokenID)
	if errors.Is(err, orderbook.ErrUnexpectedShape) {
		return decimal.Decimal{}, false, fmt.Errorf("%s: %w", label, err)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("leg", label).Msg("order book unavailable")
		return decimal.Decimal{}, false, nil
	}
	bid, ok := orderbook.BestBid(book)
	return bid, ok, nil
}

func (s *Scanner) alert(ctx context.Context, combo markets.Combination, total decimal.Decimal) {
	if s.notifier == nil {
		return
	}
	msg := alerting.ExitAlert{
		LegA:      combo.LabelA(),
		LegB:      combo.LabelB(),
		Total:     total,
		Threshold: s.threshold,
	}.Render()
	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.Error().Err(err).Str("pair", combo.String()).Msg("failed to dispatch alert")
	}
}

func (s *Scanner) reportCrash(ctx context.Context, cause error) {
	s.logger.Error().Err(cause).Msg("exit monitor crashed")
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(context.WithoutCancel(ctx), alerting.CrashReport(cause)); err != nil {
		s.logger.Error().Err(err).Msg("failed to dispatch crash report")
	}
}
