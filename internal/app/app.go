package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"polymarket-exit-monitor/internal/alerting"
	"polymarket-exit-monitor/internal/config"
	"polymarket-exit-monitor/internal/markets"
	"polymarket-exit-monitor/internal/orderbook"
	"polymarket-exit-monitor/internal/scanner"
	"polymarket-exit-monitor/internal/scheduler"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config       *config.Config
	Logger       zerolog.Logger
	Catalog      *markets.Catalog
	Combinations []markets.Combination
}

// NewApp constructs a new application handle over the built-in markets.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{
		Config:       cfg,
		Logger:       logger.With().Str("component", "app").Logger(),
		Catalog:      markets.Default(),
		Combinations: markets.DefaultCombinations(),
	}
}

func (a *App) newFetcher() orderbook.Fetcher {
	return orderbook.NewClient(orderbook.Options{
		BookURL:   a.Config.Polymarket.BookURL,
		Timeout:   a.Config.Polymarket.RequestTimeout,
		UserAgent: a.Config.Polymarket.UserAgent,
	}, a.Logger)
}

func (a *App) newNotifier() *alerting.TelegramNotifier {
	cfg := a.Config.Alerting.Telegram
	return alerting.NewTelegramNotifier(cfg.BotToken, cfg.ChatID, cfg.APIBase, cfg.Timeout, a.Logger)
}

func (a *App) newScanner(books orderbook.Fetcher, notifier alerting.Notifier, combos []markets.Combination) *scanner.Scanner {
	return scanner.New(scanner.Options{
		Catalog:      a.Catalog,
		Combinations: combos,
		Threshold:    decimal.NewFromFloat(a.Config.Alerting.Threshold),
	}, books, notifier, a.Logger)
}

// Scan runs a single guarded pass over the monitored combinations.
func (a *App) Scan(ctx context.Context) error {
	notifier := a.newNotifier()
	if !a.Config.TelegramConfigured() {
		a.Logger.Warn().Msg("telegram credentials not configured; alerts will only be logged")
	}

	svc := a.newScanner(a.newFetcher(), notifier, a.Combinations)
	report, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	a.Logger.Info().
		Int("evaluated", len(report.Evaluations)).
		Int("alerts", report.Alerts()).
		Msg("scan finished")
	return nil
}

// Watch repeats the guarded scan on the configured interval until interrupted.
func (a *App) Watch(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	notifier := a.newNotifier()
	if !a.Config.TelegramConfigured() {
		a.Logger.Warn().Msg("telegram credentials not configured; alerts will only be logged")
	}

	sched := scheduler.New(scheduler.Options{
		Interval:       a.Config.Scheduler.Interval,
		AlignToStart:   a.Config.Scheduler.AlignToBucket,
		StartupDelay:   a.Config.Scheduler.StartupDelay,
		RunImmediately: true,
	}, a.Logger)

	svc := a.newScanner(a.newFetcher(), notifier, a.Combinations)

	a.Logger.Info().Dur("interval", a.Config.Scheduler.Interval).Msg("starting exit monitor loop")
	err := sched.Run(ctx, svc.Tick)
	if err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Error().Err(err).Msg("watch loop terminated with error")
		return err
	}

	a.Logger.Info().Msg("exit monitor loop stopped")
	return nil
}
