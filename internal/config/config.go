package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"polymarket-exit-monitor/internal/logging"
)

// Config materialises application configuration.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Logging    logging.Config   `mapstructure:"logging"`
	Polymarket PolymarketConfig `mapstructure:"polymarket"`
	Alerting   AlertingConfig   `mapstructure:"alerting"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// PolymarketConfig covers the CLOB order book endpoint.
type PolymarketConfig struct {
	BookURL        string        `mapstructure:"book_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	UserAgent      string        `mapstructure:"user_agent"`
}

// AlertingConfig defines the exit threshold and alert routing.
type AlertingConfig struct {
	Threshold float64        `mapstructure:"threshold"`
	Telegram  TelegramConfig `mapstructure:"telegram"`
}

// TelegramConfig holds Telegram bot credentials. Leaving either credential
// empty disables delivery without stopping scans.
type TelegramConfig struct {
	BotToken string        `mapstructure:"bot_token"`
	ChatID   string        `mapstructure:"chat_id"`
	APIBase  string        `mapstructure:"api_base"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// SchedulerConfig governs the watch loop cadence.
type SchedulerConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	AlignToBucket bool          `mapstructure:"align_to_bucket"`
	StartupDelay  time.Duration `mapstructure:"startup_delay"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EXITMON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// bindLegacyEnv keeps the plain TELEGRAM_* secrets working next to the
// prefixed EXITMON_ALERTING_TELEGRAM_* names; the prefixed name wins.
func bindLegacyEnv(v *viper.Viper) error {
	if err := v.BindEnv("alerting.telegram.bot_token", "EXITMON_ALERTING_TELEGRAM_BOT_TOKEN", "TELEGRAM_BOT_TOKEN"); err != nil {
		return fmt.Errorf("bind telegram bot token env: %w", err)
	}
	if err := v.BindEnv("alerting.telegram.chat_id", "EXITMON_ALERTING_TELEGRAM_CHAT_ID", "TELEGRAM_CHAT_ID"); err != nil {
		return fmt.Errorf("bind telegram chat id env: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "exitmon")
	v.SetDefault("app.environment", "production")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("polymarket.book_url", "https://clob.polymarket.com/book")
	v.SetDefault("polymarket.request_timeout", "6s")
	v.SetDefault("polymarket.user_agent", "exitmon/1.0")

	v.SetDefault("alerting.threshold", 1.01)
	v.SetDefault("alerting.telegram.bot_token", "")
	v.SetDefault("alerting.telegram.chat_id", "")
	v.SetDefault("alerting.telegram.api_base", "https://api.telegram.org")
	v.SetDefault("alerting.telegram.timeout", "6s")

	v.SetDefault("scheduler.interval", "5m")
	v.SetDefault("scheduler.align_to_bucket", true)
	v.SetDefault("scheduler.startup_delay", "0s")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.StringToTimeDurationHookFunc()
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if c.Alerting.Threshold <= 0 {
		return fmt.Errorf("alerting.threshold must be greater than zero")
	}
	if c.Polymarket.RequestTimeout <= 0 {
		return fmt.Errorf("polymarket.request_timeout must be greater than zero")
	}
	if c.Alerting.Telegram.Timeout <= 0 {
		return fmt.Errorf("alerting.telegram.timeout must be greater than zero")
	}
	if c.Scheduler.Interval <= 0 {
		return fmt.Errorf("scheduler.interval must be greater than zero")
	}
	return nil
}

// TelegramConfigured reports whether both Telegram credentials are present.
func (c *Config) TelegramConfigured() bool {
	return strings.TrimSpace(c.Alerting.Telegram.BotToken) != "" &&
		strings.TrimSpace(c.Alerting.Telegram.ChatID) != ""
}
