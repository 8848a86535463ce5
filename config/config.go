package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Wallet  WalletConfig  `mapstructure:"wallet"`
	Feeds   FeedsConfig   `mapstructure:"feeds"`
	Retry   RetryConfig   `mapstructure:"retry"`
	Broker  BrokerConfig  `mapstructure:"broker"`
	Monitor MonitorConfig `mapstructure:"monitor"`
	AES     AESConfig     `mapstructure:"aes"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type WalletConfig struct {
	URL      string `mapstructure:"url"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	// RequestAmount is the nominal BTC amount attached to addrequest calls.
	RequestAmount string `mapstructure:"request_amount"`
	// NotifyBaseURL is this agent's externally reachable callback base,
	// e.g. http://agent:8080/electrum_notify.
	NotifyBaseURL string `mapstructure:"notify_base_url"`
}

type FeedsConfig struct {
	KrakenURL          string        `mapstructure:"kraken_url"`
	BitstampURL        string        `mapstructure:"bitstamp_url"`
	PollInterval       time.Duration `mapstructure:"poll_interval"`
	StalenessWindow    time.Duration `mapstructure:"staleness_window"`
	DisparityTolerance string        `mapstructure:"disparity_tolerance"`
}

type RetryConfig struct {
	// Delay between attempts of a failed outbound HTTP call.
	Delay time.Duration `mapstructure:"delay"`
}

type BrokerConfig struct {
	// RetryDelay between attempts to allocate an address for an order.
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

type MonitorConfig struct {
	// PollInterval between balance checks on a watched address.
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: COA_ (Crypto Order Agent).
// Nested keys use underscore: COA_WALLET_URL, COA_AES_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("wallet.url", "http://localhost:7777")
	v.SetDefault("wallet.user", "")
	v.SetDefault("wallet.password", "")
	v.SetDefault("wallet.request_amount", "0.0001")
	v.SetDefault("wallet.notify_base_url", "http://localhost:8080/electrum_notify")
	v.SetDefault("feeds.kraken_url", "https://api.kraken.com/0/public/Ticker?pair=XBTUSD")
	v.SetDefault("feeds.bitstamp_url", "https://www.bitstamp.net/api/v2/ticker/btcusd/")
	v.SetDefault("feeds.poll_interval", "1m")
	v.SetDefault("feeds.staleness_window", "1h")
	v.SetDefault("feeds.disparity_tolerance", "1.2")
	v.SetDefault("retry.delay", "20s")
	v.SetDefault("broker.retry_delay", "10s")
	v.SetDefault("monitor.poll_interval", "10s")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: COA_WALLET_URL -> wallet.url
	v.SetEnvPrefix("COA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
