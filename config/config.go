package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	PriceFeed PriceFeedConfig `mapstructure:"pricefeed"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	Report    ReportConfig    `mapstructure:"report"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // debug, release, test
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CORSOrigins  []string      `mapstructure:"cors_origins"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StorageConfig selects the ledger storage driver: "postgres" or "memory".
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	PoolSize    int           `mapstructure:"pool_size"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	RateTTL     time.Duration `mapstructure:"rate_ttl"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// PriceFeedConfig configures the goldapi.io spot price client and the
// cron schedule that polls it.
type PriceFeedConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	BaseURL    string        `mapstructure:"base_url"`
	APIKey     string        `mapstructure:"api_key"`
	Metal      string        `mapstructure:"metal"`
	Currency   string        `mapstructure:"currency"`
	Schedule   string        `mapstructure:"schedule"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryCount int           `mapstructure:"retry_count"`
}

// LedgerConfig holds the gram deduction models ("rate" or "ratio") and the
// charge settings seeded into the memory driver. The postgres driver reads
// charges from the charge_settings table instead.
type LedgerConfig struct {
	SellDeduction  string `mapstructure:"sell_deduction"`
	CoinDeduction  string `mapstructure:"coin_deduction"`
	TaxPercent     string `mapstructure:"tax_percent"`
	DeliveryCharge string `mapstructure:"delivery_charge"`
	GatewayCharge  string `mapstructure:"gateway_charge"`
	OtherCharges   string `mapstructure:"other_charges"`
}

type ReportConfig struct {
	MaxEvents       int `mapstructure:"max_events"`
	DefaultPageSize int `mapstructure:"default_page_size"`
}

type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int64         `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: GLD_.
// Nested keys use underscore: GLD_DATABASE_HOST, GLD_PRICEFEED_API_KEY, etc.
// A .env file in the working directory is loaded first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "gold_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.dial_timeout", "3s")
	v.SetDefault("redis.rate_ttl", "6h")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "gold-ledger")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("pricefeed.enabled", true)
	v.SetDefault("pricefeed.base_url", "https://www.goldapi.io")
	v.SetDefault("pricefeed.api_key", "")
	v.SetDefault("pricefeed.metal", "XAU")
	v.SetDefault("pricefeed.currency", "INR")
	v.SetDefault("pricefeed.schedule", "@every 6h")
	v.SetDefault("pricefeed.timeout", "10s")
	v.SetDefault("pricefeed.retry_count", 2)
	v.SetDefault("ledger.sell_deduction", "rate")
	v.SetDefault("ledger.coin_deduction", "ratio")
	v.SetDefault("ledger.tax_percent", "3")
	v.SetDefault("ledger.delivery_charge", "0")
	v.SetDefault("ledger.gateway_charge", "0")
	v.SetDefault("ledger.other_charges", "0")
	v.SetDefault("report.max_events", 5000)
	v.SetDefault("report.default_page_size", 100)
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.limit", 60)
	v.SetDefault("ratelimit.window", "1m")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("GLD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("storage.driver must be postgres or memory, got %q", c.Storage.Driver)
	}
	for key, model := range map[string]string{
		"ledger.sell_deduction": c.Ledger.SellDeduction,
		"ledger.coin_deduction": c.Ledger.CoinDeduction,
	} {
		if model != "rate" && model != "ratio" {
			return fmt.Errorf("%s must be rate or ratio, got %q", key, model)
		}
	}
	return nil
}
