// Package config provides configuration management for the showroom site
// and the quote relay. It uses Viper to load settings from defaults, an
// optional config file, a .env file and environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SITE_SITE_PORT.
const EnvPrefix = "SITE"

// Config holds all runtime configuration.
type Config struct {
	// ── Public site ──────────────────────────────────────────────────────────
	SiteHost string `mapstructure:"site_host"`
	SitePort int    `mapstructure:"site_port"`

	// QuoteEndpoint is where the contact form relays quote requests.
	QuoteEndpoint string `mapstructure:"quote_endpoint"`
	// QuoteTimeoutSeconds bounds one submission; 0 disables the timeout.
	QuoteTimeoutSeconds int `mapstructure:"quote_timeout_seconds"`
	// QuoteToken is sent as a Bearer token when non-empty.
	QuoteToken string `mapstructure:"quote_token"`

	TestimonialIntervalSeconds int `mapstructure:"testimonial_interval_seconds"`

	// ── Quote relay ──────────────────────────────────────────────────────────
	RelayHost string `mapstructure:"relay_host"`
	RelayPort int    `mapstructure:"relay_port"`
	// RelayToken, when set, is required on POST /send-quote.
	RelayToken     string   `mapstructure:"relay_token"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	DBDriver       string   `mapstructure:"db_driver"`
	DBPath         string   `mapstructure:"db_path"`

	// ── Staff API ────────────────────────────────────────────────────────────
	JWTSecret string `mapstructure:"jwt_secret"`
	AdminUser string `mapstructure:"admin_user"`
	AdminPass string `mapstructure:"admin_pass"`

	// ── Mail ─────────────────────────────────────────────────────────────────
	// An empty SMTPHost routes notifications to the log instead.
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	SMTPUser string `mapstructure:"smtp_user"`
	SMTPPass string `mapstructure:"smtp_pass"`
	MailFrom string `mapstructure:"mail_from"`
	MailTo   string `mapstructure:"mail_to"`

	// ── Logging ──────────────────────────────────────────────────────────────
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // json | console
}

// Load reads config from ./config.yaml or ~/.kohinoor/config.yaml, a local
// .env file, and SITE_* environment variables, in increasing precedence.
func Load() (*Config, error) {
	// .env is optional; variables already present in the environment win.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.kohinoor")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("site_host", "0.0.0.0")
	v.SetDefault("site_port", 8080)
	v.SetDefault("quote_endpoint", "http://127.0.0.1:8081/send-quote")
	v.SetDefault("quote_timeout_seconds", 90)
	v.SetDefault("quote_token", "")
	v.SetDefault("testimonial_interval_seconds", 5)

	v.SetDefault("relay_host", "0.0.0.0")
	v.SetDefault("relay_port", 8081)
	v.SetDefault("relay_token", "")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("db_path", "quotes.db")

	// Must be overridden in production via config.yaml or env vars.
	v.SetDefault("jwt_secret", "kohinoor-change-me-9f2c7a")
	v.SetDefault("admin_user", "admin")
	v.SetDefault("admin_pass", "admin")

	v.SetDefault("smtp_host", "")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("smtp_user", "")
	v.SetDefault("smtp_pass", "")
	v.SetDefault("mail_from", "no-reply@kohinoorinteriors.com")
	v.SetDefault("mail_to", "kohinoorinteriors09@gmail.com")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// Validate rejects settings neither server can start with.
func (c *Config) Validate() error {
	if c.SitePort <= 0 || c.SitePort > 65535 {
		return fmt.Errorf("site_port %d out of range", c.SitePort)
	}
	if c.RelayPort <= 0 || c.RelayPort > 65535 {
		return fmt.Errorf("relay_port %d out of range", c.RelayPort)
	}
	if c.QuoteEndpoint == "" {
		return errors.New("quote_endpoint is required")
	}
	if c.QuoteTimeoutSeconds < 0 {
		return fmt.Errorf("quote_timeout_seconds must not be negative, got %d", c.QuoteTimeoutSeconds)
	}
	if c.TestimonialIntervalSeconds <= 0 {
		return fmt.Errorf("testimonial_interval_seconds must be positive, got %d", c.TestimonialIntervalSeconds)
	}
	if c.JWTSecret == "" {
		return errors.New("jwt_secret is required")
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("log_format %q (use 'json' or 'console')", c.LogFormat)
	}
	return nil
}

// SiteAddr is the listen address of the public site.
func (c *Config) SiteAddr() string { return fmt.Sprintf("%s:%d", c.SiteHost, c.SitePort) }

// RelayAddr is the listen address of the quote relay.
func (c *Config) RelayAddr() string { return fmt.Sprintf("%s:%d", c.RelayHost, c.RelayPort) }

// QuoteTimeout converts QuoteTimeoutSeconds; zero means no timeout.
func (c *Config) QuoteTimeout() time.Duration {
	return time.Duration(c.QuoteTimeoutSeconds) * time.Second
}

// TestimonialInterval converts TestimonialIntervalSeconds.
func (c *Config) TestimonialInterval() time.Duration {
	return time.Duration(c.TestimonialIntervalSeconds) * time.Second
}
