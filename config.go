package harvest

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"
)

// Config is the environment-driven client configuration.
type Config struct {
	URI          string        `env:"HARVEST_URI"            validate:"required,url"`
	Email        string        `env:"HARVEST_EMAIL"          validate:"required"`
	Password     string        `env:"HARVEST_PASSWORD"       validate:"required"`
	AuthInHeader bool          `env:"HARVEST_AUTH_IN_HEADER" envDefault:"true"`
	Timeout      time.Duration `env:"HARVEST_TIMEOUT"        envDefault:"30s"  validate:"gte=0"`

	// RateLimit is in requests per second; zero disables pacing.
	RateLimit float64 `env:"HARVEST_RATE_LIMIT" envDefault:"0" validate:"gte=0"`
	RateBurst int     `env:"HARVEST_RATE_BURST" envDefault:"1" validate:"gte=0"`
}

// LoadConfig reads a Config from HARVEST_* environment variables and
// validates it.
func LoadConfig() (*Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the required settings are present.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return nil
}

// Options converts the settings other than the credentials to client options.
func (c *Config) Options() []Option {
	opts := []Option{
		WithAuthInHeader(c.AuthInHeader),
		WithTimeout(c.Timeout),
	}
	if c.RateLimit > 0 {
		opts = append(opts, WithRateLimit(rate.Limit(c.RateLimit), c.RateBurst))
	}
	return opts
}

// NewFromConfig creates a client from cfg. opts are applied after the
// options derived from cfg.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	return New(cfg.URI, cfg.Email, cfg.Password, append(cfg.Options(), opts...)...)
}
