package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process-wide configuration, read from the environment.
//
// Recognized variables:
//   - PORT: listen port (default 5000)
//   - FRONTEND_ORIGIN: the only origin allowed by CORS
//   - WEBHOOK_URL: where proposals are forwarded
//   - WEBHOOK_TIMEOUT, WEBHOOK_MOCK, MAX_BODY_BYTES, LOG_LEVEL, LOG_FORMAT
//   - DELIVERY_AUDIT_ENABLED, DELIVERIES_TABLE (DynamoDB settings live in the database package)
type Config struct {
	Port           int           `env:"PORT" envDefault:"5000"`
	FrontendOrigin string        `env:"FRONTEND_ORIGIN" envDefault:"http://localhost:5173"`
	WebhookURL     string        `env:"WEBHOOK_URL" envDefault:"https://auto.robogrowthpartners.com/webhook/proposal-form"`
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"15s"`
	WebhookMock    bool          `env:"WEBHOOK_MOCK" envDefault:"false"`
	MaxBodyBytes   int64         `env:"MAX_BODY_BYTES" envDefault:"102400"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"console"`

	DeliveryAudit DeliveryAuditConfig
}

type DeliveryAuditConfig struct {
	Enabled bool   `env:"DELIVERY_AUDIT_ENABLED" envDefault:"false"`
	Table   string `env:"DELIVERIES_TABLE" envDefault:"deliveries"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.FrontendOrigin == "" {
		errs = append(errs, errors.New("FRONTEND_ORIGIN is required"))
	} else if u, err := url.Parse(c.FrontendOrigin); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("FRONTEND_ORIGIN must be an http(s) origin: %q", c.FrontendOrigin))
	}
	if !c.WebhookMock {
		if u, err := url.Parse(c.WebhookURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("WEBHOOK_URL is not an absolute url: %q", c.WebhookURL))
		}
	}
	if c.WebhookTimeout <= 0 {
		errs = append(errs, fmt.Errorf("WEBHOOK_TIMEOUT must be positive: %s", c.WebhookTimeout))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES must be positive: %d", c.MaxBodyBytes))
	}
	if c.DeliveryAudit.Enabled && c.DeliveryAudit.Table == "" {
		errs = append(errs, errors.New("DELIVERIES_TABLE is required when the delivery audit is enabled"))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
