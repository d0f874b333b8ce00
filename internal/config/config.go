// Package config loads and validates the steadfastd YAML configuration.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the client and the webhook receiver.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Client   ClientConfig  `yaml:"client"`
	Webhook  WebhookConfig `yaml:"webhook"`
}

// ClientConfig configures the outbound courier API client.
type ClientConfig struct {
	// BaseURL overrides the provider's default API endpoint.
	BaseURL string `yaml:"base_url,omitempty"`

	// APIKey and SecretKey are the static request credentials.
	// Values may reference environment variables as ${VAR}.
	APIKey    string `yaml:"api_key"`
	SecretKey string `yaml:"secret_key"`

	// TimeoutSeconds is the per-call timeout (default 30).
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// WebhookConfig configures the inbound webhook receiver.
type WebhookConfig struct {
	// Listen is the bind address, e.g. "127.0.0.1:8080".
	Listen string `yaml:"listen"`

	// Token is the shared bearer token the provider sends on notifications.
	Token string `yaml:"token,omitempty"`

	// SkipAuth disables bearer authentication. Local/test use only.
	SkipAuth bool `yaml:"skip_auth,omitempty"`

	// MaxBodySize caps request bodies in bytes (default 1MB).
	MaxBodySize int64 `yaml:"max_body_size,omitempty"`
}

// Default values
const (
	DefaultTimeoutSeconds = 30
	DefaultListen         = "127.0.0.1:8080"
	DefaultMaxBodySize    = 1048576 // 1 MB
)

// Timeout returns the client call timeout as a duration.
func (c ClientConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks the configuration for fatal setup errors. The webhook
// token rule mirrors the dispatcher's construction contract so a bad
// config fails before the server accepts traffic.
func (c *Config) Validate() error {
	if c.Client.APIKey == "" {
		return fmt.Errorf("client.api_key is required")
	}
	if c.Client.SecretKey == "" {
		return fmt.Errorf("client.secret_key is required")
	}
	if c.Webhook.Token == "" && !c.Webhook.SkipAuth {
		return fmt.Errorf("webhook.token is required unless webhook.skip_auth is set")
	}
	if c.Webhook.MaxBodySize < 0 {
		return fmt.Errorf("webhook.max_body_size must not be negative")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Client.TimeoutSeconds == 0 {
		cfg.Client.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.Webhook.Listen == "" {
		cfg.Webhook.Listen = DefaultListen
	}
	if cfg.Webhook.MaxBodySize == 0 {
		cfg.Webhook.MaxBodySize = DefaultMaxBodySize
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "INFO"
	}
}
