package core

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	// ProductionURL is the USDⓈ-M futures REST host.
	ProductionURL = "https://fapi.binance.com"
	// SandboxURL is the USDⓈ-M futures testnet REST host.
	SandboxURL = "https://testnet.binancefuture.com"
)

// Credentials holds API authentication credentials.
type Credentials struct {
	// APIKey is sent in the X-MBX-APIKEY header.
	APIKey string `json:"api_key"`
	// SecretKey is the HMAC secret. It may be empty when a Signer is supplied instead.
	SecretKey string `json:"secret_key"`
}

// Config contains the options of a derivatives client.
type Config struct {
	// BaseURL overrides the host chosen by Sandbox when set.
	BaseURL     string       `json:"base_url" validate:"omitempty,url"`
	Sandbox     bool         `json:"sandbox"`
	Credentials *Credentials `json:"credentials,omitempty"`

	// Timeout bounds a single round trip. Zero leaves the transport default in place.
	Timeout time.Duration `json:"timeout" validate:"min=0"`
	// RecvWindow is sent with signed requests when non-zero.
	RecvWindow time.Duration `json:"recv_window" validate:"min=0,max=60s"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config for the production host with no credentials,
// no timeout and no recvWindow.
func DefaultConfig() *Config {
	return &Config{
		Sandbox:  false,
		LogLevel: "info",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// URL returns the effective base URL.
func (c *Config) URL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.Sandbox {
		return SandboxURL
	}
	return ProductionURL
}

// Level maps LogLevel onto a zerolog level. An empty LogLevel yields zerolog.InfoLevel.
func (c *Config) Level() zerolog.Level {
	switch c.LogLevel {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithSandbox enables or disables the testnet host and returns the config for chaining.
func (c *Config) WithSandbox(sandbox bool) *Config {
	c.Sandbox = sandbox
	return c
}

// WithBaseURL overrides the host and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithRecvWindow sets the recvWindow of signed requests and returns the config for chaining.
func (c *Config) WithRecvWindow(window time.Duration) *Config {
	c.RecvWindow = window
	return c
}
