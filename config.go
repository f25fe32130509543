package cachet

import (
	"time"
)

// Config holds the configuration for a Cachet client. Endpoint is required;
// everything else is optional. A Config is treated as immutable once handed
// to NewClient.
//
// Configuration can be built using the fluent builder pattern:
//
//	config := cachet.NewConfig("https://status.example.com/api/v1").
//	    WithAPIToken("secret-token").
//	    WithTimeout(10 * time.Second)
//
//	client, err := cachet.NewClient(config)
type Config struct {
	// Endpoint is the base URL of the Cachet API including the version
	// prefix, e.g. "https://status.example.com/api/v1". Paths are
	// appended as Endpoint + "/" + path without normalization, so the
	// value should not carry a trailing slash. Required.
	Endpoint string

	// APIToken authenticates mutating calls via the X-Cachet-Token
	// header. Read endpoints work without it; every post/put/delete
	// fails with ErrAuthRequired when it is empty.
	APIToken string

	// Timeout is the HTTP request timeout, covering connection time,
	// redirects and reading the response body. Zero means the transport
	// default (no timeout).
	Timeout time.Duration

	// VerifyTLS controls TLS certificate verification. nil leaves the
	// transport default (verification enabled); a false value disables
	// verification for self-signed status page installs.
	VerifyTLS *bool

	// TransportConfig holds HTTP connection pooling settings.
	TransportConfig TransportConfig
}

// TransportConfig holds HTTP transport configuration for connection pooling.
//
// Example:
//
//	config.TransportConfig = cachet.TransportConfig{
//	    MaxIdleConns:    200,
//	    MaxConnsPerHost: 50,
//	    IdleConnTimeout: 120 * time.Second,
//	}
type TransportConfig struct {
	// MaxIdleConns controls the maximum number of idle connections
	// across all hosts. Zero means no limit.
	// Default: 100
	MaxIdleConns int

	// MaxConnsPerHost controls the maximum connections per host.
	// Default: 10
	MaxConnsPerHost int

	// IdleConnTimeout is the maximum time an idle connection will remain
	// idle before closing itself. Zero means no limit.
	// Default: 90s
	IdleConnTimeout time.Duration
}

// NewConfig returns a Config for the given endpoint with default transport
// settings.
//
// Example:
//
//	config := cachet.NewConfig("http://localhost/api/v1")
func NewConfig(endpoint string) *Config {
	c := DefaultConfig()
	c.Endpoint = endpoint
	return c
}

// DefaultConfig returns a Config with default transport settings and no
// endpoint. The endpoint must be set before the config is usable.
func DefaultConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
		TransportConfig: TransportConfig{
			MaxIdleConns:    100,
			MaxConnsPerHost: 10,
			IdleConnTimeout: 90 * time.Second,
		},
	}
}

// WithEndpoint sets the base URL of the Cachet API.
func (c *Config) WithEndpoint(endpoint string) *Config {
	c.Endpoint = endpoint
	return c
}

// WithAPIToken sets the API token sent in the X-Cachet-Token header.
//
// Example:
//
//	config := cachet.NewConfig("http://localhost/api/v1").
//	    WithAPIToken("secret-token")
func (c *Config) WithAPIToken(token string) *Config {
	c.APIToken = token
	return c
}

// WithTimeout sets the request timeout for all operations. Zero disables
// the timeout.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithVerifyTLS enables or disables TLS certificate verification.
//
// Example:
//
//	// status page with a self-signed certificate
//	config := cachet.NewConfig("https://status.internal/api/v1").
//	    WithVerifyTLS(false)
func (c *Config) WithVerifyTLS(verify bool) *Config {
	c.VerifyTLS = &verify
	return c
}

// Validate validates the configuration and sets defaults for missing pool
// settings. This is called automatically by NewClient.
//
// Returns ErrMissingEndpoint when no endpoint is configured.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return ErrMissingEndpoint
	}
	if c.Timeout < 0 {
		c.Timeout = 0
	}
	if c.TransportConfig.MaxIdleConns <= 0 {
		c.TransportConfig.MaxIdleConns = 100
	}
	if c.TransportConfig.MaxConnsPerHost <= 0 {
		c.TransportConfig.MaxConnsPerHost = 10
	}
	if c.TransportConfig.IdleConnTimeout <= 0 {
		c.TransportConfig.IdleConnTimeout = 90 * time.Second
	}
	return nil
}
