package arangohttp

import (
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// Config represents the configuration for the HTTP backend.
type Config struct {
	RequestTimeout time.Duration `env:"ARANGODB_HTTP_TIMEOUT" envDefault:"30s"` // RequestTimeout bounds every API call, including the validation probe. Zero disables the bound.
}

// NewFromConfig creates a client from environment-driven configuration.
// Options are applied on top and may override the configured HTTP client.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = cfg.RequestTimeout
	return New(append([]Option{WithHTTPClient(hc)}, opts...)...)
}
