package arangohttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/dmitrymomot/arangokit/pkg/arango"
)

// Client speaks the ArangoDB HTTP API and satisfies the arango.Client
// capability contract. A single Client is safe to share: each handshake
// produces an independent session carrying its own credential transport.
type Client struct {
	httpClient *http.Client
	log        *slog.Logger
}

var _ arango.Client = (*Client)(nil)

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the default pooled HTTP client. Nil clients are
// ignored. Timeout policy belongs here — the manager enforces none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger enables request-level debug logging. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates an HTTP backend client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: cleanhttp.DefaultPooledClient(),
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect opens a session without credentials. It succeeds only against
// servers running with authentication disabled.
func (c *Client) Connect(ctx context.Context, serverURL string) (arango.ServerConnection, error) {
	return c.establish(ctx, normalizeURL(serverURL), c.transport())
}

// ConnectBasicAuth opens a session that resends the credentials with every
// request made through it.
func (c *Client) ConnectBasicAuth(ctx context.Context, serverURL, username, password string) (arango.ServerConnection, error) {
	rt := &basicAuthTransport{base: c.transport(), username: username, password: password}
	return c.establish(ctx, normalizeURL(serverURL), rt)
}

// ConnectJWT exchanges the credentials for a bearer token via /_open/auth and
// opens a session that attaches the token, not the credentials, to every
// request. The token is never refreshed here; sessions outliving the token's
// validity fail validation and get evicted by the pool.
func (c *Client) ConnectJWT(ctx context.Context, serverURL, username, password string) (arango.ServerConnection, error) {
	baseURL := normalizeURL(serverURL)

	in := map[string]string{"username": username, "password": password}
	var out struct {
		JWT string `json:"jwt"`
	}
	if err := c.postJSON(ctx, c.httpClient, baseURL+"/_open/auth", in, &out); err != nil {
		return nil, classify(err)
	}
	if out.JWT == "" {
		return nil, errors.Join(arango.ErrAuthenticationRejected, errors.New("token exchange returned an empty token"))
	}

	return c.establish(ctx, baseURL, bearerTransport(c.transport(), out.JWT))
}

// establish builds the per-session HTTP client around the given credential
// transport and verifies it with a version probe, which exercises both the
// network path and the configured credentials in one round trip.
func (c *Client) establish(ctx context.Context, baseURL string, rt http.RoundTripper) (arango.ServerConnection, error) {
	hc := &http.Client{Transport: rt, Timeout: c.httpClient.Timeout}

	var ver struct {
		Server  string `json:"server"`
		Version string `json:"version"`
	}
	if err := c.getJSON(ctx, hc, baseURL+"/_api/version", &ver); err != nil {
		return nil, classify(err)
	}
	c.log.DebugContext(ctx, "established arangodb session",
		slog.String("server", ver.Server),
		slog.String("version", ver.Version),
	)

	return &serverConnection{client: c, baseURL: baseURL, http: hc}, nil
}

func (c *Client) transport() http.RoundTripper {
	if c.httpClient.Transport != nil {
		return c.httpClient.Transport
	}
	return http.DefaultTransport
}

func (c *Client) getJSON(ctx context.Context, hc *http.Client, rawURL string, out any) error {
	return c.do(ctx, hc, http.MethodGet, rawURL, nil, out)
}

func (c *Client) postJSON(ctx context.Context, hc *http.Client, rawURL string, in, out any) error {
	return c.do(ctx, hc, http.MethodPost, rawURL, in, out)
}

// do runs one API request. Network and decoding failures come back joined
// with arango.ErrTransportFailure; non-2xx responses come back as a
// *statusError for the call site to map onto the error taxonomy.
func (c *Client) do(ctx context.Context, hc *http.Client, method, rawURL string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return errors.Join(arango.ErrTransportFailure, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return errors.Join(arango.ErrTransportFailure, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		return errors.Join(arango.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "arangodb request",
		slog.String("method", method),
		slog.String("url", rawURL),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		se := &statusError{status: resp.StatusCode}
		var envelope apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			se.errNum = envelope.ErrorNum
			se.message = envelope.ErrorMessage
		}
		return se
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(arango.ErrTransportFailure, err)
	}
	return nil
}

func normalizeURL(serverURL string) string {
	return strings.TrimRight(serverURL, "/")
}
