package derivatives

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	httpClient "fapi/internal/http"
	"fapi/pkg/core"
	"fapi/pkg/signer"
)

const apiKeyHeader = "X-MBX-APIKEY"

// Client dispatches REST calls against the derivatives API.
// Credentials and signer are fixed at construction. Client is safe for concurrent use.
type Client struct {
	config     *core.Config
	apiKey     string
	signer     core.Signer
	httpClient *httpClient.Client
	logger     zerolog.Logger
	clock      func() time.Time
	market     *Market
}

// New creates a Client with the given configuration and options.
// A non-empty Credentials.SecretKey yields an HMAC signer unless WithSigner is given.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &Options{
		Logger: zerolog.Nop(),
		Clock:  time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.Logger.Level(config.Level())

	var apiKey string
	s := options.Signer
	if creds := config.Credentials; creds != nil {
		apiKey = creds.APIKey
		if s == nil && creds.SecretKey != "" {
			hs, err := signer.NewHMAC(creds.SecretKey)
			if err != nil {
				return nil, fmt.Errorf("create signer: %w", err)
			}
			s = hs
		}
	}

	hc, err := httpClient.NewClient(&httpClient.Config{
		BaseURL:    config.URL(),
		Timeout:    config.Timeout,
		HTTPClient: options.HTTPClient,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	c := &Client{
		config:     config,
		apiKey:     apiKey,
		signer:     s,
		httpClient: hc,
		logger:     logger,
		clock:      options.Clock,
	}
	c.market = &Market{client: c}
	return c, nil
}

// Market returns the market data endpoints bound to this client.
func (c *Client) Market() *Market {
	return c.market
}

// Close releases the transport. Calls made after Close return core.ErrClientClosed.
func (c *Client) Close() error {
	if c.httpClient != nil {
		return c.httpClient.Close()
	}
	return nil
}

// Send dispatches on the endpoint's security type and returns the response body.
func (c *Client) Send(ctx context.Context, ep core.Endpoint, params core.Params) (string, error) {
	switch ep.Security {
	case core.SecurityNone:
		return c.SendPublic(ctx, ep, params)
	case core.SecurityAPIKey:
		return c.SendAPIKey(ctx, ep, params)
	case core.SecuritySigned:
		return c.SendSigned(ctx, ep, params)
	default:
		return "", fmt.Errorf("unsupported security type: %d", ep.Security)
	}
}

// SendPublic sends an unauthenticated request.
func (c *Client) SendPublic(ctx context.Context, ep core.Endpoint, params core.Params) (string, error) {
	return c.do(ctx, ep, params.Encode())
}

// SendAPIKey sends a request carrying the API key header and no signature.
func (c *Client) SendAPIKey(ctx context.Context, ep core.Endpoint, params core.Params) (string, error) {
	if c.apiKey == "" {
		return "", core.ErrNoCredentials
	}
	return c.do(ctx, ep, params.Encode(), httpClient.WithHeader(apiKeyHeader, c.apiKey))
}

// SendSigned adds timestamp and recvWindow, signs the canonical query string and
// appends the signature as the last parameter.
func (c *Client) SendSigned(ctx context.Context, ep core.Endpoint, params core.Params) (string, error) {
	if c.apiKey == "" || c.signer == nil {
		return "", core.ErrNoCredentials
	}

	signed := params.Clone()
	signed.Set("timestamp", c.clock().UnixMilli())
	if c.config.RecvWindow > 0 {
		signed.Set("recvWindow", c.config.RecvWindow.Milliseconds())
	}

	query := signed.Encode()
	signature, err := c.signer.Sign([]byte(query))
	if err != nil {
		return "", fmt.Errorf("sign request: %w", err)
	}
	query += "&signature=" + url.QueryEscape(signature)

	return c.do(ctx, ep, query, httpClient.WithHeader(apiKeyHeader, c.apiKey))
}

func (c *Client) do(ctx context.Context, ep core.Endpoint, query string, opts ...httpClient.RequestOption) (string, error) {
	target := ep.Path
	if query != "" {
		target += "?" + query
	}

	c.logger.Debug().
		Str("path", ep.Path).
		Str("security", ep.Security.String()).
		Int("weight", ep.Weight).
		Msg("dispatch")

	resp, err := c.httpClient.Execute(ctx, ep.Method, target, opts...)
	if err != nil {
		return "", err
	}

	body := string(resp.Body)
	if !resp.IsSuccess() {
		return "", core.NewAPIError(resp.StatusCode, body)
	}
	return body, nil
}
