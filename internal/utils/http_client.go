package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent by every [HTTPClient] unless overridden.
const DefaultUserAgent = "card-keeper-client"

// HTTPClient embeds *resty.Client so callers use the resty request API
// directly.
type HTTPClient struct {
	*resty.Client
}

// ClientOption configures an [HTTPClient] at construction.
type ClientOption func(*resty.Client)

// WithBaseURL prefixes relative request paths with baseURL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *resty.Client) { c.SetBaseURL(baseURL) }
}

// WithTimeout bounds every request, including retries of it.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *resty.Client) { c.SetTimeout(timeout) }
}

// WithUserAgent replaces [DefaultUserAgent].
func WithUserAgent(userAgent string) ClientOption {
	return func(c *resty.Client) { c.SetHeader("User-Agent", userAgent) }
}

// WithRetries retries idempotent requests that failed on the transport or
// got a 502, 503 or 504 back. Mutating methods are never retried.
func WithRetries(count int, wait time.Duration) ClientOption {
	return func(c *resty.Client) {
		c.SetRetryCount(count).
			SetRetryWaitTime(wait).
			AddRetryCondition(retryIdempotent)
	}
}

func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return err != nil
	}
	switch resp.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
	default:
		return false
	}
	if err != nil {
		return true
	}
	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// NewHTTPClient returns an independent client that accepts JSON and
// identifies itself with [DefaultUserAgent], then applies opts in order.
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("http://localhost:8080"))
//	resp, err := client.R().Get("/cards")
func NewHTTPClient(opts ...ClientOption) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", DefaultUserAgent)

	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
