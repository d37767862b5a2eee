// ABOUTME: Standard HTTP client implementation used to fetch the news feed
// ABOUTME: Sends an identifying User-Agent and performs exactly one attempt per call

package standard

import (
	"context"
	"io"
	"net/http"

	"donaldking-api/core/interfaces"
)

const (
	defaultUserAgent = "DonaldKingBot/1.0"
	feedAccept       = "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8"
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient wraps an *http.Client, which owns the timeout and transport.
// A nil client gets a zero-value http.Client.
func NewStandardHTTPClient(client *http.Client, userAgent string) *StandardHTTPClient {
	if client == nil {
		client = &http.Client{}
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &StandardHTTPClient{
		client:    client,
		userAgent: userAgent,
	}
}

// Get performs an HTTP GET request. There are no retries; a 5xx is returned to the caller as is.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", feedAccept)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
