// Package koddi issues requests against the Koddi Console API and the
// auction engine, and decodes the vendor's JSON response envelopes.
package koddi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient uses the real net/http package.
type RealHTTPClient struct {
	Timeout time.Duration
}

// Do executes an HTTP request with the configured timeout.
func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	client := &http.Client{Timeout: c.Timeout}
	return client.Do(req)
}

// Client wraps an HTTPClient with Console API request helpers.
type Client struct {
	HTTP HTTPClient
}

// Response is a vendor API response with its body parsed for path reads.
type Response struct {
	StatusCode int
	Body       gjson.Result
}

// Success reports whether the Console API envelope indicates success.
func (r *Response) Success() bool {
	return r.Body.Get("status").String() == "success"
}

// ErrorMessage extracts a "code X: message" description from a failed
// envelope, falling back to the HTTP status when the body carries neither
// a message nor an error field.
func (r *Response) ErrorMessage() string {
	code := r.Body.Get("error_code").String()
	if code == "" {
		code = "unknown"
	}
	msg := r.Body.Get("message").String()
	if msg == "" {
		msg = r.Body.Get("error").String()
	}
	if msg == "" {
		msg = fmt.Sprintf("unknown error (HTTP %d)", r.StatusCode)
	}
	return fmt.Sprintf("code %s: %s", code, msg)
}

// GetJSON issues a GET request and parses the JSON response body.
// A non-empty token is sent as a bearer Authorization header.
func (c *Client) GetJSON(url, token string) (*Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, token)
}

// PostJSON issues a POST request with a JSON-encoded body and parses the
// JSON response body. A non-empty token is sent as a bearer Authorization
// header.
func (c *Client) PostJSON(url, token string, body interface{}) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, token)
}

func (c *Client) do(req *http.Request, token string) (*Response, error) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// A non-JSON body parses to a result where no path exists; callers
	// see that as an unknown-error envelope rather than a hard failure.
	return &Response{
		StatusCode: resp.StatusCode,
		Body:       gjson.ParseBytes(raw),
	}, nil
}

// AuctionURL returns the auction-engine winning-ads endpoint for a client.
func AuctionURL(clientName string) string {
	return fmt.Sprintf("https://%s.koddi.io/auction-engine/winning_ads", clientName)
}

// TransportErrorMessage maps a transport-level failure to the wording used
// in check results: timeouts and connection errors read differently.
func TransportErrorMessage(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "request timed out"
	}
	return "connection error: " + err.Error()
}
