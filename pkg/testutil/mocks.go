// Package testutil provides HTTP test doubles shared by check and runner
// tests.
package testutil

import (
	"io"
	"net/http"
	"strings"
)

// MockHTTPClient is a func-based test double for HTTP clients.
type MockHTTPClient struct {
	DoFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.DoFunc(req)
}

// MockResponse creates an http.Response with given status and body.
func MockResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// Route is one canned answer served by a RouteClient.
type Route struct {
	Status int
	Body   string
	Err    error // returned instead of a response when set
}

// RouteClient serves canned responses keyed by request URL path and
// records every request it sees, so tests can assert on headers and
// bodies after a run.
type RouteClient struct {
	Routes   map[string]Route
	Requests []*http.Request
}

func (c *RouteClient) Do(req *http.Request) (*http.Response, error) {
	c.Requests = append(c.Requests, req)

	route, ok := c.Routes[req.URL.Path]
	if !ok {
		return MockResponse(404, `{"status":"error","error_code":"E404","message":"no such route"}`), nil
	}
	if route.Err != nil {
		return nil, route.Err
	}
	status := route.Status
	if status == 0 {
		status = 200
	}
	return MockResponse(status, route.Body), nil
}

// RequestFor returns the first recorded request whose URL path matches,
// or nil when the path was never called.
func (c *RouteClient) RequestFor(path string) *http.Request {
	for _, req := range c.Requests {
		if req.URL.Path == path {
			return req
		}
	}
	return nil
}
