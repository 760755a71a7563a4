package healthcheck

import (
	"fmt"
	"strings"
	"time"

	"github.com/koddi/healthcheck/pkg/koddi"
)

// RunConfig holds everything a run needs: credentials, target identifiers
// and the HTTP client. Built once from flags and environment, read-only
// after that.
type RunConfig struct {
	BaseURL        string
	Timeout        time.Duration
	Email          string
	Password       string
	MemberGroupID  int
	AdvertiserID   int
	ClientName     string
	SiteID         string
	ExperienceName string
	Client         koddi.HTTPClient // injected for testing
}

// Session carries the token obtained by the authentication check. An empty
// token means not authenticated.
type Session struct {
	IDToken string
}

// Authenticated reports whether a token has been obtained.
func (s *Session) Authenticated() bool {
	return s.IDToken != ""
}

// api returns the vendor API client, defaulting to a real HTTP client with
// the configured timeout when none was injected.
func (c *RunConfig) api() *koddi.Client {
	httpClient := c.Client
	if httpClient == nil {
		httpClient = &koddi.RealHTTPClient{Timeout: c.Timeout}
	}
	return &koddi.Client{HTTP: httpClient}
}

// consoleURL joins a formatted path onto the Console API base URL.
func (c *RunConfig) consoleURL(format string, args ...interface{}) string {
	return strings.TrimSuffix(c.BaseURL, "/") + fmt.Sprintf(format, args...)
}
