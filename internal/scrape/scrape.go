/*
Package scrape fetches pages from the cookie-gated source site.
*/
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/shanehull/screenwatch/internal/types"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// loggedOutMarkers show up on the site's sign-in page, never on an
// authenticated screen or dashboard.
var loggedOutMarkers = []string{"Login", "Register"}

type Client struct {
	http *resty.Client
}

// NewClient returns a client that sends cookie with every request.
func NewClient(cookie string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := resty.New()
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", userAgent)
	c.SetHeader("Accept", "text/html,application/xhtml+xml")
	if cookie != "" {
		c.SetHeader("Cookie", cookie)
	}

	return &Client{http: c}
}

// Get returns the body of url. Transport failures and non-200 responses are
// reported as network errors.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	url = strings.TrimSpace(url)

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", types.NewSourceError(types.KindNetwork, url, fmt.Errorf("failed to fetch URL: %w", err))
	}

	if res.StatusCode() != http.StatusOK {
		return "", types.NewSourceError(types.KindNetwork, url, fmt.Errorf("received non-OK status code %d", res.StatusCode()))
	}

	return res.String(), nil
}

// LooksLoggedOut reports whether body is the sign-in page, meaning the cookie expired.
func LooksLoggedOut(body string) bool {
	for _, marker := range loggedOutMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}

// ErrAuthExpired builds the error returned when a gated page served the sign-in page instead.
func ErrAuthExpired(url string) *types.SourceError {
	return types.NewSourceError(types.KindAuthExpired, url, fmt.Errorf("cookie expired, please update SCREENER_COOKIE"))
}
