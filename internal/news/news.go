/*
Package news looks up headlines from a news-search RSS feed.
*/
package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"

	"github.com/shanehull/screenwatch/internal/types"
)

// Region parameters for the Indian edition of the news search feed.
var regionParams = map[string]string{
	"hl":   "en-IN",
	"gl":   "IN",
	"ceid": "IN:en",
}

type Client struct {
	baseURL string
	http    *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")

	return &Client{baseURL: strings.TrimSpace(baseURL), http: c}
}

// SearchURL builds the feed URL for query.
func (c *Client) SearchURL(query string) string {
	params := url.Values{}
	params.Set("q", query)
	for k, v := range regionParams {
		params.Set(k, v)
	}
	return c.baseURL + "?" + params.Encode()
}

// Items fetches and parses the feed for query.
func (c *Client) Items(ctx context.Context, query string) ([]*gofeed.Item, error) {
	feedURL := c.SearchURL(query)

	res, err := c.http.R().
		SetContext(ctx).
		Get(feedURL)
	if err != nil {
		return nil, types.NewSourceError(types.KindNetwork, feedURL, fmt.Errorf("failed to fetch feed: %w", err))
	}

	if res.StatusCode() != http.StatusOK {
		return nil, types.NewSourceError(types.KindNetwork, feedURL, fmt.Errorf("received non-OK status code %d", res.StatusCode()))
	}

	feed, err := gofeed.NewParser().ParseString(res.String())
	if err != nil {
		return nil, types.NewSourceError(types.KindParse, feedURL, fmt.Errorf("failed to parse feed: %w", err))
	}

	return feed.Items, nil
}

// Headlines returns up to limit headlines for query, in feed order.
func (c *Client) Headlines(ctx context.Context, query string, limit int) ([]types.Headline, error) {
	items, err := c.Items(ctx, query)
	if err != nil {
		return nil, err
	}

	var headlines []types.Headline
	for _, item := range items {
		if limit > 0 && len(headlines) >= limit {
			break
		}
		headlines = append(headlines, ToHeadline(item))
	}
	return headlines, nil
}

func ToHeadline(item *gofeed.Item) types.Headline {
	h := types.Headline{
		Title: strings.TrimSpace(item.Title),
		Link:  strings.TrimSpace(item.Link),
	}
	if item.PublishedParsed != nil {
		h.Published = *item.PublishedParsed
	}
	return h
}
