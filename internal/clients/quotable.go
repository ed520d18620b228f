// Package clients holds the thin HTTP clients for the external content
// providers. Each client performs a single GET with a bounded timeout
// and hands back the provider's payload untouched.
package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const providerTimeout = 10 * time.Second

// QuotableClient fetches random quotes from a quotable-compatible API.
type QuotableClient struct {
	baseURL string
	http    *http.Client
}

func NewQuotableClient(baseURL string) *QuotableClient {
	return &QuotableClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: providerTimeout},
	}
}

// Random returns the raw payload of GET {base}/random?tags={category}.
func (c *QuotableClient) Random(ctx context.Context, category string) ([]byte, error) {
	u := fmt.Sprintf("%s/random?tags=%s", c.baseURL, url.QueryEscape(category))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
