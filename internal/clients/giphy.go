package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrAPIKeyMissing is returned when the Giphy API key was never
// configured. Surfaced at call time so a missing key degrades the GIF
// endpoint instead of failing startup.
var ErrAPIKeyMissing = errors.New("giphy api key not configured")

// gifContentRating restricts results to G-rated content.
const gifContentRating = "g"

// GiphyClient fetches random GIFs from the Giphy API.
type GiphyClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewGiphyClient(baseURL, apiKey string) *GiphyClient {
	return &GiphyClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: providerTimeout},
	}
}

// Random returns the raw payload of the random-GIF endpoint for the
// given search tag, always filtered to the fixed content-safety rating.
func (c *GiphyClient) Random(ctx context.Context, tag string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("tag", tag)
	params.Set("rating", gifContentRating)

	u := fmt.Sprintf("%s/v1/gifs/random?%s", c.baseURL, params.Encode())
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
