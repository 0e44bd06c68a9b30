// Package media extracts attachment URLs from a serialized tweet and fetches
// raw attachment bytes. Exactly one attachment is supported per request: only
// the first candidate URL is ever fetched.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mentiongate/internal/models"
)

const defaultFetchTimeout = 30 * time.Second

// ExtractMediaURLs returns the candidate attachment URLs carried by a
// serialized tweet. The tweet is expected to be a JSON document exposing a
// "media_urls" array; plain-text tweets (or tweets without the field) yield
// no candidates.
func ExtractMediaURLs(originalTweet string) []string {
	var tweet struct {
		MediaURLs []string `json:"media_urls"`
	}
	if err := json.Unmarshal([]byte(originalTweet), &tweet); err != nil {
		return nil
	}
	return tweet.MediaURLs
}

// HTTPFetcher retrieves attachment bytes over HTTP(S).
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultFetchTimeout},
	}
}

// Fetch downloads one attachment and returns its raw bytes. Any transport
// failure or non-2xx status aborts the request; there is no retry and no
// degrade-to-no-attachment path.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %q: %v", models.ErrMediaFetch, url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %q: %v", models.ErrMediaFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %q returned status %d", models.ErrMediaFetch, url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body of %q: %v", models.ErrMediaFetch, url, err)
	}

	return data, nil
}
