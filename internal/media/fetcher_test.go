package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentiongate/internal/models"
)

func TestExtractMediaURLs(t *testing.T) {
	t.Run("tweet with media", func(t *testing.T) {
		tweet := `{"text": "look at this", "media_urls": ["https://img.example/a.jpg", "https://img.example/b.jpg"]}`
		urls := ExtractMediaURLs(tweet)
		require.Len(t, urls, 2)
		assert.Equal(t, "https://img.example/a.jpg", urls[0])
	})

	t.Run("tweet without media field", func(t *testing.T) {
		urls := ExtractMediaURLs(`{"text": "no pictures here"}`)
		assert.Empty(t, urls)
	})

	t.Run("plain text tweet", func(t *testing.T) {
		urls := ExtractMediaURLs("Cats can fly.")
		assert.Empty(t, urls)
	})
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0} // jpeg magic
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write(payload)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher()
	data, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestHTTPFetcher_Fetch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher()
	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMediaFetch)
}

func TestHTTPFetcher_Fetch_TransportError(t *testing.T) {
	fetcher := NewHTTPFetcher()
	_, err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1/unreachable")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMediaFetch)
}
