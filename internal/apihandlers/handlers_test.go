package apihandlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentiongate/internal/dispatch"
	"mentiongate/internal/media"
	"mentiongate/internal/services"
)

// stubClassifier returns a fixed label; end-to-end tests must not depend on
// a non-deterministic external classifier.
type stubClassifier struct {
	label string
	calls int
}

func (s *stubClassifier) Classify(ctx context.Context, command, originalTweet string) (string, error) {
	s.calls++
	return s.label, nil
}

func newRouter(label string, backendURL string) (*gin.Engine, *stubClassifier) {
	gin.SetMode(gin.TestMode)

	classifier := &stubClassifier{label: label}
	svc := services.NewMentionService(classifier, media.NewHTTPFetcher(), dispatch.NewDispatcher(backendURL))
	handler := NewAPIHandler(svc)

	router := gin.New()
	router.POST("/process-mention", handler.ProcessMentionHandler)
	router.GET("/health", handler.HealthHandler)
	return router, classifier
}

func postMention(router *gin.Engine, body any) *httptest.ResponseRecorder {
	encoded, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/process-mention", bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProcessMention_FactCheckEndToEnd(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"verdict": "false"}`)
	}))
	defer backend.Close()

	router, _ := newRouter("Fact-Checker Agent", backend.URL)
	w := postMention(router, map[string]any{
		"userCommand":   "is this true?",
		"originalTweet": "Cats can fly.",
	})

	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "/api/fact-check/", gotPath)
	assert.Equal(t, "Cats can fly.", gotBody["claim"])

	var resp struct {
		Success  bool           `json:"success"`
		Category string         `json:"category"`
		Result   map[string]any `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Fact-Checker Agent", resp.Category)
	assert.Equal(t, "false", resp.Result["verdict"])
}

func TestProcessMention_ScreenshotEndToEndWithMedia(t *testing.T) {
	imageBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	mediaFetches := 0
	mediaServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaFetches++
		w.Write(imageBytes)
	}))
	defer mediaServer.Close()

	var gotTweetText string
	var gotImage []byte
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotTweetText = r.MultipartForm.Value["tweet_text"][0]
		if files := r.MultipartForm.File["image"]; len(files) > 0 {
			f, err := files[0].Open()
			require.NoError(t, err)
			gotImage, _ = io.ReadAll(f)
			f.Close()
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"analysis": "a cat"}`)
	}))
	defer backend.Close()

	router, _ := newRouter("Screenshot + Research Agent", backend.URL)
	tweet := fmt.Sprintf(`{"text": "look at this", "media_urls": [%q, %q]}`, mediaServer.URL+"/a.jpg", mediaServer.URL+"/b.jpg")
	w := postMention(router, map[string]any{
		"userCommand":   "what is in this image?",
		"originalTweet": tweet,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mediaFetches, "only the first media URL may be fetched")
	assert.Equal(t, tweet, gotTweetText)
	assert.Equal(t, imageBytes, gotImage)
}

func TestProcessMention_MissingFieldsReturns400(t *testing.T) {
	backendCalls := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalls++
		fmt.Fprint(w, `{}`)
	}))
	defer backend.Close()

	router, classifier := newRouter("Fact-Checker Agent", backend.URL)

	for _, body := range []map[string]any{
		{"originalTweet": "Cats can fly."},
		{"userCommand": "is this true?"},
		{},
	} {
		w := postMention(router, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp, "error")
	}

	// Validation failures must short-circuit before any external call.
	assert.Zero(t, classifier.calls)
	assert.Zero(t, backendCalls)
}

func TestProcessMention_BackendFailureReturns500(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer backend.Close()

	router, _ := newRouter("Fact-Checker Agent", backend.URL)
	w := postMention(router, map[string]any{
		"userCommand":   "is this true?",
		"originalTweet": "Cats can fly.",
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to process mention", resp["error"])
	assert.NotEmpty(t, resp["details"])
}

func TestHealthHandler(t *testing.T) {
	router, _ := newRouter("Generic Agent", "http://localhost:0")
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
