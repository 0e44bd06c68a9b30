// Package dispatch resolves a classified category to its backend agent
// endpoint, builds the category-specific outbound payload, and forwards it.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"mentiongate/internal/models"
)

const (
	defaultDispatchTimeout = 120 * time.Second
	attachmentFilename     = "media.jpg"
)

// Dispatcher sends one outbound call per request to the backend agent that
// the category resolves to. No retries; a failure is terminal.
type Dispatcher struct {
	baseURL string
	client  *http.Client
}

func NewDispatcher(baseURL string) *Dispatcher {
	return &Dispatcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultDispatchTimeout},
	}
}

// Dispatch builds and posts the category-specific request, returning the
// decoded response body verbatim. The screenshot category travels as a
// multipart form (the only binary-carrying capability); everything else is a
// JSON body.
func (d *Dispatcher) Dispatch(ctx context.Context, req *models.DispatchRequest) (models.DispatchResult, error) {
	endpoint, ok := Endpoint(req.Category)
	if !ok {
		return nil, fmt.Errorf("%w: no endpoint mapped for %q", models.ErrInvalidCategory, req.Category)
	}

	var (
		body        io.Reader
		contentType string
		err         error
	)

	if req.Category == models.CategoryScreenshot {
		body, contentType, err = buildMultipartBody(req)
	} else {
		body, contentType, err = buildJSONBody(req)
	}
	if err != nil {
		return nil, err
	}

	url := d.baseURL + endpoint

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", models.ErrDispatch, err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := d.client.Do(httpReq)
	if err != nil {
		log.Errorf("Dispatch to %s failed: %v", url, err)
		return nil, fmt.Errorf("%w: POST %s: %v", models.ErrDispatch, url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("Dispatch to %s: reading response failed: %v", url, err)
		return nil, fmt.Errorf("%w: read response from %s: %v", models.ErrDispatch, url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Errorf("Dispatch to %s returned status %d: %s", url, resp.StatusCode, truncate(respBody, 512))
		return nil, fmt.Errorf("%w: %s returned status %d", models.ErrDispatch, url, resp.StatusCode)
	}

	var result models.DispatchResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		log.Errorf("Dispatch to %s: undecodable response body: %v", url, err)
		return nil, fmt.Errorf("%w: decode response from %s: %v", models.ErrDispatch, url, err)
	}

	return result, nil
}

// buildJSONBody assembles the JSON payload for every non-binary category.
// Categories without a registered builder get the generic shape, keeping the
// payload table total over untrusted input.
func buildJSONBody(req *models.DispatchRequest) (io.Reader, string, error) {
	payload := basePayload(req)

	builder, ok := payloadBuilders[req.Category]
	if !ok {
		builder = payloadBuilders[models.CategoryGeneric]
	}
	builder(req, payload)

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: encode payload: %v", models.ErrDispatch, err)
	}

	return bytes.NewReader(encoded), "application/json", nil
}

// buildMultipartBody assembles the multipart form for the screenshot
// category. The image part is omitted entirely when there is no attachment;
// the backend distinguishes "no image" by the part's absence, not by an
// empty file.
func buildMultipartBody(req *models.DispatchRequest) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	payload := basePayload(req)
	payload["tweet_text"] = req.OriginalTweet

	for field, value := range payload {
		if err := writer.WriteField(field, formFieldValue(value)); err != nil {
			return nil, "", fmt.Errorf("%w: write form field %q: %v", models.ErrDispatch, field, err)
		}
	}

	if len(req.Attachment) > 0 {
		part, err := writer.CreateFormFile("image", attachmentFilename)
		if err != nil {
			return nil, "", fmt.Errorf("%w: create image part: %v", models.ErrDispatch, err)
		}
		if _, err := part.Write(req.Attachment); err != nil {
			return nil, "", fmt.Errorf("%w: write image part: %v", models.ErrDispatch, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("%w: finalize form: %v", models.ErrDispatch, err)
	}

	return &buf, writer.FormDataContentType(), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
