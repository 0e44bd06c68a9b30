package dispatch

import (
	"encoding/json"
	"fmt"

	"mentiongate/internal/models"
)

// endpoints is the static, total Category→endpoint mapping. It is never
// mutated after process start; adding a capability means adding a row here
// and a payload builder below.
var endpoints = map[models.Category]string{
	models.CategoryScreenshot:    "/api/analyze/",
	models.CategoryImpersonation: "/api/generate/",
	models.CategoryThread:        "/api/generate-thread/",
	models.CategoryFactCheck:     "/api/fact-check/",
	models.CategorySentiment:     "/api/analyze-tweet/",
	models.CategoryMeme:          "/api/generate-meme/",
	models.CategoryGeneric:       "/api/process-tweet/",
}

// Endpoint resolves a category to its backend path. ok is false for values
// outside the known set.
func Endpoint(category models.Category) (string, bool) {
	endpoint, ok := endpoints[category]
	return endpoint, ok
}

// payloadBuilder layers the category-specific fields on top of the base
// payload. The base already contains the caller metadata plus original_tweet
// and user_command.
type payloadBuilder func(req *models.DispatchRequest, payload map[string]any)

// payloadBuilders covers every JSON-transport category. The screenshot
// category is absent on purpose: it travels as a multipart form and is
// handled by the dispatcher's multipart path.
var payloadBuilders = map[models.Category]payloadBuilder{
	models.CategoryImpersonation: func(req *models.DispatchRequest, payload map[string]any) {
		// Base payload only; the impersonation backend works from
		// original_tweet and user_command alone.
	},
	models.CategoryThread: func(req *models.DispatchRequest, payload map[string]any) {
		payload["topic"] = req.OriginalTweet
	},
	models.CategoryFactCheck: func(req *models.DispatchRequest, payload map[string]any) {
		payload["claim"] = req.OriginalTweet
	},
	models.CategorySentiment: func(req *models.DispatchRequest, payload map[string]any) {
		payload["tweet_text"] = req.OriginalTweet
	},
	models.CategoryMeme: func(req *models.DispatchRequest, payload map[string]any) {
		payload["input_text"] = req.OriginalTweet
	},
	models.CategoryGeneric: func(req *models.DispatchRequest, payload map[string]any) {
		payload["tweet"] = req.OriginalTweet
		payload["instructions"] = req.Command
	},
}

// basePayload merges the request metadata with the two fields every backend
// receives. Metadata keys never override original_tweet or user_command.
func basePayload(req *models.DispatchRequest) map[string]any {
	payload := make(map[string]any, len(req.Metadata)+2)
	for k, v := range req.Metadata {
		payload[k] = v
	}
	payload["original_tweet"] = req.OriginalTweet
	payload["user_command"] = req.Command
	return payload
}

// formFieldValue renders a payload value as a multipart form field. Scalars
// keep their natural string form; composite values are JSON-encoded so no
// metadata shape is silently dropped on the multipart path.
func formFieldValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case nil:
		return ""
	case bool, int, int32, int64, float32, float64:
		return fmt.Sprint(t)
	default:
		encoded, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(encoded)
	}
}
