package models

// Category identifies which backend agent a classified command is routed to.
// The set is closed: every label other than the six named agents resolves to
// CategoryGeneric via ParseCategory.
type Category string

const (
	CategoryScreenshot    Category = "Screenshot + Research Agent"
	CategoryImpersonation Category = "Impersonation Agent"
	CategoryThread        Category = "Viral Thread Generator"
	CategoryFactCheck     Category = "Fact-Checker Agent"
	CategorySentiment     Category = "Sentiment Analyzer"
	CategoryMeme          Category = "Meme Creator"
	CategoryGeneric       Category = "Generic Agent"
)

// Categories lists every known category in routing-table order.
var Categories = []Category{
	CategoryScreenshot,
	CategoryImpersonation,
	CategoryThread,
	CategoryFactCheck,
	CategorySentiment,
	CategoryMeme,
	CategoryGeneric,
}

// ParseCategory maps a raw classifier label onto the closed category set.
// The match is exact and case-sensitive. Unknown labels fall back to
// CategoryGeneric; the second return value reports whether the label was
// recognized so callers can log off-script classifier output.
func ParseCategory(label string) (Category, bool) {
	for _, c := range Categories {
		if label == string(c) {
			return c, true
		}
	}
	return CategoryGeneric, false
}

// DispatchRequest carries everything the dispatcher needs to build and send
// one category-specific outbound call. It is constructed once per inbound
// request, after classification, and consumed once.
type DispatchRequest struct {
	Category      Category
	Command       string
	OriginalTweet string
	Attachment    []byte         // raw media bytes; nil when the tweet has no attachment
	Metadata      map[string]any // merged into the outbound payload as-is
}

// DispatchResult is the decoded response body returned by a backend agent,
// passed through to the caller unmodified.
type DispatchResult any
