// Package classifier maps a free-form user command to exactly one agent
// category label by asking an LLM completion service. The raw trimmed label
// is returned verbatim; resolving it against the known category set is the
// caller's concern.
package classifier

import (
	"context"
	"strings"
)

// CommandClassifier classifies a user command against the tweet it was
// issued on, returning the classifier's label as free text.
type CommandClassifier interface {
	Classify(ctx context.Context, command, originalTweet string) (string, error)
}

// DefaultPromptTemplate is the built-in classification prompt. It embeds a
// rubric for every category plus worked examples, and instructs the model to
// answer with the bare label. Placeholders are substituted by RenderPrompt.
const DefaultPromptTemplate = `You are the command router for a social media assistant. A user has mentioned the assistant under a tweet and given it a command. Decide which ONE of the following agents should handle the command.

Agents:
- "Screenshot + Research Agent": the command asks to analyze, look at, or research an attached image or screenshot.
- "Impersonation Agent": the command asks for a reply written in someone's voice or style.
- "Viral Thread Generator": the command asks to expand the tweet into a thread.
- "Fact-Checker Agent": the command asks whether something in the tweet is true or accurate.
- "Sentiment Analyzer": the command asks about the tone, mood, or sentiment of the tweet.
- "Meme Creator": the command asks for a meme or an image joke based on the tweet.
- "Generic Agent": anything that does not clearly fit one of the above.

Examples:
- "is this true?" -> Fact-Checker Agent
- "what's in this screenshot?" -> Screenshot + Research Agent
- "reply like Shakespeare would" -> Impersonation Agent
- "make this a thread" -> Viral Thread Generator
- "how angry is this guy?" -> Sentiment Analyzer
- "meme this" -> Meme Creator
- "summarize it" -> Generic Agent

Tweet:
{{ORIGINAL_TWEET}}

Command:
{{USER_COMMAND}}

Respond with exactly one agent name from the list above and nothing else.`

// RenderPrompt substitutes the command and tweet into a prompt template.
func RenderPrompt(template, command, originalTweet string) string {
	prompt := strings.ReplaceAll(template, "{{USER_COMMAND}}", command)
	prompt = strings.ReplaceAll(prompt, "{{ORIGINAL_TWEET}}", originalTweet)
	return prompt
}

// firstLine returns the first non-empty trimmed line of a completion. Models
// occasionally pad the label with an explanation on following lines; only the
// label line is the answer.
func firstLine(completion string) string {
	completion = strings.TrimSpace(completion)
	if idx := strings.IndexByte(completion, '\n'); idx >= 0 {
		completion = completion[:idx]
	}
	return strings.TrimSpace(completion)
}
