package classifier

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"mentiongate/internal/models"
)

// ChatCompletionCreator is the minimal slice of the OpenAI client used here,
// kept as an interface so tests can substitute a fake.
type ChatCompletionCreator interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClassifier implements CommandClassifier on top of an OpenAI-compatible
// chat completion API. Temperature is kept low so the model picks a label
// literally instead of improvising.
type OpenAIClassifier struct {
	client         ChatCompletionCreator
	model          string
	temperature    float32
	promptTemplate string
}

func NewOpenAIClassifier(client ChatCompletionCreator, model string, temperature float32, promptTemplate string) *OpenAIClassifier {
	if promptTemplate == "" {
		promptTemplate = DefaultPromptTemplate
	}
	return &OpenAIClassifier{
		client:         client,
		model:          model,
		temperature:    temperature,
		promptTemplate: promptTemplate,
	}
}

func (c *OpenAIClassifier) Classify(ctx context.Context, command, originalTweet string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("%w: OpenAI classifier is not initialized (missing API key)", models.ErrClassification)
	}

	prompt := RenderPrompt(c.promptTemplate, command, originalTweet)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: openai chat completion: %v", models.ErrClassification, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned from OpenAI", models.ErrClassification)
	}

	label := firstLine(resp.Choices[0].Message.Content)
	if label == "" {
		return "", fmt.Errorf("%w: empty completion from OpenAI", models.ErrClassification)
	}

	if resp.Usage.TotalTokens > 0 {
		log.Debugf("Classification used %d tokens (prompt=%d, completion=%d, model=%s)",
			resp.Usage.TotalTokens, resp.Usage.PromptTokens, resp.Usage.CompletionTokens, c.model)
	}

	return label, nil
}
