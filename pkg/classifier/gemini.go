package classifier

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"mentiongate/internal/models"
)

// GeminiClassifier implements CommandClassifier using the Google Gemini API.
// Selected via classifier.provider = "gemini" in config.
type GeminiClassifier struct {
	client         *genai.Client
	model          string
	temperature    float32
	promptTemplate string
}

func NewGeminiClassifier(ctx context.Context, apiKey, model string, temperature float32, promptTemplate string) (*GeminiClassifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not provided")
	}
	if promptTemplate == "" {
		promptTemplate = DefaultPromptTemplate
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClassifier{
		client:         client,
		model:          model,
		temperature:    temperature,
		promptTemplate: promptTemplate,
	}, nil
}

func (c *GeminiClassifier) Classify(ctx context.Context, command, originalTweet string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("%w: Gemini classifier is not initialized", models.ErrClassification)
	}

	prompt := RenderPrompt(c.promptTemplate, command, originalTweet)

	gm := c.client.GenerativeModel(c.model)
	gm.SetTemperature(c.temperature)

	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini completion: %v", models.ErrClassification, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no candidates returned from Gemini", models.ErrClassification)
	}

	var completion string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			completion += string(text)
		}
	}

	label := firstLine(completion)
	if label == "" {
		return "", fmt.Errorf("%w: empty completion from Gemini", models.ErrClassification)
	}

	return label, nil
}

// Close releases the underlying API client.
func (c *GeminiClassifier) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
